package models

type RbacFunc func(userID string, role UserRole, path string) bool

type Module string

const (
	EmployeeModule    Module = "EMPLOYEE"
	AwardModule       Module = "AWARD"
	PromotionModule   Module = "PROMOTION"
	ResignationModule Module = "RESIGNATION"
	TerminationModule Module = "TERMINATION"
	TransferModule    Module = "TRANSFER"
	WarningModule     Module = "WARNING"
	TravelOrderModule Module = "TRAVEL_ORDER"
	ScheduleModule    Module = "SCHEDULE"
	DictModule        Module = "DICT"
)

type Permission string

const (
	CreatePermission  Permission = "CREATE"
	EditPermission    Permission = "EDIT"
	ViewPermission    Permission = "VIEW"
	DeletePermission  Permission = "DELETE"
	ApprovePermission Permission = "APPROVE"
	ExportPermission  Permission = "EXPORT"
)
