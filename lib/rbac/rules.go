package rbac

import (
	"hr-records-backend/models"
)

var (
	AdminHrRoleSet      = []models.UserRole{models.AdminRole, models.HRRole}
	AdminManagerRoleSet = []models.UserRole{models.AdminRole, models.ManagerRole}
	AdminRoleSet        = []models.UserRole{models.AdminRole}
	AllRoles            = []models.UserRole{models.AdminRole, models.HRRole, models.ManagerRole, models.EmployeeRole}
)

// recordResources разделы кадровых записей с согласованием
var recordResources = map[string]models.Module{
	"awards":        models.AwardModule,
	"promotions":    models.PromotionModule,
	"resignations":  models.ResignationModule,
	"terminations":  models.TerminationModule,
	"transfers":     models.TransferModule,
	"warnings":      models.WarningModule,
	"travel-orders": models.TravelOrderModule,
}

func (i *impl) initRules() {
	for resource, module := range recordResources {
		i.addRecordRbac(resource, module)
	}
	i.RegisterRule(models.TravelOrderModule, models.ViewPermission, AllRoles, "/api/v1/travel-orders/{id}/pdf [get]", nil)
	i.addEmployeeRbac()
	i.addScheduleRbac()
	i.addDictRbac()
}

func (i *impl) addRecordRbac(resource string, module models.Module) {
	prefix := "/api/v1/" + resource
	// VIEW
	i.RegisterRule(module, models.ViewPermission, AllRoles, prefix+" [get]", nil)
	i.RegisterRule(module, models.ViewPermission, AllRoles, prefix+"/list [get]", nil)
	i.RegisterRule(module, models.ViewPermission, AllRoles, prefix+"/page [get]", nil)
	i.RegisterRule(module, models.ViewPermission, AllRoles, prefix+"/{id} [get]", nil)
	i.RegisterRule(module, models.ViewPermission, AllRoles, prefix+"/{id}/history [get]", nil)
	i.RegisterRule(module, models.ExportPermission, AllRoles, prefix+"/export [get]", nil)
	// CREATE/EDIT
	i.RegisterRule(module, models.CreatePermission, AdminHrRoleSet, prefix+" [post]", nil)
	i.RegisterRule(module, models.EditPermission, AdminHrRoleSet, prefix+"/{id} [put]", nil)
	// POST /{id}?_method=PUT
	i.RegisterRule(module, models.EditPermission, AdminHrRoleSet, prefix+"/{id} [post]", nil)
	i.RegisterRule(module, models.DeletePermission, AdminHrRoleSet, prefix+"/{id} [delete]", nil)
	// APPROVE
	i.RegisterRule(module, models.ApprovePermission, AdminManagerRoleSet, prefix+"/{id}/status [post]", nil)
}

func (i *impl) addEmployeeRbac() {
	// VIEW
	i.RegisterRule(models.EmployeeModule, models.ViewPermission, AllRoles, "/api/v1/employees [get]", nil)
	i.RegisterRule(models.EmployeeModule, models.ViewPermission, AllRoles, "/api/v1/employees/list [get]", nil)
	i.RegisterRule(models.EmployeeModule, models.ViewPermission, AllRoles, "/api/v1/employees/{id} [get]", nil)
	i.RegisterRule(models.EmployeeModule, models.ViewPermission, AllRoles, "/api/v1/employees/match [post]", nil)
	i.RegisterRule(models.EmployeeModule, models.ExportPermission, AdminHrRoleSet, "/api/v1/employees/export [get]", nil)
	// CREATE/EDIT
	i.RegisterRule(models.EmployeeModule, models.CreatePermission, AdminHrRoleSet, "/api/v1/employees [post]", nil)
	i.RegisterRule(models.EmployeeModule, models.EditPermission, AdminHrRoleSet, "/api/v1/employees/{id} [put]", nil)
	i.RegisterRule(models.EmployeeModule, models.EditPermission, AdminHrRoleSet, "/api/v1/employees/{id} [post]", nil)
	i.RegisterRule(models.EmployeeModule, models.DeletePermission, AdminHrRoleSet, "/api/v1/employees/{id} [delete]", nil)
}

func (i *impl) addScheduleRbac() {
	// VIEW
	i.RegisterRule(models.ScheduleModule, models.ViewPermission, AllRoles, "/api/v1/schedules [get]", nil)
	i.RegisterRule(models.ScheduleModule, models.ViewPermission, AllRoles, "/api/v1/schedules/list [get]", nil)
	i.RegisterRule(models.ScheduleModule, models.ViewPermission, AllRoles, "/api/v1/schedules/calendar [get]", nil)
	i.RegisterRule(models.ScheduleModule, models.ViewPermission, AllRoles, "/api/v1/schedules/{id} [get]", nil)
	// CREATE/EDIT
	i.RegisterRule(models.ScheduleModule, models.CreatePermission, AdminHrRoleSet, "/api/v1/schedules [post]", nil)
	i.RegisterRule(models.ScheduleModule, models.EditPermission, AdminHrRoleSet, "/api/v1/schedules/{id} [put]", nil)
	i.RegisterRule(models.ScheduleModule, models.EditPermission, AdminHrRoleSet, "/api/v1/schedules/{id} [post]", nil)
	i.RegisterRule(models.ScheduleModule, models.DeletePermission, AdminHrRoleSet, "/api/v1/schedules/{id} [delete]", nil)
}

func (i *impl) addDictRbac() {
	// VIEW
	i.RegisterRule(models.DictModule, models.ViewPermission, AllRoles, "/api/v1/departments [get]", nil)
	i.RegisterRule(models.DictModule, models.ViewPermission, AllRoles, "/api/v1/departments/{id} [get]", nil)
	i.RegisterRule(models.DictModule, models.ViewPermission, AllRoles, "/api/v1/lines [get]", nil)
	// MANAGE
	i.RegisterRule(models.DictModule, models.CreatePermission, AdminRoleSet, "/api/v1/departments [post]", nil)
	i.RegisterRule(models.DictModule, models.EditPermission, AdminRoleSet, "/api/v1/departments/{id} [put]", nil)
	i.RegisterRule(models.DictModule, models.DeletePermission, AdminRoleSet, "/api/v1/departments/{id} [delete]", nil)
	i.RegisterRule(models.DictModule, models.CreatePermission, AdminRoleSet, "/api/v1/lines [post]", nil)
	i.RegisterRule(models.DictModule, models.DeletePermission, AdminRoleSet, "/api/v1/lines/{id} [delete]", nil)
}
