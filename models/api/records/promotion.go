package recordapimodels

import (
	"hr-records-backend/models"
	apimodels "hr-records-backend/models/api"
	dbmodels "hr-records-backend/models/db"
)

type PromotionData struct {
	EmployeeID       string  `json:"employee_id" form:"employee_id" validate:"required"`
	PreviousPosition string  `json:"previous_position" form:"previous_position" validate:"max=255"`
	NewPosition      string  `json:"new_position" form:"new_position" validate:"required,max=255"`
	PreviousSalary   float64 `json:"previous_salary" form:"previous_salary" validate:"gte=0"`
	NewSalary        float64 `json:"new_salary" form:"new_salary" validate:"gte=0"`
	PromotionDate    string  `json:"promotion_date" form:"promotion_date" validate:"required"`
	Reason           string  `json:"reason" form:"reason" validate:"max=5000"`
}

func (p PromotionData) GetEmployeeID() string {
	return p.EmployeeID
}

func (p PromotionData) Validate() apimodels.ValidationErrors {
	errs := apimodels.ValidateStruct(p)
	errs.CheckDate("promotion_date", p.PromotionDate, false)
	return errs
}

func (p PromotionData) ToDB(userID, _ string) *dbmodels.Promotion {
	return &dbmodels.Promotion{
		EmployeeRef:      dbmodels.EmployeeRef{EmployeeID: p.EmployeeID},
		Workflow:         dbmodels.NewWorkflow(userID),
		PreviousPosition: trim(p.PreviousPosition),
		NewPosition:      trim(p.NewPosition),
		PreviousSalary:   p.PreviousSalary,
		NewSalary:        p.NewSalary,
		PromotionDate:    date(p.PromotionDate),
		Reason:           p.Reason,
	}
}

func (p PromotionData) UpdMap() map[string]interface{} {
	return map[string]interface{}{
		"employee_id":       p.EmployeeID,
		"previous_position": trim(p.PreviousPosition),
		"new_position":      trim(p.NewPosition),
		"previous_salary":   p.PreviousSalary,
		"new_salary":        p.NewSalary,
		"promotion_date":    date(p.PromotionDate),
		"reason":            p.Reason,
	}
}

type PromotionView struct {
	RecordView
	PreviousPosition string  `json:"previous_position"`
	NewPosition      string  `json:"new_position"`
	PreviousSalary   float64 `json:"previous_salary"`
	NewSalary        float64 `json:"new_salary"`
	PromotionDate    string  `json:"promotion_date"`
	Reason           string  `json:"reason"`
}

func PromotionConvert(rec dbmodels.Promotion) PromotionView {
	return PromotionView{
		RecordView:       RecordConvert(models.PromotionKind, rec.BaseModel, rec.EmployeeRef, rec.Workflow),
		PreviousPosition: rec.PreviousPosition,
		NewPosition:      rec.NewPosition,
		PreviousSalary:   rec.PreviousSalary,
		NewSalary:        rec.NewSalary,
		PromotionDate:    apimodels.FormatDate(rec.PromotionDate),
		Reason:           rec.Reason,
	}
}

var PromotionExportHeaders = []string{"Сотрудник", "Таб. номер", "Прежняя должность", "Новая должность", "Прежний оклад", "Новый оклад", "Дата", "Статус"}

func PromotionExportRow(rec dbmodels.Promotion) []interface{} {
	return []interface{}{
		rec.GetEmployeeName(), employeeIDNo(rec.EmployeeRef), rec.PreviousPosition, rec.NewPosition,
		rec.PreviousSalary, rec.NewSalary, apimodels.FormatDate(rec.PromotionDate), rec.Status.ToHuman(),
	}
}
