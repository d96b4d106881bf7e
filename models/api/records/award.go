package recordapimodels

import (
	"hr-records-backend/models"
	apimodels "hr-records-backend/models/api"
	dbmodels "hr-records-backend/models/db"
)

type AwardData struct {
	EmployeeID  string  `json:"employee_id" form:"employee_id" validate:"required"`
	AwardType   string  `json:"award_type" form:"award_type" validate:"required,max=100"`
	Gift        string  `json:"gift" form:"gift" validate:"max=255"`
	CashPrice   float64 `json:"cash_price" form:"cash_price" validate:"gte=0"`
	AwardDate   string  `json:"award_date" form:"award_date" validate:"required"`
	Description string  `json:"description" form:"description" validate:"max=5000"`
}

func (a AwardData) GetEmployeeID() string {
	return a.EmployeeID
}

func (a AwardData) Validate() apimodels.ValidationErrors {
	errs := apimodels.ValidateStruct(a)
	errs.CheckDate("award_date", a.AwardDate, false)
	return errs
}

func (a AwardData) ToDB(userID, attachmentPath string) *dbmodels.Award {
	return &dbmodels.Award{
		EmployeeRef: dbmodels.EmployeeRef{EmployeeID: a.EmployeeID},
		Workflow:    dbmodels.NewWorkflow(userID),
		Attachment:  dbmodels.Attachment{AttachmentPath: attachmentPath},
		AwardType:   trim(a.AwardType),
		Gift:        trim(a.Gift),
		CashPrice:   a.CashPrice,
		AwardDate:   date(a.AwardDate),
		Description: a.Description,
	}
}

func (a AwardData) UpdMap() map[string]interface{} {
	return map[string]interface{}{
		"employee_id": a.EmployeeID,
		"award_type":  trim(a.AwardType),
		"gift":        trim(a.Gift),
		"cash_price":  a.CashPrice,
		"award_date":  date(a.AwardDate),
		"description": a.Description,
	}
}

type AwardView struct {
	RecordView
	AttachmentView
	AwardType   string  `json:"award_type"`
	Gift        string  `json:"gift"`
	CashPrice   float64 `json:"cash_price"`
	AwardDate   string  `json:"award_date"`
	Description string  `json:"description"`
}

func AwardConvert(rec dbmodels.Award) AwardView {
	return AwardView{
		RecordView:     RecordConvert(models.AwardKind, rec.BaseModel, rec.EmployeeRef, rec.Workflow),
		AttachmentView: AttachmentConvert(rec.Attachment),
		AwardType:      rec.AwardType,
		Gift:           rec.Gift,
		CashPrice:      rec.CashPrice,
		AwardDate:      apimodels.FormatDate(rec.AwardDate),
		Description:    rec.Description,
	}
}

var AwardExportHeaders = []string{"Сотрудник", "Таб. номер", "Вид награды", "Подарок", "Премия", "Дата", "Статус"}

func AwardExportRow(rec dbmodels.Award) []interface{} {
	return []interface{}{
		rec.GetEmployeeName(), employeeIDNo(rec.EmployeeRef), rec.AwardType, rec.Gift, rec.CashPrice,
		apimodels.FormatDate(rec.AwardDate), rec.Status.ToHuman(),
	}
}
