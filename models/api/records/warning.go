package recordapimodels

import (
	"hr-records-backend/models"
	apimodels "hr-records-backend/models/api"
	dbmodels "hr-records-backend/models/db"
)

type WarningData struct {
	EmployeeID  string `json:"employee_id" form:"employee_id" validate:"required"`
	WarningType string `json:"warning_type" form:"warning_type" validate:"required,max=100"`
	Subject     string `json:"subject" form:"subject" validate:"required,max=255"`
	WarningDate string `json:"warning_date" form:"warning_date" validate:"required"`
	Description string `json:"description" form:"description" validate:"max=5000"`
}

func (w WarningData) GetEmployeeID() string {
	return w.EmployeeID
}

func (w WarningData) Validate() apimodels.ValidationErrors {
	errs := apimodels.ValidateStruct(w)
	errs.CheckDate("warning_date", w.WarningDate, false)
	return errs
}

func (w WarningData) ToDB(userID, attachmentPath string) *dbmodels.Warning {
	return &dbmodels.Warning{
		EmployeeRef: dbmodels.EmployeeRef{EmployeeID: w.EmployeeID},
		Workflow:    dbmodels.NewWorkflow(userID),
		Attachment:  dbmodels.Attachment{AttachmentPath: attachmentPath},
		WarningType: trim(w.WarningType),
		Subject:     trim(w.Subject),
		WarningDate: date(w.WarningDate),
		Description: w.Description,
	}
}

func (w WarningData) UpdMap() map[string]interface{} {
	return map[string]interface{}{
		"employee_id":  w.EmployeeID,
		"warning_type": trim(w.WarningType),
		"subject":      trim(w.Subject),
		"warning_date": date(w.WarningDate),
		"description":  w.Description,
	}
}

type WarningView struct {
	RecordView
	AttachmentView
	WarningType string `json:"warning_type"`
	Subject     string `json:"subject"`
	WarningDate string `json:"warning_date"`
	Description string `json:"description"`
}

func WarningConvert(rec dbmodels.Warning) WarningView {
	return WarningView{
		RecordView:     RecordConvert(models.WarningKind, rec.BaseModel, rec.EmployeeRef, rec.Workflow),
		AttachmentView: AttachmentConvert(rec.Attachment),
		WarningType:    rec.WarningType,
		Subject:        rec.Subject,
		WarningDate:    apimodels.FormatDate(rec.WarningDate),
		Description:    rec.Description,
	}
}

var WarningExportHeaders = []string{"Сотрудник", "Таб. номер", "Вид", "Тема", "Дата", "Статус"}

func WarningExportRow(rec dbmodels.Warning) []interface{} {
	return []interface{}{
		rec.GetEmployeeName(), employeeIDNo(rec.EmployeeRef), rec.WarningType, rec.Subject,
		apimodels.FormatDate(rec.WarningDate), rec.Status.ToHuman(),
	}
}
