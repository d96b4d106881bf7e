package recordapimodels

import (
	"hr-records-backend/models"
	apimodels "hr-records-backend/models/api"
	dbmodels "hr-records-backend/models/db"
)

type TerminationData struct {
	EmployeeID      string `json:"employee_id" form:"employee_id" validate:"required"`
	TerminationType string `json:"termination_type" form:"termination_type" validate:"required,max=100"`
	NoticeDate      string `json:"notice_date" form:"notice_date"`
	TerminationDate string `json:"termination_date" form:"termination_date" validate:"required"`
	Reason          string `json:"reason" form:"reason" validate:"required,max=5000"`
}

func (t TerminationData) GetEmployeeID() string {
	return t.EmployeeID
}

func (t TerminationData) Validate() apimodels.ValidationErrors {
	errs := apimodels.ValidateStruct(t)
	noticeDate := errs.CheckDate("notice_date", t.NoticeDate, false)
	terminationDate := errs.CheckDate("termination_date", t.TerminationDate, false)
	if noticeDate != nil && terminationDate != nil && terminationDate.Before(*noticeDate) {
		errs.Add("termination_date", "дата увольнения раньше даты уведомления")
	}
	return errs
}

func (t TerminationData) ToDB(userID, attachmentPath string) *dbmodels.Termination {
	return &dbmodels.Termination{
		EmployeeRef:     dbmodels.EmployeeRef{EmployeeID: t.EmployeeID},
		Workflow:        dbmodels.NewWorkflow(userID),
		Attachment:      dbmodels.Attachment{AttachmentPath: attachmentPath},
		TerminationType: trim(t.TerminationType),
		NoticeDate:      date(t.NoticeDate),
		TerminationDate: date(t.TerminationDate),
		Reason:          t.Reason,
	}
}

func (t TerminationData) UpdMap() map[string]interface{} {
	return map[string]interface{}{
		"employee_id":      t.EmployeeID,
		"termination_type": trim(t.TerminationType),
		"notice_date":      date(t.NoticeDate),
		"termination_date": date(t.TerminationDate),
		"reason":           t.Reason,
	}
}

type TerminationView struct {
	RecordView
	AttachmentView
	TerminationType string `json:"termination_type"`
	NoticeDate      string `json:"notice_date"`
	TerminationDate string `json:"termination_date"`
	Reason          string `json:"reason"`
}

func TerminationConvert(rec dbmodels.Termination) TerminationView {
	return TerminationView{
		RecordView:      RecordConvert(models.TerminationKind, rec.BaseModel, rec.EmployeeRef, rec.Workflow),
		AttachmentView:  AttachmentConvert(rec.Attachment),
		TerminationType: rec.TerminationType,
		NoticeDate:      apimodels.FormatDate(rec.NoticeDate),
		TerminationDate: apimodels.FormatDate(rec.TerminationDate),
		Reason:          rec.Reason,
	}
}

var TerminationExportHeaders = []string{"Сотрудник", "Таб. номер", "Основание", "Дата уведомления", "Дата увольнения", "Причина", "Статус"}

func TerminationExportRow(rec dbmodels.Termination) []interface{} {
	return []interface{}{
		rec.GetEmployeeName(), employeeIDNo(rec.EmployeeRef), rec.TerminationType, apimodels.FormatDate(rec.NoticeDate),
		apimodels.FormatDate(rec.TerminationDate), rec.Reason, rec.Status.ToHuman(),
	}
}
