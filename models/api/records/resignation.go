package recordapimodels

import (
	"hr-records-backend/models"
	apimodels "hr-records-backend/models/api"
	dbmodels "hr-records-backend/models/db"
)

type ResignationData struct {
	EmployeeID      string `json:"employee_id" form:"employee_id" validate:"required"`
	NoticeDate      string `json:"notice_date" form:"notice_date" validate:"required"`
	ResignationDate string `json:"resignation_date" form:"resignation_date" validate:"required"`
	Reason          string `json:"reason" form:"reason" validate:"max=5000"`
}

func (r ResignationData) GetEmployeeID() string {
	return r.EmployeeID
}

func (r ResignationData) Validate() apimodels.ValidationErrors {
	errs := apimodels.ValidateStruct(r)
	noticeDate := errs.CheckDate("notice_date", r.NoticeDate, false)
	resignationDate := errs.CheckDate("resignation_date", r.ResignationDate, false)
	if noticeDate != nil && resignationDate != nil && resignationDate.Before(*noticeDate) {
		errs.Add("resignation_date", "дата увольнения раньше даты уведомления")
	}
	return errs
}

func (r ResignationData) ToDB(userID, attachmentPath string) *dbmodels.Resignation {
	return &dbmodels.Resignation{
		EmployeeRef:     dbmodels.EmployeeRef{EmployeeID: r.EmployeeID},
		Workflow:        dbmodels.NewWorkflow(userID),
		Attachment:      dbmodels.Attachment{AttachmentPath: attachmentPath},
		NoticeDate:      date(r.NoticeDate),
		ResignationDate: date(r.ResignationDate),
		Reason:          r.Reason,
	}
}

func (r ResignationData) UpdMap() map[string]interface{} {
	return map[string]interface{}{
		"employee_id":      r.EmployeeID,
		"notice_date":      date(r.NoticeDate),
		"resignation_date": date(r.ResignationDate),
		"reason":           r.Reason,
	}
}

type ResignationView struct {
	RecordView
	AttachmentView
	NoticeDate      string `json:"notice_date"`
	ResignationDate string `json:"resignation_date"`
	Reason          string `json:"reason"`
}

func ResignationConvert(rec dbmodels.Resignation) ResignationView {
	return ResignationView{
		RecordView:      RecordConvert(models.ResignationKind, rec.BaseModel, rec.EmployeeRef, rec.Workflow),
		AttachmentView:  AttachmentConvert(rec.Attachment),
		NoticeDate:      apimodels.FormatDate(rec.NoticeDate),
		ResignationDate: apimodels.FormatDate(rec.ResignationDate),
		Reason:          rec.Reason,
	}
}

var ResignationExportHeaders = []string{"Сотрудник", "Таб. номер", "Дата уведомления", "Дата увольнения", "Причина", "Статус"}

func ResignationExportRow(rec dbmodels.Resignation) []interface{} {
	return []interface{}{
		rec.GetEmployeeName(), employeeIDNo(rec.EmployeeRef), apimodels.FormatDate(rec.NoticeDate),
		apimodels.FormatDate(rec.ResignationDate), rec.Reason, rec.Status.ToHuman(),
	}
}
