package recordapimodels

import (
	"strings"

	"hr-records-backend/models"
	apimodels "hr-records-backend/models/api"
	dbmodels "hr-records-backend/models/db"
)

type TravelOrderData struct {
	EmployeeID     string   `json:"employee_id" form:"employee_id" validate:"required"`
	Destination    string   `json:"destination" form:"destination" validate:"required,max=255"`
	Purpose        string   `json:"purpose" form:"purpose" validate:"required,max=5000"`
	DateFrom       string   `json:"date_from" form:"date_from" validate:"required"`
	DateTo         string   `json:"date_to" form:"date_to" validate:"required"`
	Transportation string   `json:"transportation" form:"transportation" validate:"max=100"`
	EstimatedCost  float64  `json:"estimated_cost" form:"estimated_cost" validate:"gte=0"`
	Companions     []string `json:"companions" form:"companions" validate:"max=20,dive,max=255"`
}

func (t TravelOrderData) GetEmployeeID() string {
	return t.EmployeeID
}

func (t TravelOrderData) Validate() apimodels.ValidationErrors {
	errs := apimodels.ValidateStruct(t)
	dateFrom := errs.CheckDate("date_from", t.DateFrom, false)
	dateTo := errs.CheckDate("date_to", t.DateTo, false)
	if dateFrom != nil && dateTo != nil && dateTo.Before(*dateFrom) {
		errs.Add("date_to", "дата возвращения раньше даты отъезда")
	}
	return errs
}

func (t TravelOrderData) companions() []string {
	result := []string{}
	for _, companion := range t.Companions {
		if companion = strings.TrimSpace(companion); companion != "" {
			result = append(result, companion)
		}
	}
	return result
}

func (t TravelOrderData) ToDB(userID, attachmentPath string) *dbmodels.TravelOrder {
	return &dbmodels.TravelOrder{
		EmployeeRef:    dbmodels.EmployeeRef{EmployeeID: t.EmployeeID},
		Workflow:       dbmodels.NewWorkflow(userID),
		Attachment:     dbmodels.Attachment{AttachmentPath: attachmentPath},
		Destination:    trim(t.Destination),
		Purpose:        t.Purpose,
		DateFrom:       date(t.DateFrom),
		DateTo:         date(t.DateTo),
		Transportation: trim(t.Transportation),
		EstimatedCost:  t.EstimatedCost,
		Companions:     t.companions(),
	}
}

func (t TravelOrderData) UpdMap() map[string]interface{} {
	return map[string]interface{}{
		"employee_id":    t.EmployeeID,
		"destination":    trim(t.Destination),
		"purpose":        t.Purpose,
		"date_from":      date(t.DateFrom),
		"date_to":        date(t.DateTo),
		"transportation": trim(t.Transportation),
		"estimated_cost": t.EstimatedCost,
		"companions":     stringArray(t.companions()),
	}
}

type TravelOrderView struct {
	RecordView
	AttachmentView
	Destination    string   `json:"destination"`
	Purpose        string   `json:"purpose"`
	DateFrom       string   `json:"date_from"`
	DateTo         string   `json:"date_to"`
	Days           int      `json:"days"`
	Transportation string   `json:"transportation"`
	EstimatedCost  float64  `json:"estimated_cost"`
	Companions     []string `json:"companions"`
}

func TravelOrderConvert(rec dbmodels.TravelOrder) TravelOrderView {
	companions := []string(rec.Companions)
	if companions == nil {
		companions = []string{}
	}
	return TravelOrderView{
		RecordView:     RecordConvert(models.TravelOrderKind, rec.BaseModel, rec.EmployeeRef, rec.Workflow),
		AttachmentView: AttachmentConvert(rec.Attachment),
		Destination:    rec.Destination,
		Purpose:        rec.Purpose,
		DateFrom:       apimodels.FormatDate(rec.DateFrom),
		DateTo:         apimodels.FormatDate(rec.DateTo),
		Days:           rec.Days(),
		Transportation: rec.Transportation,
		EstimatedCost:  rec.EstimatedCost,
		Companions:     companions,
	}
}

var TravelOrderExportHeaders = []string{"Сотрудник", "Таб. номер", "Место назначения", "Цель", "Дата отъезда", "Дата возвращения", "Дней", "Смета", "Статус"}

func TravelOrderExportRow(rec dbmodels.TravelOrder) []interface{} {
	return []interface{}{
		rec.GetEmployeeName(), employeeIDNo(rec.EmployeeRef), rec.Destination, rec.Purpose,
		apimodels.FormatDate(rec.DateFrom), apimodels.FormatDate(rec.DateTo), rec.Days(), rec.EstimatedCost, rec.Status.ToHuman(),
	}
}
