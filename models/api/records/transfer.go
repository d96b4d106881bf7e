package recordapimodels

import (
	"hr-records-backend/models"
	apimodels "hr-records-backend/models/api"
	dbmodels "hr-records-backend/models/db"
)

type TransferData struct {
	EmployeeID       string `json:"employee_id" form:"employee_id" validate:"required"`
	FromDepartmentID string `json:"from_department_id" form:"from_department_id"` // по умолчанию текущее подразделение сотрудника
	ToDepartmentID   string `json:"to_department_id" form:"to_department_id" validate:"required"`
	FromLineID       string `json:"from_line_id" form:"from_line_id"`
	ToLineID         string `json:"to_line_id" form:"to_line_id"`
	TransferDate     string `json:"transfer_date" form:"transfer_date" validate:"required"`
	Reason           string `json:"reason" form:"reason" validate:"max=5000"`
}

func (t TransferData) GetEmployeeID() string {
	return t.EmployeeID
}

func (t TransferData) Validate() apimodels.ValidationErrors {
	errs := apimodels.ValidateStruct(t)
	errs.CheckDate("transfer_date", t.TransferDate, false)
	return errs
}

func (t TransferData) ToDB(userID, _ string) *dbmodels.Transfer {
	return &dbmodels.Transfer{
		EmployeeRef:      dbmodels.EmployeeRef{EmployeeID: t.EmployeeID},
		Workflow:         dbmodels.NewWorkflow(userID),
		FromDepartmentID: t.FromDepartmentID,
		ToDepartmentID:   t.ToDepartmentID,
		FromLineID:       optional(t.FromLineID),
		ToLineID:         optional(t.ToLineID),
		TransferDate:     date(t.TransferDate),
		Reason:           t.Reason,
	}
}

func (t TransferData) UpdMap() map[string]interface{} {
	updMap := map[string]interface{}{
		"employee_id":      t.EmployeeID,
		"to_department_id": t.ToDepartmentID,
		"from_line_id":     optional(t.FromLineID),
		"to_line_id":       optional(t.ToLineID),
		"transfer_date":    date(t.TransferDate),
		"reason":           t.Reason,
	}
	if t.FromDepartmentID != "" {
		updMap["from_department_id"] = t.FromDepartmentID
	}
	return updMap
}

type TransferView struct {
	RecordView
	FromDepartmentID   string `json:"from_department_id"`
	FromDepartmentName string `json:"from_department_name"`
	ToDepartmentID     string `json:"to_department_id"`
	ToDepartmentName   string `json:"to_department_name"`
	FromLineID         string `json:"from_line_id"`
	FromLineName       string `json:"from_line_name"`
	ToLineID           string `json:"to_line_id"`
	ToLineName         string `json:"to_line_name"`
	TransferDate       string `json:"transfer_date"`
	Reason             string `json:"reason"`
}

func TransferConvert(rec dbmodels.Transfer) TransferView {
	result := TransferView{
		RecordView:       RecordConvert(models.TransferKind, rec.BaseModel, rec.EmployeeRef, rec.Workflow),
		FromDepartmentID: rec.FromDepartmentID,
		ToDepartmentID:   rec.ToDepartmentID,
		TransferDate:     apimodels.FormatDate(rec.TransferDate),
		Reason:           rec.Reason,
	}
	if rec.FromDepartment != nil {
		result.FromDepartmentName = rec.FromDepartment.Name
	}
	if rec.ToDepartment != nil {
		result.ToDepartmentName = rec.ToDepartment.Name
	}
	if rec.FromLineID != nil {
		result.FromLineID = *rec.FromLineID
	}
	if rec.FromLine != nil {
		result.FromLineName = rec.FromLine.Name
	}
	if rec.ToLineID != nil {
		result.ToLineID = *rec.ToLineID
	}
	if rec.ToLine != nil {
		result.ToLineName = rec.ToLine.Name
	}
	return result
}

var TransferExportHeaders = []string{"Сотрудник", "Таб. номер", "Из подразделения", "В подразделение", "Из линии", "В линию", "Дата", "Статус"}

func TransferExportRow(rec dbmodels.Transfer) []interface{} {
	view := TransferConvert(rec)
	return []interface{}{
		rec.GetEmployeeName(), employeeIDNo(rec.EmployeeRef), view.FromDepartmentName, view.ToDepartmentName,
		view.FromLineName, view.ToLineName, view.TransferDate, rec.Status.ToHuman(),
	}
}
