package recordapimodels

import (
	"strings"
	"time"

	"hr-records-backend/models"
	apimodels "hr-records-backend/models/api"
	dictapimodels "hr-records-backend/models/api/dict"
	employeeapimodels "hr-records-backend/models/api/employee"
	dbmodels "hr-records-backend/models/db"
)

type RecordFilter struct {
	apimodels.Pagination
	Search     string `query:"search"`
	Status     string `query:"status"`
	Type       string `query:"type"`
	EmployeeID string `query:"employee_id"`
	DateFrom   string `query:"date_from"`
	DateTo     string `query:"date_to"`
}

func (f RecordFilter) Validate() apimodels.ValidationErrors {
	errs := apimodels.ValidationErrors{}
	dateFrom := errs.CheckDate("date_from", f.DateFrom, false)
	dateTo := errs.CheckDate("date_to", f.DateTo, false)
	if dateFrom != nil && dateTo != nil && dateTo.Before(*dateFrom) {
		errs.Add("date_to", "дата окончания периода раньше даты начала")
	}
	return errs
}

// ToDB без page и limit возвращается весь список
func (f RecordFilter) ToDB() dbmodels.RecordFilter {
	dateFrom, _ := apimodels.ParseDate(f.DateFrom)
	dateTo, _ := apimodels.ParseDate(f.DateTo)
	result := dbmodels.RecordFilter{
		Search:     strings.TrimSpace(f.Search),
		Status:     models.RecordStatus(strings.TrimSpace(f.Status)),
		Type:       strings.TrimSpace(f.Type),
		EmployeeID: f.EmployeeID,
		DateFrom:   dateFrom,
		DateTo:     dateTo,
	}
	if f.Page > 0 || f.Limit > 0 {
		result.Page, result.Limit = f.GetPage()
	}
	return result
}

type StatusChangeRequest struct {
	Status  string `json:"status" form:"status" validate:"required"`
	Remarks string `json:"remarks" form:"remarks" validate:"max=2000"`
}

func (s StatusChangeRequest) Validate() apimodels.ValidationErrors {
	return apimodels.ValidateStruct(s)
}

type WorkflowView struct {
	Status       models.RecordStatus   `json:"status"`
	StatusName   string                `json:"status_name"`
	ApprovedByID string                `json:"approved_by_id,omitempty"`
	ApprovedBy   string                `json:"approved_by,omitempty"`
	ApprovedAt   string                `json:"approved_at,omitempty"`
	Remarks      string                `json:"remarks"`
	CreatedByID  string                `json:"created_by_id"`
	Editable     bool                  `json:"editable"`      // правка и удаление доступны
	NextStatuses []models.RecordStatus `json:"next_statuses"` // доступные решения
}

func WorkflowConvert(kind models.RecordKind, rec dbmodels.Workflow) WorkflowView {
	result := WorkflowView{
		Status:       rec.Status,
		StatusName:   rec.Status.ToHuman(),
		ApprovedBy:   rec.GetApprovedByName(),
		Remarks:      rec.Remarks,
		CreatedByID:  rec.CreatedByID,
		Editable:     rec.Status.IsEditable(),
		NextStatuses: kind.StatusFlow()[rec.Status],
	}
	if result.NextStatuses == nil {
		result.NextStatuses = []models.RecordStatus{}
	}
	if rec.ApprovedByID != nil {
		result.ApprovedByID = *rec.ApprovedByID
	}
	if rec.ApprovedAt != nil {
		result.ApprovedAt = rec.ApprovedAt.Format("2006-01-02 15:04:05")
	}
	return result
}

type RecordView struct {
	ID         string                           `json:"id"`
	EmployeeID string                           `json:"employee_id"`
	Employee   *employeeapimodels.EmployeeShort `json:"employee,omitempty"`
	CreatedAt  string                           `json:"created_at"`
	WorkflowView
}

func RecordConvert(kind models.RecordKind, base dbmodels.BaseModel, ref dbmodels.EmployeeRef, wf dbmodels.Workflow) RecordView {
	result := RecordView{
		ID:           base.ID,
		EmployeeID:   ref.EmployeeID,
		CreatedAt:    base.CreatedAt.Format("2006-01-02 15:04:05"),
		WorkflowView: WorkflowConvert(kind, wf),
	}
	if ref.Employee != nil {
		employee := employeeapimodels.EmployeeShortConvert(*ref.Employee)
		result.Employee = &employee
	}
	return result
}

type AttachmentView struct {
	AttachmentPath string `json:"attachment_path,omitempty"`
	AttachmentURL  string `json:"attachment_url,omitempty"`
}

func AttachmentConvert(rec dbmodels.Attachment) AttachmentView {
	return AttachmentView{
		AttachmentPath: rec.AttachmentPath,
		AttachmentURL:  apimodels.FileURL(rec.AttachmentPath),
	}
}

type StatusHistoryView struct {
	ID             string `json:"id"`
	FromStatus     string `json:"from_status"`
	FromStatusName string `json:"from_status_name"`
	ToStatus       string `json:"to_status"`
	ToStatusName   string `json:"to_status_name"`
	Remarks        string `json:"remarks"`
	ChangedBy      string `json:"changed_by"`
	ChangedAt      string `json:"changed_at"`
}

func StatusHistoryConvert(rec dbmodels.StatusHistory) StatusHistoryView {
	result := StatusHistoryView{
		ID:             rec.ID,
		FromStatus:     string(rec.FromStatus),
		FromStatusName: rec.FromStatus.ToHuman(),
		ToStatus:       string(rec.ToStatus),
		ToStatusName:   rec.ToStatus.ToHuman(),
		Remarks:        rec.Remarks,
		ChangedBy:      models.SystemUser,
		ChangedAt:      rec.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if rec.ChangedBy != nil {
		result.ChangedBy = rec.ChangedBy.GetFullName()
	}
	return result
}

// PageData данные страницы раздела: записи, сотрудники и справочники
type PageData struct {
	Records     interface{}                       `json:"records"`
	RowCount    int64                             `json:"row_count"`
	Employees   []employeeapimodels.EmployeeShort `json:"employees"`
	Departments []dictapimodels.DepartmentView    `json:"departments,omitempty"`
	Lines       []dictapimodels.LineView          `json:"lines,omitempty"`
	Degraded    []string                          `json:"degraded,omitempty"`
	Notice      string                            `json:"notice,omitempty"`
}

// TravelOrderListResponse список командировок отдается под ключом travelOrders
type TravelOrderListResponse struct {
	Status       string      `json:"status"`
	TravelOrders interface{} `json:"travelOrders"`
	RowCount     int64       `json:"row_count"`
}

func trim(value string) string {
	return strings.TrimSpace(value)
}

func optional(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}

func date(value string) time.Time {
	t, _ := apimodels.ParseDate(value)
	if t == nil {
		return time.Time{}
	}
	return *t
}

func employeeIDNo(ref dbmodels.EmployeeRef) string {
	if ref.Employee == nil {
		return ""
	}
	return ref.Employee.IDNo
}

func stringArray(list []string) dbmodels.StringArray {
	return dbmodels.StringArray(list)
}
