package employeeapimodels

import (
	"encoding/json"
	"strings"

	employeematcher "hr-records-backend/lib/employee-matcher"
	apimodels "hr-records-backend/models/api"
	dbmodels "hr-records-backend/models/db"
)

type EmployeeFilter struct {
	Search       string `query:"search"`
	ActiveOnly   bool   `query:"active_only"`
	DepartmentID string `query:"department_id"`
	LineID       string `query:"line_id"`
}

func (f EmployeeFilter) ToDB() dbmodels.EmployeeFilter {
	return dbmodels.EmployeeFilter{
		Search:       f.Search,
		ActiveOnly:   f.ActiveOnly,
		DepartmentID: f.DepartmentID,
		LineID:       f.LineID,
	}
}

type EmployeeData struct {
	IDNo         string  `json:"idno" form:"idno" validate:"required,max=50"`
	FirstName    string  `json:"first_name" form:"first_name" validate:"required,max=150"`
	LastName     string  `json:"last_name" form:"last_name" validate:"required,max=150"`
	MiddleName   string  `json:"middle_name" form:"middle_name" validate:"max=150"`
	Email        string  `json:"email" form:"email" validate:"omitempty,email,max=255"`
	Phone        string  `json:"phone" form:"phone" validate:"max=30"`
	Position     string  `json:"position" form:"position" validate:"max=255"`
	Salary       float64 `json:"salary" form:"salary" validate:"gte=0"`
	DepartmentID string  `json:"department_id" form:"department_id"`
	LineID       string  `json:"line_id" form:"line_id"`
	HireDate     string  `json:"hire_date" form:"hire_date"`
	IsActive     *bool   `json:"is_active" form:"is_active"`
}

func (e *EmployeeData) Normalize() {
	e.IDNo = strings.TrimSpace(e.IDNo)
	e.FirstName = strings.TrimSpace(e.FirstName)
	e.LastName = strings.TrimSpace(e.LastName)
}

func (e EmployeeData) Validate() apimodels.ValidationErrors {
	errs := apimodels.ValidateStruct(e)
	errs.CheckDate("hire_date", e.HireDate, false)
	return errs
}

func (e EmployeeData) isActive() bool {
	return e.IsActive == nil || *e.IsActive
}

func (e EmployeeData) ToDB() dbmodels.Employee {
	hireDate, _ := apimodels.ParseDate(e.HireDate)
	return dbmodels.Employee{
		IDNo:         e.IDNo,
		FirstName:    e.FirstName,
		LastName:     e.LastName,
		MiddleName:   e.MiddleName,
		Email:        e.Email,
		Phone:        e.Phone,
		Position:     e.Position,
		Salary:       e.Salary,
		DepartmentID: optional(e.DepartmentID),
		LineID:       optional(e.LineID),
		HireDate:     hireDate,
		IsActive:     e.isActive(),
	}
}

func (e EmployeeData) UpdMap() map[string]interface{} {
	hireDate, _ := apimodels.ParseDate(e.HireDate)
	return map[string]interface{}{
		"id_no":         e.IDNo,
		"first_name":    e.FirstName,
		"last_name":     e.LastName,
		"middle_name":   e.MiddleName,
		"email":         e.Email,
		"phone":         e.Phone,
		"position":      e.Position,
		"salary":        e.Salary,
		"department_id": optional(e.DepartmentID),
		"line_id":       optional(e.LineID),
		"hire_date":     hireDate,
		"is_active":     e.isActive(),
	}
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

type EmployeeView struct {
	ID             string  `json:"id"`
	IDNo           string  `json:"idno"`
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	MiddleName     string  `json:"middle_name"`
	FullName       string  `json:"full_name"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	Position       string  `json:"position"`
	Salary         float64 `json:"salary"`
	DepartmentID   string  `json:"department_id"`
	DepartmentName string  `json:"department_name"`
	LineID         string  `json:"line_id"`
	LineName       string  `json:"line_name"`
	HireDate       string  `json:"hire_date"`
	IsActive       bool    `json:"is_active"`
	PhotoURL       string  `json:"photo_url"`
	ThumbURL       string  `json:"thumb_url"`
}

func EmployeeConvert(rec dbmodels.Employee) EmployeeView {
	result := EmployeeView{
		ID:         rec.ID,
		IDNo:       rec.IDNo,
		FirstName:  rec.FirstName,
		LastName:   rec.LastName,
		MiddleName: rec.MiddleName,
		FullName:   rec.GetFullName(),
		Email:      rec.Email,
		Phone:      rec.Phone,
		Position:   rec.Position,
		Salary:     rec.Salary,
		HireDate:   apimodels.FormatDatePtr(rec.HireDate),
		IsActive:   rec.IsActive,
		PhotoURL:   apimodels.FileURL(rec.PhotoPath),
		ThumbURL:   apimodels.FileURL(rec.ThumbPath),
	}
	if rec.DepartmentID != nil {
		result.DepartmentID = *rec.DepartmentID
	}
	if rec.Department != nil {
		result.DepartmentName = rec.Department.Name
	}
	if rec.LineID != nil {
		result.LineID = *rec.LineID
	}
	if rec.Line != nil {
		result.LineName = rec.Line.Name
	}
	return result
}

// EmployeeShort сотрудник в списке выбора и в кадровой записи
type EmployeeShort struct {
	ID        string `json:"id"`
	IDNo      string `json:"idno"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	FullName  string `json:"full_name"`
	Label     string `json:"label"`
	Position  string `json:"position,omitempty"`
	IsActive  bool   `json:"is_active"`
}

func EmployeeShortConvert(rec dbmodels.Employee) EmployeeShort {
	return EmployeeShort{
		ID:        rec.ID,
		IDNo:      rec.IDNo,
		FirstName: rec.FirstName,
		LastName:  rec.LastName,
		FullName:  rec.GetFullName(),
		Label:     MatcherConvert(rec).Label(),
		Position:  rec.Position,
		IsActive:  rec.IsActive,
	}
}

func MatcherConvert(rec dbmodels.Employee) employeematcher.Employee {
	return employeematcher.Employee{
		ID:        rec.ID,
		FirstName: rec.FirstName,
		LastName:  rec.LastName,
		IDNo:      rec.IDNo,
	}
}

type MatchRequest struct {
	Query     string          `json:"query"`
	CurrentID string          `json:"current_id"`
	Roster    json.RawMessage `json:"roster" swaggertype:"array,object"`
}

type MatchResponse struct {
	Filtered   []employeematcher.Employee `json:"filtered"`
	SelectedID string                     `json:"selected_id"`
	Changed    bool                       `json:"changed"`
	NoMatches  bool                       `json:"no_matches"`
}

func MatchConvert(result employeematcher.Result) MatchResponse {
	return MatchResponse{
		Filtered:   result.Filtered,
		SelectedID: result.SelectedID,
		Changed:    result.Changed,
		NoMatches:  result.NoMatches(),
	}
}
