package dictapimodels

import (
	apimodels "hr-records-backend/models/api"
	dbmodels "hr-records-backend/models/db"
)

type DepartmentData struct {
	Name string `json:"name" validate:"required,max=255"`
}

func (d DepartmentData) Validate() error {
	return apimodels.ValidateStruct(d).OrNil()
}

type DepartmentView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func DepartmentConvert(rec dbmodels.Department) DepartmentView {
	return DepartmentView{
		ID:   rec.ID,
		Name: rec.Name,
	}
}

type LineData struct {
	DepartmentID string `json:"department_id" validate:"required"`
	Name         string `json:"name" validate:"required,max=255"`
}

func (l LineData) Validate() error {
	return apimodels.ValidateStruct(l).OrNil()
}

type LineView struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	DepartmentID string `json:"department_id"`
}

func LineConvert(rec dbmodels.Line) LineView {
	return LineView{
		ID:           rec.ID,
		Name:         rec.Name,
		DepartmentID: rec.DepartmentID,
	}
}
