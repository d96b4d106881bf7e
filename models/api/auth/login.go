package authapimodels

import (
	"strings"

	"hr-records-backend/models"
	apimodels "hr-records-backend/models/api"
	dbmodels "hr-records-backend/models/db"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

func (r LoginRequest) Validate() error {
	return apimodels.ValidateStruct(r).OrNil()
}

// MeView текущий пользователь
type MeView struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	FullName   string `json:"full_name"`
	Role       string `json:"role"`
	RoleName   string `json:"role_name"`
	EmployeeID string `json:"employee_id,omitempty"`

	Permissions map[models.Module][]models.Permission `json:"permissions"` // доступные действия по разделам
}

func MeConvert(rec dbmodels.User) MeView {
	result := MeView{
		ID:        rec.ID,
		Email:     rec.Email,
		FirstName: rec.FirstName,
		LastName:  rec.LastName,
		FullName:  rec.GetFullName(),
		Role:      string(rec.Role),
		RoleName:  rec.Role.ToHuman(),
	}
	if rec.EmployeeID != nil {
		result.EmployeeID = *rec.EmployeeID
	}
	return result
}
