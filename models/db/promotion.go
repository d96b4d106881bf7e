package dbmodels

import (
	"time"

	"hr-records-backend/models"
)

type Promotion struct {
	BaseModel
	EmployeeRef
	Workflow
	PreviousPosition string    `gorm:"type:varchar(255)"`
	NewPosition      string    `gorm:"type:varchar(255);not null"`
	PreviousSalary   float64   `gorm:"type:decimal(12,2)"`
	NewSalary        float64   `gorm:"type:decimal(12,2)"`
	PromotionDate    time.Time `gorm:"type:date;index"`
	Reason           string    `gorm:"type:text"`
}

func (Promotion) Kind() models.RecordKind {
	return models.PromotionKind
}

// PreparedFields поля, заполняемые по карточке сотрудника
func (p Promotion) PreparedFields() map[string]interface{} {
	return map[string]interface{}{
		"previous_position": p.PreviousPosition,
		"previous_salary":   p.PreviousSalary,
	}
}
