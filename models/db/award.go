package dbmodels

import (
	"time"

	"hr-records-backend/models"
)

type Award struct {
	BaseModel
	EmployeeRef
	Workflow
	Attachment
	AwardType   string    `gorm:"type:varchar(100);index"`
	Gift        string    `gorm:"type:varchar(255)"`
	CashPrice   float64   `gorm:"type:decimal(12,2)"`
	AwardDate   time.Time `gorm:"type:date;index"`
	Description string    `gorm:"type:text"`
}

func (Award) Kind() models.RecordKind {
	return models.AwardKind
}
