package dbmodels

import (
	"time"

	"hr-records-backend/models"
)

type Warning struct {
	BaseModel
	EmployeeRef
	Workflow
	Attachment
	WarningType string    `gorm:"type:varchar(100);index"`
	Subject     string    `gorm:"type:varchar(255);not null"`
	WarningDate time.Time `gorm:"type:date;index"`
	Description string    `gorm:"type:text"`
}

func (Warning) Kind() models.RecordKind {
	return models.WarningKind
}
