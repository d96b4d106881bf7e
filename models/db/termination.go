package dbmodels

import (
	"time"

	"hr-records-backend/models"
)

type Termination struct {
	BaseModel
	EmployeeRef
	Workflow
	Attachment
	TerminationType string    `gorm:"type:varchar(100);index"`
	NoticeDate      time.Time `gorm:"type:date"`
	TerminationDate time.Time `gorm:"type:date;index"`
	Reason          string    `gorm:"type:text"`
}

func (Termination) Kind() models.RecordKind {
	return models.TerminationKind
}
