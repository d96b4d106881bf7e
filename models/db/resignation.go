package dbmodels

import (
	"time"

	"hr-records-backend/models"
)

type Resignation struct {
	BaseModel
	EmployeeRef
	Workflow
	Attachment
	NoticeDate      time.Time `gorm:"type:date"`
	ResignationDate time.Time `gorm:"type:date;index"`
	Reason          string    `gorm:"type:text"`
}

func (Resignation) Kind() models.RecordKind {
	return models.ResignationKind
}
