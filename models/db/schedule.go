package dbmodels

import (
	"time"

	"hr-records-backend/models"
)

type Schedule struct {
	BaseModel
	EmployeeRef
	Title        string    `gorm:"type:varchar(255);not null"`
	ScheduleType string    `gorm:"type:varchar(50);index"`
	ScheduleDate time.Time `gorm:"type:date;index"`
	StartTime    string    `gorm:"type:varchar(5)"` // HH:MM
	EndTime      string    `gorm:"type:varchar(5)"` // HH:MM
	Location     string    `gorm:"type:varchar(255)"`
	Notes        string    `gorm:"type:text"`
	CreatedByID  string    `gorm:"type:varchar(36)"`
}

func (Schedule) Kind() models.RecordKind {
	return models.ScheduleKind
}
