package dbmodels

import (
	"time"

	"hr-records-backend/models"
)

type TravelOrder struct {
	BaseModel
	EmployeeRef
	Workflow
	Attachment
	Destination    string    `gorm:"type:varchar(255);not null"`
	Purpose        string    `gorm:"type:text"`
	DateFrom       time.Time `gorm:"type:date;index"`
	DateTo         time.Time `gorm:"type:date"`
	Transportation string    `gorm:"type:varchar(100)"`
	EstimatedCost  float64   `gorm:"type:decimal(12,2)"`
	Companions     StringArray
}

func (TravelOrder) Kind() models.RecordKind {
	return models.TravelOrderKind
}

func (t TravelOrder) Days() int {
	return int(t.DateTo.Sub(t.DateFrom).Hours()/24) + 1
}
