package dbmodels

import "hr-records-backend/models"

type StatusHistory struct {
	BaseModel
	RecordKind  models.RecordKind   `gorm:"type:varchar(50);index:idx_record"`
	RecordID    string              `gorm:"type:varchar(36);index:idx_record"`
	FromStatus  models.RecordStatus `gorm:"type:varchar(20)"`
	ToStatus    models.RecordStatus `gorm:"type:varchar(20)"`
	Remarks     string              `gorm:"type:text"`
	ChangedByID *string             `gorm:"type:varchar(36)"`
	ChangedBy   *User               `gorm:"foreignKey:ChangedByID"`
}
