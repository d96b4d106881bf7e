package dbmodels

import "hr-records-backend/models"

// PushData уведомление для пользователя не в сети
type PushData struct {
	BaseModel
	UserID     string          `gorm:"type:varchar(36);index:idx_user"`
	Code       models.PushCode `gorm:"type:varchar(255)"`
	Msg        string
	Title      string
	RecordKind models.RecordKind `gorm:"type:varchar(50)"`
	RecordID   string            `gorm:"type:varchar(36)"`
}
