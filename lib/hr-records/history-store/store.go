package historystore

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"hr-records-backend/models"
	dbmodels "hr-records-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.StatusHistory) (id string, err error)
	List(kind models.RecordKind, recordID string) ([]dbmodels.StatusHistory, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.StatusHistory) (id string, err error) {
	err = i.db.
		Omit(clause.Associations).
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) List(kind models.RecordKind, recordID string) (list []dbmodels.StatusHistory, err error) {
	list = []dbmodels.StatusHistory{}
	err = i.db.
		Where("record_kind = ?", kind).
		Where("record_id = ?", recordID).
		Preload("ChangedBy").
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
