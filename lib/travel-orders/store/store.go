package travelorderstore

import (
	"time"

	"gorm.io/gorm"
	"hr-records-backend/models"
	dbmodels "hr-records-backend/models/db"
)

type Provider interface {
	// FinishedIDs согласованные командировки, закончившиеся до даты before
	FinishedIDs(before time.Time) ([]string, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) FinishedIDs(before time.Time) (ids []string, err error) {
	ids = []string{}
	err = i.db.
		Model(&dbmodels.TravelOrder{}).
		Where("status = ?", models.RecordStatusApproved).
		Where("date_to < ?", before).
		Order("date_to").
		Pluck("id", &ids).
		Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
