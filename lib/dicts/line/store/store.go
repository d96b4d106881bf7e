package linestore

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "hr-records-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Line) (id string, err error)
	GetByID(id string) (rec *dbmodels.Line, err error)
	FindByName(departmentID, name string) (rec *dbmodels.Line, err error)
	List(departmentID string) (list []dbmodels.Line, err error)
	Delete(id string) error
	InUse(id string) (bool, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Line) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (rec *dbmodels.Line, err error) {
	err = i.db.
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

func (i impl) FindByName(departmentID, name string) (rec *dbmodels.Line, err error) {
	err = i.db.
		Where("department_id = ?", departmentID).
		Where("LOWER(name) = LOWER(?)", strings.TrimSpace(name)).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

func (i impl) List(departmentID string) (list []dbmodels.Line, err error) {
	list = []dbmodels.Line{}
	tx := i.db.Model(&dbmodels.Line{})
	if departmentID != "" {
		tx = tx.Where("department_id = ?", departmentID)
	}
	err = tx.
		Order("name").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Delete(id string) error {
	tx := i.db.
		Where("id = ?", id).
		Delete(&dbmodels.Line{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return dbmodels.ErrNotFound
	}
	return nil
}

func (i impl) InUse(id string) (bool, error) {
	var count int64
	err := i.db.
		Model(&dbmodels.Employee{}).
		Where("line_id = ?", id).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}
	if count > 0 {
		return true, nil
	}
	err = i.db.
		Model(&dbmodels.Transfer{}).
		Where("from_line_id = @id or to_line_id = @id", map[string]interface{}{"id": id}).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
