package departmentstore

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "hr-records-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Department) (id string, err error)
	GetByID(id string) (rec *dbmodels.Department, err error)
	FindByName(name string) (rec *dbmodels.Department, err error)
	List(search string) (list []dbmodels.Department, err error)
	Update(id string, updMap map[string]interface{}) error
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

func (i impl) Create(rec dbmodels.Department) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (rec *dbmodels.Department, err error) {
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

func (i impl) FindByName(name string) (rec *dbmodels.Department, err error) {
	err = i.db.
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

func (i impl) List(search string) (list []dbmodels.Department, err error) {
	list = []dbmodels.Department{}
	tx := i.db.Model(&dbmodels.Department{})
	if search = strings.TrimSpace(search); search != "" {
		tx = tx.Where("LOWER(name) like ?", "%"+strings.ToLower(search)+"%")
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

func (i impl) Update(id string, updMap map[string]interface{}) error {
	tx := i.db.
		Model(&dbmodels.Department{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return dbmodels.ErrNotFound
	}
	return nil
}

func (i impl) Delete(id string) error {
	tx := i.db.
		Where("id = ?", id).
		Delete(&dbmodels.Department{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return dbmodels.ErrNotFound
	}
	return nil
}

// InUse на подразделение ссылаются сотрудники, линии или переводы
func (i impl) InUse(id string) (bool, error) {
	checks := []struct {
		model interface{}
		where string
	}{
		{&dbmodels.Employee{}, "department_id = ?"},
		{&dbmodels.Line{}, "department_id = ?"},
		{&dbmodels.Transfer{}, "from_department_id = @id or to_department_id = @id"},
	}
	for _, check := range checks {
		var count int64
		tx := i.db.Model(check.model)
		if strings.Contains(check.where, "@id") {
			tx = tx.Where(check.where, map[string]interface{}{"id": id})
		} else {
			tx = tx.Where(check.where, id)
		}
		if err := tx.Count(&count).Error; err != nil {
			return false, err
		}
		if count > 0 {
			return true, nil
		}
	}
	return false, nil
}
