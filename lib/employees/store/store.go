package employeesstore

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	dbmodels "hr-records-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Employee) (string, error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	GetByID(id string) (*dbmodels.Employee, error)
	GetByIDNo(idNo string) (*dbmodels.Employee, error)
	List(filter dbmodels.EmployeeFilter) ([]dbmodels.Employee, error)
	HasRecords(id string) (bool, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Employee) (string, error) {
	err := i.db.
		Omit(clause.Associations).
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Employee{}).
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
		Delete(&dbmodels.Employee{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return dbmodels.ErrNotFound
	}
	return nil
}

func (i impl) GetByID(id string) (rec *dbmodels.Employee, err error) {
	err = i.db.
		Where("id = ?", id).
		Preload("Department").
		Preload("Line").
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

func (i impl) GetByIDNo(idNo string) (rec *dbmodels.Employee, err error) {
	err = i.db.
		Where("id_no = ?", idNo).
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

func (i impl) List(filter dbmodels.EmployeeFilter) (list []dbmodels.Employee, err error) {
	list = []dbmodels.Employee{}
	tx := i.db.
		Model(&dbmodels.Employee{}).
		Preload("Department").
		Preload("Line")
	if filter.ActiveOnly {
		tx = tx.Where("is_active = ?", true)
	}
	if filter.DepartmentID != "" {
		tx = tx.Where("department_id = ?", filter.DepartmentID)
	}
	if filter.LineID != "" {
		tx = tx.Where("line_id = ?", filter.LineID)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		tx = tx.Where("(LOWER(first_name) like @search or LOWER(last_name) like @search or LOWER(id_no) like @search"+
			" or LOWER(first_name || ' ' || last_name) like @search or LOWER(last_name || ' ' || first_name) like @search)",
			map[string]interface{}{"search": "%" + strings.ToLower(search) + "%"})
	}
	err = tx.
		Order("last_name").
		Order("first_name").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// HasRecords на сотрудника есть кадровые записи
func (i impl) HasRecords(id string) (bool, error) {
	models := []interface{}{
		&dbmodels.Award{}, &dbmodels.Promotion{}, &dbmodels.Resignation{}, &dbmodels.Termination{},
		&dbmodels.Transfer{}, &dbmodels.Warning{}, &dbmodels.TravelOrder{}, &dbmodels.Schedule{},
	}
	for _, model := range models {
		var count int64
		err := i.db.
			Model(model).
			Where("employee_id = ?", id).
			Count(&count).
			Error
		if err != nil {
			return false, err
		}
		if count > 0 {
			return true, nil
		}
	}
	return false, nil
}
