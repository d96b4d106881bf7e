package recordstore

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"hr-records-backend/models"
	dbmodels "hr-records-backend/models/db"
)

// Options отличия таблиц кадровых записей
type Options struct {
	DateColumn    string   // колонка для фильтра date_from/date_to и сортировки
	DateToColumn  string   // колонка окончания периода, если запись охватывает период
	TypeColumn    string   // колонка для фильтра type
	SearchColumns []string // текстовые колонки записи для поиска, дополнительно к данным сотрудника
	Preloads      []string
}

type Provider[T any] interface {
	Create(rec *T) (id string, err error)
	GetByID(id string) (*T, error)
	Update(id string, updMap map[string]interface{}) error
	UpdateOnStatus(id string, status models.RecordStatus, updMap map[string]interface{}) (updated bool, err error)
	Delete(id string) error
	DeleteOnStatus(id string, status models.RecordStatus) (deleted bool, err error)
	List(filter dbmodels.RecordFilter) ([]T, error)
	ListCount(filter dbmodels.RecordFilter) (int64, error)
}

func NewInstance[T any](DB *gorm.DB, opts Options) Provider[T] {
	return &impl[T]{
		db:    DB,
		opts:  opts,
		table: tableName[T](DB),
	}
}

type impl[T any] struct {
	db    *gorm.DB
	opts  Options
	table string
}

func tableName[T any](db *gorm.DB) string {
	stmt := &gorm.Statement{DB: db}
	if err := stmt.Parse(new(T)); err != nil {
		panic(errors.Wrap(err, "ошибка разбора модели кадровой записи"))
	}
	return stmt.Schema.Table
}

func (i impl[T]) column(name string) string {
	return i.table + "." + name
}

func (i impl[T]) Create(rec *T) (id string, err error) {
	err = i.db.
		Omit(clause.Associations).
		Create(rec).
		Error
	if err != nil {
		return "", err
	}
	if withID, ok := any(rec).(interface{ GetID() string }); ok {
		return withID.GetID(), nil
	}
	return "", nil
}

func (i impl[T]) GetByID(id string) (*T, error) {
	rec := new(T)
	tx := i.db.Where("id = ?", id)
	for _, preload := range i.preloads() {
		tx = tx.Preload(preload)
	}
	err := tx.First(rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

func (i impl[T]) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(new(T)).
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

// UpdateOnStatus обновление только если запись все еще в статусе status
func (i impl[T]) UpdateOnStatus(id string, status models.RecordStatus, updMap map[string]interface{}) (bool, error) {
	tx := i.db.
		Model(new(T)).
		Where("id = ?", id).
		Where("status = ?", status).
		Updates(updMap)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (i impl[T]) Delete(id string) error {
	tx := i.db.
		Where("id = ?", id).
		Delete(new(T))
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return dbmodels.ErrNotFound
	}
	return nil
}

func (i impl[T]) DeleteOnStatus(id string, status models.RecordStatus) (bool, error) {
	tx := i.db.
		Where("id = ?", id).
		Where("status = ?", status).
		Delete(new(T))
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (i impl[T]) List(filter dbmodels.RecordFilter) (list []T, err error) {
	list = []T{}
	tx := i.filtered(filter).
		Select(i.table + ".*")
	for _, preload := range i.preloads() {
		tx = tx.Preload(preload)
	}
	if i.opts.DateColumn != "" {
		tx = tx.Order(i.column(i.opts.DateColumn) + " desc")
	}
	tx = tx.Order(i.column("created_at") + " desc")
	if filter.Limit > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		tx = tx.Offset((page - 1) * filter.Limit).Limit(filter.Limit)
	}
	err = tx.Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl[T]) ListCount(filter dbmodels.RecordFilter) (rowCount int64, err error) {
	err = i.filtered(filter).Count(&rowCount).Error
	if err != nil {
		return 0, err
	}
	return rowCount, nil
}

func (i impl[T]) preloads() []string {
	return append([]string{"Employee"}, i.opts.Preloads...)
}

func (i impl[T]) filtered(filter dbmodels.RecordFilter) *gorm.DB {
	tx := i.db.Model(new(T))
	if filter.Status != "" {
		tx = tx.Where(i.column("status")+" = ?", filter.Status)
	}
	if filter.EmployeeID != "" {
		tx = tx.Where(i.column("employee_id")+" = ?", filter.EmployeeID)
	}
	if filter.Type != "" && i.opts.TypeColumn != "" {
		tx = tx.Where(i.column(i.opts.TypeColumn)+" = ?", filter.Type)
	}
	if i.opts.DateColumn != "" {
		dateToColumn := i.opts.DateColumn
		if i.opts.DateToColumn != "" {
			dateToColumn = i.opts.DateToColumn
		}
		// период записи пересекается с периодом фильтра
		if filter.DateFrom != nil {
			tx = tx.Where(i.column(dateToColumn)+" >= ?", *filter.DateFrom)
		}
		if filter.DateTo != nil {
			tx = tx.Where(i.column(i.opts.DateColumn)+" <= ?", *filter.DateTo)
		}
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		tx = tx.Joins("left join employees as e on e.id = " + i.column("employee_id"))
		searchValue := "%" + strings.ToLower(search) + "%"
		conditions := []string{
			"LOWER(e.first_name) like @search",
			"LOWER(e.last_name) like @search",
			"LOWER(e.id_no) like @search",
			"LOWER(e.first_name || ' ' || e.last_name) like @search",
			"LOWER(e.last_name || ' ' || e.first_name) like @search",
		}
		for _, col := range i.opts.SearchColumns {
			conditions = append(conditions, "LOWER("+i.column(col)+") like @search")
		}
		tx = tx.Where("("+strings.Join(conditions, " or ")+")", map[string]interface{}{"search": searchValue})
	}
	return tx
}
