package lineprovider

import (
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"hr-records-backend/db"
	departmentstore "hr-records-backend/lib/dicts/department/store"
	linestore "hr-records-backend/lib/dicts/line/store"
	dictapimodels "hr-records-backend/models/api/dict"
	dbmodels "hr-records-backend/models/db"
)

// ErrDisabled справочник линий отключен в настройках
var ErrDisabled = errors.New("справочник линий недоступен")

type Provider interface {
	Enabled() bool
	List(departmentID string) (list []dictapimodels.LineView, err error)
	Create(request dictapimodels.LineData) (id, hMsg string, err error)
	Delete(id string) (hMsg string, err error)
}

var Instance Provider

func NewHandler(enabled bool) {
	Instance = NewInstance(db.DB, enabled)
}

func NewInstance(DB *gorm.DB, enabled bool) Provider {
	return impl{
		enabled:         enabled,
		store:           linestore.NewInstance(DB),
		departmentStore: departmentstore.NewInstance(DB),
	}
}

type impl struct {
	enabled         bool
	store           linestore.Provider
	departmentStore departmentstore.Provider
}

func (i impl) Enabled() bool {
	return i.enabled
}

func (i impl) List(departmentID string) (list []dictapimodels.LineView, err error) {
	if !i.enabled {
		return nil, ErrDisabled
	}
	recList, err := i.store.List(departmentID)
	if err != nil {
		return nil, err
	}
	list = make([]dictapimodels.LineView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, dictapimodels.LineConvert(rec))
	}
	return list, nil
}

func (i impl) Create(request dictapimodels.LineData) (id, hMsg string, err error) {
	if !i.enabled {
		return "", "", ErrDisabled
	}
	department, err := i.departmentStore.GetByID(request.DepartmentID)
	if err != nil {
		return "", "", err
	}
	if department == nil {
		return "", "Подразделение не найдено", nil
	}
	exist, err := i.store.FindByName(request.DepartmentID, request.Name)
	if err != nil {
		return "", "", err
	}
	if exist != nil {
		return "", fmt.Sprintf("Линия %q уже есть в подразделении %q", request.Name, department.Name), nil
	}
	rec := dbmodels.Line{
		DepartmentID: request.DepartmentID,
		Name:         request.Name,
	}
	if err = rec.Validate(); err != nil {
		return "", err.Error(), nil
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", "", err
	}
	log.
		WithField("department_id", rec.DepartmentID).
		WithField("rec_id", id).
		Info("создана линия")
	return id, "", nil
}

func (i impl) Delete(id string) (hMsg string, err error) {
	if !i.enabled {
		return "", ErrDisabled
	}
	inUse, err := i.store.InUse(id)
	if err != nil {
		return "", err
	}
	if inUse {
		return "Линия используется и не может быть удалена", nil
	}
	err = i.store.Delete(id)
	if err != nil {
		return "", err
	}
	log.WithField("rec_id", id).Info("удалена линия")
	return "", nil
}
