package departmentprovider

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"hr-records-backend/db"
	departmentstore "hr-records-backend/lib/dicts/department/store"
	initchecker "hr-records-backend/lib/utils/init-checker"
	dictapimodels "hr-records-backend/models/api/dict"
	dbmodels "hr-records-backend/models/db"
)

type Provider interface {
	Create(request dictapimodels.DepartmentData) (id, hMsg string, err error)
	Update(id string, request dictapimodels.DepartmentData) (hMsg string, err error)
	Get(id string) (item dictapimodels.DepartmentView, err error)
	List(search string) (list []dictapimodels.DepartmentView, err error)
	Delete(id string) (hMsg string, err error)
}

var Instance Provider

func NewHandler() {
	Instance = NewInstance(departmentstore.NewInstance(db.DB))
}

func NewInstance(store departmentstore.Provider) Provider {
	instance := impl{
		store: store,
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	return instance
}

type impl struct {
	store departmentstore.Provider
}

func (i impl) Create(request dictapimodels.DepartmentData) (id, hMsg string, err error) {
	exist, err := i.store.FindByName(request.Name)
	if err != nil {
		return "", "", err
	}
	if exist != nil {
		return "", fmt.Sprintf("Подразделение %q уже существует", request.Name), nil
	}
	rec := dbmodels.Department{
		Name: request.Name,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", "", err
	}
	log.
		WithField("department_name", rec.Name).
		WithField("rec_id", id).
		Info("создано подразделение")
	return id, "", nil
}

func (i impl) Update(id string, request dictapimodels.DepartmentData) (hMsg string, err error) {
	exist, err := i.store.FindByName(request.Name)
	if err != nil {
		return "", err
	}
	if exist != nil && exist.ID != id {
		return fmt.Sprintf("Подразделение %q уже существует", request.Name), nil
	}
	updMap := map[string]interface{}{
		"name": request.Name,
	}
	err = i.store.Update(id, updMap)
	if err != nil {
		return "", err
	}
	log.WithField("rec_id", id).Info("обновлено подразделение")
	return "", nil
}

func (i impl) Get(id string) (item dictapimodels.DepartmentView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return dictapimodels.DepartmentView{}, err
	}
	if rec == nil {
		return dictapimodels.DepartmentView{}, dbmodels.ErrNotFound
	}
	return dictapimodels.DepartmentConvert(*rec), nil
}

func (i impl) List(search string) (list []dictapimodels.DepartmentView, err error) {
	recList, err := i.store.List(search)
	if err != nil {
		return nil, err
	}
	list = make([]dictapimodels.DepartmentView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, dictapimodels.DepartmentConvert(rec))
	}
	return list, nil
}

func (i impl) Delete(id string) (hMsg string, err error) {
	inUse, err := i.store.InUse(id)
	if err != nil {
		return "", err
	}
	if inUse {
		return "Подразделение используется и не может быть удалено", nil
	}
	err = i.store.Delete(id)
	if err != nil {
		return "", err
	}
	log.WithField("rec_id", id).Info("удалено подразделение")
	return "", nil
}
