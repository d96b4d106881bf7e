package scheduleshandler

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"hr-records-backend/db"
	employeesstore "hr-records-backend/lib/employees/store"
	"hr-records-backend/lib/events"
	recordstore "hr-records-backend/lib/hr-records/store"
	"hr-records-backend/models"
	recordapimodels "hr-records-backend/models/api/records"
	scheduleapimodels "hr-records-backend/models/api/schedule"
	dbmodels "hr-records-backend/models/db"
)

type Provider interface {
	List(filter recordapimodels.RecordFilter) (list []scheduleapimodels.ScheduleView, rowCount int64, err error)
	Calendar(month, employeeID string) (scheduleapimodels.CalendarView, error)
	Get(id string) (scheduleapimodels.ScheduleView, error)
	Create(userID string, request scheduleapimodels.ScheduleData) (id, hMsg string, err error)
	Update(userID, id string, request scheduleapimodels.ScheduleData) (hMsg string, err error)
	Delete(userID, id string) error
}

var Instance Provider

func NewHandler() {
	Instance = NewInstance(db.DB)
}

func NewInstance(DB *gorm.DB) Provider {
	return impl{
		store: recordstore.NewInstance[dbmodels.Schedule](DB, recordstore.Options{
			DateColumn:    "schedule_date",
			TypeColumn:    "schedule_type",
			SearchColumns: []string{"title", "location", "notes"},
		}),
		employeesStore: employeesstore.NewInstance(DB),
	}
}

type impl struct {
	store          recordstore.Provider[dbmodels.Schedule]
	employeesStore employeesstore.Provider
}

func (i impl) getLogger(id, userID string) *log.Entry {
	return log.
		WithField("record_kind", models.ScheduleKind).
		WithField("rec_id", id).
		WithField("user_id", userID)
}

func (i impl) List(filter recordapimodels.RecordFilter) ([]scheduleapimodels.ScheduleView, int64, error) {
	if errs := filter.Validate(); len(errs) > 0 {
		return nil, 0, errs
	}
	dbFilter := filter.ToDB()
	dbFilter.Status = ""
	rowCount, err := i.store.ListCount(dbFilter)
	if err != nil {
		return nil, 0, errors.Wrap(err, "ошибка получения количества событий")
	}
	list, err := i.store.List(dbFilter)
	if err != nil {
		return nil, 0, errors.Wrap(err, "ошибка получения списка событий")
	}
	result := make([]scheduleapimodels.ScheduleView, 0, len(list))
	for _, rec := range list {
		result = append(result, scheduleapimodels.ScheduleConvert(rec))
	}
	return result, rowCount, nil
}

func (i impl) Calendar(month, employeeID string) (scheduleapimodels.CalendarView, error) {
	from, to, err := scheduleapimodels.ParseMonth(month, time.Now())
	if err != nil {
		return scheduleapimodels.CalendarView{}, err
	}
	list, err := i.store.List(dbmodels.RecordFilter{
		EmployeeID: employeeID,
		DateFrom:   &from,
		DateTo:     &to,
	})
	if err != nil {
		return scheduleapimodels.CalendarView{}, errors.Wrap(err, "ошибка получения событий календаря")
	}
	return scheduleapimodels.CalendarConvert(from, list), nil
}

func (i impl) Get(id string) (scheduleapimodels.ScheduleView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return scheduleapimodels.ScheduleView{}, err
	}
	if rec == nil {
		return scheduleapimodels.ScheduleView{}, dbmodels.ErrNotFound
	}
	return scheduleapimodels.ScheduleConvert(*rec), nil
}

func (i impl) Create(userID string, request scheduleapimodels.ScheduleData) (id, hMsg string, err error) {
	if errs := request.Validate(); len(errs) > 0 {
		return "", "", errs
	}
	hMsg, err = i.checkEmployee(request.EmployeeID)
	if err != nil || hMsg != "" {
		return "", hMsg, err
	}
	id, err = i.store.Create(request.ToDB(userID))
	if err != nil {
		return "", "", errors.Wrap(err, "ошибка создания события")
	}
	i.getLogger(id, userID).Info("событие расписания создано")
	i.publish(events.RecordCreated, id, request.EmployeeID, userID)
	return id, "", nil
}

func (i impl) Update(userID, id string, request scheduleapimodels.ScheduleData) (hMsg string, err error) {
	if errs := request.Validate(); len(errs) > 0 {
		return "", errs
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "", dbmodels.ErrNotFound
	}
	if rec.EmployeeID != request.EmployeeID {
		hMsg, err = i.checkEmployee(request.EmployeeID)
		if err != nil || hMsg != "" {
			return hMsg, err
		}
	}
	if err = i.store.Update(id, request.UpdMap()); err != nil {
		return "", errors.Wrap(err, "ошибка обновления события")
	}
	i.publish(events.RecordUpdated, id, request.EmployeeID, userID)
	return "", nil
}

func (i impl) Delete(userID, id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return dbmodels.ErrNotFound
	}
	if err = i.store.Delete(id); err != nil {
		return err
	}
	i.getLogger(id, userID).Info("событие расписания удалено")
	i.publish(events.RecordDeleted, id, rec.EmployeeID, userID)
	return nil
}

func (i impl) checkEmployee(employeeID string) (hMsg string, err error) {
	employee, err := i.employeesStore.GetByID(employeeID)
	if err != nil {
		return "", errors.Wrap(err, "ошибка получения сотрудника")
	}
	if employee == nil {
		return "Сотрудник не найден", nil
	}
	if !employee.IsActive {
		return fmt.Sprintf("Сотрудник %s не работает в компании", employee.GetFullName()), nil
	}
	return "", nil
}

func (i impl) publish(eventType events.EventType, id, employeeID, userID string) {
	events.Instance.Publish(events.Event{
		Type:       eventType,
		RecordKind: models.ScheduleKind,
		RecordID:   id,
		EmployeeID: employeeID,
		UserID:     userID,
		Time:       time.Now(),
	})
}
