package workflow

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	employeesstore "hr-records-backend/lib/employees/store"
	"hr-records-backend/lib/events"
	filestorage "hr-records-backend/lib/file-storage"
	historystore "hr-records-backend/lib/hr-records/history-store"
	recordstore "hr-records-backend/lib/hr-records/store"
	notificationhandler "hr-records-backend/lib/notification"
	usersstore "hr-records-backend/lib/users/store"
	"hr-records-backend/models"
	dbmodels "hr-records-backend/models/db"
)

// Record кадровая запись с согласованием
type Record interface {
	GetID() string
	GetEmployeeID() string
	GetEmployeeName() string
	GetStatus() models.RecordStatus
	GetCreatedByID() string
	Kind() models.RecordKind
}

// OnStatusFunc выполняется в транзакции смены статуса
type OnStatusFunc[T any] func(tx *gorm.DB, rec T, to models.RecordStatus) error

type Config[T any] struct {
	Store    recordstore.Options
	OnStatus OnStatusFunc[T]

	// пустые значения заменяются глобальными экземплярами
	Events   events.Provider
	Notifier notificationhandler.Provider
	Files    filestorage.Provider
}

type Provider[T Record] interface {
	List(filter dbmodels.RecordFilter) (list []T, rowCount int64, err error)
	Get(id string) (*T, error)
	Create(userID string, rec *T) (id, hMsg string, err error)
	Update(userID, id string, updMap map[string]interface{}) (hMsg string, err error)
	Delete(userID, id string) (hMsg string, err error)
	ChangeStatus(userID, id string, to models.RecordStatus, remarks string) (hMsg string, err error)
	History(id string) ([]dbmodels.StatusHistory, error)
}

func NewInstance[T Record](DB *gorm.DB, cfg Config[T]) Provider[T] {
	return impl[T]{
		db:             DB,
		cfg:            cfg,
		store:          recordstore.NewInstance[T](DB, cfg.Store),
		employeesStore: employeesstore.NewInstance(DB),
		historyStore:   historystore.NewInstance(DB),
		usersStore:     usersstore.NewInstance(DB),
	}
}

type impl[T Record] struct {
	db             *gorm.DB
	cfg            Config[T]
	store          recordstore.Provider[T]
	employeesStore employeesstore.Provider
	historyStore   historystore.Provider
	usersStore     usersstore.Provider
}

func (i impl[T]) kind() models.RecordKind {
	var rec T
	return rec.Kind()
}

func (i impl[T]) getLogger(recID, userID string) *log.Entry {
	logger := log.WithField("record_kind", i.kind())
	if recID != "" {
		logger = logger.WithField("rec_id", recID)
	}
	if userID != "" {
		logger = logger.WithField("user_id", userID)
	}
	return logger
}

func (i impl[T]) events() events.Provider {
	if i.cfg.Events != nil {
		return i.cfg.Events
	}
	return events.Instance
}

func (i impl[T]) notifier() notificationhandler.Provider {
	if i.cfg.Notifier != nil {
		return i.cfg.Notifier
	}
	return notificationhandler.Instance
}

func (i impl[T]) files() filestorage.Provider {
	if i.cfg.Files != nil {
		return i.cfg.Files
	}
	return filestorage.Instance
}

func (i impl[T]) List(filter dbmodels.RecordFilter) ([]T, int64, error) {
	rowCount, err := i.store.ListCount(filter)
	if err != nil {
		return nil, 0, err
	}
	list, err := i.store.List(filter)
	if err != nil {
		return nil, 0, err
	}
	return list, rowCount, nil
}

func (i impl[T]) Get(id string) (*T, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, dbmodels.ErrNotFound
	}
	return rec, nil
}

func (i impl[T]) Create(userID string, rec *T) (id, hMsg string, err error) {
	employeeID := (*rec).GetEmployeeID()
	hMsg, err = i.checkEmployee(employeeID)
	if err != nil || hMsg != "" {
		return "", hMsg, err
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", "", errors.Wrap(err, "ошибка создания записи")
	}
	i.getLogger(id, userID).Info("запись создана")
	i.publish(events.RecordCreated, id, employeeID, userID, "", "")
	return id, "", nil
}

func (i impl[T]) Update(userID, id string, updMap map[string]interface{}) (hMsg string, err error) {
	rec, err := i.Get(id)
	if err != nil {
		return "", err
	}
	status := (*rec).GetStatus()
	if !status.IsEditable() {
		return fmt.Sprintf("Запись в статусе «%s» не может быть изменена", status.ToHuman()), nil
	}
	employeeID := (*rec).GetEmployeeID()
	if newEmployeeID, ok := updMap["employee_id"].(string); ok && newEmployeeID != employeeID {
		hMsg, err = i.checkEmployee(newEmployeeID)
		if err != nil || hMsg != "" {
			return hMsg, err
		}
		employeeID = newEmployeeID
	}
	if len(updMap) == 0 {
		return "", nil
	}
	updated, err := i.store.UpdateOnStatus(id, models.RecordStatusPending, updMap)
	if err != nil {
		return "", errors.Wrap(err, "ошибка обновления записи")
	}
	if !updated {
		return "Запись уже рассмотрена и не может быть изменена", nil
	}
	i.publish(events.RecordUpdated, id, employeeID, userID, "", "")
	return "", nil
}

func (i impl[T]) Delete(userID, id string) (hMsg string, err error) {
	rec, err := i.Get(id)
	if err != nil {
		return "", err
	}
	status := (*rec).GetStatus()
	if !status.IsEditable() {
		return fmt.Sprintf("Запись в статусе «%s» не может быть удалена", status.ToHuman()), nil
	}
	deleted, err := i.store.DeleteOnStatus(id, models.RecordStatusPending)
	if err != nil {
		return "", errors.Wrap(err, "ошибка удаления записи")
	}
	if !deleted {
		return "Запись уже рассмотрена и не может быть удалена", nil
	}
	logger := i.getLogger(id, userID)
	if withFile, ok := any(*rec).(interface{ GetAttachmentPath() string }); ok && withFile.GetAttachmentPath() != "" {
		if err = i.files().Delete(context.Background(), withFile.GetAttachmentPath()); err != nil {
			logger.WithError(err).Warn("ошибка удаления вложения из хранилища")
		}
	}
	logger.Info("запись удалена")
	i.publish(events.RecordDeleted, id, (*rec).GetEmployeeID(), userID, "", "")
	return "", nil
}

// ChangeStatus одно решение по записи; при одновременных решениях применяется только первое
func (i impl[T]) ChangeStatus(userID, id string, to models.RecordStatus, remarks string) (hMsg string, err error) {
	if to == "" {
		return "Не указан статус", nil
	}
	rec, err := i.Get(id)
	if err != nil {
		return "", err
	}
	flow := i.kind().StatusFlow()
	if !flow.IsKnown(to) {
		return fmt.Sprintf("Неизвестный статус %q", to), nil
	}
	from := (*rec).GetStatus()
	if !flow.IsAllowChange(from, to) {
		return fmt.Sprintf("Переход из статуса «%s» в «%s» недоступен", from.ToHuman(), to.ToHuman()), nil
	}

	updMap := map[string]interface{}{
		"status": to,
	}
	if from == models.RecordStatusPending {
		now := time.Now()
		updMap["approved_at"] = &now
		updMap["remarks"] = remarks
		if userID != "" {
			updMap["approved_by_id"] = userID
		}
	} else if remarks != "" {
		updMap["remarks"] = remarks
	}
	var changedByID *string
	if userID != "" {
		changedByID = &userID
	}

	conflict := false
	err = i.db.Transaction(func(tx *gorm.DB) error {
		txStore := recordstore.NewInstance[T](tx, i.cfg.Store)
		updated, err := txStore.UpdateOnStatus(id, from, updMap)
		if err != nil {
			return errors.Wrap(err, "ошибка изменения статуса записи")
		}
		if !updated {
			conflict = true
			return nil
		}
		// последствия решения применяются к данным, которые были согласованы
		fresh, err := txStore.GetByID(id)
		if err != nil {
			return errors.Wrap(err, "ошибка получения записи")
		}
		if fresh != nil {
			rec = fresh
		}
		_, err = historystore.NewInstance(tx).Create(dbmodels.StatusHistory{
			RecordKind:  i.kind(),
			RecordID:    id,
			FromStatus:  from,
			ToStatus:    to,
			Remarks:     remarks,
			ChangedByID: changedByID,
		})
		if err != nil {
			return errors.Wrap(err, "ошибка сохранения истории статусов")
		}
		if i.cfg.OnStatus != nil {
			if err = i.cfg.OnStatus(tx, *rec, to); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	if conflict {
		return "Статус записи уже изменен другим пользователем, обновите страницу", nil
	}
	i.getLogger(id, userID).
		WithField("from_status", from).
		WithField("to_status", to).
		Info("статус записи изменен")
	i.publish(events.RecordStatusChanged, id, (*rec).GetEmployeeID(), userID, from, to)
	i.notify(*rec, userID, to)
	return "", nil
}

func (i impl[T]) History(id string) ([]dbmodels.StatusHistory, error) {
	if _, err := i.Get(id); err != nil {
		return nil, err
	}
	return i.historyStore.List(i.kind(), id)
}

func (i impl[T]) checkEmployee(employeeID string) (hMsg string, err error) {
	if employeeID == "" {
		return "Не выбран сотрудник", nil
	}
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

func (i impl[T]) publish(eventType events.EventType, recID, employeeID, userID string, from, to models.RecordStatus) {
	i.events().Publish(events.Event{
		Type:       eventType,
		RecordKind: i.kind(),
		RecordID:   recID,
		EmployeeID: employeeID,
		UserID:     userID,
		FromStatus: from,
		ToStatus:   to,
		Time:       time.Now(),
	})
}

func (i impl[T]) notify(rec T, userID string, to models.RecordStatus) {
	changedBy := ""
	if userID != "" {
		user, err := i.usersStore.GetByID(userID)
		if err != nil {
			i.getLogger(rec.GetID(), userID).WithError(err).Warn("ошибка получения пользователя")
		}
		if user != nil {
			changedBy = user.GetFullName()
		}
	}
	i.notifier().StatusChanged(notificationhandler.StatusMessage{
		RecordKind:   i.kind(),
		RecordID:     rec.GetID(),
		Status:       to,
		EmployeeName: rec.GetEmployeeName(),
		CreatorID:    rec.GetCreatedByID(),
		ChangedByID:  userID,
		ChangedBy:    changedBy,
	})
}
