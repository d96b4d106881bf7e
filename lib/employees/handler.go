package employeeshandler

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"hr-records-backend/db"
	departmentstore "hr-records-backend/lib/dicts/department/store"
	linestore "hr-records-backend/lib/dicts/line/store"
	employeematcher "hr-records-backend/lib/employee-matcher"
	employeesstore "hr-records-backend/lib/employees/store"
	xlsexport "hr-records-backend/lib/export/xls"
	filestorage "hr-records-backend/lib/file-storage"
	initchecker "hr-records-backend/lib/utils/init-checker"
	"hr-records-backend/lib/utils/lock"
	apimodels "hr-records-backend/models/api"
	employeeapimodels "hr-records-backend/models/api/employee"
	dbmodels "hr-records-backend/models/db"
)

const (
	photoFolder = "employees"
	lockWait    = 5 * time.Second
)

func idNoLockKey(idNo string) string {
	return "employee_idno:" + strings.ToLower(idNo)
}

var exportHeaders = []string{"Таб. номер", "Фамилия", "Имя", "Отчество", "Должность", "Подразделение", "Линия", "Дата приема", "Email", "Телефон", "Работает"}

type Provider interface {
	List(filter employeeapimodels.EmployeeFilter) ([]employeeapimodels.EmployeeView, error)
	Get(id string) (employeeapimodels.EmployeeView, error)
	Create(request employeeapimodels.EmployeeData, photo *filestorage.File) (id, hMsg string, err error)
	Update(id string, request employeeapimodels.EmployeeData, photo *filestorage.File) (hMsg string, err error)
	Delete(id string) (hMsg string, err error)
	Match(request employeeapimodels.MatchRequest) (employeeapimodels.MatchResponse, error)
	Export(filter employeeapimodels.EmployeeFilter) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = NewInstance(db.DB, filestorage.Instance, xlsexport.Instance)
}

func NewInstance(DB *gorm.DB, files filestorage.Provider, exporter xlsexport.Provider) Provider {
	initchecker.CheckInit(
		"DB", DB,
		"files", files,
		"exporter", exporter,
	)
	return impl{
		store:           employeesstore.NewInstance(DB),
		departmentStore: departmentstore.NewInstance(DB),
		lineStore:       linestore.NewInstance(DB),
		files:           files,
		exporter:        exporter,
	}
}

type impl struct {
	store           employeesstore.Provider
	departmentStore departmentstore.Provider
	lineStore       linestore.Provider
	files           filestorage.Provider
	exporter        xlsexport.Provider
}

func (i impl) getLogger(id string) *log.Entry {
	return log.WithField("employee_id", id)
}

func (i impl) List(filter employeeapimodels.EmployeeFilter) ([]employeeapimodels.EmployeeView, error) {
	list, err := i.store.List(filter.ToDB())
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка сотрудников")
	}
	result := make([]employeeapimodels.EmployeeView, 0, len(list))
	for _, rec := range list {
		result = append(result, employeeapimodels.EmployeeConvert(rec))
	}
	return result, nil
}

func (i impl) Get(id string) (employeeapimodels.EmployeeView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return employeeapimodels.EmployeeView{}, errors.Wrap(err, "ошибка получения сотрудника")
	}
	if rec == nil {
		return employeeapimodels.EmployeeView{}, dbmodels.ErrNotFound
	}
	return employeeapimodels.EmployeeConvert(*rec), nil
}

func (i impl) Create(request employeeapimodels.EmployeeData, photo *filestorage.File) (id, hMsg string, err error) {
	request.Normalize()
	if errs := i.validate(request, photo); len(errs) > 0 {
		return "", "", errs
	}
	// проверка уникальности табельного номера и вставка под одной блокировкой
	locked, err := lock.WithDelay(context.Background(), idNoLockKey(request.IDNo), lockWait, func() error {
		id, hMsg, err = i.create(request, photo)
		return err
	})
	if err != nil {
		return "", "", err
	}
	if !locked {
		return "", "Табельный номер обрабатывается другим запросом, повторите попытку", nil
	}
	return id, hMsg, nil
}

func (i impl) create(request employeeapimodels.EmployeeData, photo *filestorage.File) (id, hMsg string, err error) {
	hMsg, err = i.checkRefs("", request)
	if err != nil || hMsg != "" {
		return "", hMsg, err
	}
	rec := request.ToDB()
	if photo != nil {
		rec.PhotoPath, rec.ThumbPath, err = i.uploadPhoto(photo)
		if err != nil {
			return "", "", err
		}
	}
	id, err = i.store.Create(rec)
	if err != nil {
		i.removeFiles(rec.PhotoPath, rec.ThumbPath)
		return "", "", errors.Wrap(err, "ошибка создания сотрудника")
	}
	i.getLogger(id).Info("сотрудник добавлен")
	return id, "", nil
}

func (i impl) Update(id string, request employeeapimodels.EmployeeData, photo *filestorage.File) (hMsg string, err error) {
	request.Normalize()
	if errs := i.validate(request, photo); len(errs) > 0 {
		return "", errs
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return "", errors.Wrap(err, "ошибка получения сотрудника")
	}
	if rec == nil {
		return "", dbmodels.ErrNotFound
	}
	hMsg, err = i.checkRefs(id, request)
	if err != nil || hMsg != "" {
		return hMsg, err
	}
	updMap := request.UpdMap()
	if photo != nil {
		photoPath, thumbPath, err := i.uploadPhoto(photo)
		if err != nil {
			return "", err
		}
		updMap["photo_path"] = photoPath
		updMap["thumb_path"] = thumbPath
	}
	if err = i.store.Update(id, updMap); err != nil {
		if photo != nil {
			i.removeFiles(updMap["photo_path"].(string), updMap["thumb_path"].(string))
		}
		return "", errors.Wrap(err, "ошибка обновления сотрудника")
	}
	if photo != nil {
		i.removeFiles(rec.PhotoPath, rec.ThumbPath)
	}
	return "", nil
}

func (i impl) Delete(id string) (hMsg string, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return "", errors.Wrap(err, "ошибка получения сотрудника")
	}
	if rec == nil {
		return "", dbmodels.ErrNotFound
	}
	hasRecords, err := i.store.HasRecords(id)
	if err != nil {
		return "", errors.Wrap(err, "ошибка проверки кадровых записей сотрудника")
	}
	if hasRecords {
		return fmt.Sprintf("По сотруднику %s есть кадровые записи, удаление невозможно. Отметьте его как неработающего", rec.GetFullName()), nil
	}
	if err = i.store.Delete(id); err != nil {
		return "", errors.Wrap(err, "ошибка удаления сотрудника")
	}
	i.removeFiles(rec.PhotoPath, rec.ThumbPath)
	i.getLogger(id).Info("сотрудник удален")
	return "", nil
}

// Match подбор сотрудника по строке поиска; без переданного списка используются работающие сотрудники
func (i impl) Match(request employeeapimodels.MatchRequest) (employeeapimodels.MatchResponse, error) {
	var roster []employeematcher.Employee
	if len(bytes.TrimSpace(request.Roster)) != 0 {
		roster = employeematcher.DecodeRoster(request.Roster)
	} else {
		list, err := i.store.List(dbmodels.EmployeeFilter{ActiveOnly: true})
		if err != nil {
			return employeeapimodels.MatchResponse{}, errors.Wrap(err, "ошибка получения списка сотрудников")
		}
		roster = make([]employeematcher.Employee, 0, len(list))
		for _, rec := range list {
			roster = append(roster, employeeapimodels.MatcherConvert(rec))
		}
	}
	return employeeapimodels.MatchConvert(employeematcher.Match(request.Query, roster, request.CurrentID)), nil
}

func (i impl) Export(filter employeeapimodels.EmployeeFilter) (*bytes.Buffer, error) {
	list, err := i.store.List(filter.ToDB())
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка сотрудников")
	}
	rows := make([][]interface{}, 0, len(list))
	for _, rec := range list {
		view := employeeapimodels.EmployeeConvert(rec)
		active := "Нет"
		if rec.IsActive {
			active = "Да"
		}
		rows = append(rows, []interface{}{
			view.IDNo, view.LastName, view.FirstName, view.MiddleName, view.Position, view.DepartmentName,
			view.LineName, view.HireDate, view.Email, view.Phone, active,
		})
	}
	return i.exporter.ExportList("Сотрудники", exportHeaders, rows)
}

func (i impl) validate(request employeeapimodels.EmployeeData, photo *filestorage.File) apimodels.ValidationErrors {
	errs := request.Validate()
	if photo != nil && (len(photo.Body) == 0 || !isPhoto(photo.Name)) {
		errs.Add("photo", "допустимые форматы фото: jpg, png, gif")
	}
	return errs
}

func (i impl) checkRefs(id string, request employeeapimodels.EmployeeData) (hMsg string, err error) {
	exist, err := i.store.GetByIDNo(request.IDNo)
	if err != nil {
		return "", errors.Wrap(err, "ошибка проверки табельного номера")
	}
	if exist != nil && exist.ID != id {
		return fmt.Sprintf("Табельный номер %s уже присвоен сотруднику %s", request.IDNo, exist.GetFullName()), nil
	}
	if request.DepartmentID != "" {
		department, err := i.departmentStore.GetByID(request.DepartmentID)
		if err != nil {
			return "", errors.Wrap(err, "ошибка получения подразделения")
		}
		if department == nil {
			return "Подразделение не найдено", nil
		}
	}
	if request.LineID != "" {
		line, err := i.lineStore.GetByID(request.LineID)
		if err != nil {
			return "", errors.Wrap(err, "ошибка получения линии")
		}
		if line == nil {
			return "Линия не найдена", nil
		}
		if request.DepartmentID != "" && line.DepartmentID != request.DepartmentID {
			return fmt.Sprintf("Линия %s не относится к выбранному подразделению", line.Name), nil
		}
	}
	return "", nil
}

func (i impl) uploadPhoto(photo *filestorage.File) (photoPath, thumbPath string, err error) {
	thumb, err := makeThumbnail(photo.Body)
	if err != nil {
		return "", "", apimodels.ValidationErrors{"photo": {err.Error()}}
	}
	ctx := context.Background()
	photoPath, err = i.files.Upload(ctx, photoFolder, photo.Name, photo.Body, photo.ContentType)
	if err != nil {
		return "", "", errors.Wrap(err, "ошибка сохранения фото")
	}
	thumbPath, err = i.files.Upload(ctx, photoFolder+"/thumbs", "thumb.jpg", thumb, "image/jpeg")
	if err != nil {
		i.removeFiles(photoPath)
		return "", "", errors.Wrap(err, "ошибка сохранения миниатюры")
	}
	return photoPath, thumbPath, nil
}

func (i impl) removeFiles(paths ...string) {
	for _, objectPath := range paths {
		if objectPath == "" {
			continue
		}
		if err := i.files.Delete(context.Background(), objectPath); err != nil {
			log.WithError(err).WithField("object_path", objectPath).Warn("ошибка удаления файла из хранилища")
		}
	}
}
