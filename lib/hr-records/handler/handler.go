package recordhandler

import (
	"bytes"
	"context"
	"path"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	departmentprovider "hr-records-backend/lib/dicts/department"
	departmentstore "hr-records-backend/lib/dicts/department/store"
	lineprovider "hr-records-backend/lib/dicts/line"
	employeesstore "hr-records-backend/lib/employees/store"
	xlsexport "hr-records-backend/lib/export/xls"
	filestorage "hr-records-backend/lib/file-storage"
	recordstore "hr-records-backend/lib/hr-records/store"
	"hr-records-backend/lib/hr-records/workflow"
	pagedata "hr-records-backend/lib/page-data"
	"hr-records-backend/models"
	apimodels "hr-records-backend/models/api"
	dictapimodels "hr-records-backend/models/api/dict"
	employeeapimodels "hr-records-backend/models/api/employee"
	recordapimodels "hr-records-backend/models/api/records"
	dbmodels "hr-records-backend/models/db"
)

// Data запрос на создание или изменение записи
type Data[T any] interface {
	Validate() apimodels.ValidationErrors
	GetEmployeeID() string
	ToDB(userID, attachmentPath string) *T
	UpdMap() map[string]interface{}
}

var allowedExt = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// Kind описание вида записи
type Kind[T workflow.Record, V any] struct {
	Store    recordstore.Options
	OnStatus workflow.OnStatusFunc[T]
	// Prepare дополняет запись данными сотрудника и проверяет ссылки на справочники.
	// current задан при изменении записи
	Prepare func(tx *gorm.DB, rec *T, current *T, employee dbmodels.Employee) (apimodels.ValidationErrors, error)
	Convert func(rec T) V

	ExportSheet   string
	ExportHeaders []string
	ExportRow     func(rec T) []interface{}

	// Folder папка вложений в хранилище, пустая если вложения не поддерживаются
	Folder          string
	WithDepartments bool

	Workflow workflow.Config[T]
	Files    filestorage.Provider
	Lines    lineprovider.Provider
	Exporter xlsexport.Provider
}

type Provider[T workflow.Record, D Data[T], V any] interface {
	List(filter recordapimodels.RecordFilter) (list []V, rowCount int64, err error)
	Page(ctx context.Context, filter recordapimodels.RecordFilter) (recordapimodels.PageData, error)
	Get(id string) (V, error)
	Create(userID string, request D, file *filestorage.File) (id, hMsg string, err error)
	Update(userID, id string, request D, file *filestorage.File) (hMsg string, err error)
	Delete(userID, id string) (hMsg string, err error)
	ChangeStatus(userID, id string, request recordapimodels.StatusChangeRequest) (hMsg string, err error)
	History(id string) ([]recordapimodels.StatusHistoryView, error)
	Export(filter recordapimodels.RecordFilter) (*bytes.Buffer, error)
	Workflow() workflow.Provider[T]
}

func NewInstance[T workflow.Record, D Data[T], V any](DB *gorm.DB, kind Kind[T, V]) Provider[T, D, V] {
	if kind.Convert == nil {
		panic("recordhandler: не задана функция Convert")
	}
	if !hasPreload(kind.Store.Preloads, "ApprovedBy") {
		kind.Store.Preloads = append(kind.Store.Preloads, "ApprovedBy")
	}
	wfConfig := kind.Workflow
	wfConfig.Store = kind.Store
	wfConfig.OnStatus = kind.OnStatus
	if wfConfig.Files == nil {
		wfConfig.Files = kind.Files
	}
	return impl[T, D, V]{
		db:             DB,
		kind:           kind,
		workflow:       workflow.NewInstance[T](DB, wfConfig),
		employeesStore: employeesstore.NewInstance(DB),
		departments:    departmentprovider.NewInstance(departmentstore.NewInstance(DB)),
	}
}

type impl[T workflow.Record, D Data[T], V any] struct {
	db             *gorm.DB
	kind           Kind[T, V]
	workflow       workflow.Provider[T]
	employeesStore employeesstore.Provider
	departments    departmentprovider.Provider
}

func hasPreload(list []string, name string) bool {
	for _, item := range list {
		if item == name {
			return true
		}
	}
	return false
}

func (i impl[T, D, V]) recordKind() models.RecordKind {
	var rec T
	return rec.Kind()
}

func (i impl[T, D, V]) files() filestorage.Provider {
	if i.kind.Files != nil {
		return i.kind.Files
	}
	return filestorage.Instance
}

func (i impl[T, D, V]) lines() lineprovider.Provider {
	if i.kind.Lines != nil {
		return i.kind.Lines
	}
	return lineprovider.Instance
}

func (i impl[T, D, V]) exporter() xlsexport.Provider {
	if i.kind.Exporter != nil {
		return i.kind.Exporter
	}
	return xlsexport.Instance
}

func (i impl[T, D, V]) Workflow() workflow.Provider[T] {
	return i.workflow
}

func (i impl[T, D, V]) List(filter recordapimodels.RecordFilter) ([]V, int64, error) {
	if errs := filter.Validate(); len(errs) > 0 {
		return nil, 0, errs
	}
	list, rowCount, err := i.workflow.List(filter.ToDB())
	if err != nil {
		return nil, 0, errors.Wrap(err, "ошибка получения списка записей")
	}
	result := make([]V, 0, len(list))
	for _, rec := range list {
		result = append(result, i.kind.Convert(rec))
	}
	return result, rowCount, nil
}

type recordList[V any] struct {
	list     []V
	rowCount int64
}

// Page список записей и справочники страницы загружаются одновременно
func (i impl[T, D, V]) Page(ctx context.Context, filter recordapimodels.RecordFilter) (recordapimodels.PageData, error) {
	if errs := filter.Validate(); len(errs) > 0 {
		return recordapimodels.PageData{}, errs
	}
	sources := []pagedata.Source{
		{
			Name:      "records",
			Title:     "записи",
			Essential: true,
			Load: func(ctx context.Context) (interface{}, error) {
				list, rowCount, err := i.List(filter)
				if err != nil {
					return nil, err
				}
				return recordList[V]{list: list, rowCount: rowCount}, nil
			},
		},
		{
			Name:      "employees",
			Title:     "сотрудники",
			Essential: true,
			Load: func(ctx context.Context) (interface{}, error) {
				return i.activeEmployees()
			},
		},
	}
	if i.kind.WithDepartments {
		sources = append(sources, pagedata.Source{
			Name:      "departments",
			Title:     "подразделения",
			Essential: true,
			Load: func(ctx context.Context) (interface{}, error) {
				return i.departments.List("")
			},
		})
		if lines := i.lines(); lines != nil {
			sources = append(sources, pagedata.Source{
				Name:  "lines",
				Title: "линии",
				Load: func(ctx context.Context) (interface{}, error) {
					return lines.List("")
				},
			})
		}
	}

	loaded, err := pagedata.Load(ctx, sources...)
	if err != nil {
		return recordapimodels.PageData{}, err
	}
	records := loaded.Get("records").(recordList[V])
	result := recordapimodels.PageData{
		Records:   records.list,
		RowCount:  records.rowCount,
		Employees: loaded.Get("employees").([]employeeapimodels.EmployeeShort),
		Degraded:  loaded.Degraded,
		Notice:    loaded.Notice,
	}
	if departments, ok := loaded.Get("departments").([]dictapimodels.DepartmentView); ok {
		result.Departments = departments
	}
	if lines, ok := loaded.Get("lines").([]dictapimodels.LineView); ok {
		result.Lines = lines
	}
	return result, nil
}

func (i impl[T, D, V]) activeEmployees() ([]employeeapimodels.EmployeeShort, error) {
	list, err := i.employeesStore.List(dbmodels.EmployeeFilter{ActiveOnly: true})
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка сотрудников")
	}
	result := make([]employeeapimodels.EmployeeShort, 0, len(list))
	for _, rec := range list {
		result = append(result, employeeapimodels.EmployeeShortConvert(rec))
	}
	return result, nil
}

func (i impl[T, D, V]) Get(id string) (V, error) {
	var result V
	rec, err := i.workflow.Get(id)
	if err != nil {
		return result, err
	}
	return i.kind.Convert(*rec), nil
}

func (i impl[T, D, V]) Create(userID string, request D, file *filestorage.File) (id, hMsg string, err error) {
	if errs := i.validate(request, file); len(errs) > 0 {
		return "", "", errs
	}
	attachmentPath, err := i.upload(file)
	if err != nil {
		return "", "", err
	}
	rec := request.ToDB(userID, attachmentPath)
	if err = i.prepare(rec, nil); err != nil {
		i.removeFile(attachmentPath)
		return "", "", err
	}
	id, hMsg, err = i.workflow.Create(userID, rec)
	if err != nil || hMsg != "" {
		i.removeFile(attachmentPath)
		return "", hMsg, err
	}
	return id, "", nil
}

func (i impl[T, D, V]) Update(userID, id string, request D, file *filestorage.File) (hMsg string, err error) {
	if errs := i.validate(request, file); len(errs) > 0 {
		return "", errs
	}
	rec, err := i.workflow.Get(id)
	if err != nil {
		return "", err
	}
	updMap := request.UpdMap()
	if i.kind.Prepare != nil {
		prepared := request.ToDB(userID, "")
		if err = i.prepare(prepared, rec); err != nil {
			return "", err
		}
		if withFields, ok := any(*prepared).(interface{ PreparedFields() map[string]interface{} }); ok {
			for field, value := range withFields.PreparedFields() {
				updMap[field] = value
			}
		}
	}
	attachmentPath, err := i.upload(file)
	if err != nil {
		return "", err
	}
	if attachmentPath != "" {
		updMap["attachment_path"] = attachmentPath
	}
	hMsg, err = i.workflow.Update(userID, id, updMap)
	if err != nil || hMsg != "" {
		i.removeFile(attachmentPath)
		return hMsg, err
	}
	if attachmentPath != "" {
		if withFile, ok := any(*rec).(interface{ GetAttachmentPath() string }); ok {
			i.removeFile(withFile.GetAttachmentPath())
		}
	}
	return "", nil
}

func (i impl[T, D, V]) prepare(rec *T, current *T) error {
	if i.kind.Prepare == nil {
		return nil
	}
	employee, err := i.employeesStore.GetByID((*rec).GetEmployeeID())
	if err != nil {
		return errors.Wrap(err, "ошибка получения сотрудника")
	}
	if employee == nil {
		// отсутствие сотрудника проверяет workflow
		return nil
	}
	errs, err := i.kind.Prepare(i.db, rec, current, *employee)
	if err != nil {
		return err
	}
	return errs.OrNil()
}

func (i impl[T, D, V]) Delete(userID, id string) (hMsg string, err error) {
	return i.workflow.Delete(userID, id)
}

func (i impl[T, D, V]) ChangeStatus(userID, id string, request recordapimodels.StatusChangeRequest) (hMsg string, err error) {
	if errs := request.Validate(); len(errs) > 0 {
		return "", errs
	}
	return i.workflow.ChangeStatus(userID, id, models.RecordStatus(strings.TrimSpace(request.Status)), strings.TrimSpace(request.Remarks))
}

func (i impl[T, D, V]) History(id string) ([]recordapimodels.StatusHistoryView, error) {
	list, err := i.workflow.History(id)
	if err != nil {
		return nil, err
	}
	result := make([]recordapimodels.StatusHistoryView, 0, len(list))
	for _, rec := range list {
		result = append(result, recordapimodels.StatusHistoryConvert(rec))
	}
	return result, nil
}

func (i impl[T, D, V]) Export(filter recordapimodels.RecordFilter) (*bytes.Buffer, error) {
	if errs := filter.Validate(); len(errs) > 0 {
		return nil, errs
	}
	dbFilter := filter.ToDB()
	dbFilter.Page, dbFilter.Limit = 0, 0
	list, _, err := i.workflow.List(dbFilter)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка записей")
	}
	rows := make([][]interface{}, 0, len(list))
	for _, rec := range list {
		rows = append(rows, i.kind.ExportRow(rec))
	}
	sheet := i.kind.ExportSheet
	if sheet == "" {
		sheet = i.recordKind().ToHuman()
	}
	return i.exporter().ExportList(sheet, i.kind.ExportHeaders, rows)
}

func (i impl[T, D, V]) validate(request D, file *filestorage.File) apimodels.ValidationErrors {
	errs := request.Validate()
	if errs == nil {
		errs = apimodels.ValidationErrors{}
	}
	if file == nil {
		return errs
	}
	if i.kind.Folder == "" {
		errs.Add("attachment", "вложения для этого вида записей не поддерживаются")
		return errs
	}
	if len(file.Body) == 0 {
		errs.Add("attachment", "файл пустой")
	}
	if !allowedExt[strings.ToLower(path.Ext(file.Name))] {
		errs.Add("attachment", "допустимые форматы: pdf, doc, docx, jpg, png")
	}
	return errs
}

func (i impl[T, D, V]) upload(file *filestorage.File) (string, error) {
	if file == nil {
		return "", nil
	}
	objectPath, err := i.files().Upload(context.Background(), i.kind.Folder, file.Name, file.Body, file.ContentType)
	if err != nil {
		return "", errors.Wrap(err, "ошибка сохранения вложения")
	}
	return objectPath, nil
}

func (i impl[T, D, V]) removeFile(objectPath string) {
	if objectPath == "" {
		return
	}
	if err := i.files().Delete(context.Background(), objectPath); err != nil {
		log.WithError(err).
			WithField("record_kind", i.recordKind()).
			WithField("object_path", objectPath).
			Warn("ошибка удаления вложения из хранилища")
	}
}
