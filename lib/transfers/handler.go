package transfershandler

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"hr-records-backend/db"
	departmentstore "hr-records-backend/lib/dicts/department/store"
	linestore "hr-records-backend/lib/dicts/line/store"
	employeesstore "hr-records-backend/lib/employees/store"
	recordhandler "hr-records-backend/lib/hr-records/handler"
	recordstore "hr-records-backend/lib/hr-records/store"
	"hr-records-backend/models"
	apimodels "hr-records-backend/models/api"
	recordapimodels "hr-records-backend/models/api/records"
	dbmodels "hr-records-backend/models/db"
)

type Provider = recordhandler.Provider[dbmodels.Transfer, recordapimodels.TransferData, recordapimodels.TransferView]

var Instance Provider

func NewHandler() {
	Instance = NewInstance(db.DB, Kind())
}

func NewInstance(DB *gorm.DB, kind recordhandler.Kind[dbmodels.Transfer, recordapimodels.TransferView]) Provider {
	return recordhandler.NewInstance[dbmodels.Transfer, recordapimodels.TransferData](DB, kind)
}

func Kind() recordhandler.Kind[dbmodels.Transfer, recordapimodels.TransferView] {
	return recordhandler.Kind[dbmodels.Transfer, recordapimodels.TransferView]{
		Store: recordstore.Options{
			DateColumn:    "transfer_date",
			SearchColumns: []string{"reason"},
			Preloads:      []string{"FromDepartment", "ToDepartment", "FromLine", "ToLine"},
		},
		Prepare:         prepare,
		OnStatus:        onStatus,
		Convert:         recordapimodels.TransferConvert,
		ExportSheet:     "Переводы",
		ExportHeaders:   recordapimodels.TransferExportHeaders,
		ExportRow:       recordapimodels.TransferExportRow,
		WithDepartments: true,
	}
}

// prepare исходные подразделение и линия по умолчанию текущие у сотрудника
func prepare(tx *gorm.DB, rec *dbmodels.Transfer, current *dbmodels.Transfer, employee dbmodels.Employee) (apimodels.ValidationErrors, error) {
	if current != nil && current.EmployeeID != rec.EmployeeID && rec.FromDepartmentID == current.FromDepartmentID {
		rec.FromDepartmentID = ""
		rec.FromLineID = nil
	}
	if rec.FromDepartmentID == "" && employee.DepartmentID != nil {
		rec.FromDepartmentID = *employee.DepartmentID
		if rec.FromLineID == nil {
			rec.FromLineID = employee.LineID
		}
	}

	errs := apimodels.ValidationErrors{}
	if rec.FromDepartmentID == "" {
		errs.Add("from_department_id", "у сотрудника не указано подразделение, укажите исходное подразделение")
	}
	places := placeChecker{
		departments: departmentstore.NewInstance(tx),
		lines:       linestore.NewInstance(tx),
		errs:        errs,
	}
	if err := places.check("from_department_id", rec.FromDepartmentID, "from_line_id", rec.FromLineID); err != nil {
		return nil, err
	}
	if err := places.check("to_department_id", rec.ToDepartmentID, "to_line_id", rec.ToLineID); err != nil {
		return nil, err
	}
	if len(errs) == 0 && rec.FromDepartmentID == rec.ToDepartmentID && sameLine(rec.FromLineID, rec.ToLineID) {
		errs.Add("to_department_id", "подразделение перевода совпадает с текущим")
	}
	return errs, nil
}

type placeChecker struct {
	departments departmentstore.Provider
	lines       linestore.Provider
	errs        apimodels.ValidationErrors
}

// check подразделение и линия существуют, линия относится к подразделению
func (c placeChecker) check(departmentField, departmentID, lineField string, lineID *string) error {
	if departmentID != "" {
		department, err := c.departments.GetByID(departmentID)
		if err != nil {
			return errors.Wrap(err, "ошибка получения подразделения")
		}
		if department == nil {
			c.errs.Add(departmentField, "подразделение не найдено")
		}
	}
	if lineID == nil {
		return nil
	}
	line, err := c.lines.GetByID(*lineID)
	if err != nil {
		return errors.Wrap(err, "ошибка получения линии")
	}
	if line == nil {
		c.errs.Add(lineField, "линия не найдена")
		return nil
	}
	if departmentID != "" && line.DepartmentID != departmentID {
		c.errs.Add(lineField, "линия не относится к подразделению")
	}
	return nil
}

func sameLine(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func onStatus(tx *gorm.DB, rec dbmodels.Transfer, to models.RecordStatus) error {
	if to != models.RecordStatusApproved {
		return nil
	}
	updMap := map[string]interface{}{
		"department_id": rec.ToDepartmentID,
		"line_id":       rec.ToLineID,
	}
	if err := employeesstore.NewInstance(tx).Update(rec.EmployeeID, updMap); err != nil {
		return errors.Wrap(err, "ошибка перевода сотрудника")
	}
	return nil
}
