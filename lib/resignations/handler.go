package resignationshandler

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"hr-records-backend/db"
	employeesstore "hr-records-backend/lib/employees/store"
	recordhandler "hr-records-backend/lib/hr-records/handler"
	recordstore "hr-records-backend/lib/hr-records/store"
	"hr-records-backend/models"
	recordapimodels "hr-records-backend/models/api/records"
	dbmodels "hr-records-backend/models/db"
)

type Provider = recordhandler.Provider[dbmodels.Resignation, recordapimodels.ResignationData, recordapimodels.ResignationView]

var Instance Provider

func NewHandler() {
	Instance = NewInstance(db.DB, Kind())
}

func NewInstance(DB *gorm.DB, kind recordhandler.Kind[dbmodels.Resignation, recordapimodels.ResignationView]) Provider {
	return recordhandler.NewInstance[dbmodels.Resignation, recordapimodels.ResignationData](DB, kind)
}

func Kind() recordhandler.Kind[dbmodels.Resignation, recordapimodels.ResignationView] {
	return recordhandler.Kind[dbmodels.Resignation, recordapimodels.ResignationView]{
		Store: recordstore.Options{
			DateColumn:    "resignation_date",
			SearchColumns: []string{"reason"},
		},
		OnStatus:      onStatus,
		Convert:       recordapimodels.ResignationConvert,
		ExportSheet:   "Увольнения по собственному",
		ExportHeaders: recordapimodels.ResignationExportHeaders,
		ExportRow:     recordapimodels.ResignationExportRow,
		Folder:        "resignations",
	}
}

func onStatus(tx *gorm.DB, rec dbmodels.Resignation, to models.RecordStatus) error {
	if to != models.RecordStatusApproved {
		return nil
	}
	err := employeesstore.NewInstance(tx).Update(rec.EmployeeID, map[string]interface{}{"is_active": false})
	if err != nil {
		return errors.Wrap(err, "ошибка деактивации сотрудника")
	}
	return nil
}
