package terminationshandler

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

type Provider = recordhandler.Provider[dbmodels.Termination, recordapimodels.TerminationData, recordapimodels.TerminationView]

var Instance Provider

func NewHandler() {
	Instance = NewInstance(db.DB, Kind())
}

func NewInstance(DB *gorm.DB, kind recordhandler.Kind[dbmodels.Termination, recordapimodels.TerminationView]) Provider {
	return recordhandler.NewInstance[dbmodels.Termination, recordapimodels.TerminationData](DB, kind)
}

func Kind() recordhandler.Kind[dbmodels.Termination, recordapimodels.TerminationView] {
	return recordhandler.Kind[dbmodels.Termination, recordapimodels.TerminationView]{
		Store: recordstore.Options{
			DateColumn:    "termination_date",
			TypeColumn:    "termination_type",
			SearchColumns: []string{"termination_type", "reason"},
		},
		OnStatus:      onStatus,
		Convert:       recordapimodels.TerminationConvert,
		ExportSheet:   "Увольнения",
		ExportHeaders: recordapimodels.TerminationExportHeaders,
		ExportRow:     recordapimodels.TerminationExportRow,
		Folder:        "terminations",
	}
}

func onStatus(tx *gorm.DB, rec dbmodels.Termination, to models.RecordStatus) error {
	if to != models.RecordStatusApproved {
		return nil
	}
	err := employeesstore.NewInstance(tx).Update(rec.EmployeeID, map[string]interface{}{"is_active": false})
	if err != nil {
		return errors.Wrap(err, "ошибка деактивации сотрудника")
	}
	return nil
}
