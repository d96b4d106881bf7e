package warningshandler

import (
	"gorm.io/gorm"
	"hr-records-backend/db"
	recordhandler "hr-records-backend/lib/hr-records/handler"
	recordstore "hr-records-backend/lib/hr-records/store"
	recordapimodels "hr-records-backend/models/api/records"
	dbmodels "hr-records-backend/models/db"
)

type Provider = recordhandler.Provider[dbmodels.Warning, recordapimodels.WarningData, recordapimodels.WarningView]

var Instance Provider

func NewHandler() {
	Instance = NewInstance(db.DB, Kind())
}

func NewInstance(DB *gorm.DB, kind recordhandler.Kind[dbmodels.Warning, recordapimodels.WarningView]) Provider {
	return recordhandler.NewInstance[dbmodels.Warning, recordapimodels.WarningData](DB, kind)
}

func Kind() recordhandler.Kind[dbmodels.Warning, recordapimodels.WarningView] {
	return recordhandler.Kind[dbmodels.Warning, recordapimodels.WarningView]{
		Store: recordstore.Options{
			DateColumn:    "warning_date",
			TypeColumn:    "warning_type",
			SearchColumns: []string{"warning_type", "subject", "description"},
		},
		Convert:       recordapimodels.WarningConvert,
		ExportSheet:   "Предупреждения",
		ExportHeaders: recordapimodels.WarningExportHeaders,
		ExportRow:     recordapimodels.WarningExportRow,
		Folder:        "warnings",
	}
}
