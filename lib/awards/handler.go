package awardshandler

import (
	"gorm.io/gorm"
	"hr-records-backend/db"
	recordhandler "hr-records-backend/lib/hr-records/handler"
	recordstore "hr-records-backend/lib/hr-records/store"
	recordapimodels "hr-records-backend/models/api/records"
	dbmodels "hr-records-backend/models/db"
)

type Provider = recordhandler.Provider[dbmodels.Award, recordapimodels.AwardData, recordapimodels.AwardView]

var Instance Provider

func NewHandler() {
	Instance = NewInstance(db.DB, Kind())
}

func NewInstance(DB *gorm.DB, kind recordhandler.Kind[dbmodels.Award, recordapimodels.AwardView]) Provider {
	return recordhandler.NewInstance[dbmodels.Award, recordapimodels.AwardData](DB, kind)
}

func Kind() recordhandler.Kind[dbmodels.Award, recordapimodels.AwardView] {
	return recordhandler.Kind[dbmodels.Award, recordapimodels.AwardView]{
		Store: recordstore.Options{
			DateColumn:    "award_date",
			TypeColumn:    "award_type",
			SearchColumns: []string{"award_type", "gift", "description"},
		},
		Convert:       recordapimodels.AwardConvert,
		ExportSheet:   "Награды",
		ExportHeaders: recordapimodels.AwardExportHeaders,
		ExportRow:     recordapimodels.AwardExportRow,
		Folder:        "awards",
	}
}
