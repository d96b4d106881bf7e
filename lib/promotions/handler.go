package promotionshandler

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"hr-records-backend/db"
	employeesstore "hr-records-backend/lib/employees/store"
	recordhandler "hr-records-backend/lib/hr-records/handler"
	recordstore "hr-records-backend/lib/hr-records/store"
	"hr-records-backend/models"
	apimodels "hr-records-backend/models/api"
	recordapimodels "hr-records-backend/models/api/records"
	dbmodels "hr-records-backend/models/db"
)

type Provider = recordhandler.Provider[dbmodels.Promotion, recordapimodels.PromotionData, recordapimodels.PromotionView]

var Instance Provider

func NewHandler() {
	Instance = NewInstance(db.DB, Kind())
}

func NewInstance(DB *gorm.DB, kind recordhandler.Kind[dbmodels.Promotion, recordapimodels.PromotionView]) Provider {
	return recordhandler.NewInstance[dbmodels.Promotion, recordapimodels.PromotionData](DB, kind)
}

func Kind() recordhandler.Kind[dbmodels.Promotion, recordapimodels.PromotionView] {
	return recordhandler.Kind[dbmodels.Promotion, recordapimodels.PromotionView]{
		Store: recordstore.Options{
			DateColumn:    "promotion_date",
			SearchColumns: []string{"previous_position", "new_position", "reason"},
		},
		Prepare:       prepare,
		OnStatus:      onStatus,
		Convert:       recordapimodels.PromotionConvert,
		ExportSheet:   "Повышения",
		ExportHeaders: recordapimodels.PromotionExportHeaders,
		ExportRow:     recordapimodels.PromotionExportRow,
	}
}

// prepare прежние должность и оклад берутся из карточки сотрудника.
// При смене сотрудника перенесенные значения прежнего сотрудника заменяются
func prepare(_ *gorm.DB, rec *dbmodels.Promotion, current *dbmodels.Promotion, employee dbmodels.Employee) (apimodels.ValidationErrors, error) {
	if current != nil && current.EmployeeID != rec.EmployeeID {
		if rec.PreviousPosition == current.PreviousPosition {
			rec.PreviousPosition = ""
		}
		if rec.PreviousSalary == current.PreviousSalary {
			rec.PreviousSalary = 0
		}
	}
	if rec.PreviousPosition == "" {
		rec.PreviousPosition = employee.Position
	}
	if rec.PreviousSalary == 0 {
		rec.PreviousSalary = employee.Salary
	}
	return nil, nil
}

func onStatus(tx *gorm.DB, rec dbmodels.Promotion, to models.RecordStatus) error {
	if to != models.RecordStatusApproved {
		return nil
	}
	updMap := map[string]interface{}{
		"position": rec.NewPosition,
	}
	if rec.NewSalary > 0 {
		updMap["salary"] = rec.NewSalary
	}
	if err := employeesstore.NewInstance(tx).Update(rec.EmployeeID, updMap); err != nil {
		return errors.Wrap(err, "ошибка обновления должности сотрудника")
	}
	return nil
}
