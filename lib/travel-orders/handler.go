package travelordershandler

import (
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"hr-records-backend/db"
	employeesstore "hr-records-backend/lib/employees/store"
	pdfexport "hr-records-backend/lib/export/pdf"
	recordhandler "hr-records-backend/lib/hr-records/handler"
	recordstore "hr-records-backend/lib/hr-records/store"
	travelorderstore "hr-records-backend/lib/travel-orders/store"
	"hr-records-backend/models"
	apimodels "hr-records-backend/models/api"
	recordapimodels "hr-records-backend/models/api/records"
	dbmodels "hr-records-backend/models/db"
)

const autoCompleteRemarks = "Завершено автоматически по окончании командировки"

type Provider interface {
	recordhandler.Provider[dbmodels.TravelOrder, recordapimodels.TravelOrderData, recordapimodels.TravelOrderView]
	PDF(id string) (fileName string, body []byte, err error)
	// CompleteFinished переводит в completed согласованные командировки с прошедшей датой возвращения
	CompleteFinished(now time.Time) (completed int, err error)
}

var Instance Provider

func NewHandler() {
	Instance = NewInstance(db.DB, Kind(), pdfexport.Instance)
}

func NewInstance(DB *gorm.DB, kind recordhandler.Kind[dbmodels.TravelOrder, recordapimodels.TravelOrderView], pdf pdfexport.Provider) Provider {
	return impl{
		Provider:       recordhandler.NewInstance[dbmodels.TravelOrder, recordapimodels.TravelOrderData](DB, kind),
		store:          travelorderstore.NewInstance(DB),
		employeesStore: employeesstore.NewInstance(DB),
		pdf:            pdf,
	}
}

func Kind() recordhandler.Kind[dbmodels.TravelOrder, recordapimodels.TravelOrderView] {
	return recordhandler.Kind[dbmodels.TravelOrder, recordapimodels.TravelOrderView]{
		Store: recordstore.Options{
			DateColumn:    "date_from",
			DateToColumn:  "date_to",
			TypeColumn:    "transportation",
			SearchColumns: []string{"destination", "purpose"},
		},
		Convert:       recordapimodels.TravelOrderConvert,
		ExportSheet:   "Командировки",
		ExportHeaders: recordapimodels.TravelOrderExportHeaders,
		ExportRow:     recordapimodels.TravelOrderExportRow,
		Folder:        "travel-orders",
	}
}

type impl struct {
	recordhandler.Provider[dbmodels.TravelOrder, recordapimodels.TravelOrderData, recordapimodels.TravelOrderView]
	store          travelorderstore.Provider
	employeesStore employeesstore.Provider
	pdf            pdfexport.Provider
}

func (i impl) PDF(id string) (fileName string, body []byte, err error) {
	rec, err := i.Workflow().Get(id)
	if err != nil {
		return "", nil, err
	}
	view := recordapimodels.TravelOrderConvert(*rec)
	doc := pdfexport.TravelOrderDoc{
		Number:         rec.ID[:8],
		EmployeeName:   rec.GetEmployeeName(),
		Destination:    rec.Destination,
		Purpose:        rec.Purpose,
		DateFrom:       view.DateFrom,
		DateTo:         view.DateTo,
		Days:           view.Days,
		Transportation: rec.Transportation,
		EstimatedCost:  rec.EstimatedCost,
		Companions:     view.Companions,
		Status:         view.StatusName,
		ApprovedBy:     view.ApprovedBy,
		ApprovedAt:     view.ApprovedAt,
	}
	employee, err := i.employeesStore.GetByID(rec.EmployeeID)
	if err != nil {
		return "", nil, errors.Wrap(err, "ошибка получения сотрудника")
	}
	if employee != nil {
		doc.EmployeeIDNo = employee.IDNo
		doc.Position = employee.Position
		if employee.Department != nil {
			doc.Department = employee.Department.Name
		}
	}
	body, err = i.pdf.TravelOrder(doc)
	if err != nil {
		return "", nil, errors.Wrap(err, "ошибка формирования pdf")
	}
	return "travel_order_" + apimodels.FormatDate(rec.DateFrom) + "_" + doc.Number + ".pdf", body, nil
}

func (i impl) CompleteFinished(now time.Time) (int, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	ids, err := i.store.FinishedIDs(today)
	if err != nil {
		return 0, errors.Wrap(err, "ошибка получения завершенных командировок")
	}
	completed := 0
	for _, id := range ids {
		logger := log.WithField("rec_id", id)
		hMsg, err := i.Workflow().ChangeStatus("", id, models.RecordStatusCompleted, autoCompleteRemarks)
		if err != nil {
			logger.WithError(err).Error("ошибка завершения командировки")
			continue
		}
		if hMsg != "" {
			logger.Warn(hMsg)
			continue
		}
		completed++
	}
	return completed, nil
}
