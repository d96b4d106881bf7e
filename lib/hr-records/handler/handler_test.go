package recordhandler

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	lineprovider "hr-records-backend/lib/dicts/line"
	filestorage "hr-records-backend/lib/file-storage"
	recordstore "hr-records-backend/lib/hr-records/store"
	"hr-records-backend/lib/utils/testdb"
	"hr-records-backend/models"
	apimodels "hr-records-backend/models/api"
	recordapimodels "hr-records-backend/models/api/records"
	dbmodels "hr-records-backend/models/db"
)

type memFiles struct {
	filestorage.Provider
	objects map[string][]byte
	deleted []string
	counter int
}

func newMemFiles() *memFiles {
	return &memFiles{objects: map[string][]byte{}}
}

func (m *memFiles) Upload(_ context.Context, folder, fileName string, body []byte, _ string) (string, error) {
	m.counter++
	objectPath := fmt.Sprintf("%s/%d-%s", folder, m.counter, fileName)
	m.objects[objectPath] = body
	return objectPath, nil
}

func (m *memFiles) Delete(_ context.Context, objectPath string) error {
	delete(m.objects, objectPath)
	m.deleted = append(m.deleted, objectPath)
	return nil
}

func awardKind(files filestorage.Provider) Kind[dbmodels.Award, recordapimodels.AwardView] {
	return Kind[dbmodels.Award, recordapimodels.AwardView]{
		Store: recordstore.Options{
			DateColumn:    "award_date",
			TypeColumn:    "award_type",
			SearchColumns: []string{"award_type"},
		},
		Convert:       recordapimodels.AwardConvert,
		ExportHeaders: recordapimodels.AwardExportHeaders,
		ExportRow:     recordapimodels.AwardExportRow,
		Folder:        "awards",
		Files:         files,
	}
}

func awardData(employeeID string) recordapimodels.AwardData {
	return recordapimodels.AwardData{
		EmployeeID: employeeID,
		AwardType:  "Gratitude",
		CashPrice:  500,
		AwardDate:  "2024-05-01",
	}
}

func pdfFile() *filestorage.File {
	return &filestorage.File{Name: "order.pdf", ContentType: "application/pdf", Body: []byte("%PDF-1.4")}
}

func TestCreate(t *testing.T) {
	t.Run(`validation errors`, func(t *testing.T) {
		conn := testdb.New(t)
		files := newMemFiles()
		h := NewInstance[dbmodels.Award, recordapimodels.AwardData](conn, awardKind(files))

		_, _, err := h.Create("", recordapimodels.AwardData{AwardDate: "01.05.2024"}, nil)
		var errs apimodels.ValidationErrors
		require.ErrorAs(t, err, &errs)
		require.Contains(t, errs, "employee_id")
		require.Contains(t, errs, "award_type")
		require.Contains(t, errs, "award_date")

		employee := testdb.Employee(t, conn, "E100", "Jane", "Doe", true)
		_, _, err = h.Create("", awardData(employee.ID), &filestorage.File{Name: "virus.exe", Body: []byte("x")})
		require.ErrorAs(t, err, &errs)
		require.Contains(t, errs, "attachment")
		require.Empty(t, files.objects)
	})

	t.Run(`attachment is stored with record`, func(t *testing.T) {
		conn := testdb.New(t)
		files := newMemFiles()
		h := NewInstance[dbmodels.Award, recordapimodels.AwardData](conn, awardKind(files))
		hr := testdb.User(t, conn, "hr@example.com", models.HRRole)
		employee := testdb.Employee(t, conn, "E100", "Jane", "Doe", true)

		id, hMsg, err := h.Create(hr.ID, awardData(employee.ID), pdfFile())
		require.NoError(t, err)
		require.Empty(t, hMsg)

		view, err := h.Get(id)
		require.NoError(t, err)
		require.Equal(t, models.RecordStatusPending, view.Status)
		require.Equal(t, "awards/1-order.pdf", view.AttachmentPath)
		require.NotEmpty(t, view.AttachmentURL)
		require.Equal(t, hr.ID, view.CreatedByID)
		require.True(t, view.Editable)
		require.Equal(t, []models.RecordStatus{models.RecordStatusApproved, models.RecordStatusRejected}, view.NextStatuses)
		require.NotNil(t, view.Employee)
		require.Equal(t, "E100", view.Employee.IDNo)
	})

	t.Run(`refused record removes uploaded attachment`, func(t *testing.T) {
		conn := testdb.New(t)
		files := newMemFiles()
		h := NewInstance[dbmodels.Award, recordapimodels.AwardData](conn, awardKind(files))
		inactive := testdb.Employee(t, conn, "E200", "John", "Smith", false)

		_, hMsg, err := h.Create("", awardData(inactive.ID), pdfFile())
		require.NoError(t, err)
		require.NotEmpty(t, hMsg)
		require.Empty(t, files.objects)
		require.Len(t, files.deleted, 1)
	})
}

func TestUpdate(t *testing.T) {
	conn := testdb.New(t)
	files := newMemFiles()
	h := NewInstance[dbmodels.Award, recordapimodels.AwardData](conn, awardKind(files))
	manager := testdb.User(t, conn, "manager@example.com", models.ManagerRole)
	employee := testdb.Employee(t, conn, "E100", "Jane", "Doe", true)

	id, _, err := h.Create("", awardData(employee.ID), pdfFile())
	require.NoError(t, err)

	request := awardData(employee.ID)
	request.Gift = "Watch"
	hMsg, err := h.Update("", id, request, &filestorage.File{Name: "scan.png", Body: []byte("png")})
	require.NoError(t, err)
	require.Empty(t, hMsg)

	view, err := h.Get(id)
	require.NoError(t, err)
	require.Equal(t, "Watch", view.Gift)
	require.Equal(t, "awards/2-scan.png", view.AttachmentPath)
	require.Equal(t, []string{"awards/1-order.pdf"}, files.deleted)

	hMsg, err = h.ChangeStatus(manager.ID, id, recordapimodels.StatusChangeRequest{Status: "approved", Remarks: " ok "})
	require.NoError(t, err)
	require.Empty(t, hMsg)

	hMsg, err = h.Update("", id, request, pdfFile())
	require.NoError(t, err)
	require.NotEmpty(t, hMsg)
	require.Len(t, files.objects, 1)

	view, err = h.Get(id)
	require.NoError(t, err)
	require.Equal(t, "ok", view.Remarks)
	require.Equal(t, "Иван Петров", view.ApprovedBy)
	require.False(t, view.Editable)
	require.Empty(t, view.NextStatuses)

	history, err := h.History(id)
	require.NoError(t, err)
	require.Len(t, history, 1)
	require.Equal(t, "Иван Петров", history[0].ChangedBy)
}

func TestChangeStatusValidation(t *testing.T) {
	conn := testdb.New(t)
	h := NewInstance[dbmodels.Award, recordapimodels.AwardData](conn, awardKind(newMemFiles()))

	_, err := h.ChangeStatus("", "any", recordapimodels.StatusChangeRequest{})
	var errs apimodels.ValidationErrors
	require.ErrorAs(t, err, &errs)
	require.Contains(t, errs, "status")

	_, err = h.ChangeStatus("", "missing", recordapimodels.StatusChangeRequest{Status: "approved"})
	require.ErrorIs(t, err, dbmodels.ErrNotFound)
}

func TestPage(t *testing.T) {
	t.Run(`records and roster`, func(t *testing.T) {
		conn := testdb.New(t)
		h := NewInstance[dbmodels.Award, recordapimodels.AwardData](conn, awardKind(newMemFiles()))
		employee := testdb.Employee(t, conn, "E100", "Jane", "Doe", true)
		testdb.Employee(t, conn, "E200", "John", "Smith", false)
		_, _, err := h.Create("", awardData(employee.ID), nil)
		require.NoError(t, err)

		page, err := h.Page(context.Background(), recordapimodels.RecordFilter{})
		require.NoError(t, err)
		require.Len(t, page.Records, 1)
		require.EqualValues(t, 1, page.RowCount)
		require.Len(t, page.Employees, 1)
		require.Equal(t, "E100", page.Employees[0].IDNo)
		require.Empty(t, page.Degraded)
		require.Empty(t, page.Notice)
		require.Nil(t, page.Departments)
	})

	t.Run(`lines unavailable degrade page`, func(t *testing.T) {
		conn := testdb.New(t)
		kind := awardKind(newMemFiles())
		kind.WithDepartments = true
		kind.Lines = lineprovider.NewInstance(conn, false)
		h := NewInstance[dbmodels.Award, recordapimodels.AwardData](conn, kind)
		testdb.Department(t, conn, "Production")

		page, err := h.Page(context.Background(), recordapimodels.RecordFilter{})
		require.NoError(t, err)
		require.Len(t, page.Departments, 1)
		require.Nil(t, page.Lines)
		require.Equal(t, []string{"lines"}, page.Degraded)
		require.Equal(t, "Часть данных недоступна: линии", page.Notice)
	})

	t.Run(`bad filter`, func(t *testing.T) {
		conn := testdb.New(t)
		h := NewInstance[dbmodels.Award, recordapimodels.AwardData](conn, awardKind(newMemFiles()))
		_, err := h.Page(context.Background(), recordapimodels.RecordFilter{DateFrom: "2024-05-02", DateTo: "2024-05-01"})
		var errs apimodels.ValidationErrors
		require.ErrorAs(t, err, &errs)
		require.Contains(t, errs, "date_to")
	})
}

func TestExport(t *testing.T) {
	conn := testdb.New(t)
	h := NewInstance[dbmodels.Award, recordapimodels.AwardData](conn, awardKind(newMemFiles()))
	employee := testdb.Employee(t, conn, "E100", "Jane", "Doe", true)
	for n := 0; n < 3; n++ {
		_, _, err := h.Create("", awardData(employee.ID), nil)
		require.NoError(t, err)
	}

	buf, err := h.Export(recordapimodels.RecordFilter{Pagination: apimodels.Pagination{Page: 1, Limit: 1}})
	require.NoError(t, err)
	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(models.AwardKind.ToHuman())
	require.NoError(t, err)
	require.Len(t, rows, 4)
	require.Equal(t, "Jane Doe", rows[1][0])
}
