package transfershandler

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	lineprovider "hr-records-backend/lib/dicts/line"
	linestore "hr-records-backend/lib/dicts/line/store"
	employeesstore "hr-records-backend/lib/employees/store"
	"hr-records-backend/lib/utils/testdb"
	"hr-records-backend/models"
	apimodels "hr-records-backend/models/api"
	recordapimodels "hr-records-backend/models/api/records"
	dbmodels "hr-records-backend/models/db"
)

func TestTransfer(t *testing.T) {
	conn := testdb.New(t)
	kind := Kind()
	kind.Lines = lineprovider.NewInstance(conn, true)
	h := NewInstance(conn, kind)
	production := testdb.Department(t, conn, "Production")
	warehouse := testdb.Department(t, conn, "Warehouse")
	employee := testdb.Employee(t, conn, "E100", "Jane", "Doe", true)
	store := employeesstore.NewInstance(conn)
	require.NoError(t, store.Update(employee.ID, map[string]interface{}{"department_id": production.ID}))

	id, hMsg, err := h.Create("", recordapimodels.TransferData{
		EmployeeID:     employee.ID,
		ToDepartmentID: warehouse.ID,
		TransferDate:   "2024-07-01",
	}, nil)
	require.NoError(t, err)
	require.Empty(t, hMsg)

	view, err := h.Get(id)
	require.NoError(t, err)
	require.Equal(t, production.ID, view.FromDepartmentID)
	require.Equal(t, "Production", view.FromDepartmentName)
	require.Equal(t, "Warehouse", view.ToDepartmentName)

	page, err := h.Page(context.Background(), recordapimodels.RecordFilter{})
	require.NoError(t, err)
	require.Len(t, page.Departments, 2)
	require.NotNil(t, page.Lines)
	require.Empty(t, page.Degraded)

	hMsg, err = h.ChangeStatus("", id, recordapimodels.StatusChangeRequest{Status: "approved"})
	require.NoError(t, err)
	require.Empty(t, hMsg)

	moved, err := store.GetByID(employee.ID)
	require.NoError(t, err)
	require.NotNil(t, moved.DepartmentID)
	require.Equal(t, warehouse.ID, *moved.DepartmentID)
	require.Nil(t, moved.LineID)
}

func TestTransferPlaceChecks(t *testing.T) {
	conn := testdb.NewStrict(t)
	h := NewInstance(conn, Kind())
	hr := testdb.User(t, conn, "hr@example.com", models.HRRole)
	production := testdb.Department(t, conn, "Production")
	warehouse := testdb.Department(t, conn, "Warehouse")
	lines := linestore.NewInstance(conn)
	assemblyID, err := lines.Create(dbmodels.Line{DepartmentID: production.ID, Name: "Assembly"})
	require.NoError(t, err)
	loadingID, err := lines.Create(dbmodels.Line{DepartmentID: warehouse.ID, Name: "Loading"})
	require.NoError(t, err)
	employee := testdb.Employee(t, conn, "E100", "Jane", "Doe", true)

	fieldErrs := func(t *testing.T, err error) apimodels.ValidationErrors {
		t.Helper()
		var errs apimodels.ValidationErrors
		require.ErrorAs(t, err, &errs)
		return errs
	}

	t.Run(`unknown department and employee without department`, func(t *testing.T) {
		_, _, err := h.Create(hr.ID, recordapimodels.TransferData{
			EmployeeID:     employee.ID,
			ToDepartmentID: uuid.New().String(),
			TransferDate:   "2024-07-01",
		}, nil)
		errs := fieldErrs(t, err)
		require.Contains(t, errs, "from_department_id")
		require.Contains(t, errs, "to_department_id")
	})

	t.Run(`line of another department`, func(t *testing.T) {
		_, _, err := h.Create(hr.ID, recordapimodels.TransferData{
			EmployeeID:       employee.ID,
			FromDepartmentID: production.ID,
			ToDepartmentID:   warehouse.ID,
			ToLineID:         assemblyID,
			TransferDate:     "2024-07-01",
		}, nil)
		errs := fieldErrs(t, err)
		require.Equal(t, []string{"линия не относится к подразделению"}, errs["to_line_id"])
	})

	t.Run(`unknown line`, func(t *testing.T) {
		_, _, err := h.Create(hr.ID, recordapimodels.TransferData{
			EmployeeID:       employee.ID,
			FromDepartmentID: production.ID,
			ToDepartmentID:   warehouse.ID,
			ToLineID:         uuid.New().String(),
			TransferDate:     "2024-07-01",
		}, nil)
		errs := fieldErrs(t, err)
		require.Equal(t, []string{"линия не найдена"}, errs["to_line_id"])
	})

	t.Run(`same place`, func(t *testing.T) {
		_, _, err := h.Create(hr.ID, recordapimodels.TransferData{
			EmployeeID:       employee.ID,
			FromDepartmentID: production.ID,
			ToDepartmentID:   production.ID,
			TransferDate:     "2024-07-01",
		}, nil)
		errs := fieldErrs(t, err)
		require.Contains(t, errs, "to_department_id")
	})

	var count int64
	require.NoError(t, conn.Model(&dbmodels.Transfer{}).Count(&count).Error)
	require.Zero(t, count)

	t.Run(`explicit source department`, func(t *testing.T) {
		id, hMsg, err := h.Create(hr.ID, recordapimodels.TransferData{
			EmployeeID:       employee.ID,
			FromDepartmentID: production.ID,
			ToDepartmentID:   warehouse.ID,
			ToLineID:         loadingID,
			TransferDate:     "2024-07-01",
		}, nil)
		require.NoError(t, err)
		require.Empty(t, hMsg)

		hMsg, err = h.Update(hr.ID, id, recordapimodels.TransferData{
			EmployeeID:       employee.ID,
			FromDepartmentID: production.ID,
			ToDepartmentID:   uuid.New().String(),
			TransferDate:     "2024-07-01",
		}, nil)
		errs := fieldErrs(t, err)
		require.Contains(t, errs, "to_department_id")
		require.Empty(t, hMsg)

		hMsg, err = h.ChangeStatus(hr.ID, id, recordapimodels.StatusChangeRequest{Status: "approved"})
		require.NoError(t, err)
		require.Empty(t, hMsg)

		moved, err := employeesstore.NewInstance(conn).GetByID(employee.ID)
		require.NoError(t, err)
		require.Equal(t, warehouse.ID, *moved.DepartmentID)
		require.Equal(t, loadingID, *moved.LineID)
	})
}

func TestTransferUpdateNewEmployee(t *testing.T) {
	conn := testdb.New(t)
	h := NewInstance(conn, Kind())
	production := testdb.Department(t, conn, "Production")
	warehouse := testdb.Department(t, conn, "Warehouse")
	logistics := testdb.Department(t, conn, "Logistics")
	store := employeesstore.NewInstance(conn)
	first := testdb.Employee(t, conn, "E100", "Jane", "Doe", true)
	second := testdb.Employee(t, conn, "E200", "John", "Smith", true)
	require.NoError(t, store.Update(first.ID, map[string]interface{}{"department_id": production.ID}))
	require.NoError(t, store.Update(second.ID, map[string]interface{}{"department_id": logistics.ID}))

	id, _, err := h.Create("", recordapimodels.TransferData{
		EmployeeID:     first.ID,
		ToDepartmentID: warehouse.ID,
		TransferDate:   "2024-07-01",
	}, nil)
	require.NoError(t, err)

	hMsg, err := h.Update("", id, recordapimodels.TransferData{
		EmployeeID:       second.ID,
		FromDepartmentID: production.ID,
		ToDepartmentID:   warehouse.ID,
		TransferDate:     "2024-07-01",
	}, nil)
	require.NoError(t, err)
	require.Empty(t, hMsg)

	view, err := h.Get(id)
	require.NoError(t, err)
	require.Equal(t, second.ID, view.EmployeeID)
	require.Equal(t, logistics.ID, view.FromDepartmentID)
}
