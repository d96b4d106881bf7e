package promotionshandler

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	employeesstore "hr-records-backend/lib/employees/store"
	"hr-records-backend/lib/utils/testdb"
	"hr-records-backend/models"
	recordapimodels "hr-records-backend/models/api/records"
)

func TestApprovedPromotionUpdatesEmployee(t *testing.T) {
	conn := testdb.New(t)
	h := NewInstance(conn, Kind())
	manager := testdb.User(t, conn, "manager@example.com", models.ManagerRole)
	employee := testdb.Employee(t, conn, "E100", "Jane", "Doe", true)

	id, hMsg, err := h.Create("", recordapimodels.PromotionData{
		EmployeeID:    employee.ID,
		NewPosition:   "Lead engineer",
		NewSalary:     1500,
		PromotionDate: "2024-06-01",
	}, nil)
	require.NoError(t, err)
	require.Empty(t, hMsg)

	view, err := h.Get(id)
	require.NoError(t, err)
	require.Equal(t, "Инженер", view.PreviousPosition)
	require.EqualValues(t, 1000, view.PreviousSalary)

	hMsg, err = h.ChangeStatus(manager.ID, id, recordapimodels.StatusChangeRequest{Status: "approved"})
	require.NoError(t, err)
	require.Empty(t, hMsg)

	updated, err := employeesstore.NewInstance(conn).GetByID(employee.ID)
	require.NoError(t, err)
	require.Equal(t, "Lead engineer", updated.Position)
	require.EqualValues(t, 1500, updated.Salary)
}

func TestRejectedPromotionKeepsEmployee(t *testing.T) {
	conn := testdb.New(t)
	h := NewInstance(conn, Kind())
	employee := testdb.Employee(t, conn, "E100", "Jane", "Doe", true)

	id, _, err := h.Create("", recordapimodels.PromotionData{
		EmployeeID:    employee.ID,
		NewPosition:   "Lead engineer",
		PromotionDate: "2024-06-01",
	}, nil)
	require.NoError(t, err)

	hMsg, err := h.ChangeStatus("", id, recordapimodels.StatusChangeRequest{Status: "rejected", Remarks: "рано"})
	require.NoError(t, err)
	require.Empty(t, hMsg)

	updated, err := employeesstore.NewInstance(conn).GetByID(employee.ID)
	require.NoError(t, err)
	require.Equal(t, "Инженер", updated.Position)
}

func TestPromotionUpdate(t *testing.T) {
	conn := testdb.New(t)
	h := NewInstance(conn, Kind())
	store := employeesstore.NewInstance(conn)
	employee := testdb.Employee(t, conn, "E100", "Jane", "Doe", true)
	other := testdb.Employee(t, conn, "E200", "John", "Smith", true)
	require.NoError(t, store.Update(other.ID, map[string]interface{}{"position": "Техник", "salary": 800}))

	id, _, err := h.Create("", recordapimodels.PromotionData{
		EmployeeID:    employee.ID,
		NewPosition:   "Lead engineer",
		PromotionDate: "2024-06-01",
	}, nil)
	require.NoError(t, err)

	t.Run(`empty baseline is filled from employee`, func(t *testing.T) {
		hMsg, err := h.Update("", id, recordapimodels.PromotionData{
			EmployeeID:    employee.ID,
			NewPosition:   "Head of line",
			NewSalary:     2000,
			PromotionDate: "2024-06-01",
		}, nil)
		require.NoError(t, err)
		require.Empty(t, hMsg)

		view, err := h.Get(id)
		require.NoError(t, err)
		require.Equal(t, "Head of line", view.NewPosition)
		require.Equal(t, "Инженер", view.PreviousPosition)
		require.EqualValues(t, 1000, view.PreviousSalary)
	})

	t.Run(`baseline follows new employee`, func(t *testing.T) {
		hMsg, err := h.Update("", id, recordapimodels.PromotionData{
			EmployeeID:       other.ID,
			PreviousPosition: "Инженер",
			PreviousSalary:   1000,
			NewPosition:      "Lead engineer",
			PromotionDate:    "2024-06-01",
		}, nil)
		require.NoError(t, err)
		require.Empty(t, hMsg)

		view, err := h.Get(id)
		require.NoError(t, err)
		require.Equal(t, other.ID, view.EmployeeID)
		require.Equal(t, "Техник", view.PreviousPosition)
		require.EqualValues(t, 800, view.PreviousSalary)
	})
}

func TestApprovalAppliesCurrentRecord(t *testing.T) {
	conn := testdb.New(t)
	h := NewInstance(conn, Kind())
	employee := testdb.Employee(t, conn, "E100", "Jane", "Doe", true)

	id, _, err := h.Create("", recordapimodels.PromotionData{
		EmployeeID:    employee.ID,
		NewPosition:   "Lead engineer",
		PromotionDate: "2024-06-01",
	}, nil)
	require.NoError(t, err)

	// правка записи фиксируется между чтением записи и сменой статуса
	var once sync.Once
	err = conn.Callback().Update().Before("gorm:update").Register("test:edit_before_decision", func(tx *gorm.DB) {
		if tx.Statement.Table != "promotions" {
			return
		}
		once.Do(func() {
			require.NoError(t, tx.Session(&gorm.Session{NewDB: true}).
				Exec("UPDATE promotions SET new_position = ? WHERE id = ?", "Head of line", id).Error)
		})
	})
	require.NoError(t, err)

	hMsg, err := h.ChangeStatus("", id, recordapimodels.StatusChangeRequest{Status: "approved"})
	require.NoError(t, err)
	require.Empty(t, hMsg)

	updated, err := employeesstore.NewInstance(conn).GetByID(employee.ID)
	require.NoError(t, err)
	require.Equal(t, "Head of line", updated.Position)
}
