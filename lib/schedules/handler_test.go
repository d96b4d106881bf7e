package scheduleshandler

import (
	"testing"

	"github.com/stretchr/testify/require"
	"hr-records-backend/lib/utils/testdb"
	apimodels "hr-records-backend/models/api"
	recordapimodels "hr-records-backend/models/api/records"
	scheduleapimodels "hr-records-backend/models/api/schedule"
	dbmodels "hr-records-backend/models/db"
)

func shift(employeeID, date, start, end string) scheduleapimodels.ScheduleData {
	return scheduleapimodels.ScheduleData{
		EmployeeID:   employeeID,
		Title:        "Shift",
		ScheduleType: "shift",
		ScheduleDate: date,
		StartTime:    start,
		EndTime:      end,
	}
}

func TestSchedules(t *testing.T) {
	conn := testdb.New(t)
	h := NewInstance(conn)
	employee := testdb.Employee(t, conn, "E100", "Jane", "Doe", true)
	inactive := testdb.Employee(t, conn, "E200", "John", "Smith", false)

	_, _, err := h.Create("", shift(employee.ID, "2024-05-01", "18:00", "09:00"))
	var errs apimodels.ValidationErrors
	require.ErrorAs(t, err, &errs)
	require.Contains(t, errs, "end_time")

	_, hMsg, err := h.Create("", shift(inactive.ID, "2024-05-01", "09:00", "18:00"))
	require.NoError(t, err)
	require.Contains(t, hMsg, "John Smith")

	first, hMsg, err := h.Create("", shift(employee.ID, "2024-05-01", "09:00", "18:00"))
	require.NoError(t, err)
	require.Empty(t, hMsg)
	_, _, err = h.Create("", shift(employee.ID, "2024-05-01", "07:00", "08:00"))
	require.NoError(t, err)
	_, _, err = h.Create("", shift(employee.ID, "2024-06-03", "09:00", "18:00"))
	require.NoError(t, err)

	list, rowCount, err := h.List(recordapimodels.RecordFilter{DateFrom: "2024-05-01", DateTo: "2024-05-31", Status: "ignored"})
	require.NoError(t, err)
	require.EqualValues(t, 2, rowCount)
	require.Len(t, list, 2)

	calendar, err := h.Calendar("2024-05", "")
	require.NoError(t, err)
	require.Len(t, calendar.Days, 31)
	require.Len(t, calendar.Days[0].Items, 2)
	require.Equal(t, "07:00", calendar.Days[0].Items[0].StartTime)

	request := shift(employee.ID, "2024-05-02", "10:00", "12:00")
	request.Location = "Office"
	hMsg, err = h.Update("", first, request)
	require.NoError(t, err)
	require.Empty(t, hMsg)
	view, err := h.Get(first)
	require.NoError(t, err)
	require.Equal(t, "2024-05-02", view.ScheduleDate)
	require.Equal(t, "Office", view.Location)

	require.NoError(t, h.Delete("", first))
	require.ErrorIs(t, h.Delete("", first), dbmodels.ErrNotFound)
	_, err = h.Get(first)
	require.ErrorIs(t, err, dbmodels.ErrNotFound)
}
