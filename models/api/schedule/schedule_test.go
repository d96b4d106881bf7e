package scheduleapimodels

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	dbmodels "hr-records-backend/models/db"
)

func TestScheduleValidate(t *testing.T) {
	data := ScheduleData{EmployeeID: "1", Title: "Shift", ScheduleDate: "2024-05-01", StartTime: "09:00", EndTime: "18:00"}
	require.Empty(t, data.Validate())

	data.EndTime = "09:00"
	require.Contains(t, data.Validate(), "end_time")

	data.EndTime = "25:00"
	require.Contains(t, data.Validate(), "end_time")
}

func TestCalendar(t *testing.T) {
	from, to, err := ParseMonth("2024-02", time.Now())
	require.NoError(t, err)
	require.Equal(t, "2024-02-01", from.Format("2006-01-02"))
	require.Equal(t, "2024-02-29", to.Format("2006-01-02"))

	_, _, err = ParseMonth("02.2024", time.Now())
	require.Error(t, err)

	list := []dbmodels.Schedule{
		{Title: "late", ScheduleDate: time.Date(2024, 2, 3, 0, 0, 0, 0, time.UTC), StartTime: "14:00"},
		{Title: "early", ScheduleDate: time.Date(2024, 2, 3, 0, 0, 0, 0, time.UTC), StartTime: "08:00"},
	}
	calendar := CalendarConvert(from, list)
	require.Equal(t, "2024-02", calendar.Month)
	require.Len(t, calendar.Days, 29)
	require.Equal(t, "2024-02-03", calendar.Days[2].Date)
	require.Equal(t, "early", calendar.Days[2].Items[0].Title)
	require.Empty(t, calendar.Days[0].Items)
}
