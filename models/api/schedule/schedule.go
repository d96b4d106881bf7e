package scheduleapimodels

import (
	"sort"
	"strings"
	"time"

	apimodels "hr-records-backend/models/api"
	employeeapimodels "hr-records-backend/models/api/employee"
	dbmodels "hr-records-backend/models/db"
)

const timeLayout = "15:04"

type ScheduleData struct {
	EmployeeID   string `json:"employee_id" form:"employee_id" validate:"required"`
	Title        string `json:"title" form:"title" validate:"required,max=255"`
	ScheduleType string `json:"schedule_type" form:"schedule_type" validate:"max=50"`
	ScheduleDate string `json:"schedule_date" form:"schedule_date" validate:"required"`
	StartTime    string `json:"start_time" form:"start_time" validate:"required"`
	EndTime      string `json:"end_time" form:"end_time" validate:"required"`
	Location     string `json:"location" form:"location" validate:"max=255"`
	Notes        string `json:"notes" form:"notes" validate:"max=5000"`
}

func (s ScheduleData) GetEmployeeID() string {
	return s.EmployeeID
}

func (s ScheduleData) Validate() apimodels.ValidationErrors {
	errs := apimodels.ValidateStruct(s)
	errs.CheckDate("schedule_date", s.ScheduleDate, false)
	start := checkTime(errs, "start_time", s.StartTime)
	end := checkTime(errs, "end_time", s.EndTime)
	if start != nil && end != nil && !end.After(*start) {
		errs.Add("end_time", "время окончания должно быть позже времени начала")
	}
	return errs
}

func checkTime(errs apimodels.ValidationErrors, field, value string) *time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	t, err := time.Parse(timeLayout, value)
	if err != nil {
		errs.Add(field, "время должно быть в формате ЧЧ:ММ")
		return nil
	}
	return &t
}

func (s ScheduleData) ToDB(userID string) *dbmodels.Schedule {
	scheduleDate, _ := apimodels.ParseDate(s.ScheduleDate)
	rec := &dbmodels.Schedule{
		EmployeeRef:  dbmodels.EmployeeRef{EmployeeID: s.EmployeeID},
		Title:        strings.TrimSpace(s.Title),
		ScheduleType: strings.TrimSpace(s.ScheduleType),
		StartTime:    strings.TrimSpace(s.StartTime),
		EndTime:      strings.TrimSpace(s.EndTime),
		Location:     strings.TrimSpace(s.Location),
		Notes:        s.Notes,
		CreatedByID:  userID,
	}
	if scheduleDate != nil {
		rec.ScheduleDate = *scheduleDate
	}
	return rec
}

func (s ScheduleData) UpdMap() map[string]interface{} {
	rec := s.ToDB("")
	return map[string]interface{}{
		"employee_id":   rec.EmployeeID,
		"title":         rec.Title,
		"schedule_type": rec.ScheduleType,
		"schedule_date": rec.ScheduleDate,
		"start_time":    rec.StartTime,
		"end_time":      rec.EndTime,
		"location":      rec.Location,
		"notes":         rec.Notes,
	}
}

type ScheduleView struct {
	ID           string                           `json:"id"`
	EmployeeID   string                           `json:"employee_id"`
	Employee     *employeeapimodels.EmployeeShort `json:"employee,omitempty"`
	Title        string                           `json:"title"`
	ScheduleType string                           `json:"schedule_type"`
	ScheduleDate string                           `json:"schedule_date"`
	StartTime    string                           `json:"start_time"`
	EndTime      string                           `json:"end_time"`
	Location     string                           `json:"location"`
	Notes        string                           `json:"notes"`
	CreatedByID  string                           `json:"created_by_id"`
}

func ScheduleConvert(rec dbmodels.Schedule) ScheduleView {
	result := ScheduleView{
		ID:           rec.ID,
		EmployeeID:   rec.EmployeeID,
		Title:        rec.Title,
		ScheduleType: rec.ScheduleType,
		ScheduleDate: apimodels.FormatDate(rec.ScheduleDate),
		StartTime:    rec.StartTime,
		EndTime:      rec.EndTime,
		Location:     rec.Location,
		Notes:        rec.Notes,
		CreatedByID:  rec.CreatedByID,
	}
	if rec.Employee != nil {
		employee := employeeapimodels.EmployeeShortConvert(*rec.Employee)
		result.Employee = &employee
	}
	return result
}

// ParseMonth разбор месяца календаря YYYY-MM, пустое значение - текущий месяц
func ParseMonth(value string, now time.Time) (from, to time.Time, err error) {
	value = strings.TrimSpace(value)
	if value == "" {
		from = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	} else {
		from, err = time.Parse("2006-01", value)
		if err != nil {
			return from, to, apimodels.ValidationErrors{"month": {"месяц должен быть в формате ГГГГ-ММ"}}
		}
	}
	to = from.AddDate(0, 1, -1)
	return from, to, nil
}

type CalendarDay struct {
	Date  string         `json:"date"`
	Items []ScheduleView `json:"items"`
}

type CalendarView struct {
	Month string        `json:"month"`
	Days  []CalendarDay `json:"days"`
}

// CalendarConvert раскладывает события по дням месяца, в пределах дня по времени начала
func CalendarConvert(month time.Time, list []dbmodels.Schedule) CalendarView {
	byDay := map[string][]ScheduleView{}
	for _, rec := range list {
		view := ScheduleConvert(rec)
		byDay[view.ScheduleDate] = append(byDay[view.ScheduleDate], view)
	}
	result := CalendarView{
		Month: month.Format("2006-01"),
		Days:  []CalendarDay{},
	}
	for day := month; day.Month() == month.Month(); day = day.AddDate(0, 0, 1) {
		key := apimodels.FormatDate(day)
		items := byDay[key]
		if items == nil {
			items = []ScheduleView{}
		}
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].StartTime < items[j].StartTime
		})
		result.Days = append(result.Days, CalendarDay{Date: key, Items: items})
	}
	return result
}
