package models

import "slices"

// RecordKind вид кадровой записи
type RecordKind string

const (
	AwardKind       RecordKind = "award"
	PromotionKind   RecordKind = "promotion"
	ResignationKind RecordKind = "resignation"
	TerminationKind RecordKind = "termination"
	TransferKind    RecordKind = "transfer"
	WarningKind     RecordKind = "warning"
	TravelOrderKind RecordKind = "travel_order"
	ScheduleKind    RecordKind = "schedule"
)

var recordKindHumanName = map[RecordKind]string{
	AwardKind:       "Награждение",
	PromotionKind:   "Повышение",
	ResignationKind: "Увольнение по собственному желанию",
	TerminationKind: "Увольнение",
	TransferKind:    "Перевод",
	WarningKind:     "Предупреждение",
	TravelOrderKind: "Командировка",
	ScheduleKind:    "Расписание",
}

func (k RecordKind) ToHuman() string {
	if human, exist := recordKindHumanName[k]; exist {
		return human
	}
	return string(k)
}

type RecordStatus string

const (
	RecordStatusPending   RecordStatus = "pending"
	RecordStatusApproved  RecordStatus = "approved"
	RecordStatusRejected  RecordStatus = "rejected"
	RecordStatusCompleted RecordStatus = "completed"
	RecordStatusCancelled RecordStatus = "cancelled"
)

var recordStatusHumanName = map[RecordStatus]string{
	RecordStatusPending:   "На согласовании",
	RecordStatusApproved:  "Согласовано",
	RecordStatusRejected:  "Отклонено",
	RecordStatusCompleted: "Завершено",
	RecordStatusCancelled: "Отменено",
}

func (s RecordStatus) ToHuman() string {
	if human, exist := recordStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

// IsEditable правка и удаление доступны только до решения
func (s RecordStatus) IsEditable() bool {
	return s == RecordStatusPending
}

// StatusFlow допустимые переходы статусов для вида записи
type StatusFlow map[RecordStatus][]RecordStatus

var baseStatusFlow = StatusFlow{
	RecordStatusPending: {RecordStatusApproved, RecordStatusRejected},
}

var travelOrderStatusFlow = StatusFlow{
	RecordStatusPending:  {RecordStatusApproved, RecordStatusRejected},
	RecordStatusApproved: {RecordStatusCompleted, RecordStatusCancelled},
}

func (k RecordKind) StatusFlow() StatusFlow {
	if k == TravelOrderKind {
		return travelOrderStatusFlow
	}
	return baseStatusFlow
}

func (f StatusFlow) IsAllowChange(from, to RecordStatus) bool {
	return slices.Contains(f[from], to)
}

func (f StatusFlow) IsKnown(status RecordStatus) bool {
	if _, ok := f[status]; ok {
		return true
	}
	for _, targets := range f {
		if slices.Contains(targets, status) {
			return true
		}
	}
	return false
}

// IsFinal из статуса нет переходов
func (f StatusFlow) IsFinal(status RecordStatus) bool {
	return len(f[status]) == 0
}
