package models

import "fmt"

type PushCode string

type PushTpl struct {
	Title string
	Msg   string
}

const (
	PushRecordApproved  PushCode = "PushRecordApproved"
	PushRecordRejected  PushCode = "PushRecordRejected"
	PushRecordCompleted PushCode = "PushRecordCompleted"
	PushRecordCancelled PushCode = "PushRecordCancelled"
)

var PushCodeMap = map[PushCode]PushTpl{
	PushRecordApproved:  {Title: "Запись согласована", Msg: "%v по сотруднику %v согласовано пользователем %v."},
	PushRecordRejected:  {Title: "Запись отклонена", Msg: "%v по сотруднику %v отклонено пользователем %v."},
	PushRecordCompleted: {Title: "Командировка завершена", Msg: "%v по сотруднику %v завершено пользователем %v."},
	PushRecordCancelled: {Title: "Командировка отменена", Msg: "%v по сотруднику %v отменено пользователем %v."},
}

var statusPushCode = map[RecordStatus]PushCode{
	RecordStatusApproved:  PushRecordApproved,
	RecordStatusRejected:  PushRecordRejected,
	RecordStatusCompleted: PushRecordCompleted,
	RecordStatusCancelled: PushRecordCancelled,
}

func StatusPushCode(status RecordStatus) (PushCode, bool) {
	code, ok := statusPushCode[status]
	return code, ok
}

func GetPushMsg(code PushCode, kind RecordKind, employeeName, userName string) (title, msg string) {
	tpl, ok := PushCodeMap[code]
	if !ok {
		return "", ""
	}
	return tpl.Title, fmt.Sprintf(tpl.Msg, kind.ToHuman(), employeeName, userName)
}
