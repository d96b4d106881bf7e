package wsmodels

type ServerMessage struct {
	ToUserID   string `json:"-"`
	Time       string `json:"time"`                  // время события
	Code       string `json:"code"`                  // код события
	Title      string `json:"title"`                 // заголовок уведомления
	Msg        string `json:"msg"`                   // текст события
	RecordKind string `json:"record_kind,omitempty"` // вид записи
	RecordID   string `json:"record_id,omitempty"`   // ид записи
}
