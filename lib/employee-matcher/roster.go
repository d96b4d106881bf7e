package employeematcher

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// DecodeRoster разбор списка сотрудников из запроса клиента.
// Все, что не является массивом, считается пустым списком.
func DecodeRoster(raw json.RawMessage) []Employee {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '[' {
		return []Employee{}
	}
	var items []rosterItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return []Employee{}
	}
	result := make([]Employee, 0, len(items))
	for _, item := range items {
		result = append(result, item.toEmployee())
	}
	return result
}

// rosterItem принимает как наши имена полей, так и Fname/Lname из старого клиента
type rosterItem struct {
	ID        json.RawMessage `json:"id"`
	FirstName string          `json:"first_name"`
	LastName  string          `json:"last_name"`
	Fname     string          `json:"Fname"`
	Lname     string          `json:"Lname"`
	IDNo      json.RawMessage `json:"idno"`
}

func (r rosterItem) toEmployee() Employee {
	e := Employee{
		ID:        rawToString(r.ID),
		FirstName: r.FirstName,
		LastName:  r.LastName,
		IDNo:      rawToString(r.IDNo),
	}
	if e.FirstName == "" {
		e.FirstName = r.Fname
	}
	if e.LastName == "" {
		e.LastName = r.Lname
	}
	return e
}

func rawToString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		if i, err := n.Int64(); err == nil {
			return strconv.FormatInt(i, 10)
		}
		return n.String()
	}
	return ""
}
