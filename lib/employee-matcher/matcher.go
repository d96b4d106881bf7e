package employeematcher

import (
	"fmt"
	"strings"
	"sync"
)

// Employee элемент списка сотрудников для подбора
type Employee struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	IDNo      string `json:"idno"`
}

// Label представление выбранного сотрудника в поле поиска: "Фамилия, Имя (таб.номер)"
func (e Employee) Label() string {
	return fmt.Sprintf("%s, %s (%s)", e.LastName, e.FirstName, e.IDNo)
}

func (e Employee) searchKeys() []string {
	return []string{
		strings.ToLower(e.FirstName),
		strings.ToLower(e.LastName),
		strings.ToLower(e.IDNo),
		strings.ToLower(e.FirstName + " " + e.LastName),
		strings.ToLower(e.LastName + " " + e.FirstName),
	}
}

func (e Employee) exactKeys() []string {
	return append(e.searchKeys(), strings.ToLower(e.Label()))
}

type Result struct {
	Filtered   []Employee
	SelectedID string
	Changed    bool // выбор изменился в результате точного совпадения
}

// NoMatches нечего выбрать, отправка формы недоступна
func (r Result) NoMatches() bool {
	return len(r.Filtered) == 0
}

// Match фильтрует список по запросу и при единственном точном совпадении выбирает сотрудника.
// Выбор меняется только если найденный сотрудник отличается от currentID,
// повторный вызов с тем же запросом и списком ничего не меняет.
func Match(query string, roster []Employee, currentID string) Result {
	result := Result{
		Filtered:   Filter(query, roster),
		SelectedID: currentID,
	}
	q := normalize(query)
	if q == "" {
		return result
	}
	exact, found := exactMatch(q, result.Filtered)
	if found && exact.ID != currentID {
		result.SelectedID = exact.ID
		result.Changed = true
	}
	return result
}

// Filter подстрочный поиск без учета регистра по имени, фамилии, табельному номеру
// и их сочетаниям. Пустой запрос возвращает весь список.
func Filter(query string, roster []Employee) []Employee {
	q := normalize(query)
	if q == "" {
		result := make([]Employee, len(roster))
		copy(result, roster)
		return result
	}
	result := make([]Employee, 0, len(roster))
	for _, employee := range roster {
		if isMatch(q, employee) {
			result = append(result, employee)
		}
	}
	return result
}

func isMatch(q string, employee Employee) bool {
	for _, key := range employee.searchKeys() {
		if strings.Contains(key, q) {
			return true
		}
	}
	// подпись выбранного сотрудника должна находить его же
	return strings.ToLower(employee.Label()) == q
}

func exactMatch(q string, list []Employee) (Employee, bool) {
	var found Employee
	count := 0
	for _, employee := range list {
		for _, key := range employee.exactKeys() {
			if key == q {
				found = employee
				count++
				break
			}
		}
		if count > 1 {
			return Employee{}, false
		}
	}
	return found, count == 1
}

func normalize(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// Selector хранит текущий выбор формы и уведомляет об автоматическом выборе
type Selector struct {
	mu         sync.Mutex
	selectedID string
	onSelect   func(Employee)
}

func NewSelector(currentID string, onSelect func(Employee)) *Selector {
	return &Selector{
		selectedID: currentID,
		onSelect:   onSelect,
	}
}

// Apply пересчитывает список, onSelect вызывается только при смене выбора
func (s *Selector) Apply(query string, roster []Employee) Result {
	s.mu.Lock()
	result := Match(query, roster, s.selectedID)
	var selected Employee
	if result.Changed {
		s.selectedID = result.SelectedID
		for _, employee := range result.Filtered {
			if employee.ID == result.SelectedID {
				selected = employee
				break
			}
		}
	}
	s.mu.Unlock()

	if result.Changed && s.onSelect != nil {
		s.onSelect(selected)
	}
	return result
}

// Select ручной выбор сотрудника
func (s *Selector) Select(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedID = id
}

func (s *Selector) SelectedID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedID
}
