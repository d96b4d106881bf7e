package models

type UserRole string

const (
	AdminRole    UserRole = "ADMIN"
	HRRole       UserRole = "HR"
	ManagerRole  UserRole = "MANAGER"
	EmployeeRole UserRole = "EMPLOYEE"
)

var roleHumanName = map[UserRole]string{
	AdminRole:    "Администратор",
	HRRole:       "Специалист по кадрам",
	ManagerRole:  "Руководитель",
	EmployeeRole: "Сотрудник",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsValid() bool {
	_, ok := roleHumanName[r]
	return ok
}

const SystemUser = "Система"
