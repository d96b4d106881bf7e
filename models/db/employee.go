package dbmodels

import (
	"fmt"
	"time"
)

type Employee struct {
	BaseModel
	IDNo         string      `gorm:"type:varchar(50);uniqueIndex;not null"`
	FirstName    string      `gorm:"type:varchar(150);not null"`
	LastName     string      `gorm:"type:varchar(150);not null"`
	MiddleName   string      `gorm:"type:varchar(150)"`
	Email        string      `gorm:"type:varchar(255)"`
	Phone        string      `gorm:"type:varchar(30)"`
	Position     string      `gorm:"type:varchar(255)"`
	Salary       float64     `gorm:"type:decimal(12,2)"`
	DepartmentID *string     `gorm:"type:varchar(36);index"`
	Department   *Department `gorm:"foreignKey:DepartmentID"`
	LineID       *string     `gorm:"type:varchar(36);index"`
	Line         *Line       `gorm:"foreignKey:LineID"`
	HireDate     *time.Time  `gorm:"type:date"`
	IsActive     bool        `gorm:"index"`
	PhotoPath    string      `gorm:"type:varchar(512)"`
	ThumbPath    string      `gorm:"type:varchar(512)"`
}

func (e Employee) GetFullName() string {
	return fmt.Sprintf("%s %s", e.FirstName, e.LastName)
}

type EmployeeFilter struct {
	Search       string
	ActiveOnly   bool
	DepartmentID string
	LineID       string
}
