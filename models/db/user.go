package dbmodels

import (
	"fmt"
	"time"

	"hr-records-backend/models"
)

type User struct {
	BaseModel
	Email      string          `gorm:"type:varchar(255);uniqueIndex;not null"`
	Password   string          `gorm:"type:varchar(128)"`
	FirstName  string          `gorm:"type:varchar(150)"`
	LastName   string          `gorm:"type:varchar(150)"`
	Role       models.UserRole `gorm:"type:varchar(50)"`
	IsActive   bool
	EmployeeID *string `gorm:"type:varchar(36)"`
	LastLogin  *time.Time
}

func (u User) GetFullName() string {
	return fmt.Sprintf("%s %s", u.FirstName, u.LastName)
}
