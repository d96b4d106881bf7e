package dbmodels

import (
	"time"

	"hr-records-backend/models"
)

type Transfer struct {
	BaseModel
	EmployeeRef
	Workflow
	FromDepartmentID string      `gorm:"type:varchar(36);not null"`
	FromDepartment   *Department `gorm:"foreignKey:FromDepartmentID"`
	ToDepartmentID   string      `gorm:"type:varchar(36);not null"`
	ToDepartment     *Department `gorm:"foreignKey:ToDepartmentID"`
	FromLineID       *string     `gorm:"type:varchar(36)"`
	FromLine         *Line       `gorm:"foreignKey:FromLineID"`
	ToLineID         *string     `gorm:"type:varchar(36)"`
	ToLine           *Line       `gorm:"foreignKey:ToLineID"`
	TransferDate     time.Time   `gorm:"type:date;index"`
	Reason           string      `gorm:"type:text"`
}

func (Transfer) Kind() models.RecordKind {
	return models.TransferKind
}

// PreparedFields поля, заполняемые по карточке сотрудника
func (t Transfer) PreparedFields() map[string]interface{} {
	return map[string]interface{}{
		"from_department_id": t.FromDepartmentID,
		"from_line_id":       t.FromLineID,
	}
}
