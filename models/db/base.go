package dbmodels

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"hr-records-backend/models"
)

var ErrNotFound = errors.New("запись не найдена")

type BaseModel struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	return nil
}

func (b BaseModel) GetID() string {
	return b.ID
}

// EmployeeRef ссылка записи на сотрудника
type EmployeeRef struct {
	EmployeeID string    `gorm:"type:varchar(36);index;not null"`
	Employee   *Employee `gorm:"foreignKey:EmployeeID"`
}

func (e EmployeeRef) GetEmployeeID() string {
	return e.EmployeeID
}

func (e EmployeeRef) GetEmployeeName() string {
	if e.Employee == nil {
		return ""
	}
	return e.Employee.GetFullName()
}

// Workflow поля согласования
type Workflow struct {
	Status       models.RecordStatus `gorm:"type:varchar(20);index;not null;default:'pending'"`
	ApprovedByID *string             `gorm:"type:varchar(36)"`
	ApprovedBy   *User               `gorm:"foreignKey:ApprovedByID"`
	ApprovedAt   *time.Time
	Remarks      string `gorm:"type:text"`
	CreatedByID  string `gorm:"type:varchar(36);index"`
	CreatedBy    *User  `gorm:"foreignKey:CreatedByID"`
}

// NewWorkflow новая запись всегда создается в статусе pending
func NewWorkflow(createdByID string) Workflow {
	return Workflow{
		Status:      models.RecordStatusPending,
		CreatedByID: createdByID,
	}
}

func (w Workflow) GetStatus() models.RecordStatus {
	return w.Status
}

func (w Workflow) GetCreatedByID() string {
	return w.CreatedByID
}

func (w Workflow) GetApprovedByName() string {
	if w.ApprovedBy == nil {
		return ""
	}
	return w.ApprovedBy.GetFullName()
}

// Attachment путь к файлу в хранилище
type Attachment struct {
	AttachmentPath string `gorm:"type:varchar(512)"`
}

func (a Attachment) GetAttachmentPath() string {
	return a.AttachmentPath
}

// RecordFilter общий фильтр списков кадровых записей
type RecordFilter struct {
	Search     string
	Status     models.RecordStatus
	Type       string
	EmployeeID string
	DateFrom   *time.Time
	DateTo     *time.Time
	Page       int
	Limit      int
}
