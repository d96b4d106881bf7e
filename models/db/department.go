package dbmodels

import "github.com/pkg/errors"

type Department struct {
	BaseModel
	Name string `gorm:"type:varchar(255);uniqueIndex;not null"`
}

func (d Department) Validate() error {
	if d.Name == "" {
		return errors.New("не указано название подразделения")
	}
	return nil
}

// Line производственная линия подразделения
type Line struct {
	BaseModel
	DepartmentID string `gorm:"type:varchar(36);index;not null"`
	Name         string `gorm:"type:varchar(255);not null"`
}

func (l Line) Validate() error {
	if l.DepartmentID == "" {
		return errors.New("отсутсвует ссылка на подразделение")
	}
	if l.Name == "" {
		return errors.New("не указано название линии")
	}
	return nil
}
