package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	dbmodels "hr-records-backend/models/db"
)

func AutoMigrateDB(tx *gorm.DB) error {
	log.Info("Запуск миграций")
	migrations := []struct {
		name  string
		model interface{}
	}{
		{"Department", &dbmodels.Department{}},
		{"Line", &dbmodels.Line{}},
		{"Employee", &dbmodels.Employee{}},
		{"User", &dbmodels.User{}},
		{"Award", &dbmodels.Award{}},
		{"Promotion", &dbmodels.Promotion{}},
		{"Resignation", &dbmodels.Resignation{}},
		{"Termination", &dbmodels.Termination{}},
		{"Transfer", &dbmodels.Transfer{}},
		{"Warning", &dbmodels.Warning{}},
		{"TravelOrder", &dbmodels.TravelOrder{}},
		{"Schedule", &dbmodels.Schedule{}},
		{"StatusHistory", &dbmodels.StatusHistory{}},
		{"PushData", &dbmodels.PushData{}},
	}
	for _, m := range migrations {
		if err := tx.AutoMigrate(m.model); err != nil {
			return errors.Wrapf(err, "ошибка создания структуры %s", m.name)
		}
	}
	log.Info("Миграция прошла успешно")
	return nil
}
