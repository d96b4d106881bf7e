package testdb

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"hr-records-backend/db"
	"hr-records-backend/models"
	dbmodels "hr-records-backend/models/db"
)

// New отдельная in-memory БД sqlite с примененными миграциями, внешние ключи не проверяются
func New(t *testing.T) *gorm.DB {
	t.Helper()
	return open(t, false)
}

// NewStrict in-memory БД sqlite с проверкой внешних ключей
func NewStrict(t *testing.T) *gorm.DB {
	t.Helper()
	return open(t, true)
}

func open(t *testing.T, foreignKeys bool) *gorm.DB {
	t.Helper()
	fk := "0"
	if foreignKeys {
		fk = "1"
	}
	dsn := "file:" + uuid.New().String() + "?mode=memory&cache=shared&_foreign_keys=" + fk
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrateDB(conn))
	t.Cleanup(func() {
		sqlDB, err := conn.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})
	return conn
}

func Department(t *testing.T, conn *gorm.DB, name string) dbmodels.Department {
	t.Helper()
	rec := dbmodels.Department{Name: name}
	require.NoError(t, conn.Create(&rec).Error)
	return rec
}

func Employee(t *testing.T, conn *gorm.DB, idNo, firstName, lastName string, active bool) dbmodels.Employee {
	t.Helper()
	rec := dbmodels.Employee{
		IDNo:      idNo,
		FirstName: firstName,
		LastName:  lastName,
		Position:  "Инженер",
		Salary:    1000,
		IsActive:  active,
	}
	require.NoError(t, conn.Create(&rec).Error)
	return rec
}

func User(t *testing.T, conn *gorm.DB, email string, role models.UserRole) dbmodels.User {
	t.Helper()
	rec := dbmodels.User{
		Email:     email,
		FirstName: "Иван",
		LastName:  "Петров",
		Role:      role,
		IsActive:  true,
	}
	require.NoError(t, conn.Create(&rec).Error)
	return rec
}
