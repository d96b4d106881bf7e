package db_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"hr-records-backend/db"
	"hr-records-backend/lib/utils/testdb"
	"hr-records-backend/models"
	dbmodels "hr-records-backend/models/db"
)

func TestSeed(t *testing.T) {
	t.Run(`admin only`, func(t *testing.T) {
		conn := testdb.New(t)
		require.NoError(t, db.Seed(conn, db.SeedOptions{AdminEmail: "root@local", AdminPassword: "secret"}))

		var users []dbmodels.User
		require.NoError(t, conn.Find(&users).Error)
		require.Len(t, users, 1)
		require.NoError(t, bcrypt.CompareHashAndPassword([]byte(users[0].Password), []byte("secret")))

		var count int64
		require.NoError(t, conn.Model(&dbmodels.Employee{}).Count(&count).Error)
		require.Zero(t, count)
	})

	t.Run(`demo data is idempotent`, func(t *testing.T) {
		conn := testdb.New(t)
		opts := db.SeedOptions{DemoData: true, DemoPassword: "demo"}
		require.NoError(t, db.Seed(conn, opts))
		require.NoError(t, db.Seed(conn, opts))

		counts := map[interface{}]int64{
			&dbmodels.Department{}: 3,
			&dbmodels.Line{}:       3,
			&dbmodels.Employee{}:   5,
			&dbmodels.User{}:       4,
		}
		for model, expected := range counts {
			var count int64
			require.NoError(t, conn.Model(model).Count(&count).Error)
			require.Equal(t, expected, count)
		}

		var employee dbmodels.Employee
		require.NoError(t, conn.Where("id_no = ?", "E1001").First(&employee).Error)
		require.NotNil(t, employee.DepartmentID)
		require.NotNil(t, employee.LineID)

		var manager dbmodels.User
		require.NoError(t, conn.Where("email = ?", "manager@demo.local").First(&manager).Error)
		require.Equal(t, models.ManagerRole, manager.Role)
	})

	t.Run(`admin without password`, func(t *testing.T) {
		conn := testdb.New(t)
		require.Error(t, db.Seed(conn, db.SeedOptions{AdminEmail: "root@local"}))
	})
}
