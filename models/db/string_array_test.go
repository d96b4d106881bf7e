package dbmodels

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestStringArray(t *testing.T) {
	t.Run(`column type depends on dialect`, func(t *testing.T) {
		pg := &gorm.DB{Config: &gorm.Config{Dialector: postgres.Dialector{Config: &postgres.Config{}}}}
		require.Equal(t, "text[]", StringArray{}.GormDBDataType(pg, nil))
		lite := &gorm.DB{Config: &gorm.Config{Dialector: sqlite.Dialector{}}}
		require.Equal(t, "text", StringArray{}.GormDBDataType(lite, nil))
	})

	t.Run(`value and scan`, func(t *testing.T) {
		value, err := StringArray{"Петров", "Сидоров, мл."}.Value()
		require.NoError(t, err)
		var result StringArray
		require.NoError(t, result.Scan(value))
		require.Equal(t, StringArray{"Петров", "Сидоров, мл."}, result)

		require.NoError(t, result.Scan(nil))
		require.Nil(t, result)
	})
}
