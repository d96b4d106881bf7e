package xlsexport

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportList(t *testing.T) {
	headers := []string{"Сотрудник", "Таб. номер", "Премия"}
	rows := [][]interface{}{
		{"Jane Doe", "E100", 1500.5},
		{"John Smith", "E200", 0, "лишняя колонка"},
	}
	buf, err := impl{}.ExportList("Награды", headers, rows)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	require.Equal(t, []string{"Награды"}, f.GetSheetList())
	got, err := f.GetRows("Награды")
	require.NoError(t, err)
	require.Equal(t, [][]string{
		{"Сотрудник", "Таб. номер", "Премия"},
		{"Jane Doe", "E100", "1500.5"},
		{"John Smith", "E200", "0"},
	}, got)

	panes, err := f.GetPanes("Награды")
	require.NoError(t, err)
	require.True(t, panes.Freeze)
	require.Equal(t, 1, panes.YSplit)

	t.Run(`empty list has header only`, func(t *testing.T) {
		buf, err := impl{}.ExportList("", headers, nil)
		require.NoError(t, err)
		f, err := excelize.OpenReader(buf)
		require.NoError(t, err)
		defer f.Close()
		got, err := f.GetRows("Sheet1")
		require.NoError(t, err)
		require.Len(t, got, 1)
	})
}
