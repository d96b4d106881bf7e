package xlsexport

import (
	"bytes"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

const (
	defaultSheet = "Sheet1"
	columnWidth  = 25
	fontFamily   = "Times New Roman"
	fontSize     = 11
)

type Provider interface {
	// ExportList таблица с шапкой, значения сверх числа колонок шапки отбрасываются
	ExportList(sheetName string, headers []string, rows [][]interface{}) (*bytes.Buffer, error)
}

var Instance Provider = impl{}

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

func (i impl) ExportList(sheetName string, headers []string, rows [][]interface{}) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := defaultSheet
	if sheetName != "" {
		if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
			return nil, errors.Wrap(err, "ошибка переименования листа в xlsx")
		}
		sheet = sheetName
	}
	t := table{f: f, sheet: sheet, cols: len(headers)}
	if err := t.header(headers); err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if err := t.body(rows); err != nil {
		return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
	}
	return f.WriteToBuffer()
}

type table struct {
	f     *excelize.File
	sheet string
	cols  int
}

func (t table) cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

// header первая строка жирным, закреплена и с фильтром
func (t table) header(headers []string) error {
	if t.cols == 0 {
		return nil
	}
	values := make([]interface{}, 0, t.cols)
	for _, h := range headers {
		values = append(values, h)
	}
	if err := t.f.SetSheetRow(t.sheet, "A1", &values); err != nil {
		return err
	}
	style, err := t.f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Font:      &excelize.Font{Bold: true, Family: fontFamily, Size: fontSize},
	})
	if err != nil {
		return err
	}
	last := t.cell(t.cols, 1)
	if err = t.f.SetCellStyle(t.sheet, "A1", last, style); err != nil {
		return err
	}
	lastCol, err := excelize.ColumnNumberToName(t.cols)
	if err != nil {
		return err
	}
	if err = t.f.SetColWidth(t.sheet, "A", lastCol, columnWidth); err != nil {
		return err
	}
	if err = t.f.AutoFilter(t.sheet, "A1:"+last, nil); err != nil {
		return err
	}
	return t.f.SetPanes(t.sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

func (t table) body(rows [][]interface{}) error {
	if len(rows) == 0 || t.cols == 0 {
		return nil
	}
	style, err := t.f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
		Font:      &excelize.Font{Family: fontFamily, Size: fontSize},
	})
	if err != nil {
		return err
	}
	if err = t.f.SetCellStyle(t.sheet, "A2", t.cell(t.cols, len(rows)+1), style); err != nil {
		return err
	}
	for n, values := range rows {
		if len(values) > t.cols {
			values = values[:t.cols]
		}
		if err = t.f.SetSheetRow(t.sheet, t.cell(1, n+2), &values); err != nil {
			return err
		}
	}
	return nil
}
