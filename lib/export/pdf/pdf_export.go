package pdfexport

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	unicodeFont     = "DejaVu"
	unicodeFontFile = "DejaVuSans.ttf"
	unicodeBoldFile = "DejaVuSans-Bold.ttf"
)

// TravelOrderDoc данные приказа о командировке
type TravelOrderDoc struct {
	Number         string
	EmployeeName   string
	EmployeeIDNo   string
	Position       string
	Department     string
	Destination    string
	Purpose        string
	DateFrom       string
	DateTo         string
	Days           int
	Transportation string
	EstimatedCost  float64
	Companions     []string
	Status         string
	ApprovedBy     string
	ApprovedAt     string
}

type Provider interface {
	TravelOrder(doc TravelOrderDoc) ([]byte, error)
}

var Instance Provider = impl{fontDir: "static/font/"}

func NewHandler(fontDir string) {
	Instance = impl{fontDir: fontDir}
}

type impl struct {
	fontDir string
}

func (i impl) TravelOrder(doc TravelOrderDoc) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("TravelOrder panic recover: %v", r)
		}
	}()
	pdf, family, tr := i.newDocument()
	pdf.AddPage()

	pdf.SetFont(family, "B", 16)
	pdf.CellFormat(0, 10, tr(fmt.Sprintf("Приказ о направлении в командировку № %s", doc.Number)), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont(family, "", 12)
	rows := [][2]string{
		{"Сотрудник", fmt.Sprintf("%s (таб. № %s)", doc.EmployeeName, doc.EmployeeIDNo)},
		{"Должность", doc.Position},
		{"Подразделение", doc.Department},
		{"Место назначения", doc.Destination},
		{"Период", fmt.Sprintf("%s - %s (%d дн.)", doc.DateFrom, doc.DateTo, doc.Days)},
		{"Транспорт", doc.Transportation},
		{"Смета расходов", fmt.Sprintf("%.2f", doc.EstimatedCost)},
		{"Сопровождающие", strings.Join(doc.Companions, ", ")},
		{"Статус", doc.Status},
	}
	if doc.ApprovedBy != "" {
		rows = append(rows, [2]string{"Согласовал", fmt.Sprintf("%s, %s", doc.ApprovedBy, doc.ApprovedAt)})
	}
	for _, row := range rows {
		pdf.SetFont(family, "B", 12)
		pdf.CellFormat(55, 8, tr(row[0]+":"), "", 0, "L", false, 0, "")
		pdf.SetFont(family, "", 12)
		pdf.MultiCell(0, 8, tr(row[1]), "", "L", false)
	}
	pdf.Ln(4)
	pdf.SetFont(family, "B", 12)
	pdf.CellFormat(0, 8, tr("Цель командировки"), "", 1, "L", false, 0, "")
	pdf.SetFont(family, "", 12)
	pdf.MultiCell(0, 7, tr(doc.Purpose), "", "L", false)

	pdf.Ln(20)
	pdf.CellFormat(90, 8, tr("Руководитель ____________"), "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 8, tr("С приказом ознакомлен ____________"), "", 1, "R", false, 0, "")

	if pdf.Error() != nil {
		return nil, pdf.Error()
	}
	buf := new(bytes.Buffer)
	if err = pdf.Output(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// newDocument без шрифтов с кириллицей документ собирается стандартным Helvetica
func (i impl) newDocument() (pdf *fpdf.Fpdf, family string, tr func(string) string) {
	pdf = fpdf.New("P", "mm", "A4", i.fontDir)
	pdf.SetMargins(20, 20, 20)
	if fileExists(filepath.Join(i.fontDir, unicodeFontFile)) {
		pdf.AddUTF8Font(unicodeFont, "", unicodeFontFile)
		boldFile := unicodeBoldFile
		if !fileExists(filepath.Join(i.fontDir, unicodeBoldFile)) {
			boldFile = unicodeFontFile
		}
		pdf.AddUTF8Font(unicodeFont, "B", boldFile)
		if pdf.Error() == nil {
			return pdf, unicodeFont, func(s string) string { return s }
		}
		log.WithError(pdf.Error()).Warn("ошибка загрузки шрифта для pdf")
		pdf = fpdf.New("P", "mm", "A4", i.fontDir)
		pdf.SetMargins(20, 20, 20)
	}
	return pdf, "Helvetica", pdf.UnicodeTranslatorFromDescriptor("")
}

func fileExists(name string) bool {
	_, err := os.Stat(name)
	return err == nil
}
