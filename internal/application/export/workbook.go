package export

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// Content types served by the export endpoints
const (
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ContentTypeCSV  = "text/csv"
)

const sheetName = "Sheet1"

// workbook accumulates rows under a fixed header row on a single sheet
type workbook struct {
	file *excelize.File
	row  int
}

func newWorkbook(headers []string) (*workbook, error) {
	f := excelize.NewFile()
	cells := make([]any, len(headers))
	for i, h := range headers {
		cells[i] = h
	}
	if err := f.SetSheetRow(sheetName, "A1", &cells); err != nil {
		return nil, err
	}
	return &workbook{file: f, row: 1}, nil
}

func (w *workbook) addRow(values []any) error {
	w.row++
	cell, err := excelize.CoordinatesToCellName(1, w.row)
	if err != nil {
		return err
	}
	return w.file.SetSheetRow(sheetName, cell, &values)
}

func (w *workbook) bytes() ([]byte, error) {
	buf, err := w.file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatDate(t time.Time) string {
	return t.Format("02/01/2006")
}

func formatDatePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatDate(*t)
}

func formatMontant(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func formatBool(b bool) string {
	if b {
		return "Oui"
	}
	return "Non"
}
