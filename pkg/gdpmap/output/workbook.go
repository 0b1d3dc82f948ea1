package output

import (
	"fmt"
	"math"

	"github.com/ukaji3/gdpmap-go/pkg/gdpmap/models"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// workbookHeader is the first row of every year sheet.
var workbookHeader = []interface{}{"Code", "Country", "Status", "log10 GDP", "GDP"}

// WriteWorkbook writes one sheet per extraction listing every catalog code
// with its partition, log-scaled value and GDP value.
func WriteWorkbook(path string, extractions []*models.YearExtraction, catalog *models.CountryCatalog) error {
	f, err := BuildWorkbook(extractions, catalog)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.SaveAs(path)
}

// BuildWorkbook builds the report workbook in memory.
func BuildWorkbook(extractions []*models.YearExtraction, catalog *models.CountryCatalog) (*excelize.File, error) {
	if len(extractions) == 0 {
		return nil, fmt.Errorf("no extractions to write")
	}

	f := excelize.NewFile()
	defaultSheet := f.GetSheetName(0)

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, err
	}

	printer := message.NewPrinter(language.English)
	for i, e := range extractions {
		sheetName := e.Year
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
				f.Close()
				return nil, err
			}
		} else if _, err := f.NewSheet(sheetName); err != nil {
			f.Close()
			return nil, err
		}

		if err := writeYearSheet(f, sheetName, e, catalog, printer, headerStyle); err != nil {
			f.Close()
			return nil, fmt.Errorf("sheet %s: %w", sheetName, err)
		}
	}
	f.SetActiveSheet(0)
	return f, nil
}

func writeYearSheet(f *excelize.File, sheet string, e *models.YearExtraction, catalog *models.CountryCatalog, printer *message.Printer, headerStyle int) error {
	header := workbookHeader
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", "E1", headerStyle); err != nil {
		return err
	}

	for i, code := range catalog.Codes() {
		name, _ := catalog.Name(code)
		status := e.Status(code)
		row := []interface{}{code, name, string(status)}
		if logValue, ok := e.Values[code]; ok {
			row = append(row, logValue, printer.Sprintf("%.0f", math.Pow(10, logValue)))
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	if err := f.SetColWidth(sheet, "B", "B", 40); err != nil {
		return err
	}
	return f.SetColWidth(sheet, "E", "E", 22)
}
