package parser

import (
	"fmt"

	"github.com/ukaji3/gdpmap-go/pkg/gdpmap/models"
	"github.com/xuri/excelize/v2"
)

// WorkbookOptions configures xlsx parsing.
type WorkbookOptions struct {
	// Sheet is the sheet to read. Defaults to the range sheet, then the first sheet.
	Sheet string
	// Range optionally restricts reading to a cell range (e.g. "A5:BK270").
	Range string
	// KeyColumn is the header name of the country display-name column.
	KeyColumn string
}

// LoadWorkbook reads a GDP table from an xlsx file.
// Cell values are read raw so numbers keep full precision.
func LoadWorkbook(path string, opts WorkbookOptions) (*models.GdpTable, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var area *models.CellRange
	if opts.Range != "" {
		area, err = ParseRange(opts.Range)
		if err != nil {
			return nil, err
		}
	}

	sheetName := opts.Sheet
	if sheetName == "" && area != nil {
		sheetName = area.Sheet
	}
	if sheetName == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook %s has no sheets", path)
		}
		sheetName = sheets[0]
	}

	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheetName, err)
	}

	if area != nil {
		rows = area.Clip(rows)
	}

	return buildTable(rows, opts.KeyColumn)
}
