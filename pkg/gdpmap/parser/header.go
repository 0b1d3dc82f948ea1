package parser

import (
	"errors"
	"fmt"

	"github.com/ukaji3/gdpmap-go/pkg/gdpmap/models"
)

// ErrKeyColumnNotFound indicates no record holds the key column name.
var ErrKeyColumnNotFound = errors.New("key column not found")

// findHeaderRow returns the index of the first row holding keyColumn,
// or -1. World Bank exports put a few metadata lines above the header.
func findHeaderRow(rows [][]string, keyColumn string) int {
	for rowIdx, row := range rows {
		for _, cell := range row {
			if cell == keyColumn {
				return rowIdx
			}
		}
	}
	return -1
}

// isEmptyRow reports whether every cell of row is "".
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}

// buildTable locates the header and turns the rows below it into a table.
// Rows without any data are dropped.
func buildTable(rows [][]string, keyColumn string) (*models.GdpTable, error) {
	if keyColumn == "" {
		return nil, fmt.Errorf("%w: empty key column name", ErrKeyColumnNotFound)
	}
	headerIdx := findHeaderRow(rows, keyColumn)
	if headerIdx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrKeyColumnNotFound, keyColumn)
	}

	var records [][]string
	for _, row := range rows[headerIdx+1:] {
		if len(row) == 0 || isEmptyRow(row) {
			continue
		}
		records = append(records, row)
	}
	return models.NewGdpTable(rows[headerIdx], keyColumn, records)
}
