// Package parser loads GDP tables from delimited text and xlsx files.
package parser

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/gdpmap-go/pkg/gdpmap/models"
)

// Options configures Load.
type Options struct {
	// Delimiter separates fields in delimited text.
	Delimiter rune
	// Quote encloses fields in delimited text.
	Quote rune
	// KeyColumn is the header name of the country display-name column.
	KeyColumn string
	// Sheet selects the workbook sheet (xlsx only).
	Sheet string
	// Range restricts the workbook cells read (xlsx only).
	Range string
}

// workbookExts are file extensions read with excelize.
var workbookExts = map[string]bool{
	".xlsx": true,
	".xlsm": true,
	".xltx": true,
	".xltm": true,
}

// IsWorkbook reports whether path names an xlsx-family workbook.
func IsWorkbook(path string) bool {
	return workbookExts[strings.ToLower(filepath.Ext(path))]
}

// Load reads the GDP table at path. Workbooks are detected by extension;
// every other file is read as delimited text. The file is closed before
// Load returns.
func Load(path string, opts Options) (*models.GdpTable, error) {
	if IsWorkbook(path) {
		return LoadWorkbook(path, WorkbookOptions{
			Sheet:     opts.Sheet,
			Range:     opts.Range,
			KeyColumn: opts.KeyColumn,
		})
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	table, err := LoadDelimited(f, DelimitedOptions{
		Delimiter: opts.Delimiter,
		Quote:     opts.Quote,
		KeyColumn: opts.KeyColumn,
	})
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	return table, nil
}
