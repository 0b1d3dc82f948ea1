package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/gdpmap-go/pkg/gdpmap/models"
	"github.com/xuri/excelize/v2"
)

// ParseRange parses a range reference such as "A5:BK270",
// "$A$5:$BK$270" or "'GDP Data'!A5:BK270".
func ParseRange(ref string) (*models.CellRange, error) {
	ref = strings.TrimSpace(ref)

	var sheet string
	if idx := strings.LastIndex(ref, "!"); idx >= 0 {
		sheet = strings.Trim(ref[:idx], "'")
		ref = ref[idx+1:]
	}

	// Remove $ signs
	ref = strings.ReplaceAll(ref, "$", "")

	parts := strings.Split(ref, ":")
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid range %q: expected start:end", ref)
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return nil, fmt.Errorf("invalid range start %q: %w", parts[0], err)
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return nil, fmt.Errorf("invalid range end %q: %w", parts[1], err)
	}

	if endRow < startRow {
		startRow, endRow = endRow, startRow
	}
	if endCol < startCol {
		startCol, endCol = endCol, startCol
	}

	return &models.CellRange{
		Sheet: sheet,
		R1:    startRow,
		C1:    startCol,
		R2:    endRow,
		C2:    endCol,
	}, nil
}
