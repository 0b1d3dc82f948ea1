package models

// CellRange represents cell coordinate bounds within a sheet.
type CellRange struct {
	// Sheet is the sheet the range refers to ("" if unqualified).
	Sheet string `json:"sheet,omitempty"`
	// R1 is the start row (1-based).
	R1 int `json:"r1"`
	// C1 is the start column (1-based).
	C1 int `json:"c1"`
	// R2 is the end row (1-based, inclusive).
	R2 int `json:"r2"`
	// C2 is the end column (1-based, inclusive).
	C2 int `json:"c2"`
}

// Clip returns the part of rows that lies inside the range.
// Rows and cells past the end of the data are simply absent.
func (a CellRange) Clip(rows [][]string) [][]string {
	var out [][]string
	for r := a.R1; r <= a.R2 && r <= len(rows); r++ {
		row := rows[r-1]
		var cells []string
		for c := a.C1; c <= a.C2 && c <= len(row); c++ {
			cells = append(cells, row[c-1])
		}
		out = append(out, cells)
	}
	return out
}
