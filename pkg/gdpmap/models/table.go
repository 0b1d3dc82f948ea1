package models

import "fmt"

// Row is a single record of the GDP source, keyed by column name.
type Row struct {
	values map[string]string
}

// NewRow creates a row from a column to value mapping.
func NewRow(values map[string]string) Row {
	cp := make(map[string]string, len(values))
	for k, v := range values {
		cp[k] = v
	}
	return Row{values: cp}
}

// Get returns the value of column and whether the column exists in the row.
func (r Row) Get(column string) (string, bool) {
	v, ok := r.values[column]
	return v, ok
}

// Values returns a copy of the row contents.
func (r Row) Values() map[string]string {
	cp := make(map[string]string, len(r.values))
	for k, v := range r.values {
		cp[k] = v
	}
	return cp
}

// GdpTable is a fully materialized GDP source.
// One column (the key column) holds the country display-name; the other
// columns are year labels holding numeric strings or "" for no data.
type GdpTable struct {
	columns   []string
	keyColumn string
	rows      []Row
}

// NewGdpTable builds a table from a header and raw records.
// Records shorter than the header are padded with ""; extra trailing
// fields are dropped. keyColumn must be one of the header columns.
func NewGdpTable(header []string, keyColumn string, records [][]string) (*GdpTable, error) {
	found := false
	for _, col := range header {
		if col == keyColumn {
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("key column %q not in header", keyColumn)
	}

	t := &GdpTable{
		columns:   append([]string(nil), header...),
		keyColumn: keyColumn,
		rows:      make([]Row, 0, len(records)),
	}
	for _, rec := range records {
		values := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(rec) {
				values[col] = rec[i]
			} else {
				values[col] = ""
			}
		}
		t.rows = append(t.rows, Row{values: values})
	}
	return t, nil
}

// Columns returns the header columns in file order.
func (t *GdpTable) Columns() []string {
	return append([]string(nil), t.columns...)
}

// KeyColumn returns the name of the country display-name column.
func (t *GdpTable) KeyColumn() string {
	return t.keyColumn
}

// HasColumn reports whether column is part of the header.
func (t *GdpTable) HasColumn(column string) bool {
	for _, col := range t.columns {
		if col == column {
			return true
		}
	}
	return false
}

// Len returns the number of rows.
func (t *GdpTable) Len() int {
	return len(t.rows)
}

// Names returns the set of distinct key column values.
func (t *GdpTable) Names() map[string]struct{} {
	names := make(map[string]struct{}, len(t.rows))
	for _, r := range t.rows {
		names[r.values[t.keyColumn]] = struct{}{}
	}
	return names
}

// Index maps each key column value to its row. When a name occurs more
// than once the last row wins; every such name is reported in dups, once,
// in order of first repetition.
func (t *GdpTable) Index() (index map[string]Row, dups []string) {
	index = make(map[string]Row, len(t.rows))
	seen := make(map[string]bool)
	for _, r := range t.rows {
		name := r.values[t.keyColumn]
		if _, ok := index[name]; ok && !seen[name] {
			seen[name] = true
			dups = append(dups, name)
		}
		index[name] = r
	}
	return index, dups
}
