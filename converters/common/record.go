package common

import "strings"

// Record is one spreadsheet row keyed by the header of its sheet.
// Cells missing from the row, empty or whitespace-only are absent.
type Record struct {
	index map[string]int
	cells []string
}

// NewRecord pairs a row with its headers. Header names are trimmed, cell
// values are kept as read. When a header repeats, the first occurrence wins.
func NewRecord(headers []string, row []string) Record {
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		h = strings.TrimSpace(h)
		if _, dup := index[h]; !dup {
			index[h] = i
		}
	}
	return Record{index: index, cells: row}
}

// Has reports whether the column exists in the header.
func (r Record) Has(column string) bool {
	_, ok := r.index[column]
	return ok
}

// Get returns the cell value of the column and whether it is present.
func (r Record) Get(column string) (string, bool) {
	i, ok := r.index[column]
	if !ok || i >= len(r.cells) {
		return "", false
	}
	v := r.cells[i]
	if strings.TrimSpace(v) == "" {
		return "", false
	}
	return v, true
}
