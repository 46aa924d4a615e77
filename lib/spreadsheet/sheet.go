package spreadsheet

import "strings"

// Sheet is the in-memory form of one tabular worksheet: a header row plus
// data rows keyed by header. Cells are kept as the strings the workbook
// rendered; typing happens at the inference and coercion boundaries.
type Sheet struct {
	Headers []string
	Rows    []map[string]string
}

// HasHeader reports whether the sheet contains the exact header
func (s *Sheet) HasHeader(name string) bool {
	for _, h := range s.Headers {
		if h == name {
			return true
		}
	}
	return false
}

// HeaderFold returns the sheet header matching name case-insensitively,
// or "" when absent.
func (s *Sheet) HeaderFold(name string) string {
	for _, h := range s.Headers {
		if strings.EqualFold(h, name) {
			return h
		}
	}
	return ""
}

// ColumnValues returns the non-empty cells of one column in row order
func (s *Sheet) ColumnValues(header string) []string {
	var values []string
	for _, row := range s.Rows {
		if v := strings.TrimSpace(row[header]); v != "" {
			values = append(values, v)
		}
	}
	return values
}
