package scrape

import "strings"

// FindColumn returns the index of the first header that contains any of the
// keywords, ignoring case and surrounding whitespace, or -1. Headers are
// scanned left to right so the leftmost match wins.
func FindColumn(headers []string, keywords ...string) int {
	for i, h := range headers {
		h = strings.ToLower(strings.TrimSpace(h))
		for _, kw := range keywords {
			if kw != "" && strings.Contains(h, strings.ToLower(kw)) {
				return i
			}
		}
	}
	return -1
}

// Column resolves a column of t by header keyword
func (t Table) Column(keywords ...string) int {
	return FindColumn(t.Headers, keywords...)
}

// HasColumn reports whether any header matches one of the keywords
func (t Table) HasColumn(keywords ...string) bool {
	return t.Column(keywords...) >= 0
}

// Field reads one cell of row. The column is located by header keyword first;
// when no header matches, the positional fallback is used instead. A negative
// fallback counts from the end of the row (-1 is the last cell). Out-of-range
// positions read as "".
func (t Table) Field(row []string, fallback int, keywords ...string) string {
	idx := -1
	if len(keywords) > 0 {
		idx = t.Column(keywords...)
	}
	if idx < 0 {
		idx = fallback
		if idx < 0 {
			idx = len(row) + fallback
		}
	}
	return Cell(row, idx)
}

// Cell returns row[idx] or "" when idx is out of range
func Cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
