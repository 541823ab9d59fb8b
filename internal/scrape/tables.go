// Package scrape turns loosely structured HTML pages into tables of text.
// Nothing here knows about pilots or flights; callers pick columns through
// the column resolver in columns.go.
package scrape

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Table is one <table> of a page, reduced to trimmed cell text
type Table struct {
	Headers []string
	Rows    [][]string
}

// Width is the number of columns, taking ragged rows into account
func (t Table) Width() int {
	w := len(t.Headers)
	for _, row := range t.Rows {
		if len(row) > w {
			w = len(row)
		}
	}
	return w
}

// ParseTables extracts every table of an HTML document in document order.
// Headers come from <thead>, or from a first row made only of <th> cells;
// otherwise they are the column positions ("0", "1", ...). Rows of nested
// tables are attributed to the nested table only.
func ParseTables(r io.Reader) ([]Table, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var tables []Table
	doc.Find("table").Each(func(_ int, tbl *goquery.Selection) {
		rows := tbl.Find("tr").FilterFunction(func(_ int, tr *goquery.Selection) bool {
			return tr.Closest("table").IsSelection(tbl)
		})

		var t Table
		rows.Each(func(i int, tr *goquery.Selection) {
			cells := tr.ChildrenFiltered("th, td")
			if cells.Length() == 0 {
				return
			}
			texts := make([]string, 0, cells.Length())
			cells.Each(func(_ int, c *goquery.Selection) {
				texts = append(texts, cellText(c))
			})

			if t.Headers == nil && len(t.Rows) == 0 && isHeaderRow(tr, cells) {
				t.Headers = texts
				return
			}
			t.Rows = append(t.Rows, texts)
		})

		if t.Headers == nil && len(t.Rows) == 0 {
			return
		}
		if t.Headers == nil {
			t.Headers = positionalHeaders(t.Width())
		}
		tables = append(tables, t)
	})

	return tables, nil
}

func isHeaderRow(tr *goquery.Selection, cells *goquery.Selection) bool {
	if tr.ParentFiltered("thead").Length() > 0 {
		return true
	}
	return cells.Length() == cells.Filter("th").Length()
}

func cellText(c *goquery.Selection) string {
	return strings.Join(strings.Fields(c.Text()), " ")
}

func positionalHeaders(n int) []string {
	h := make([]string, n)
	for i := range h {
		h[i] = strconv.Itoa(i)
	}
	return h
}
