// Package table locates the target attribute table inside a parsed document
// and extracts its ordered header keys and row cells.
package table

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
)

var (
	// ErrHeaderNotFound reports that the locator selector matched nothing.
	ErrHeaderNotFound = errors.New("table header section not found")
	// ErrNotATable reports that the matched header section is not directly
	// owned by a <table> element.
	ErrNotATable = errors.New("header section owner is not a table")
)

// Locate finds the first header section matching the selector and verifies
// its immediate owner is a <table>. It returns the header section and the
// owning table. Both failure modes usually mean the target page layout
// changed.
func Locate(doc *goquery.Document, selector string) (*goquery.Selection, *goquery.Selection, error) {
	matcher, err := cascadia.Compile(selector)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid selector %q: %w", selector, err)
	}
	thead := doc.FindMatcher(matcher).First()
	if thead.Length() == 0 {
		return nil, nil, fmt.Errorf("%w: selector %q matched no element", ErrHeaderNotFound, selector)
	}
	owner := thead.Parent()
	if name := goquery.NodeName(owner); name != "table" {
		return nil, nil, fmt.Errorf("%w: expected <table>, found <%s>", ErrNotATable, name)
	}
	return thead, owner, nil
}

// HeaderKeys returns the column keys of the header section in document order.
// Each key prefers the text of a nested <abbr> over the full cell text, both
// whitespace-normalized.
func HeaderKeys(thead *goquery.Selection) []string {
	var keys []string
	thead.Find("th").Each(func(_ int, th *goquery.Selection) {
		full := Clean(th.Text())
		key := full
		if abbr := th.Find("abbr").First(); abbr.Length() > 0 {
			key = Clean(abbr.Text())
		}
		// The damage columns share the abbreviation "DMG"; the min/max
		// qualifier only appears in the full cell text.
		if key == "DMG" && strings.Contains(full, "(MIN)") {
			key = "DMG (MIN)"
		}
		if key == "DMG" && strings.Contains(full, "(MAX)") {
			key = "DMG (MAX)"
		}
		keys = append(keys, key)
	})
	return keys
}

// Cell is one extracted body cell: its cleaned text, the coerced value, the
// explicit sort-value attribute when present, and the text of the first
// non-empty descendant link when present.
type Cell struct {
	Text      string
	Value     Value
	SortValue *string
	LinkText  *string
}

// Rows returns the body rows of the table as ordered cell lists. Rows with no
// body cell at all (header repeats, decoration) are dropped here; rows whose
// cell count disagrees with the header arity are the caller's policy call.
func Rows(tbl *goquery.Selection) [][]Cell {
	var rows [][]Cell
	tbl.Find("tbody tr").Each(func(_ int, tr *goquery.Selection) {
		tds := tr.ChildrenFiltered("td")
		if tds.Length() == 0 {
			return
		}
		cells := make([]Cell, 0, tds.Length())
		tds.Each(func(_ int, td *goquery.Selection) {
			cells = append(cells, parseCell(td))
		})
		rows = append(rows, cells)
	})
	return rows
}

func parseCell(td *goquery.Selection) Cell {
	c := Cell{Text: Clean(td.Text())}
	if sv, ok := td.Attr("data-sort-value"); ok {
		c.SortValue = &sv
	}
	// The first meaningful link text is usually the row's display name.
	td.Find("a").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		if t := Clean(a.Text()); t != "" {
			c.LinkText = &t
			return false
		}
		return true
	})
	src := c.Text
	if c.SortValue != nil {
		src = *c.SortValue
	}
	c.Value = Coerce(src)
	return c
}
