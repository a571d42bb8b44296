// File: pkg/formatter/table.go
package formatter

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Spaces between adjacent columns
const columnGap = 2

type Table struct {
	Headers []string
	Rows    [][]string
}

// Creates a new table with the given headers
func NewTable(headers []string) *Table {
	return &Table{
		Headers: headers,
		Rows:    [][]string{},
	}
}

// Control characters in cells are escaped so each row stays on one line and nothing reaches the terminal raw
func (t *Table) AddRow(row []string) {
	cells := make([]string, len(row))
	for i, c := range row {
		cells[i] = escapeControl(c)
	}
	t.Rows = append(t.Rows, cells)
}

// Replaces control characters (tab, newline, ESC, ...) with their Go escape form, e.g. "\t" or "\x1b"
func escapeControl(s string) string {
	if strings.IndexFunc(s, unicode.IsControl) < 0 {
		return s
	}

	var b strings.Builder
	for _, r := range s {
		if unicode.IsControl(r) {
			q := strconv.QuoteRune(r)
			b.WriteString(q[1 : len(q)-1])
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Renders the table as aligned plain text: a header row, a rule under it, then the rows.
// There is no outer border and no column rules; each column is as wide as its widest cell.
func (t *Table) String() string {
	if len(t.Headers) == 0 {
		return ""
	}

	lastCol := len(t.Headers) - 1
	cell := lipgloss.NewStyle()
	padded := cell.PaddingRight(columnGap)

	tbl := table.New().
		Border(lipgloss.ASCIIBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(false).
		BorderRow(false).
		BorderHeader(true).
		Headers(t.Headers...).
		Rows(t.Rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == lastCol {
				return cell
			}
			return padded
		})

	return tbl.String()
}
