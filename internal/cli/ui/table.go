package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Table is a plain aligned table.
type Table struct {
	writer  io.Writer
	headers []string
	rows    [][]string
	noColor bool
}

// NewTable creates a new table with the given headers
func NewTable(w io.Writer, headers []string, noColor bool) *Table {
	return &Table{writer: w, headers: headers, noColor: noColor}
}

// AddRow adds a row to the table
func (t *Table) AddRow(cells ...string) {
	t.rows = append(t.rows, cells)
}

// Render renders the table to the writer
func (t *Table) Render() {
	if len(t.headers) == 0 {
		return
	}

	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = len(h)
	}

	for _, row := range t.rows {
		for i := 0; i < len(row) && i < len(widths); i++ {
			widths[i] = max(widths[i], len(row[i]))
		}
	}

	bold := color.New(color.Bold)
	if t.noColor {
		bold.DisableColor()
	}

	bold.Fprintln(t.writer, t.line(t.headers, widths))

	for _, row := range t.rows {
		fmt.Fprintln(t.writer, t.line(row, widths))
	}
}

func (t *Table) line(cells []string, widths []int) string {
	parts := make([]string, len(widths))
	for i := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}

		parts[i] = cell + strings.Repeat(" ", widths[i]-len(cell))
	}

	return strings.TrimRight(strings.Join(parts, "  "), " ")
}
