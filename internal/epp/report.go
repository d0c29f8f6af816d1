package epp

import (
	"fmt"
	"strings"
)

// Entry is one core's current EPP value, labeled for display.
type Entry struct {
	Label string `json:"cpu"`
	Value string `json:"value"`
}

const (
	reportColumns       = 3
	reportColumnSpacing = 2
)

// FormatEntries renders entries as rows of three aligned columns, filled
// left to right in the given order. Every cell, including the last in a row,
// is padded with trailing spaces to the widest "<label>: <value>" cell, and
// cells are joined by two spaces. Each row ends with a newline.
func FormatEntries(entries []Entry) string {
	cells := make([]string, 0, len(entries))
	width := 0
	for _, e := range entries {
		cell := e.Label + ": " + e.Value
		if len(cell) > width {
			width = len(cell)
		}
		cells = append(cells, cell)
	}

	var b strings.Builder
	for start := 0; start < len(cells); start += reportColumns {
		end := start + reportColumns
		if end > len(cells) {
			end = len(cells)
		}

		row := make([]string, 0, reportColumns)
		for _, cell := range cells[start:end] {
			row = append(row, fmt.Sprintf("%-*s", width, cell))
		}
		b.WriteString(strings.Join(row, strings.Repeat(" ", reportColumnSpacing)))
		b.WriteByte('\n')
	}

	return b.String()
}
