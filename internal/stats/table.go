package stats

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// summaryRow is one label/value line of the session summary.
type summaryRow struct {
	label string
	value string
}

// formatRows pads labels to a common display width and right-aligns values,
// so emoji-prefixed labels still line up in a terminal.
func formatRows(rows []summaryRow) []string {
	labelWidth, valueWidth := 0, 0
	for _, row := range rows {
		labelWidth = max(labelWidth, runewidth.StringWidth(row.label))
		valueWidth = max(valueWidth, runewidth.StringWidth(row.value))
	}
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		label := row.label + strings.Repeat(" ", labelWidth-runewidth.StringWidth(row.label))
		value := strings.Repeat(" ", valueWidth-runewidth.StringWidth(row.value)) + row.value
		lines = append(lines, label+" "+value)
	}
	return lines
}
