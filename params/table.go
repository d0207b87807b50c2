package params

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const gutter = "  "

var header = [4]string{"Parameter", "Value", "Units", "Description"}

// RenderTable formats params as an aligned text table with the columns
// Parameter, Value, Units and Description, in the given order. Every column is
// padded to its widest cell (header included), so all lines have the same
// display width. A rule of dashes as wide as the header follows the header.
// The result ends with a newline.
func RenderTable(params []Parameter) string {
	rows := make([][4]string, 0, len(params)+1)
	rows = append(rows, header)
	for _, p := range params {
		d := p.Descriptor
		rows = append(rows, [4]string{d.Name, p.Value, d.Units, d.Description})
	}
	var widths [4]int
	for _, r := range rows {
		for i, cell := range r {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	lines := make([]string, 0, len(rows)+1)
	for i, r := range rows {
		cells := make([]string, len(r))
		for j, cell := range r {
			cells[j] = runewidth.FillRight(cell, widths[j])
		}
		lines = append(lines, strings.Join(cells, gutter))
		if i == 0 {
			lines = append(lines, strings.Repeat("-", runewidth.StringWidth(lines[0])))
		}
	}
	return strings.Join(lines, "\n") + "\n"
}
