package render

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// gridBox draws every rule single; Grid doubles the outer and header rules
// afterwards.
var gridBox = table.BoxStyle{
	BottomLeft:       "╘",
	BottomRight:      "╛",
	BottomSeparator:  "╧",
	EmptySeparator:   " ",
	Left:             "│",
	LeftSeparator:    "├",
	MiddleHorizontal: "─",
	MiddleSeparator:  "┼",
	MiddleVertical:   "│",
	PaddingLeft:      " ",
	PaddingRight:     " ",
	Right:            "│",
	RightSeparator:   "┤",
	TopLeft:          "╒",
	TopRight:         "╕",
	TopSeparator:     "╤",
}

var doubleRule = strings.NewReplacer("─", "═", "├", "╞", "┼", "╪", "┤", "╡")

// Grid renders rows as a box-drawn table. Cells may span several lines; every
// line of a row is padded to the tallest cell. When header is true the first
// row is separated from the rest by a double rule.
func Grid(rows [][]string, header bool) string {
	cols := 0
	for _, row := range rows {
		cols = max(cols, len(row))
	}
	if cols == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.Style{
		Box: gridBox,
		Options: table.Options{
			DrawBorder:      true,
			SeparateColumns: true,
			SeparateRows:    true,
		},
	})
	configs := make([]table.ColumnConfig, cols)
	for i := range configs {
		configs[i] = table.ColumnConfig{Number: i + 1, Align: text.AlignLeft, VAlign: text.VAlignTop}
	}
	tw.SetColumnConfigs(configs)

	for _, row := range rows {
		r := make(table.Row, cols)
		for c := range r {
			r[c] = ""
			if c < len(row) {
				r[c] = row[c]
			}
		}
		tw.AppendRow(r)
	}

	lines := strings.Split(strings.TrimSuffix(tw.Render(), "\n"), "\n")
	lines[0] = doubleRule.Replace(lines[0])
	lines[len(lines)-1] = doubleRule.Replace(lines[len(lines)-1])
	if header && len(rows) > 1 {
		// The first separator line follows the header row.
		for i := 1; i < len(lines)-1; i++ {
			if strings.HasPrefix(lines[i], "├") {
				lines[i] = doubleRule.Replace(lines[i])
				break
			}
		}
	}
	return strings.Join(lines, "\n")
}
