package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Column describes one table column: a header label, a fixed width and a
// cell renderer receiving the row index. The table itself knows nothing
// about the row type; each view supplies the renderer over its own data.
type Column struct {
	Title string
	Width int
	Cell  func(row int) string
}

// Table renders a header row plus Rows body rows from its column
// descriptors. No sorting, filtering or pagination; views own their data
// order.
type Table struct {
	Columns []Column
	Rows    int
	Cursor  int // -1 disables the row marker
}

func (t Table) Render() string {
	if len(t.Columns) == 0 {
		return ""
	}

	var b strings.Builder

	cells := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		cells[i] = pad(col.Title, col.Width)
	}
	b.WriteString("  " + headerStyle.Render(strings.Join(cells, "  ")))

	for row := 0; row < t.Rows; row++ {
		b.WriteString("\n")
		marker := "  "
		if row == t.Cursor {
			marker = cursorStyle.Render("▶") + " "
		}
		for i, col := range t.Columns {
			cells[i] = pad(col.Cell(row), col.Width)
		}
		b.WriteString(marker + strings.Join(cells, "  "))
	}
	return b.String()
}

// pad truncates or right-pads s to width cells.
func pad(s string, width int) string {
	if width <= 0 {
		return s
	}
	if w := lipgloss.Width(s); w > width {
		runes := []rune(s)
		if len(runes) > width {
			runes = runes[:width-1]
			return string(runes) + "…"
		}
		return s
	}
	return s + strings.Repeat(" ", width-lipgloss.Width(s))
}
