package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Table renders static rows for the non-interactive commands.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// NewTable creates an empty table.
func NewTable(title string, headers ...string) *Table {
	return &Table{Title: title, Headers: headers}
}

// AddRow appends a row. Missing cells render empty, extra cells are dropped.
func (t *Table) AddRow(cells ...string) {
	row := make([]string, len(t.Headers))
	copy(row, cells)
	t.Rows = append(t.Rows, row)
}

func (t *Table) columnWidths() []int {
	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// Render draws the table. An empty table renders nothing.
func (t *Table) Render(styles Styles) string {
	if len(t.Rows) == 0 {
		return ""
	}
	widths := t.columnWidths()
	sep := styles.Muted.Render(" │ ")

	line := func(cells []string, style lipgloss.Style) string {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			parts[i] = style.Render(PadRight(cell, widths[i]))
		}
		return strings.TrimRight(strings.Join(parts, sep), " ")
	}

	total := 3 * (len(widths) - 1)
	for _, w := range widths {
		total += w
	}

	var sb strings.Builder
	if t.Title != "" {
		sb.WriteString(styles.Title.Render(t.Title))
		sb.WriteString("\n")
	}
	sb.WriteString(line(t.Headers, styles.Bold))
	sb.WriteString("\n")
	sb.WriteString(styles.RenderDivider(total))
	sb.WriteString("\n")
	for _, row := range t.Rows {
		sb.WriteString(line(row, styles.Body))
		sb.WriteString("\n")
	}
	return sb.String()
}
