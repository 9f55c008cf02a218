package ui

import (
	"frete/internal/columns"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderTableRow renders cells into fixed-width slots.
func renderTableRow(cells []string, widths []int, aligns []columns.Align, style lipgloss.Style) string {
	var parts []string
	for i, cell := range cells {
		if i >= len(widths) {
			continue
		}
		s := style.Width(widths[i]).MaxWidth(widths[i])
		if i < len(aligns) {
			s = s.Align(lipglossAlign(aligns[i]))
		}
		parts = append(parts, s.Render(cell))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func lipglossAlign(a columns.Align) lipgloss.Position {
	switch a {
	case columns.AlignRight:
		return lipgloss.Right
	case columns.AlignCenter:
		return lipgloss.Center
	default:
		return lipgloss.Left
	}
}

func renderTableDivider(widths []int) string {
	total := 0
	for _, w := range widths {
		total += w
	}
	return lipgloss.NewStyle().Foreground(ColorMuted).Render(strings.Repeat("─", total))
}

func formatHeaderLabel(label string) string {
	return strings.ToUpper(label)
}

func renderActiveHeaderLabel(label string) string {
	return ActiveHeaderStyle.Render(label)
}

func renderField(label, value string) string {
	if value == "" {
		value = "—"
	}
	return LabelStyle.Render(label+":") + " " + ValueStyle.Render(value)
}

// clipLines cuts every line of s to width cells.
func clipLines(s string, width int) string {
	if width <= 0 {
		return s
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(s)
}
