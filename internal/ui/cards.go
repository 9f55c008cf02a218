package ui

import (
	"frete/internal/model"
	"frete/internal/util"

	"github.com/charmbracelet/lipgloss"
)

var statusIcons = map[string]string{
	"clipboard":       "▤",
	"clipboard-check": "☑",
	"package-check":   "▣",
	"truck":           "⛟",
	"package-x":       "▧",
}

func renderSummaryBar(sum model.Summary, width int) string {
	items := []struct{ label, value string }{
		{"Pedidos ativos", util.FormatCount(sum.ActiveOrders)},
		{"Entregas hoje", util.FormatCount(sum.TodayDeliveries)},
		{"Valor total", util.FormatCurrency(sum.TotalValue)},
		{"Peso total", util.FormatWeight(sum.TotalWeight)},
	}
	var parts []string
	for _, it := range items {
		parts = append(parts, HelpDescStyle.Render(it.label+" ")+LabelStyle.Render(it.value))
	}
	line := ""
	for i, p := range parts {
		if i > 0 {
			line += BreadcrumbStyle.Render("   │   ")
		}
		line += p
	}
	return clipLines(StatusBarStyle.Width(width).Render(line), width)
}

func renderStatusCards(counts []model.StatusCount, width int) string {
	if len(counts) == 0 {
		return ""
	}
	cardWidth := max(14, width/len(counts)-2)
	var cards []string
	for _, c := range counts {
		icon := statusIcons[c.Icon]
		if icon == "" {
			icon = "•"
		}
		body := lipgloss.JoinVertical(lipgloss.Left,
			HelpDescStyle.Render(icon+" "+util.TruncateString(c.Label, cardWidth-6)),
			LabelStyle.Render(util.FormatCount(c.Count)),
		)
		cards = append(cards, CardStyle.Width(cardWidth).Render(body))
	}
	return clipLines(lipgloss.JoinHorizontal(lipgloss.Top, cards...), width)
}
