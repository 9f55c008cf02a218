package ui

import (
	"frete/internal/model"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderHelp renders context-sensitive help footer.
func RenderHelp(screen model.Screen, mode model.Mode, width int) string {
	switch mode {
	case model.ModeSearch:
		return renderSearchHelp(width)
	case model.ModeFilter, model.ModeColumns:
		return renderPopupHelp(width)
	}

	switch screen {
	case model.ScreenDashboard:
		return renderDashboardHelp(width)
	case model.ScreenShipmentDetail:
		return renderDetailHelp(width)
	default:
		return renderDefaultHelp(width)
	}
}

func renderDashboardHelp(width int) string {
	keys := []string{
		helpKey("j/k", "navegar"),
		helpKey("tab", "coluna"),
		helpKey("s", "ordenar"),
		helpKey("/", "buscar"),
		helpKey("f", "filtrar"),
		helpKey("o", "colunas"),
		helpKey("</>", "mover"),
		helpKey("X", "limpar"),
		helpKey("r", "atualizar"),
		helpKey("x", "exportar"),
		helpKey("?", "ajuda"),
	}
	return renderHelpLine(keys, width)
}

func renderDetailHelp(width int) string {
	keys := []string{
		helpKey("h/esc", "voltar"),
		helpKey("q", "sair"),
	}
	return renderHelpLine(keys, width)
}

func renderSearchHelp(width int) string {
	keys := []string{
		helpKey("enter", "confirmar"),
		helpKey("esc", "limpar busca"),
	}
	return renderHelpLine(keys, width)
}

func renderPopupHelp(width int) string {
	keys := []string{
		helpKey("j/k", "navegar"),
		helpKey("espaço", "marcar"),
		helpKey("esc", "fechar"),
	}
	return renderHelpLine(keys, width)
}

func renderDefaultHelp(width int) string {
	keys := []string{
		helpKey("j/k", "navegar"),
		helpKey("q", "sair"),
	}
	return renderHelpLine(keys, width)
}

func helpKey(key, desc string) string {
	return HelpKeyStyle.Render(key) + " " + HelpDescStyle.Render(desc)
}

func renderHelpLine(keys []string, width int) string {
	line := strings.Join(keys, "  ")
	return FooterStyle.Width(width).Render(line)
}

// RenderFullHelp renders the full help screen.
func RenderFullHelp(width, height int) string {
	content := lipgloss.NewStyle().
		Width(width-4).
		Height(height-6).
		Padding(1, 2)

	sections := []string{
		titleSection("Navegação"),
		helpSection([]helpItem{
			{"j / ↓", "Descer"},
			{"k / ↑", "Subir"},
			{"gg / G", "Primeira / última linha"},
			{"ctrl+d / ctrl+u", "Meia página abaixo / acima"},
			{"enter / l", "Detalhes do pedido"},
			{"h / esc", "Voltar"},
		}),
		titleSection("Tabela"),
		helpSection([]helpItem{
			{"tab / shift+tab", "Coluna ativa"},
			{"1-9", "Ir para a coluna"},
			{"s", "Ordenar pela coluna ativa (crescente / decrescente)"},
			{"/", "Buscar por cliente, pedido, ID ou nota"},
			{"f", "Filtrar pela coluna ativa"},
			{"X", "Limpar filtros e busca"},
		}),
		titleSection("Colunas"),
		helpSection([]helpItem{
			{"c", "Ocultar coluna ativa"},
			{"o", "Escolher colunas visíveis"},
			{"< / >", "Mover coluna ativa"},
			{"R", "Restaurar colunas"},
			{"u / ctrl+r", "Desfazer / refazer"},
		}),
		titleSection("Geral"),
		helpSection([]helpItem{
			{"r", "Atualizar dados"},
			{"x", "Exportar CSV"},
			{"?", "Ajuda"},
			{"q", "Sair"},
		}),
	}

	helpText := content.Render(strings.Join(sections, "\n\n"))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		TitleStyle.Width(width).Render("Ajuda"),
		helpText,
		FooterStyle.Width(width).Render(HelpKeyStyle.Render("esc")+" "+HelpDescStyle.Render("fechar ajuda")),
	)
}

type helpItem struct {
	key  string
	desc string
}

func titleSection(title string) string {
	return LabelStyle.Render(title)
}

func helpSection(items []helpItem) string {
	var lines []string
	for _, item := range items {
		lines = append(lines, "  "+HelpKeyStyle.Render(item.key)+" - "+HelpDescStyle.Render(item.desc))
	}
	return strings.Join(lines, "\n")
}
