package ui

import (
	"frete/internal/model"
	"frete/internal/util"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ShipmentDetailModel represents the shipment detail screen.
type ShipmentDetailModel struct {
	shipment model.Shipment
}

// NewShipmentDetailModel creates a new shipment detail model.
func NewShipmentDetailModel(s model.Shipment) *ShipmentDetailModel {
	return &ShipmentDetailModel{shipment: s}
}

// View renders the shipment detail.
func (m *ShipmentDetailModel) View(width, height int) string {
	s := m.shipment

	shortcuts := HelpDescStyle.Render("h voltar")
	header := lipgloss.NewStyle().
		Width(width - 4).
		Align(lipgloss.Right).
		Render(shortcuts)

	client := []string{
		renderField("ID Cliente", s.ClientID),
		renderField("Razão Social", s.ClientName),
		renderField("Segmento", s.Segment),
		renderField("Business", s.Business),
		renderField("UF", s.State),
		renderField("Município", s.City),
	}

	invoice, ok := s.Invoice()
	badge, color := statusBadge(s.StatusDescription)
	order := []string{
		renderField("Número Pedido", s.OrderNumber),
		renderField("Tipo", s.Type),
		LabelStyle.Render("Status:") + " " + lipgloss.NewStyle().Foreground(color).Render(badge) +
			HelpDescStyle.Render(" ("+s.StatusDescription+")"),
		renderField("Número Nota", util.FormatOptional(invoice, ok)),
		renderField("Código Suspensão", s.SuspensionCode),
		renderField("Descrição", s.Description),
	}

	values := []string{
		renderField("Frete", util.FormatCurrency(s.Freight)),
		renderField("Desconto", util.FormatNumber(s.Discount)),
		renderField("Preço Bruto", util.FormatCurrency(s.GrossPrice)),
		renderField("Peso Líquido", util.FormatWeight(s.NetWeight)),
	}

	divider := lipgloss.NewStyle().
		Foreground(ColorMuted).
		Render(strings.Repeat("─", max(width-8, 0)))

	sections := []string{
		LabelStyle.Render("Cliente"), strings.Join(client, "\n"), divider,
		LabelStyle.Render("Pedido"), strings.Join(order, "\n"), divider,
		LabelStyle.Render("Valores"), strings.Join(values, "\n"),
	}

	info := PanelStyle.
		Width(width - 4).
		Render(strings.Join(sections, "\n"))

	return lipgloss.JoinVertical(lipgloss.Left, header, info)
}
