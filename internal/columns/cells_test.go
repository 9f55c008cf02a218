package columns

import (
	"frete/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultCells(t *testing.T) {
	inv := "555"
	s := model.Shipment{
		ClientID:          "88967",
		ClientName:        "PR DISTRIBUIDORA DE PRODUTOS",
		State:             "SP",
		OrderNumber:       "181761",
		StatusDescription: "Empenhar Pedido / LogA",
		InvoiceNumber:     &inv,
		Discount:          -50,
		GrossPrice:        1075,
		NetWeight:         30,
	}

	m := Default()
	row := Row(m.Visible(), s)
	labels := Labels(m.Visible())
	cell := func(label string) string {
		for i, l := range labels {
			if l == label {
				return row[i]
			}
		}
		t.Fatalf("no column %q", label)
		return ""
	}

	assert.Equal(t, "88967", cell("ID Cliente"))
	assert.Equal(t, "R$ 0,00", cell("Frete"))
	assert.Equal(t, "-50", cell("Desconto"))
	assert.Equal(t, "R$ 1.075,00", cell("Preço Bruto"))
	assert.Equal(t, "30", cell("Peso Líquido"))
	assert.Equal(t, "555", cell("Número Nota"))

	s.InvoiceNumber = nil
	row = Row(m.Visible(), s)
	assert.Equal(t, "—", cell("Número Nota"))
}
