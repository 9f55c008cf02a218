package query

import (
	"frete/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchesQuery(t *testing.T) {
	s := model.Shipment{ClientID: "2983", ClientName: "Farmarin Ind Com", OrderNumber: "1817055", InvoiceNumber: strPtr("NF-7781")}
	noInvoice := model.Shipment{ClientID: "2983", ClientName: "Farmarin Ind Com", OrderNumber: "1817055"}

	tests := []struct {
		name string
		s    model.Shipment
		q    string
		want bool
	}{
		{"empty query", s, "", true},
		{"blank query", s, "   ", true},
		{"client name ignores case", s, "FARMARIN", true},
		{"trimmed order number", s, "  1817 ", true},
		{"client id", s, "298", true},
		{"invoice", s, "nf-77", true},
		{"missing invoice is skipped", noInvoice, "nf-77", false},
		{"no match", s, "rossi", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchesQuery(tt.s, tt.q))
		})
	}
}

func TestSearch_KeepsInputOrder(t *testing.T) {
	rows := []model.Shipment{
		{ID: "1", ClientName: "Seara Norte"},
		{ID: "2", ClientName: "Outro"},
		{ID: "3", ClientName: "seara sul"},
	}
	assert.Equal(t, []string{"1", "3"}, ids(Search(rows, "Seara")))
	assert.Len(t, Search(rows, ""), 3)
	assert.Empty(t, Search(rows, "nada"))
}
