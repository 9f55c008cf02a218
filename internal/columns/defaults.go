package columns

import "frete/internal/query"

// DefaultGroups is the dashboard's initial column layout.
func DefaultGroups() []Group {
	return []Group{
		{
			ID:    "client",
			Label: "Cliente",
			Columns: []Column{
				{Key: query.FieldClientID, Label: "ID Cliente", Sortable: true, Width: 10},
				{Key: query.FieldClientName, Label: "Razão Social", Sortable: true, Width: 28},
				{Key: query.FieldSegment, Label: "Segmento", Filterable: true, Filter: query.FilterSegment, Width: 10},
				{Key: query.FieldBusiness, Label: "Business", Filterable: true, Filter: query.FilterBusiness, Width: 10},
				{Key: query.FieldState, Label: "UF", Filterable: true, Filter: query.FilterState, Align: AlignCenter, Width: 4},
				{Key: query.FieldCity, Label: "Município", Width: 12},
			},
		},
		{
			ID:    "order",
			Label: "Pedido",
			Columns: []Column{
				{Key: query.FieldOrderNumber, Label: "Número Pedido", Sortable: true, Width: 10},
				{Key: query.FieldType, Label: "Tipo", Align: AlignCenter, Width: 4},
				{Key: query.FieldStatusDescription, Label: "Status", Filterable: true, Filter: query.FilterStatus, Width: 22},
				{Key: query.FieldInvoiceNumber, Label: "Número Nota", Width: 8},
				{Key: query.FieldSuspensionCode, Label: "Código Suspensão", Align: AlignCenter, Width: 6},
				{Key: query.FieldDescription, Label: "Descrição", Width: 14},
			},
		},
		{
			ID:    "values",
			Label: "Valores",
			Columns: []Column{
				{Key: query.FieldFreight, Label: "Frete", Sortable: true, Align: AlignRight, Format: FormatCurrency, Width: 12},
				{Key: query.FieldDiscount, Label: "Desconto", Align: AlignRight, Format: FormatNumber, Width: 10},
				{Key: query.FieldGrossPrice, Label: "Preço Bruto", Sortable: true, Align: AlignRight, Format: FormatCurrency, Width: 14},
				{Key: query.FieldNetWeight, Label: "Peso Líquido", Sortable: true, Align: AlignRight, Format: FormatNumber, Width: 12},
			},
		},
	}
}

// Default returns a model over DefaultGroups.
func Default() *Model {
	m, err := New(DefaultGroups())
	if err != nil {
		panic(err)
	}
	return m
}
