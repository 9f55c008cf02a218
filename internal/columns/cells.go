package columns

import (
	"frete/internal/model"
	"frete/internal/util"
)

// CellFormat selects how a column renders its value.
type CellFormat int

const (
	FormatText CellFormat = iota
	FormatCurrency
	FormatNumber
)

// Cell renders s's value for c as displayed in the table and in exports.
// Missing values render as a dash.
func (c Column) Cell(s model.Shipment) string {
	v := c.Key.Value(s)
	if v.Null {
		return "—"
	}
	switch c.Format {
	case FormatCurrency:
		return util.FormatCurrency(v.Num)
	case FormatNumber:
		return util.FormatNumber(v.Num)
	}
	return v.String()
}

// Row renders s across cols.
func Row(cols []Column, s model.Shipment) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = c.Cell(s)
	}
	return out
}

// Labels returns the header labels of cols.
func Labels(cols []Column) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = c.Label
	}
	return out
}
