package query

import (
	"frete/internal/model"
	"strings"
)

// MatchesQuery reports whether the trimmed, lower-cased query is a substring
// of the client name, order number, client id or invoice number. An empty
// query matches everything; a missing invoice number is skipped.
func MatchesQuery(s model.Shipment, q string) bool {
	needle := strings.ToLower(strings.TrimSpace(q))
	if needle == "" {
		return true
	}
	if strings.Contains(strings.ToLower(s.ClientName), needle) ||
		strings.Contains(strings.ToLower(s.OrderNumber), needle) ||
		strings.Contains(strings.ToLower(s.ClientID), needle) {
		return true
	}
	if inv, ok := s.Invoice(); ok {
		return strings.Contains(strings.ToLower(inv), needle)
	}
	return false
}

// Search returns the shipments matching q, in input order.
func Search(rows []model.Shipment, q string) []model.Shipment {
	out := make([]model.Shipment, 0, len(rows))
	for _, s := range rows {
		if MatchesQuery(s, q) {
			out = append(out, s)
		}
	}
	return out
}
