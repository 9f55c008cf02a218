package query

import (
	"frete/internal/model"
	"sort"
)

// Query is the full set of inputs that decide which rows the table shows.
type Query struct {
	Filters FilterSet
	Text    string
	Sort    SortState
}

// NewQuery returns an empty query: no filters, no search, no sort.
func NewQuery() Query {
	return Query{Filters: NewFilterSet()}
}

// Apply derives the visible rows from the full dataset: filter, then search,
// then the active sort if any. It always starts from all, never from a
// previous result, and never returns nil.
func Apply(all []model.Shipment, q Query) []model.Shipment {
	rows := make([]model.Shipment, 0, len(all))
	for _, s := range all {
		if !q.Filters.Matches(s) {
			continue
		}
		if !MatchesQuery(s, q.Text) {
			continue
		}
		rows = append(rows, s)
	}
	if q.Sort.Active {
		rows = Sort(rows, q.Sort.Field, q.Sort.Dir)
	}
	return rows
}

// DistinctValues lists the non-empty values of key's field across the
// unfiltered dataset, in collation order.
func DistinctValues(all []model.Shipment, key FilterKey) []string {
	field, ok := key.Field()
	if !ok {
		return nil
	}
	seen := make(map[string]struct{})
	var out []string
	for _, s := range all {
		v := field.Value(s)
		if v.Null {
			continue
		}
		str := v.String()
		if str == "" {
			continue
		}
		if _, dup := seen[str]; dup {
			continue
		}
		seen[str] = struct{}{}
		out = append(out, str)
	}
	c := newCollator()
	sort.SliceStable(out, func(i, j int) bool {
		return c.CompareString(out[i], out[j]) < 0
	})
	return out
}
