package query

import (
	"fmt"
	"frete/internal/model"
	"sort"
)

// FilterKey enumerates the columns that carry a filter dropdown.
type FilterKey string

const (
	FilterStatus   FilterKey = "status"
	FilterSegment  FilterKey = "segment"
	FilterBusiness FilterKey = "business"
	FilterState    FilterKey = "state"
)

// FilterKeys lists every filter key in display order.
var FilterKeys = []FilterKey{FilterStatus, FilterSegment, FilterBusiness, FilterState}

var filterFields = map[FilterKey]Field{
	FilterStatus:   FieldStatusDescription,
	FilterSegment:  FieldSegment,
	FilterBusiness: FieldBusiness,
	FilterState:    FieldState,
}

// ParseFilterKey validates a filter key name.
func ParseFilterKey(name string) (FilterKey, error) {
	k := FilterKey(name)
	if _, ok := filterFields[k]; !ok {
		return "", fmt.Errorf("unknown filter key %q", name)
	}
	return k, nil
}

// Field returns the shipment field a filter key tests.
func (k FilterKey) Field() (Field, bool) {
	f, ok := filterFields[k]
	return f, ok
}

// FilterSet maps every filter key to its set of accepted values. An empty
// set places no restriction on that key.
type FilterSet struct {
	sets map[FilterKey]map[string]struct{}
}

// NewFilterSet returns a set with every key present and empty.
func NewFilterSet() FilterSet {
	fs := FilterSet{sets: make(map[FilterKey]map[string]struct{}, len(FilterKeys))}
	for _, k := range FilterKeys {
		fs.sets[k] = map[string]struct{}{}
	}
	return fs
}

func (fs *FilterSet) ensure() {
	if fs.sets == nil {
		*fs = NewFilterSet()
	}
}

// Toggle adds value to key's set, or removes it when already present.
// Unknown keys are ignored and report false.
func (fs *FilterSet) Toggle(key FilterKey, value string) bool {
	fs.ensure()
	set, ok := fs.sets[key]
	if !ok {
		return false
	}
	if _, on := set[value]; on {
		delete(set, value)
	} else {
		set[value] = struct{}{}
	}
	return true
}

// Clear empties the set for key.
func (fs *FilterSet) Clear(key FilterKey) {
	fs.ensure()
	if _, ok := fs.sets[key]; ok {
		fs.sets[key] = map[string]struct{}{}
	}
}

// ClearAll empties every set.
func (fs *FilterSet) ClearAll() {
	*fs = NewFilterSet()
}

// Has reports whether value is accepted for key.
func (fs FilterSet) Has(key FilterKey, value string) bool {
	_, ok := fs.sets[key][value]
	return ok
}

// Count returns the number of selected values for key.
func (fs FilterSet) Count(key FilterKey) int {
	return len(fs.sets[key])
}

// Selected returns the selected values for key, sorted.
func (fs FilterSet) Selected(key FilterKey) []string {
	set := fs.sets[key]
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Active reports whether any key restricts the result.
func (fs FilterSet) Active() bool {
	for _, set := range fs.sets {
		if len(set) > 0 {
			return true
		}
	}
	return false
}

// Matches reports whether s passes every non-empty key (AND across keys, OR
// within a key).
func (fs FilterSet) Matches(s model.Shipment) bool {
	for key, set := range fs.sets {
		if len(set) == 0 {
			continue
		}
		field, ok := filterFields[key]
		if !ok {
			continue
		}
		v := field.Value(s)
		if v.Null {
			return false
		}
		if _, ok := set[v.String()]; !ok {
			return false
		}
	}
	return true
}

// Clone returns an independent copy.
func (fs FilterSet) Clone() FilterSet {
	out := NewFilterSet()
	for key, set := range fs.sets {
		dst := make(map[string]struct{}, len(set))
		for v := range set {
			dst[v] = struct{}{}
		}
		out.sets[key] = dst
	}
	return out
}
