package query

import (
	"fmt"
	"frete/internal/model"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Direction is a sort direction.
type Direction int

const (
	Asc Direction = iota
	Desc
)

func (d Direction) String() string {
	if d == Desc {
		return "desc"
	}
	return "asc"
}

// ParseDirection accepts "asc" or "desc"; empty means ascending.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "", "asc":
		return Asc, nil
	case "desc":
		return Desc, nil
	default:
		return Asc, fmt.Errorf("invalid sort direction %q", s)
	}
}

// SortState is the table's current sort selection.
type SortState struct {
	Field  Field
	Dir    Direction
	Active bool
}

// Toggle selects field: the same field flips direction, a new field starts
// ascending.
func (s SortState) Toggle(field Field) SortState {
	if s.Active && s.Field == field {
		if s.Dir == Asc {
			s.Dir = Desc
		} else {
			s.Dir = Asc
		}
		return s
	}
	return SortState{Field: field, Dir: Asc, Active: true}
}

// Locale is the collation language for string fields.
var Locale = language.BrazilianPortuguese

func newCollator() *collate.Collator {
	return collate.New(Locale)
}

// Compare orders two values. Values of different kinds, or a null on either
// side, compare equal so they are left in place.
func Compare(c *collate.Collator, a, b Value) int {
	if a.Null || b.Null || a.Kind != b.Kind {
		return 0
	}
	switch a.Kind {
	case KindString:
		return c.CompareString(a.Str, b.Str)
	case KindNumber:
		switch {
		case a.Num < b.Num:
			return -1
		case a.Num > b.Num:
			return 1
		}
	}
	return 0
}

// Sort returns a stably sorted copy of rows. The input is not modified.
func Sort(rows []model.Shipment, field Field, dir Direction) []model.Shipment {
	out := append(make([]model.Shipment, 0, len(rows)), rows...)
	if !field.Valid() {
		return out
	}
	c := newCollator()
	sort.SliceStable(out, func(i, j int) bool {
		left, right := field.Value(out[i]), field.Value(out[j])
		if dir == Desc {
			return Compare(c, right, left) < 0
		}
		return Compare(c, left, right) < 0
	})
	return out
}
