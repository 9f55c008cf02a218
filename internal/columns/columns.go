// Package columns owns the ordered, grouped set of table columns and the
// mutations the dashboard applies to it: reorder, visibility toggle, reset.
package columns

import (
	"errors"
	"fmt"
	"frete/internal/query"
)

// ErrInvalidColumn is returned when a column definition fails validation.
var ErrInvalidColumn = errors.New("invalid column definition")

// Align is the horizontal alignment of a column's cells.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
	AlignCenter
)

// Column describes one table column.
type Column struct {
	Key        query.Field
	Label      string
	Sortable   bool
	Filterable bool
	Filter     query.FilterKey
	Align      Align
	Format     CellFormat
	Width      int
	Hidden     bool
}

// Group is a header spanning a run of columns.
type Group struct {
	ID      string
	Label   string
	Columns []Column
}

// HeaderGroup is a group header as rendered: only visible members count
// towards Span.
type HeaderGroup struct {
	ID    string
	Label string
	Span  int
}

// Model is the mutable column layout.
type Model struct {
	groups  []Group
	initial []Group
}

// New validates groups and returns a model whose reset point is groups.
func New(groups []Group) (*Model, error) {
	if err := validate(groups); err != nil {
		return nil, err
	}
	return &Model{groups: cloneGroups(groups), initial: cloneGroups(groups)}, nil
}

func validate(groups []Group) error {
	seen := make(map[query.Field]bool)
	for _, g := range groups {
		for _, c := range g.Columns {
			kind, err := c.Key.Kind()
			if err != nil {
				return fmt.Errorf("%w: column %q: %v", ErrInvalidColumn, c.Label, err)
			}
			if seen[c.Key] {
				return fmt.Errorf("%w: duplicate column %q", ErrInvalidColumn, c.Key)
			}
			seen[c.Key] = true
			if c.Filterable {
				field, ok := c.Filter.Field()
				if !ok {
					return fmt.Errorf("%w: column %q is filterable without a filter key", ErrInvalidColumn, c.Key)
				}
				if field != c.Key {
					return fmt.Errorf("%w: column %q bound to filter %q which tests %q", ErrInvalidColumn, c.Key, c.Filter, field)
				}
			}
			if c.Format != FormatText && kind != query.KindNumber {
				return fmt.Errorf("%w: column %q formats a %s field as a number", ErrInvalidColumn, c.Key, kind)
			}
			if c.Sortable && kind != query.KindString && kind != query.KindNumber {
				return fmt.Errorf("%w: column %q has no sortable kind", ErrInvalidColumn, c.Key)
			}
		}
	}
	return nil
}

func cloneGroups(groups []Group) []Group {
	out := make([]Group, len(groups))
	for i, g := range groups {
		out[i] = Group{ID: g.ID, Label: g.Label, Columns: append([]Column(nil), g.Columns...)}
	}
	return out
}

// Clone returns an independent copy sharing the same reset point.
func (m *Model) Clone() *Model {
	return &Model{groups: cloneGroups(m.groups), initial: cloneGroups(m.initial)}
}

// locate returns the group and position of key, or -1s.
func (m *Model) locate(key query.Field) (int, int) {
	for gi, g := range m.groups {
		for ci, c := range g.Columns {
			if c.Key == key {
				return gi, ci
			}
		}
	}
	return -1, -1
}

// Move removes src from its group and inserts it at dst's index within dst's
// group. Moving across groups changes src's group membership.
func (m *Model) Move(src, dst query.Field) bool {
	if src == dst {
		return false
	}
	sg, sc := m.locate(src)
	dg, dc := m.locate(dst)
	if sg < 0 || dg < 0 {
		return false
	}

	col := m.groups[sg].Columns[sc]
	m.groups[sg].Columns = append(m.groups[sg].Columns[:sc:sc], m.groups[sg].Columns[sc+1:]...)

	// dc is dst's index before the removal, so within one group a column
	// dragged rightwards lands just after dst.
	target := m.groups[dg].Columns
	if dc > len(target) {
		dc = len(target)
	}
	target = append(target[:dc:dc], append([]Column{col}, target[dc:]...)...)
	m.groups[dg].Columns = target
	return true
}

// Toggle flips the visibility of key without moving it.
func (m *Model) Toggle(key query.Field) bool {
	gi, ci := m.locate(key)
	if gi < 0 {
		return false
	}
	m.groups[gi].Columns[ci].Hidden = !m.groups[gi].Columns[ci].Hidden
	return true
}

// Reset restores the initial definitions, order and visibility.
func (m *Model) Reset() {
	m.groups = cloneGroups(m.initial)
}

// Visible returns visible columns flattened in group-then-position order. It
// drives both the header cells and every row's cells.
func (m *Model) Visible() []Column {
	var out []Column
	for _, g := range m.groups {
		for _, c := range g.Columns {
			if !c.Hidden {
				out = append(out, c)
			}
		}
	}
	return out
}

// All returns every column, hidden ones included, in layout order.
func (m *Model) All() []Column {
	var out []Column
	for _, g := range m.groups {
		out = append(out, g.Columns...)
	}
	return out
}

// Headers returns the group header row, omitting groups with no visible
// member.
func (m *Model) Headers() []HeaderGroup {
	var out []HeaderGroup
	for _, g := range m.groups {
		span := 0
		for _, c := range g.Columns {
			if !c.Hidden {
				span++
			}
		}
		if span == 0 {
			continue
		}
		out = append(out, HeaderGroup{ID: g.ID, Label: g.Label, Span: span})
	}
	return out
}

// Groups returns a copy of the current layout.
func (m *Model) Groups() []Group {
	return cloneGroups(m.groups)
}

// Column looks up a column by key.
func (m *Model) Column(key query.Field) (Column, bool) {
	gi, ci := m.locate(key)
	if gi < 0 {
		return Column{}, false
	}
	return m.groups[gi].Columns[ci], true
}

// GroupOf returns the id of the group holding key.
func (m *Model) GroupOf(key query.Field) (string, bool) {
	gi, _ := m.locate(key)
	if gi < 0 {
		return "", false
	}
	return m.groups[gi].ID, true
}
