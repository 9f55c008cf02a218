package ui

import (
	"fmt"
	"frete/internal/query"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// FilterToggledMsg asks the owner to add or remove Value from the filter on
// Key.
type FilterToggledMsg struct {
	Key   query.FilterKey
	Value string
}

// FilterClearedMsg asks the owner to empty the filter on Key.
type FilterClearedMsg struct {
	Key query.FilterKey
}

type filterClosedMsg struct{}

// FilterDropdown is a multi-select over a column's distinct values. It holds
// no selection of its own: the owner passes the current filter state in and
// applies the messages the dropdown emits.
type FilterDropdown struct {
	key     query.FilterKey
	label   string
	options []string
	cursor  int
	keys    PopupKeyMap
}

// NewFilterDropdown creates a dropdown for key over options.
func NewFilterDropdown(key query.FilterKey, label string, options []string) *FilterDropdown {
	return &FilterDropdown{
		key:     key,
		label:   label,
		options: append([]string(nil), options...),
		keys:    DefaultPopupKeyMap(),
	}
}

// Key returns the filter key the dropdown edits.
func (d *FilterDropdown) Key() query.FilterKey {
	return d.key
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// Update handles a key press and returns the message to apply, if any.
func (d *FilterDropdown) Update(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, d.keys.Down):
		if d.cursor < len(d.options)-1 {
			d.cursor++
		}
	case key.Matches(msg, d.keys.Up):
		if d.cursor > 0 {
			d.cursor--
		}
	case key.Matches(msg, d.keys.Toggle):
		if len(d.options) == 0 {
			return nil
		}
		return emit(FilterToggledMsg{Key: d.key, Value: d.options[d.cursor]})
	case key.Matches(msg, d.keys.Clear):
		return emit(FilterClearedMsg{Key: d.key})
	case key.Matches(msg, d.keys.Close), msg.String() == "f":
		return emit(filterClosedMsg{})
	}
	return nil
}

// View renders the options with checkboxes for the values selected in fs.
func (d *FilterDropdown) View(fs query.FilterSet) string {
	title := LabelStyle.Render(d.label)
	if n := fs.Count(d.key); n > 0 {
		title += " " + SuccessStyle.Render(fmt.Sprintf("%d selecionado(s)", n))
	}

	var lines []string
	lines = append(lines, title)
	if len(d.options) == 0 {
		lines = append(lines, HelpDescStyle.Render("Sem opções disponíveis"))
	}
	for i, opt := range d.options {
		box := "[ ]"
		if fs.Has(d.key, opt) {
			box = "[x]"
		}
		line := box + " " + opt
		if i == d.cursor {
			line = ActiveHeaderStyle.Render(line)
		} else {
			line = ValueStyle.Render(line)
		}
		lines = append(lines, line)
	}
	lines = append(lines, "", HelpDescStyle.Render("espaço marcar  c limpar  esc fechar"))

	return PopupStyle.Render(strings.Join(lines, "\n"))
}
