package ui

import (
	"frete/internal/columns"
	"frete/internal/query"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ColumnToggledMsg asks the owner to flip a column's visibility.
type ColumnToggledMsg struct {
	Key query.Field
}

type chooserClosedMsg struct{}

// ColumnChooser lists every column, hidden ones included, for visibility
// toggling.
type ColumnChooser struct {
	cursor int
	keys   PopupKeyMap
}

func NewColumnChooser() *ColumnChooser {
	return &ColumnChooser{keys: DefaultPopupKeyMap()}
}

// Update handles a key press against the current layout.
func (c *ColumnChooser) Update(msg tea.KeyMsg, cols *columns.Model) tea.Cmd {
	all := cols.All()
	switch {
	case key.Matches(msg, c.keys.Down):
		if c.cursor < len(all)-1 {
			c.cursor++
		}
	case key.Matches(msg, c.keys.Up):
		if c.cursor > 0 {
			c.cursor--
		}
	case key.Matches(msg, c.keys.Toggle):
		if c.cursor < len(all) {
			return emit(ColumnToggledMsg{Key: all[c.cursor].Key})
		}
	case key.Matches(msg, c.keys.Close), msg.String() == "o":
		return emit(chooserClosedMsg{})
	}
	return nil
}

// View renders the chooser grouped like the table header.
func (c *ColumnChooser) View(cols *columns.Model) string {
	lines := []string{LabelStyle.Render("Colunas")}
	i := 0
	for _, g := range cols.Groups() {
		lines = append(lines, HelpDescStyle.Render(g.Label))
		for _, col := range g.Columns {
			box := "[x]"
			if col.Hidden {
				box = "[ ]"
			}
			line := "  " + box + " " + col.Label
			if i == c.cursor {
				line = ActiveHeaderStyle.Render(line)
			} else {
				line = ValueStyle.Render(line)
			}
			lines = append(lines, line)
			i++
		}
	}
	lines = append(lines, "", HelpDescStyle.Render("espaço mostrar/ocultar  esc fechar"))
	return PopupStyle.Render(strings.Join(lines, "\n"))
}
