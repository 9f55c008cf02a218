package ui

import "frete/internal/columns"

// undoAction records a column layout change as before/after snapshots.
type undoAction struct {
	label  string
	before *columns.Model
	after  *columns.Model
}

// recordLayoutChange runs change against the live layout and, when it
// reports a change, pushes an undo entry.
func (m *Model) recordLayoutChange(label string, change func() bool) bool {
	if m.shipments == nil {
		return false
	}
	before := m.shipments.Columns().Clone()
	if !change() {
		return false
	}
	m.pushUndoAction(undoAction{
		label:  label,
		before: before,
		after:  m.shipments.Columns().Clone(),
	})
	return true
}

func (m *Model) pushUndoAction(action undoAction) {
	m.undoStack = append(m.undoStack, action)
	m.redoStack = nil
}

func (m *Model) undo() {
	if len(m.undoStack) == 0 || m.shipments == nil {
		m.info = "Nada para desfazer"
		return
	}
	action := m.undoStack[len(m.undoStack)-1]
	m.undoStack = m.undoStack[:len(m.undoStack)-1]
	m.shipments.SetColumns(action.before.Clone())
	m.redoStack = append(m.redoStack, action)
	m.info = "Desfeito: " + action.label
}

func (m *Model) redo() {
	if len(m.redoStack) == 0 || m.shipments == nil {
		m.info = "Nada para refazer"
		return
	}
	action := m.redoStack[len(m.redoStack)-1]
	m.redoStack = m.redoStack[:len(m.redoStack)-1]
	m.shipments.SetColumns(action.after.Clone())
	m.undoStack = append(m.undoStack, action)
	m.info = "Refeito: " + action.label
}
