package ui

import (
	"fmt"
	"frete/internal/columns"
	"frete/internal/model"
	"frete/internal/query"
	"frete/internal/util"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ShipmentsModel is the shipments table: the loaded dataset, the query over
// it and the column layout.
type ShipmentsModel struct {
	allRows []model.Shipment
	rows    []model.Shipment
	cursor  int
	offset  int

	viewportHeight int

	cols         *columns.Model
	activeColumn query.Field
	query        query.Query

	// filterOptions holds the distinct values of every filter key over
	// allRows. A key with no values has no usable filter.
	filterOptions map[query.FilterKey][]string
}

// NewShipmentsModel creates a table over rows with the given layout.
func NewShipmentsModel(rows []model.Shipment, cols *columns.Model) *ShipmentsModel {
	m := &ShipmentsModel{
		cols:  cols,
		query: query.NewQuery(),
	}
	if visible := cols.Visible(); len(visible) > 0 {
		m.activeColumn = visible[0].Key
	}
	m.SetData(rows)
	return m
}

// SetData replaces the dataset, keeping the query and layout.
func (m *ShipmentsModel) SetData(rows []model.Shipment) {
	m.allRows = append([]model.Shipment(nil), rows...)
	m.filterOptions = make(map[query.FilterKey][]string, len(query.FilterKeys))
	for _, k := range query.FilterKeys {
		m.filterOptions[k] = query.DistinctValues(m.allRows, k)
	}
	m.rebuild()
}

// FilterOptions returns the values offered by key's dropdown.
func (m *ShipmentsModel) FilterOptions(key query.FilterKey) []string {
	return m.filterOptions[key]
}

// UnavailableFilters lists the filterable columns whose key has no values in
// the current dataset.
func (m *ShipmentsModel) UnavailableFilters() []columns.Column {
	var out []columns.Column
	for _, c := range m.cols.All() {
		if c.Filterable && len(m.filterOptions[c.Filter]) == 0 {
			out = append(out, c)
		}
	}
	return out
}

func (m *ShipmentsModel) rebuild() {
	m.rows = query.Apply(m.allRows, m.query)
	m.clampCursor()
}

func (m *ShipmentsModel) clampCursor() {
	if len(m.rows) == 0 {
		m.cursor = 0
		m.offset = 0
		return
	}
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.offset > m.cursor {
		m.offset = m.cursor
	}
}

// Rows returns the rows currently shown.
func (m *ShipmentsModel) Rows() []model.Shipment {
	return m.rows
}

// All returns the unfiltered dataset.
func (m *ShipmentsModel) All() []model.Shipment {
	return m.allRows
}

// Query returns a copy of the current query. Changing its filters does not
// affect the table.
func (m *ShipmentsModel) Query() query.Query {
	q := m.query
	q.Filters = m.query.Filters.Clone()
	return q
}

// Columns returns the live column layout.
func (m *ShipmentsModel) Columns() *columns.Model {
	return m.cols
}

// Selected returns the shipment under the cursor.
func (m *ShipmentsModel) Selected() (model.Shipment, bool) {
	if len(m.rows) == 0 || m.cursor >= len(m.rows) {
		return model.Shipment{}, false
	}
	return m.rows[m.cursor], true
}

// SetSearch replaces the free-text search.
func (m *ShipmentsModel) SetSearch(text string) {
	m.query.Text = text
	m.rebuild()
}

// ToggleFilter adds or removes value from the filter on key.
func (m *ShipmentsModel) ToggleFilter(key query.FilterKey, value string) bool {
	if !m.query.Filters.Toggle(key, value) {
		return false
	}
	m.rebuild()
	return true
}

// ClearFilter empties the filter on key.
func (m *ShipmentsModel) ClearFilter(key query.FilterKey) {
	m.query.Filters.Clear(key)
	m.rebuild()
}

// ClearQuery drops every filter and the search text. The sort is kept.
func (m *ShipmentsModel) ClearQuery() {
	m.query.Filters.ClearAll()
	m.query.Text = ""
	m.rebuild()
}

// ResetQuery returns to the unfiltered, unsorted view.
func (m *ShipmentsModel) ResetQuery() {
	m.query = query.NewQuery()
	m.cursor, m.offset = 0, 0
	m.rebuild()
}

// ActiveColumn returns the highlighted column.
func (m *ShipmentsModel) ActiveColumn() (columns.Column, bool) {
	return m.cols.Column(m.activeColumn)
}

func (m *ShipmentsModel) activeIndex(visible []columns.Column) int {
	for i, c := range visible {
		if c.Key == m.activeColumn {
			return i
		}
	}
	return -1
}

// ensureVisibleActiveColumn moves the highlight off a hidden or removed
// column, preferring the nearest column after it.
func (m *ShipmentsModel) ensureVisibleActiveColumn() {
	if c, ok := m.cols.Column(m.activeColumn); ok && !c.Hidden {
		return
	}
	all := m.cols.All()
	start := 0
	for i, c := range all {
		if c.Key == m.activeColumn {
			start = i
			break
		}
	}
	for i := 0; i < len(all); i++ {
		c := all[(start+i)%len(all)]
		if !c.Hidden {
			m.activeColumn = c.Key
			return
		}
	}
}

// NextColumn highlights the next visible column.
func (m *ShipmentsModel) NextColumn() {
	visible := m.cols.Visible()
	if len(visible) == 0 {
		return
	}
	i := m.activeIndex(visible)
	m.activeColumn = visible[(i+1)%len(visible)].Key
}

// PrevColumn highlights the previous visible column.
func (m *ShipmentsModel) PrevColumn() {
	visible := m.cols.Visible()
	if len(visible) == 0 {
		return
	}
	i := m.activeIndex(visible) - 1
	if i < 0 {
		i = len(visible) - 1
	}
	m.activeColumn = visible[i].Key
}

// JumpToColumn highlights the n-th visible column, 1-based.
func (m *ShipmentsModel) JumpToColumn(number int) bool {
	visible := m.cols.Visible()
	if number < 1 || number > len(visible) {
		return false
	}
	m.activeColumn = visible[number-1].Key
	return true
}

// ToggleSortActiveColumn cycles the sort on the active column and returns a
// status line.
func (m *ShipmentsModel) ToggleSortActiveColumn() string {
	col, ok := m.ActiveColumn()
	if !ok {
		return ""
	}
	if !col.Sortable {
		return fmt.Sprintf("Coluna %s não é ordenável", col.Label)
	}
	m.query.Sort = m.query.Sort.Toggle(col.Key)
	m.rebuild()
	if m.query.Sort.Dir == query.Desc {
		return fmt.Sprintf("Ordenado por %s (decrescente)", col.Label)
	}
	return fmt.Sprintf("Ordenado por %s (crescente)", col.Label)
}

// CanHide reports whether key may be hidden without emptying the table.
func (m *ShipmentsModel) CanHide(key query.Field) bool {
	c, ok := m.cols.Column(key)
	if !ok {
		return false
	}
	return c.Hidden || len(m.cols.Visible()) > 1
}

// ToggleColumn flips a column's visibility.
func (m *ShipmentsModel) ToggleColumn(key query.Field) bool {
	if !m.CanHide(key) || !m.cols.Toggle(key) {
		return false
	}
	m.ensureVisibleActiveColumn()
	return true
}

// MoveActiveColumn moves the active column onto its visible neighbour in
// direction dir (-1 left, +1 right).
func (m *ShipmentsModel) MoveActiveColumn(dir int) bool {
	visible := m.cols.Visible()
	i := m.activeIndex(visible)
	j := i + dir
	if i < 0 || j < 0 || j >= len(visible) {
		return false
	}
	return m.cols.Move(visible[i].Key, visible[j].Key)
}

// ResetColumns restores the initial layout.
func (m *ShipmentsModel) ResetColumns() {
	m.cols.Reset()
	m.ensureVisibleActiveColumn()
}

// SetColumns swaps in a layout, used by undo.
func (m *ShipmentsModel) SetColumns(cols *columns.Model) {
	m.cols = cols
	m.ensureVisibleActiveColumn()
}

func (m *ShipmentsModel) TableMeta() string {
	var parts []string
	if col, ok := m.ActiveColumn(); ok {
		parts = append(parts, fmt.Sprintf("col %s", strings.ToUpper(col.Label)))
	}
	if m.query.Sort.Active {
		label := string(m.query.Sort.Field)
		if col, ok := m.cols.Column(m.query.Sort.Field); ok {
			label = col.Label
		}
		parts = append(parts, fmt.Sprintf("ordem %s %s", strings.ToUpper(label), m.query.Sort.Dir))
	}
	for _, key := range query.FilterKeys {
		if sel := m.query.Filters.Selected(key); len(sel) > 0 {
			parts = append(parts, fmt.Sprintf("%s=%s", key, strings.Join(sel, "|")))
		}
	}
	if t := strings.TrimSpace(m.query.Text); t != "" {
		parts = append(parts, fmt.Sprintf("busca %q", t))
	}
	return strings.Join(parts, "  ·  ")
}

func (m *ShipmentsModel) cellWidths(visible []columns.Column) ([]int, []string) {
	widths := make([]int, 0, len(visible))
	headers := make([]string, 0, len(visible))
	for _, col := range visible {
		label := formatHeaderLabel(col.Label)
		if m.query.Sort.Active && m.query.Sort.Field == col.Key {
			if m.query.Sort.Dir == query.Desc {
				label += " ↓"
			} else {
				label += " ↑"
			}
		}
		if col.Filterable {
			if n := m.query.Filters.Count(col.Filter); n > 0 {
				label += fmt.Sprintf(" (%d)", n)
			}
		}
		widths = append(widths, max(col.Width, lipgloss.Width(label))+2)
		if col.Key == m.activeColumn {
			label = renderActiveHeaderLabel(label)
		}
		headers = append(headers, label)
	}
	return widths, headers
}

func (m *ShipmentsModel) renderGroupRow(widths []int) string {
	var parts []string
	i := 0
	for _, g := range m.cols.Headers() {
		w := 0
		for k := 0; k < g.Span && i < len(widths); k++ {
			w += widths[i]
			i++
		}
		label := util.TruncateString(strings.ToUpper(g.Label), max(w-2, 1))
		parts = append(parts, GroupHeaderStyle.Width(w).MaxWidth(w).Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *ShipmentsModel) renderCell(col columns.Column, s model.Shipment, width int, selected bool) string {
	text := util.TruncateString(col.Cell(s), max(width-2, 1))
	if col.Key == query.FieldStatusDescription && !selected {
		label, color := statusBadge(s.StatusDescription)
		return lipgloss.NewStyle().Foreground(color).Render(util.TruncateString(label, max(width-2, 1)))
	}
	return text
}

// View renders the table.
func (m *ShipmentsModel) View(width, height int) string {
	visible := m.cols.Visible()
	if len(visible) == 0 {
		return EmptyStateStyle.Width(width).Height(height).Render("Nenhuma coluna visível. Pressione R para restaurar.")
	}

	widths, headers := m.cellWidths(visible)
	aligns := make([]columns.Align, len(visible))
	for i, c := range visible {
		aligns[i] = c.Align
	}

	groupRow := m.renderGroupRow(widths)
	header := renderTableRow(headers, widths, aligns, TableHeaderStyle)
	divider := renderTableDivider(widths)

	visibleHeight := height - 5
	if visibleHeight < 1 {
		visibleHeight = 1
	}
	m.viewportHeight = visibleHeight

	var body string
	if len(m.rows) == 0 {
		body = EmptyStateStyle.Render("Nenhum pedido encontrado")
	} else {
		var rows []string
		for i := m.offset; i < len(m.rows) && i < m.offset+visibleHeight; i++ {
			row := m.rows[i]
			selected := i == m.cursor
			style := NormalRowStyle
			if selected {
				style = SelectedRowStyle
			}
			cells := make([]string, len(visible))
			for c, col := range visible {
				cells[c] = m.renderCell(col, row, widths[c], selected)
			}
			rows = append(rows, renderTableRow(cells, widths, aligns, style))
		}
		body = strings.Join(rows, "\n")
	}

	filterInfo := ""
	if m.query.Filters.Active() || strings.TrimSpace(m.query.Text) != "" {
		filterInfo = fmt.Sprintf("  ·  filtrados: %d/%d", len(m.rows), len(m.allRows))
	}
	rowPos := ""
	if len(m.rows) > 0 {
		rowPos = fmt.Sprintf("  ·  linha %d/%d", m.cursor+1, len(m.rows))
	}
	meta := m.TableMeta()
	if meta != "" {
		meta = "  ·  " + meta
	}
	status := StatusBarStyle.Render(fmt.Sprintf("%d pedidos%s%s%s", len(m.rows), rowPos, filterInfo, meta))

	content := clipLines(lipgloss.JoinVertical(lipgloss.Left, groupRow, header, divider, body), width)
	spacerHeight := max(0, height-lipgloss.Height(content)-lipgloss.Height(status))
	spacer := lipgloss.NewStyle().Height(spacerHeight).Render("")

	return lipgloss.JoinVertical(lipgloss.Left, content, spacer, clipLines(status, width))
}

// MoveDown moves the cursor down.
func (m *ShipmentsModel) MoveDown() {
	if m.cursor < len(m.rows)-1 {
		m.cursor++
		vh := m.viewportHeight
		if vh == 0 {
			vh = 10
		}
		if m.cursor >= m.offset+vh {
			m.offset++
		}
	}
}

// MoveUp moves the cursor up.
func (m *ShipmentsModel) MoveUp() {
	if m.cursor > 0 {
		m.cursor--
		if m.cursor < m.offset {
			m.offset--
		}
	}
}

// JumpToTop jumps to the first row.
func (m *ShipmentsModel) JumpToTop() {
	m.cursor = 0
	m.offset = 0
}

// JumpToBottom jumps to the last row.
func (m *ShipmentsModel) JumpToBottom() {
	if len(m.rows) > 0 {
		m.cursor = len(m.rows) - 1
		vh := m.viewportHeight
		if vh == 0 {
			vh = 10
		}
		if m.cursor >= vh {
			m.offset = m.cursor - vh + 1
		}
	}
}

// HalfPageDown moves down half a page.
func (m *ShipmentsModel) HalfPageDown(pageSize int) {
	if len(m.rows) == 0 {
		return
	}
	m.cursor += pageSize / 2
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	vh := m.viewportHeight
	if vh == 0 {
		vh = 10
	}
	if m.cursor >= m.offset+vh {
		m.offset = m.cursor - vh + 1
	}
}

// HalfPageUp moves up half a page.
func (m *ShipmentsModel) HalfPageUp(pageSize int) {
	m.cursor -= pageSize / 2
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
}
