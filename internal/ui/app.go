package ui

import (
	"context"
	"fmt"
	"frete/internal/columns"
	"frete/internal/export"
	"frete/internal/model"
	"frete/internal/store"
	"frete/internal/util"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// Options configures the root model.
type Options struct {
	Logger    *zap.Logger
	ExportDir string
	// Columns is the initial layout; nil means columns.Default().
	Columns *columns.Model
	// Now is the clock used for timestamps and export names.
	Now func() time.Time
}

// Model is the root Bubble Tea model.
type Model struct {
	store     store.Store
	logger    *zap.Logger
	exportDir string
	now       func() time.Time

	screen model.Screen
	mode   model.Mode
	gState GState

	width  int
	height int

	error       string
	info        string
	showingHelp bool

	// Reload bookkeeping: only the response to the latest seq is applied.
	loading    bool
	seq        int
	cancelLoad context.CancelFunc
	spinner    spinner.Model
	loadedAt   time.Time
	counts     []model.StatusCount
	summary    model.Summary

	shipments *ShipmentsModel
	detail    *ShipmentDetailModel
	search    textinput.Model
	dropdown  *FilterDropdown
	chooser   *ColumnChooser

	keys      KeyMap
	undoStack []undoAction
	redoStack []undoAction
}

type reloadMsg struct{}

// New creates a new root model over st.
func New(st store.Store, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Columns == nil {
		opts.Columns = columns.Default()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.ExportDir == "" {
		opts.ExportDir = "."
	}

	search := textinput.New()
	search.Placeholder = "Buscar por cliente, pedido, ID..."
	search.Prompt = "/ "
	search.CharLimit = 100

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		store:     st,
		logger:    opts.Logger,
		exportDir: opts.ExportDir,
		now:       opts.Now,
		screen:    model.ScreenDashboard,
		mode:      model.ModeNav,
		gState:    GStateIdle,
		loading:   true,
		spinner:   sp,
		shipments: NewShipmentsModel(nil, opts.Columns),
		search:    search,
		keys:      DefaultKeyMap(),
	}
}

// Init starts the first load.
func (m Model) Init() tea.Cmd {
	return emit(reloadMsg{})
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case reloadMsg:
		return m, m.startReload()

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case model.DashboardLoadedMsg:
		if msg.Seq != m.seq {
			m.logger.Debug("dropping stale dashboard load", zap.Int("seq", msg.Seq), zap.Int("latest", m.seq))
			return m, nil
		}
		m.finishReload()
		m.shipments.SetData(msg.Shipments)
		m.counts = msg.Counts
		m.summary = msg.Summary
		m.loadedAt = msg.LoadedAt
		m.error = ""
		m.logger.Info("dashboard loaded",
			zap.Int("seq", msg.Seq),
			zap.Int("shipments", len(msg.Shipments)),
			zap.Int("status_cards", len(msg.Counts)),
		)
		for _, c := range m.shipments.UnavailableFilters() {
			m.logger.Warn("filter has no values in dataset",
				zap.String("column", c.Label),
				zap.String("filter", string(c.Filter)),
			)
		}
		return m, nil

	case model.DashboardFailedMsg:
		if msg.Seq != m.seq {
			m.logger.Debug("dropping stale dashboard failure", zap.Int("seq", msg.Seq), zap.Error(msg.Err))
			return m, nil
		}
		m.finishReload()
		m.error = "Falha ao carregar dados: " + msg.Err.Error()
		m.logger.Error("dashboard load failed", zap.Int("seq", msg.Seq), zap.Error(msg.Err))
		return m, nil

	case model.ShipmentDetailLoadedMsg:
		if !msg.Found {
			m.error = fmt.Sprintf("Pedido %s não encontrado", msg.ID)
			return m, nil
		}
		m.detail = NewShipmentDetailModel(msg.Shipment)
		m.screen = model.ScreenShipmentDetail
		m.error = ""
		return m, nil

	case model.ExportedMsg:
		m.info = fmt.Sprintf("%d pedidos exportados para %s", msg.Rows, msg.Path)
		m.logger.Info("exported shipments", zap.String("path", msg.Path), zap.Int("rows", msg.Rows))
		return m, nil

	case model.ErrorMsg:
		m.error = msg.Err.Error()
		m.logger.Error("operation failed", zap.Error(msg.Err))
		return m, nil

	case FilterToggledMsg:
		m.shipments.ToggleFilter(msg.Key, msg.Value)
		m.logger.Debug("filter toggled", zap.String("key", string(msg.Key)), zap.String("value", msg.Value))
		return m, nil

	case FilterClearedMsg:
		m.shipments.ClearFilter(msg.Key)
		return m, nil

	case filterClosedMsg:
		m.dropdown = nil
		m.mode = model.ModeNav
		return m, nil

	case ColumnToggledMsg:
		col, ok := m.shipments.Columns().Column(msg.Key)
		if !ok {
			return m, nil
		}
		if !m.shipments.CanHide(msg.Key) {
			m.info = "Não é possível ocultar a última coluna visível"
			return m, nil
		}
		m.recordLayoutChange("visibilidade de "+col.Label, func() bool {
			return m.shipments.ToggleColumn(msg.Key)
		})
		return m, nil

	case chooserClosedMsg:
		m.chooser = nil
		m.mode = model.ModeNav
		return m, nil
	}

	return m, nil
}

// startReload supersedes any in-flight load and starts a new one.
func (m *Model) startReload() tea.Cmd {
	if m.cancelLoad != nil {
		m.cancelLoad()
	}
	ctx, cancel := context.WithCancel(context.Background())
	m.cancelLoad = cancel
	m.seq++
	m.loading = true
	m.logger.Debug("reloading dashboard", zap.Int("seq", m.seq))
	return tea.Batch(loadDashboardCmd(ctx, m.store, m.seq, m.now), m.spinner.Tick)
}

func (m *Model) finishReload() {
	m.loading = false
	if m.cancelLoad != nil {
		m.cancelLoad()
		m.cancelLoad = nil
	}
}

func (m *Model) quit() tea.Cmd {
	if m.cancelLoad != nil {
		m.cancelLoad()
		m.cancelLoad = nil
	}
	return tea.Quit
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, m.quit()
	}

	switch m.mode {
	case model.ModeSearch:
		return m.handleSearchMode(msg)
	case model.ModeFilter:
		if m.dropdown != nil {
			return m, m.dropdown.Update(msg)
		}
		m.mode = model.ModeNav
	case model.ModeColumns:
		if m.chooser != nil {
			return m, m.chooser.Update(msg, m.shipments.Columns())
		}
		m.mode = model.ModeNav
	}

	if key.Matches(msg, m.keys.Help) {
		m.showingHelp = !m.showingHelp
		return m, nil
	}
	if m.showingHelp {
		if msg.String() == "esc" {
			m.showingHelp = false
		}
		return m, nil
	}

	if m.screen == model.ScreenShipmentDetail {
		return m.handleDetailNav(msg)
	}
	return m.handleDashboardNav(msg)
}

func (m Model) handleSearchMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.search.Blur()
		m.mode = model.ModeNav
		return m, nil
	case "esc":
		m.search.SetValue("")
		m.search.Blur()
		m.shipments.SetSearch("")
		m.mode = model.ModeNav
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.shipments.SetSearch(m.search.Value())
	return m, cmd
}

func (m Model) handleDashboardNav(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var t tableController = m.shipments

	// Handle "gg" state machine
	if key.Matches(msg, m.keys.Top) {
		if m.gState == GStateFirstG {
			m.gState = GStateIdle
			t.JumpToTop()
			return m, nil
		}
		m.gState = GStateFirstG
		return m, nil
	}
	m.gState = GStateIdle

	if n, err := strconv.Atoi(msg.String()); err == nil && n > 0 {
		if t.JumpToColumn(n) {
			m.info = fmt.Sprintf("Coluna %d", n)
		} else {
			m.info = fmt.Sprintf("Coluna %d indisponível", n)
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, m.quit()
	case key.Matches(msg, m.keys.Down):
		t.MoveDown()
	case key.Matches(msg, m.keys.Up):
		t.MoveUp()
	case key.Matches(msg, m.keys.Bottom):
		t.JumpToBottom()
	case key.Matches(msg, m.keys.HalfPageDown):
		t.HalfPageDown(m.height / 2)
	case key.Matches(msg, m.keys.HalfPageUp):
		t.HalfPageUp(m.height / 2)
	case key.Matches(msg, m.keys.NextColumn):
		t.NextColumn()
	case key.Matches(msg, m.keys.PrevColumn):
		t.PrevColumn()
	case key.Matches(msg, m.keys.Sort):
		m.info = t.ToggleSortActiveColumn()
	case key.Matches(msg, m.keys.Search):
		m.mode = model.ModeSearch
		return m, m.search.Focus()
	case key.Matches(msg, m.keys.Filter):
		m.openFilter()
	case key.Matches(msg, m.keys.ClearAll):
		m.shipments.ClearQuery()
		m.search.SetValue("")
		m.info = "Filtros e busca limpos"
	case key.Matches(msg, m.keys.Refresh):
		m.shipments.ResetQuery()
		m.search.SetValue("")
		m.info = "Atualizando..."
		return m, m.startReload()
	case key.Matches(msg, m.keys.HideColumn):
		m.hideActiveColumn()
	case key.Matches(msg, m.keys.Columns):
		m.chooser = NewColumnChooser()
		m.mode = model.ModeColumns
	case key.Matches(msg, m.keys.MoveLeft):
		m.moveActiveColumn(-1)
	case key.Matches(msg, m.keys.MoveRight):
		m.moveActiveColumn(1)
	case key.Matches(msg, m.keys.ResetColumns):
		m.recordLayoutChange("restaurar colunas", func() bool {
			m.shipments.ResetColumns()
			return true
		})
		m.info = "Colunas restauradas"
	case key.Matches(msg, m.keys.Undo):
		m.undo()
	case key.Matches(msg, m.keys.Redo):
		m.redo()
	case key.Matches(msg, m.keys.Export):
		path := filepath.Join(m.exportDir, export.FileName(m.now()))
		rows := append([]model.Shipment(nil), m.shipments.Rows()...)
		return m, exportCmd(path, m.shipments.Columns().Visible(), rows)
	case key.Matches(msg, m.keys.Select):
		if s, ok := t.Selected(); ok {
			return m, loadShipmentDetailCmd(m.store, s.ID)
		}
	}
	return m, nil
}

func (m *Model) openFilter() {
	col, ok := m.shipments.ActiveColumn()
	if !ok {
		return
	}
	if !col.Filterable {
		m.info = fmt.Sprintf("Coluna %s não tem filtro", col.Label)
		return
	}
	options := m.shipments.FilterOptions(col.Filter)
	if len(options) == 0 {
		m.info = fmt.Sprintf("Coluna %s sem valores para filtrar", col.Label)
		return
	}
	m.dropdown = NewFilterDropdown(col.Filter, col.Label, options)
	m.mode = model.ModeFilter
}

func (m *Model) hideActiveColumn() {
	col, ok := m.shipments.ActiveColumn()
	if !ok {
		return
	}
	if !m.shipments.CanHide(col.Key) {
		m.info = "Não é possível ocultar a última coluna visível"
		return
	}
	if m.recordLayoutChange("ocultar "+col.Label, func() bool { return m.shipments.ToggleColumn(col.Key) }) {
		m.info = fmt.Sprintf("Coluna %s ocultada (u para desfazer)", col.Label)
	}
}

func (m *Model) moveActiveColumn(dir int) {
	col, ok := m.shipments.ActiveColumn()
	if !ok {
		return
	}
	if !m.recordLayoutChange("mover "+col.Label, func() bool { return m.shipments.MoveActiveColumn(dir) }) {
		m.info = "Coluna já está na borda"
		return
	}
	group, _ := m.shipments.Columns().GroupOf(col.Key)
	m.logger.Debug("column moved", zap.String("column", string(col.Key)), zap.String("group", group))
}

func (m Model) handleDetailNav(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.screen = model.ScreenDashboard
		m.detail = nil
	case key.Matches(msg, m.keys.Quit):
		return m, m.quit()
	}
	return m, nil
}

// View renders the UI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if m.showingHelp {
		return RenderFullHelp(m.width, m.height)
	}

	var top []string
	breadcrumbParts := []string{"Painel de Pedidos"}
	if m.screen == model.ScreenShipmentDetail && m.detail != nil {
		breadcrumbParts = append(breadcrumbParts, "Pedido "+m.detail.shipment.OrderNumber)
	}
	top = append(top, m.renderHeader(breadcrumbParts))

	if m.screen == model.ScreenDashboard {
		top = append(top, renderSummaryBar(m.summary, m.width))
		if cards := renderStatusCards(m.counts, m.width); cards != "" {
			top = append(top, cards)
		}
		if m.mode == model.ModeSearch || m.search.Value() != "" {
			top = append(top, InputStyle.Width(m.width).Render(m.search.View()))
		}
	}
	if m.error != "" {
		top = append(top, ErrorStyle.Width(m.width).Render("Erro: "+m.error))
	}
	if m.info != "" {
		top = append(top, SuccessStyle.Width(m.width).Render(m.info))
	}

	footer := RenderHelp(m.screen, m.mode, m.width)
	header := lipgloss.JoinVertical(lipgloss.Left, top...)
	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 3)

	var content string
	switch m.screen {
	case model.ScreenDashboard:
		content = m.renderDashboard(contentHeight)
	case model.ScreenShipmentDetail:
		if m.detail != nil {
			content = m.detail.View(m.width, contentHeight)
		}
	}

	// Ensure content fills the available height to anchor footer at bottom
	content = lipgloss.NewStyle().
		Width(m.width).
		Height(contentHeight).
		MaxHeight(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (m Model) renderDashboard(height int) string {
	if m.loading && len(m.shipments.All()) == 0 {
		return EmptyStateStyle.Width(m.width).Render(m.spinner.View() + " Carregando pedidos...")
	}

	var popup string
	switch {
	case m.mode == model.ModeFilter && m.dropdown != nil:
		popup = m.dropdown.View(m.shipments.Query().Filters)
	case m.mode == model.ModeColumns && m.chooser != nil:
		popup = m.chooser.View(m.shipments.Columns())
	}
	if popup == "" {
		return m.shipments.View(m.width, height)
	}
	popupWidth := lipgloss.Width(popup)
	table := m.shipments.View(max(m.width-popupWidth, 10), height)
	return lipgloss.JoinHorizontal(lipgloss.Top, popup, table)
}

func (m Model) renderHeader(breadcrumbParts []string) string {
	// Left side: app name + breadcrumb
	title := HeaderStyle.Render("frete")

	separator := BreadcrumbStyle.Render(" › ")
	parts := make([]string, len(breadcrumbParts))
	for i, part := range breadcrumbParts {
		if i == len(breadcrumbParts)-1 {
			parts[i] = BreadcrumbActiveStyle.Render(part)
		} else {
			parts[i] = BreadcrumbStyle.Render(part)
		}
	}
	left := "  " + title + separator + strings.Join(parts, separator)

	// Right side: load state
	var right string
	if m.loading {
		right = m.spinner.View() + BreadcrumbStyle.Render(" carregando") + "  "
	} else {
		right = BreadcrumbStyle.Render("Última atualização: "+util.FormatTimestamp(m.loadedAt)) + "  "
	}

	padding := max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 0)
	return TitleStyle.Width(m.width).Render(left + strings.Repeat(" ", padding) + right)
}

// Commands

func loadDashboardCmd(ctx context.Context, st store.Store, seq int, now func() time.Time) tea.Cmd {
	return func() tea.Msg {
		snap, err := store.LoadSnapshot(ctx, st)
		if err != nil {
			return model.DashboardFailedMsg{Seq: seq, Err: err}
		}
		return model.DashboardLoadedMsg{
			Seq:       seq,
			Shipments: snap.Shipments,
			Counts:    snap.Counts,
			Summary:   snap.Summary,
			LoadedAt:  now(),
		}
	}
}

func loadShipmentDetailCmd(st store.Store, id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s, found, err := st.ByID(ctx, id)
		if err != nil {
			return model.ErrorMsg{Err: fmt.Errorf("failed to load shipment: %w", err)}
		}
		return model.ShipmentDetailLoadedMsg{Shipment: s, Found: found, ID: id}
	}
}

func exportCmd(path string, cols []columns.Column, rows []model.Shipment) tea.Cmd {
	return func() tea.Msg {
		if err := export.ToFile(path, cols, rows); err != nil {
			return model.ErrorMsg{Err: err}
		}
		return model.ExportedMsg{Path: path, Rows: len(rows)}
	}
}
