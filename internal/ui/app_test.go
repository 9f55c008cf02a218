package ui

import (
	"context"
	"errors"
	"frete/internal/fixtures"
	"frete/internal/model"
	"frete/internal/query"
	"frete/internal/store"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

var testNow = time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC)

// failingStore fails every call once err is set.
type failingStore struct {
	store.Store
	err error
}

func (f *failingStore) All(ctx context.Context) ([]model.Shipment, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.Store.All(ctx)
}

func newTestStore(t *testing.T) *failingStore {
	t.Helper()
	ds, err := fixtures.Default()
	require.NoError(t, err)
	st := store.NewMemory(ds)
	t.Cleanup(func() { st.Close() })
	return &failingStore{Store: st}
}

func newTestModel(t *testing.T, st store.Store) Model {
	t.Helper()
	m := New(st, Options{ExportDir: t.TempDir(), Now: func() time.Time { return testNow }})
	m, _ = update(m, tea.WindowSizeMsg{Width: 220, Height: 50})
	return reload(t, m)
}

func update(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

// collect runs cmd and any batched commands, dropping spinner ticks.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		var out []tea.Msg
		for _, c := range msg {
			out = append(out, collect(c)...)
		}
		return out
	case spinner.TickMsg:
		return nil
	case nil:
		return nil
	default:
		return []tea.Msg{msg}
	}
}

// run feeds msg and every message its commands produce back into m.
func run(m Model, msg tea.Msg) Model {
	queue := []tea.Msg{msg}
	for len(queue) > 0 {
		var cmd tea.Cmd
		m, cmd = update(m, queue[0])
		queue = append(queue[1:], collect(cmd)...)
	}
	return m
}

func reload(t *testing.T, m Model) Model {
	t.Helper()
	m = run(m, reloadMsg{})
	require.False(t, m.loading)
	return m
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "ctrl+r":
		return tea.KeyMsg{Type: tea.KeyCtrlR}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// press sends keys in order, running whatever messages they emit except
// cursor blinks and ticks.
func press(m Model, keys ...string) Model {
	for _, k := range keys {
		var cmd tea.Cmd
		m, cmd = update(m, keyPress(k))
		if m.mode == model.ModeSearch {
			// textinput commands only blink the cursor.
			continue
		}
		for _, msg := range collect(cmd) {
			m = run(m, msg)
		}
	}
	return m
}

func ids(rows []model.Shipment) []string {
	out := make([]string, len(rows))
	for i, s := range rows {
		out[i] = s.ID
	}
	return out
}

func TestModel_InitialLoad(t *testing.T) {
	m := newTestModel(t, newTestStore(t))

	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, ids(m.shipments.Rows()))
	assert.Len(t, m.counts, 5)
	assert.Equal(t, 65, m.summary.ActiveOrders)
	assert.InDelta(t, 92530.0, m.summary.TotalValue, 0.001)
	assert.Equal(t, testNow, m.loadedAt)
	assert.Empty(t, m.error)

	view := m.View()
	assert.Contains(t, view, "Painel de Pedidos")
	assert.Contains(t, view, "FARMARIN IND COM LTDA")
	assert.Contains(t, view, "16/10/2026 09:30")
}

func TestModel_StaleLoadDropped(t *testing.T) {
	m := newTestModel(t, newTestStore(t))

	m, _ = update(m, reloadMsg{})
	stale := m.seq
	m, _ = update(m, reloadMsg{})
	require.Equal(t, stale+1, m.seq)

	m, _ = update(m, model.DashboardLoadedMsg{Seq: stale, Shipments: []model.Shipment{{ID: "old"}}})
	assert.True(t, m.loading, "stale response must not finish the load")
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, ids(m.shipments.All()))

	m, _ = update(m, model.DashboardFailedMsg{Seq: stale, Err: errors.New("late")})
	assert.Empty(t, m.error)

	m, _ = update(m, model.DashboardLoadedMsg{Seq: m.seq, Shipments: []model.Shipment{{ID: "new"}}})
	assert.False(t, m.loading)
	assert.Equal(t, []string{"new"}, ids(m.shipments.All()))
}

func TestModel_FailedReloadKeepsData(t *testing.T) {
	st := newTestStore(t)
	m := newTestModel(t, st)

	st.err = errors.New("boom")
	m = press(m, "r")

	assert.False(t, m.loading)
	assert.Contains(t, m.error, "boom")
	assert.Len(t, m.shipments.All(), 5)
	assert.Contains(t, m.View(), "Erro: Falha ao carregar dados")

	st.err = nil
	m = press(m, "r")
	assert.Empty(t, m.error)
}

func TestModel_SearchMode(t *testing.T) {
	m := newTestModel(t, newTestStore(t))

	m = press(m, "/")
	require.Equal(t, model.ModeSearch, m.mode)
	m = press(m, "r", "o", "s", "s", "i")
	assert.Equal(t, []string{"5"}, ids(m.shipments.Rows()), "search applies while typing")

	m = press(m, "enter")
	assert.Equal(t, model.ModeNav, m.mode)
	assert.Equal(t, "rossi", m.shipments.Query().Text)

	m = press(m, "/", "esc")
	assert.Equal(t, model.ModeNav, m.mode)
	assert.Empty(t, m.shipments.Query().Text)
	assert.Len(t, m.shipments.Rows(), 5)
}

func TestModel_SortToggle(t *testing.T) {
	m := newTestModel(t, newTestStore(t))

	for m.activeLabel() != "Preço Bruto" {
		m = press(m, "tab")
	}
	m = press(m, "s")
	assert.Equal(t, []string{"2", "5", "1", "3", "4"}, ids(m.shipments.Rows()))
	assert.Contains(t, m.info, "crescente")

	m = press(m, "s")
	assert.Equal(t, []string{"4", "3", "1", "5", "2"}, ids(m.shipments.Rows()))
	assert.Contains(t, m.info, "decrescente")

	m = press(m, "shift+tab")
	m = press(m, "s")
	assert.Contains(t, m.info, "não é ordenável")
}

func (m Model) activeLabel() string {
	col, _ := m.shipments.ActiveColumn()
	return col.Label
}

func TestModel_FilterDropdown(t *testing.T) {
	m := newTestModel(t, newTestStore(t))

	m = press(m, "5")
	require.Equal(t, "UF", m.activeLabel())

	m = press(m, "f")
	require.Equal(t, model.ModeFilter, m.mode)
	require.NotNil(t, m.dropdown)
	assert.Equal(t, query.FilterState, m.dropdown.Key())
	assert.Equal(t, []string{"MS", "RS", "SP"}, m.dropdown.options)

	m = press(m, "j", "j", " ")
	assert.Equal(t, []string{"1", "2", "5"}, ids(m.shipments.Rows()))
	assert.Contains(t, m.View(), "[x] SP")

	m = press(m, "k", " ")
	assert.Equal(t, []string{"1", "2", "3", "5"}, ids(m.shipments.Rows()))

	m = press(m, "esc")
	assert.Equal(t, model.ModeNav, m.mode)
	assert.Nil(t, m.dropdown)
	assert.Equal(t, []string{"RS", "SP"}, m.shipments.Query().Filters.Selected(query.FilterState))

	m = press(m, "f", "c", "esc")
	assert.Len(t, m.shipments.Rows(), 5)
}

func TestModel_FilterOnPlainColumn(t *testing.T) {
	m := newTestModel(t, newTestStore(t))
	m = press(m, "f")
	assert.Equal(t, model.ModeNav, m.mode)
	assert.Contains(t, m.info, "não tem filtro")
}

func TestModel_FilterWithoutValues(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	ds, err := fixtures.Default()
	require.NoError(t, err)
	st := store.NewMemory(ds)
	t.Cleanup(func() { st.Close() })

	m := New(st, Options{Logger: zap.New(core), ExportDir: t.TempDir(), Now: func() time.Time { return testNow }})
	m, _ = update(m, tea.WindowSizeMsg{Width: 220, Height: 50})
	m = reload(t, m)

	var warned []string
	for _, e := range logs.FilterMessage("filter has no values in dataset").All() {
		warned = append(warned, e.ContextMap()["column"].(string))
	}
	assert.Equal(t, []string{"Segmento", "Business"}, warned)

	for _, col := range []string{"3", "4"} {
		m = press(m, col, "f")
		assert.Equal(t, model.ModeNav, m.mode)
		assert.Nil(t, m.dropdown)
		assert.Contains(t, m.info, "sem valores para filtrar")
	}
}

func TestModel_ClearAllKeepsSort(t *testing.T) {
	m := newTestModel(t, newTestStore(t))

	m = press(m, "/", "1", "8", "1", "7", "enter")
	m = press(m, "5", "f", "j", "j", " ", "esc")
	for m.activeLabel() != "Preço Bruto" {
		m = press(m, "tab")
	}
	m = press(m, "s")
	assert.Equal(t, []string{"2"}, ids(m.shipments.Rows()))

	m = press(m, "X")
	assert.Empty(t, m.search.Value())
	assert.False(t, m.shipments.Query().Filters.Active())
	assert.Equal(t, []string{"2", "5", "1", "3", "4"}, ids(m.shipments.Rows()))
}

func TestModel_RefreshResetsQuery(t *testing.T) {
	m := newTestModel(t, newTestStore(t))

	m = press(m, "/", "s", "e", "a", "r", "a", "enter")
	m = press(m, "2", "s")
	require.Len(t, m.shipments.Rows(), 1)

	m = press(m, "r")
	assert.False(t, m.shipments.Query().Sort.Active)
	assert.Empty(t, m.shipments.Query().Text)
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, ids(m.shipments.Rows()))
}

func TestModel_HideUndoRedo(t *testing.T) {
	m := newTestModel(t, newTestStore(t))
	before := len(m.shipments.Columns().Visible())

	m = press(m, "c")
	assert.Len(t, m.shipments.Columns().Visible(), before-1)
	assert.Equal(t, "Razão Social", m.activeLabel(), "highlight moves to the next column")

	m = press(m, "u")
	assert.Len(t, m.shipments.Columns().Visible(), before)
	assert.Contains(t, m.info, "Desfeito")

	m = press(m, "ctrl+r")
	assert.Len(t, m.shipments.Columns().Visible(), before-1)
	assert.Contains(t, m.info, "Refeito")

	m = press(m, "ctrl+r")
	assert.Equal(t, "Nada para refazer", m.info)
}

func TestModel_MoveAndReset(t *testing.T) {
	m := newTestModel(t, newTestStore(t))

	m = press(m, ">")
	visible := m.shipments.Columns().Visible()
	assert.Equal(t, query.FieldClientName, visible[0].Key)
	assert.Equal(t, query.FieldClientID, visible[1].Key)
	assert.Equal(t, "ID Cliente", m.activeLabel())

	m = press(m, "<", "<")
	assert.Equal(t, "Coluna já está na borda", m.info)
	assert.Equal(t, query.FieldClientID, m.shipments.Columns().Visible()[0].Key)

	m = press(m, ">", "c", "R")
	assert.Len(t, m.shipments.Columns().Visible(), 16)
	assert.Equal(t, query.FieldClientID, m.shipments.Columns().Visible()[0].Key)

	m = press(m, "u")
	assert.Len(t, m.shipments.Columns().Visible(), 15)
}

func TestModel_ColumnChooserKeepsLastColumn(t *testing.T) {
	m := newTestModel(t, newTestStore(t))

	m = press(m, "o")
	require.Equal(t, model.ModeColumns, m.mode)
	for i := 0; i < 16; i++ {
		m = press(m, " ", "j")
	}
	assert.Len(t, m.shipments.Columns().Visible(), 1)
	assert.Equal(t, "Não é possível ocultar a última coluna visível", m.info)

	m = press(m, "esc")
	assert.Equal(t, model.ModeNav, m.mode)
	assert.Equal(t, "Peso Líquido", m.activeLabel())
}

func TestModel_Detail(t *testing.T) {
	m := newTestModel(t, newTestStore(t))

	m = press(m, "j", "enter")
	require.Equal(t, model.ScreenShipmentDetail, m.screen)
	assert.Equal(t, "2", m.detail.shipment.ID)
	assert.Contains(t, m.View(), "PR DISTRIBUIDORA DE PRODUTOS")

	m = press(m, "esc")
	assert.Equal(t, model.ScreenDashboard, m.screen)

	m, _ = update(m, model.ShipmentDetailLoadedMsg{ID: "99"})
	assert.Equal(t, "Pedido 99 não encontrado", m.error)
}

func TestModel_GGAndBottom(t *testing.T) {
	m := newTestModel(t, newTestStore(t))

	m = press(m, "G")
	s, _ := m.shipments.Selected()
	assert.Equal(t, "5", s.ID)

	m = press(m, "g", "g")
	s, _ = m.shipments.Selected()
	assert.Equal(t, "1", s.ID)
}

func TestModel_Export(t *testing.T) {
	m := newTestModel(t, newTestStore(t))

	m = press(m, "/", "r", "o", "s", "s", "i", "enter")
	m = press(m, "x")

	path := filepath.Join(m.exportDir, "pedidos-20261016-093000.csv")
	assert.Equal(t, "1 pedidos exportados para "+path, m.info)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[1], "118831,SUPERMERCADO ROSSI NEW FOODS,"))
}

func TestModel_QuitCancelsLoad(t *testing.T) {
	m := newTestModel(t, newTestStore(t))
	m, _ = update(m, reloadMsg{})
	require.NotNil(t, m.cancelLoad)

	_, cmd := update(m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}
