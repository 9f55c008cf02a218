package db

import (
	"context"
	"database/sql"
	"errors"
	"frete/internal/fixtures"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openSeeded(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()
	database, err := Open(ctx, "")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	ds, err := fixtures.Default()
	require.NoError(t, err)
	require.NoError(t, ReplaceDataset(ctx, database, ds))
	return database
}

func TestListShipments_LoadOrder(t *testing.T) {
	database := openSeeded(t)

	rows, err := ListShipments(context.Background(), database, "")
	require.NoError(t, err)
	require.Len(t, rows, 5)
	for i, want := range []string{"1", "2", "3", "4", "5"} {
		assert.Equal(t, want, rows[i].ID)
	}
	assert.Equal(t, -50.0, rows[1].Discount)
}

func TestListShipments_Filter(t *testing.T) {
	database := openSeeded(t)
	ctx := context.Background()

	rows, err := ListShipments(ctx, database, "seara")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "4", rows[0].ID)

	rows, err = ListShipments(ctx, database, "%")
	require.NoError(t, err)
	assert.Empty(t, rows, "wildcards are matched literally")
}

func TestGetShipment(t *testing.T) {
	database := openSeeded(t)
	ctx := context.Background()

	s, err := GetShipment(ctx, database, "3")
	require.NoError(t, err)
	assert.Equal(t, "BRF S.A", s.ClientName)

	_, err = GetShipment(ctx, database, "404")
	assert.True(t, errors.Is(err, sql.ErrNoRows))
}

func TestNullInvoiceRoundTrip(t *testing.T) {
	ctx := context.Background()
	database, err := Open(ctx, "")
	require.NoError(t, err)
	defer database.Close()

	ds, err := fixtures.Parse([]byte("shipments:\n  - id: x\n    client_id: \"1\"\n    client_name: A\n    order_number: \"2\"\n"))
	require.NoError(t, err)
	require.NoError(t, ReplaceDataset(ctx, database, ds))

	s, err := GetShipment(ctx, database, "x")
	require.NoError(t, err)
	assert.Nil(t, s.InvoiceNumber)
}

func TestSummaryAndCounts(t *testing.T) {
	database := openSeeded(t)
	ctx := context.Background()

	sum, err := GetSummary(ctx, database)
	require.NoError(t, err)
	assert.Equal(t, 65, sum.ActiveOrders)
	assert.Equal(t, 12, sum.TodayDeliveries)
	assert.Equal(t, 92530.0, sum.TotalValue)
	assert.Equal(t, 33345.0, sum.TotalWeight)

	counts, err := ListStatusCounts(ctx, database)
	require.NoError(t, err)
	require.Len(t, counts, 5)
	assert.Equal(t, "released", counts[0].Status)
	assert.Equal(t, "Entrega parcial", counts[4].Label)
}

func TestReplaceDatasetTwice(t *testing.T) {
	database := openSeeded(t)
	ctx := context.Background()

	ds, err := fixtures.Default()
	require.NoError(t, err)
	require.NoError(t, ReplaceDataset(ctx, database, ds))

	rows, err := ListShipments(ctx, database, "")
	require.NoError(t, err)
	assert.Len(t, rows, 5)
}

func TestOpen_FileDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frete.db")
	database, err := Open(context.Background(), path)
	require.NoError(t, err)
	require.NoError(t, database.Close())
}
