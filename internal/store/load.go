package store

import (
	"context"
	"fmt"
	"frete/internal/fixtures"
	"frete/internal/model"

	"golang.org/x/sync/errgroup"
)

// Source kinds accepted by Open.
const (
	SourceMemory = "memory"
	SourceSQLite = "sqlite"
)

// Open builds the store named by source over ds.
func Open(ctx context.Context, source, dsn string, ds fixtures.Dataset) (Store, error) {
	switch source {
	case "", SourceMemory:
		return NewMemory(ds), nil
	case SourceSQLite:
		return OpenSQL(ctx, dsn, &ds)
	default:
		return nil, fmt.Errorf("unknown data source %q", source)
	}
}

// Snapshot is everything the dashboard shows after one reload.
type Snapshot struct {
	Shipments []model.Shipment
	Counts    []model.StatusCount
	Summary   model.Summary
}

// LoadSnapshot fetches shipments, status counts and the summary
// concurrently. The first failure cancels the other calls.
func LoadSnapshot(ctx context.Context, st Store) (Snapshot, error) {
	var snap Snapshot
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		rows, err := st.All(ctx)
		if err != nil {
			return fmt.Errorf("failed to load shipments: %w", err)
		}
		snap.Shipments = rows
		return nil
	})
	g.Go(func() error {
		counts, err := st.StatusCounts(ctx)
		if err != nil {
			return fmt.Errorf("failed to load status counts: %w", err)
		}
		snap.Counts = counts
		return nil
	})
	g.Go(func() error {
		sum, err := st.Summary(ctx)
		if err != nil {
			return fmt.Errorf("failed to load summary: %w", err)
		}
		snap.Summary = sum
		return nil
	})

	if err := g.Wait(); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}
