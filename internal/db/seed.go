package db

import (
	"context"
	"database/sql"
	"fmt"
	"frete/internal/fixtures"
)

// ReplaceDataset swaps the whole database content for ds in one transaction.
func ReplaceDataset(ctx context.Context, db *sql.DB, ds fixtures.Dataset) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin seed: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"shipments", "status_counts", "counters"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	for _, s := range ds.Shipments {
		if err := InsertShipment(ctx, tx, s); err != nil {
			return err
		}
	}

	for i, c := range ds.StatusCounts {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO status_counts (position, status, count, icon, label) VALUES (?, ?, ?, ?, ?)`,
			i, c.Status, c.Count, c.Icon, c.Label)
		if err != nil {
			return fmt.Errorf("failed to insert status count %s: %w", c.Status, err)
		}
	}

	counters := map[string]int{
		"active_orders":    ds.Summary.ActiveOrders,
		"today_deliveries": ds.Summary.TodayDeliveries,
	}
	for name, value := range counters {
		if _, err := tx.ExecContext(ctx, `INSERT INTO counters (name, value) VALUES (?, ?)`, name, value); err != nil {
			return fmt.Errorf("failed to insert counter %s: %w", name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed: %w", err)
	}
	return nil
}
