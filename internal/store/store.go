// Package store is the shipment data-access contract and its implementations.
// Every call may block, so callers run them off the UI loop.
package store

import (
	"context"
	"errors"
	"frete/internal/model"
	"frete/internal/query"
)

// ErrClosed is returned by a store after Close.
var ErrClosed = errors.New("store is closed")

// Store serves the dashboard's data.
type Store interface {
	// All returns every shipment in load order.
	All(ctx context.Context) ([]model.Shipment, error)
	// Search returns the shipments whose client name, order number, client id
	// or invoice number contains q, case-insensitively.
	Search(ctx context.Context, q string) ([]model.Shipment, error)
	// Sort returns a reordered copy of rows.
	Sort(ctx context.Context, rows []model.Shipment, field query.Field, dir query.Direction) ([]model.Shipment, error)
	StatusCounts(ctx context.Context) ([]model.StatusCount, error)
	Summary(ctx context.Context) (model.Summary, error)
	// ByID looks up one shipment; found is false when no record matches.
	ByID(ctx context.Context, id string) (model.Shipment, bool, error)
	Close() error
}

// summarize derives the value and weight totals from rows.
func summarize(base model.Summary, rows []model.Shipment) model.Summary {
	base.TotalValue, base.TotalWeight = 0, 0
	for _, s := range rows {
		base.TotalValue += s.GrossPrice
		base.TotalWeight += s.NetWeight
	}
	return base
}
