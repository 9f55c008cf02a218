package store

import (
	"context"
	"frete/internal/fixtures"
	"frete/internal/model"
	"frete/internal/query"
	"sync/atomic"
	"time"
)

// Memory serves a fixed dataset from memory. It is read-only after
// construction and safe for concurrent use.
type Memory struct {
	shipments []model.Shipment
	counts    []model.StatusCount
	summary   model.Summary
	latency   time.Duration
	closed    atomic.Bool
}

// MemoryOption configures a Memory store.
type MemoryOption func(*Memory)

// WithLatency delays every call by d, to simulate a remote source.
func WithLatency(d time.Duration) MemoryOption {
	return func(m *Memory) { m.latency = d }
}

// NewMemory builds a store over ds.
func NewMemory(ds fixtures.Dataset, opts ...MemoryOption) *Memory {
	m := &Memory{
		shipments: append([]model.Shipment(nil), ds.Shipments...),
		counts:    append([]model.StatusCount(nil), ds.StatusCounts...),
		summary: model.Summary{
			ActiveOrders:    ds.Summary.ActiveOrders,
			TodayDeliveries: ds.Summary.TodayDeliveries,
		},
	}
	m.summary = summarize(m.summary, m.shipments)
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// wait honours the configured latency and reports cancellation or closure.
func (m *Memory) wait(ctx context.Context) error {
	if m.closed.Load() {
		return ErrClosed
	}
	if m.latency > 0 {
		t := time.NewTimer(m.latency)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
	}
	return ctx.Err()
}

func (m *Memory) All(ctx context.Context) ([]model.Shipment, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	return append([]model.Shipment{}, m.shipments...), nil
}

func (m *Memory) Search(ctx context.Context, q string) ([]model.Shipment, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	return query.Search(m.shipments, q), nil
}

func (m *Memory) Sort(ctx context.Context, rows []model.Shipment, field query.Field, dir query.Direction) ([]model.Shipment, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	return query.Sort(rows, field, dir), nil
}

func (m *Memory) StatusCounts(ctx context.Context) ([]model.StatusCount, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	return append([]model.StatusCount{}, m.counts...), nil
}

func (m *Memory) Summary(ctx context.Context) (model.Summary, error) {
	if err := m.wait(ctx); err != nil {
		return model.Summary{}, err
	}
	return m.summary, nil
}

func (m *Memory) ByID(ctx context.Context, id string) (model.Shipment, bool, error) {
	if err := m.wait(ctx); err != nil {
		return model.Shipment{}, false, err
	}
	for _, s := range m.shipments {
		if s.ID == id {
			return s, true, nil
		}
	}
	return model.Shipment{}, false, nil
}

func (m *Memory) Close() error {
	m.closed.Store(true)
	return nil
}
