package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"frete/internal/db"
	"frete/internal/fixtures"
	"frete/internal/model"
	"frete/internal/query"
	"sync/atomic"
	"unicode"
)

// SQL serves shipments from a SQLite database.
type SQL struct {
	db     *sql.DB
	closed atomic.Bool
}

// OpenSQL opens the database at dsn and, when ds is non-nil, replaces its
// content with ds.
func OpenSQL(ctx context.Context, dsn string, ds *fixtures.Dataset) (*SQL, error) {
	database, err := db.Open(ctx, dsn)
	if err != nil {
		return nil, err
	}
	if ds != nil {
		if err := db.ReplaceDataset(ctx, database, *ds); err != nil {
			database.Close()
			return nil, err
		}
	}
	return &SQL{db: database}, nil
}

func (s *SQL) check() error {
	if s.closed.Load() {
		return ErrClosed
	}
	return nil
}

func (s *SQL) All(ctx context.Context) ([]model.Shipment, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	return db.ListShipments(ctx, s.db, "")
}

// Search narrows in SQL when the query is plain ASCII, where SQLite's case
// folding agrees with the engine, and always finishes with the engine's
// matcher.
func (s *SQL) Search(ctx context.Context, q string) ([]model.Shipment, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	prefilter := ""
	if isASCII(q) {
		prefilter = q
	}
	rows, err := db.ListShipments(ctx, s.db, prefilter)
	if err != nil {
		return nil, err
	}
	return query.Search(rows, q), nil
}

func isASCII(s string) bool {
	for _, r := range s {
		if r > unicode.MaxASCII {
			return false
		}
	}
	return true
}

func (s *SQL) Sort(ctx context.Context, rows []model.Shipment, field query.Field, dir query.Direction) ([]model.Shipment, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return query.Sort(rows, field, dir), nil
}

func (s *SQL) StatusCounts(ctx context.Context) ([]model.StatusCount, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	return db.ListStatusCounts(ctx, s.db)
}

func (s *SQL) Summary(ctx context.Context) (model.Summary, error) {
	if err := s.check(); err != nil {
		return model.Summary{}, err
	}
	return db.GetSummary(ctx, s.db)
}

func (s *SQL) ByID(ctx context.Context, id string) (model.Shipment, bool, error) {
	if err := s.check(); err != nil {
		return model.Shipment{}, false, err
	}
	sh, err := db.GetShipment(ctx, s.db, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Shipment{}, false, nil
	}
	if err != nil {
		return model.Shipment{}, false, err
	}
	return sh, true, nil
}

func (s *SQL) Close() error {
	if s.closed.Swap(true) {
		return nil
	}
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}
