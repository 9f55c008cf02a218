package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// MemoryDSN opens a private in-memory database.
const MemoryDSN = ":memory:"

const schema = `
CREATE TABLE IF NOT EXISTS shipments (
    seq                INTEGER PRIMARY KEY,
    id                 TEXT NOT NULL UNIQUE,
    client_id          TEXT NOT NULL,
    client_name        TEXT NOT NULL,
    segment            TEXT NOT NULL DEFAULT '',
    business           TEXT NOT NULL DEFAULT '',
    state              TEXT NOT NULL DEFAULT '',
    city               TEXT NOT NULL DEFAULT '',
    order_number       TEXT NOT NULL,
    type               TEXT NOT NULL DEFAULT '',
    status             TEXT NOT NULL DEFAULT '',
    invoice_number     TEXT,
    status_description TEXT NOT NULL DEFAULT '',
    suspension_code    TEXT NOT NULL DEFAULT '',
    description        TEXT NOT NULL DEFAULT '',
    freight            REAL NOT NULL DEFAULT 0,
    discount           REAL NOT NULL DEFAULT 0,
    gross_price        REAL NOT NULL DEFAULT 0,
    net_weight         REAL NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS status_counts (
    position INTEGER PRIMARY KEY,
    status   TEXT NOT NULL UNIQUE,
    count    INTEGER NOT NULL,
    icon     TEXT NOT NULL DEFAULT '',
    label    TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS counters (
    name  TEXT PRIMARY KEY,
    value INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_shipments_state ON shipments(state);
CREATE INDEX IF NOT EXISTS idx_shipments_status ON shipments(status_description);
`

// Open opens or creates the SQLite database and initializes the schema.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	if dsn == "" {
		dsn = MemoryDSN
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// An in-memory database lives and dies with its connection.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return db, nil
}
