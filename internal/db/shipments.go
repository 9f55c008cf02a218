package db

import (
	"context"
	"database/sql"
	"fmt"
	"frete/internal/model"
	"strings"
)

const shipmentColumns = `
	id, client_id, client_name, segment, business, state, city, order_number, type,
	status, invoice_number, status_description, suspension_code, description,
	freight, discount, gross_price, net_weight`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanShipment(row rowScanner) (model.Shipment, error) {
	var s model.Shipment
	var invoice sql.NullString
	err := row.Scan(
		&s.ID, &s.ClientID, &s.ClientName, &s.Segment, &s.Business, &s.State, &s.City, &s.OrderNumber, &s.Type,
		&s.Status, &invoice, &s.StatusDescription, &s.SuspensionCode, &s.Description,
		&s.Freight, &s.Discount, &s.GrossPrice, &s.NetWeight,
	)
	if err != nil {
		return model.Shipment{}, err
	}
	if invoice.Valid {
		inv := invoice.String
		s.InvoiceNumber = &inv
	}
	return s, nil
}

// escapeLike escapes LIKE wildcards so the filter matches literally.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// ListShipments retrieves shipments in load order, optionally filtered by a
// substring of client name, order number, client id or invoice number.
// SQLite folds case for ASCII letters only.
func ListShipments(ctx context.Context, db *sql.DB, filter string) ([]model.Shipment, error) {
	query := `SELECT ` + shipmentColumns + `
		FROM shipments
		WHERE (? = ''
			OR client_name LIKE '%' || ? || '%' ESCAPE '\'
			OR order_number LIKE '%' || ? || '%' ESCAPE '\'
			OR client_id LIKE '%' || ? || '%' ESCAPE '\'
			OR invoice_number LIKE '%' || ? || '%' ESCAPE '\')
		ORDER BY seq
	`

	filter = escapeLike(strings.TrimSpace(filter))
	rows, err := db.QueryContext(ctx, query, filter, filter, filter, filter, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list shipments: %w", err)
	}
	defer rows.Close()

	results := []model.Shipment{}
	for rows.Next() {
		s, err := scanShipment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shipment row: %w", err)
		}
		results = append(results, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shipment rows: %w", err)
	}

	return results, nil
}

// GetShipment retrieves a single shipment by ID. It returns sql.ErrNoRows
// (wrapped) when no shipment matches.
func GetShipment(ctx context.Context, db *sql.DB, id string) (model.Shipment, error) {
	query := `SELECT ` + shipmentColumns + ` FROM shipments WHERE id = ?`

	s, err := scanShipment(db.QueryRowContext(ctx, query, id))
	if err != nil {
		return model.Shipment{}, fmt.Errorf("failed to get shipment: %w", err)
	}
	return s, nil
}

// InsertShipment appends a shipment after the existing ones.
func InsertShipment(ctx context.Context, tx *sql.Tx, s model.Shipment) error {
	query := `INSERT INTO shipments (` + shipmentColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	var invoice interface{}
	if inv, ok := s.Invoice(); ok {
		invoice = inv
	}

	_, err := tx.ExecContext(ctx, query,
		s.ID, s.ClientID, s.ClientName, s.Segment, s.Business, s.State, s.City, s.OrderNumber, s.Type,
		s.Status, invoice, s.StatusDescription, s.SuspensionCode, s.Description,
		s.Freight, s.Discount, s.GrossPrice, s.NetWeight,
	)
	if err != nil {
		return fmt.Errorf("failed to insert shipment %s: %w", s.ID, err)
	}
	return nil
}

// ListStatusCounts retrieves the status cards in display order.
func ListStatusCounts(ctx context.Context, db *sql.DB) ([]model.StatusCount, error) {
	rows, err := db.QueryContext(ctx, `SELECT status, count, icon, label FROM status_counts ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to list status counts: %w", err)
	}
	defer rows.Close()

	results := []model.StatusCount{}
	for rows.Next() {
		var c model.StatusCount
		if err := rows.Scan(&c.Status, &c.Count, &c.Icon, &c.Label); err != nil {
			return nil, fmt.Errorf("failed to scan status count: %w", err)
		}
		results = append(results, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating status counts: %w", err)
	}
	return results, nil
}

// GetSummary computes the dashboard aggregates.
func GetSummary(ctx context.Context, db *sql.DB) (model.Summary, error) {
	var sum model.Summary
	err := db.QueryRowContext(ctx, `
		SELECT
			COALESCE((SELECT value FROM counters WHERE name = 'active_orders'), 0),
			COALESCE((SELECT value FROM counters WHERE name = 'today_deliveries'), 0),
			COALESCE(SUM(gross_price), 0),
			COALESCE(SUM(net_weight), 0)
		FROM shipments
	`).Scan(&sum.ActiveOrders, &sum.TodayDeliveries, &sum.TotalValue, &sum.TotalWeight)
	if err != nil {
		return model.Summary{}, fmt.Errorf("failed to get summary: %w", err)
	}
	return sum, nil
}
