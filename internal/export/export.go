// Package export writes the dashboard's visible table to CSV.
package export

import (
	"encoding/csv"
	"fmt"
	"frete/internal/columns"
	"frete/internal/model"
	"io"
	"os"
	"path/filepath"
	"time"
)

// WriteCSV writes a header row of column labels, then one line per row with
// cells formatted as the table shows them.
func WriteCSV(w io.Writer, cols []columns.Column, rows []model.Shipment) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(columns.Labels(cols)); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, s := range rows {
		if err := cw.Write(columns.Row(cols, s)); err != nil {
			return fmt.Errorf("failed to write shipment %s: %w", s.ID, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}

// FileName is the default export name for a given time.
func FileName(now time.Time) string {
	return "pedidos-" + now.Format("20060102-150405") + ".csv"
}

// ToFile writes the export to path, creating its directory.
func ToFile(path string, cols []columns.Column, rows []model.Shipment) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	if err := WriteCSV(f, cols, rows); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close export file: %w", err)
	}
	return nil
}
