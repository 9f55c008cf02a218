// Package fixtures holds the dashboard's hard-coded dataset.
package fixtures

import (
	_ "embed"
	"fmt"
	"frete/internal/model"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed dataset.yaml
var embedded []byte

// Dataset is everything a data store serves.
type Dataset struct {
	Summary struct {
		ActiveOrders    int `yaml:"active_orders"`
		TodayDeliveries int `yaml:"today_deliveries"`
	} `yaml:"summary"`
	StatusCounts []model.StatusCount `yaml:"status_counts"`
	Shipments    []model.Shipment    `yaml:"shipments"`
}

// Default returns the embedded dataset.
func Default() (Dataset, error) {
	return Parse(embedded)
}

// Load reads a dataset from path, or the embedded one when path is empty.
func Load(path string) (Dataset, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("failed to read fixtures: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML dataset.
func Parse(data []byte) (Dataset, error) {
	var ds Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return Dataset{}, fmt.Errorf("failed to parse fixtures: %w", err)
	}
	seen := make(map[string]bool, len(ds.Shipments))
	for i, s := range ds.Shipments {
		if s.ID == "" {
			return Dataset{}, fmt.Errorf("shipment #%d has no id", i+1)
		}
		if seen[s.ID] {
			return Dataset{}, fmt.Errorf("duplicate shipment id %q", s.ID)
		}
		seen[s.ID] = true
	}
	return ds, nil
}
