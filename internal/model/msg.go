package model

import "time"

// Bubble Tea message types

// ErrorMsg represents an error message.
type ErrorMsg struct {
	Err error
}

// DashboardLoadedMsg is sent when a reload completes. Seq identifies the
// reload request so late responses can be discarded.
type DashboardLoadedMsg struct {
	Seq       int
	Shipments []Shipment
	Counts    []StatusCount
	Summary   Summary
	LoadedAt  time.Time
}

// DashboardFailedMsg is sent when a reload fails.
type DashboardFailedMsg struct {
	Seq int
	Err error
}

// ShipmentDetailLoadedMsg is sent when a single shipment is loaded.
type ShipmentDetailLoadedMsg struct {
	Shipment Shipment
	Found    bool
	ID       string
}

// ExportedMsg is sent when the visible rows were written to disk.
type ExportedMsg struct {
	Path string
	Rows int
}

// Screen represents different app screens.
type Screen int

const (
	ScreenDashboard Screen = iota
	ScreenShipmentDetail
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNav Mode = iota
	ModeSearch
	ModeFilter
	ModeColumns
)
