package ui

import "frete/internal/model"

// tableController is the table surface driven by nav-mode keys.
type tableController interface {
	NextColumn()
	PrevColumn()
	JumpToColumn(number int) bool
	ToggleSortActiveColumn() string
	MoveActiveColumn(dir int) bool
	Selected() (model.Shipment, bool)
	MoveDown()
	MoveUp()
	JumpToTop()
	JumpToBottom()
	HalfPageDown(pageSize int)
	HalfPageUp(pageSize int)
	TableMeta() string
}

var _ tableController = (*ShipmentsModel)(nil)
