package slotRepo

import "errors"

var (
	// ErrSlotNotFound is returned when no slot matches the id.
	ErrSlotNotFound = errors.New("slot not found")
	// ErrSlotNotAvailable is returned when a conditional booking update matched nothing.
	ErrSlotNotAvailable = errors.New("slot is not available")
)
