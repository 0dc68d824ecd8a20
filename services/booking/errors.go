package booking

import (
	"errors"

	slotRepo "vetcare/database/repository/slot"
)

var (
	ErrSlotNotFound = slotRepo.ErrSlotNotFound
	// ErrSlotUnavailable is returned when the slot is booked, disabled, or was taken concurrently.
	ErrSlotUnavailable = slotRepo.ErrSlotNotAvailable
	// ErrInsideNoticePeriod rejects slots starting sooner than the vet's notice period.
	ErrInsideNoticePeriod = errors.New("slot starts within the veterinarian's notice period")
)
