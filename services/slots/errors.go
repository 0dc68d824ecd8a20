package slots

import (
	"errors"
	"fmt"

	vetRepo "vetcare/database/repository/vet"
)

var (
	// ErrVetNotFound is returned when the veterinarian does not exist.
	ErrVetNotFound = vetRepo.ErrVetNotFound
	// ErrAllPeriodsFailed aborts a batch in which no period could be deleted.
	ErrAllPeriodsFailed = errors.New("no periods could be deleted")
)

// ValidationError rejects malformed input before any database access.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// ConflictError reports booked slots that a mutation refused to touch.
type ConflictError struct {
	Message     string
	BookedCount int
	BookedIDs   []string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s (%d booked)", e.Message, e.BookedCount)
}
