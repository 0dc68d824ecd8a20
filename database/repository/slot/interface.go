// File: database/repository/slot/interface.go
package slotRepo

import (
	"context"
	"time"

	"vetcare/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// SlotRepository persists appointment slots. Every bulk write path only touches
// available or disabled slots; booked slots change through MarkBooked alone.
type SlotRepository interface {
	InsertMany(ctx context.Context, slots []models.AppointmentSlot) (inserted, duplicates int, err error)
	CountByShift(ctx context.Context, vetID string, shiftDate time.Time) (int, error)
	ExistsAvailableFrom(ctx context.Context, vetID string, from time.Time) (bool, error)
	FindByVetAndRange(ctx context.Context, vetID string, from, to time.Time) ([]models.AppointmentSlot, error)
	FindAvailableOnDate(ctx context.Context, vetID string, date time.Time) ([]models.AppointmentSlot, error)
	FindInPeriod(ctx context.Context, q PeriodQuery) ([]models.AppointmentSlot, error)
	DeleteInPeriod(ctx context.Context, q PeriodQuery) (int, error)
	FindByIDs(ctx context.Context, vetID string, ids []string) ([]models.AppointmentSlot, error)
	DeleteByIDs(ctx context.Context, vetID string, ids []string) (int, error)
	SetStatusByIDs(ctx context.Context, vetID string, ids []string, from, to models.SlotStatus) (int, error)
	GetByID(ctx context.Context, slotID string) (*models.AppointmentSlot, error)
	MarkBooked(ctx context.Context, slotID, appointmentID string) error
	EnsureIndexes(ctx context.Context) error
}

// PeriodQuery selects the slots of one calendar day inside [Start, End].
type PeriodQuery struct {
	VetID    string
	Date     time.Time
	Timezone string
	Start    models.ClockTime
	End      models.ClockTime
}

type mongoSlotRepo struct {
	coll *mongo.Collection
}

// NewMongoSlotRepo constructs a MongoDB SlotRepository on the "appointment_slots" collection.
func NewMongoSlotRepo(db *mongo.Database) SlotRepository {
	return &mongoSlotRepo{
		coll: db.Collection("appointment_slots"),
	}
}
