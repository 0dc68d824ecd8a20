// File: database/repository/slot/crud.go
package slotRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"vetcare/models"
)

const duplicateKeyCode = 11000

// InsertMany inserts slots unordered. Rows rejected by the unique
// (vetId, date, startTime) index are reported as duplicates instead of failing the call.
func (r *mongoSlotRepo) InsertMany(ctx context.Context, slots []models.AppointmentSlot) (int, int, error) {
	if len(slots) == 0 {
		return 0, 0, nil
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	now := time.Now().UTC()
	docs := make([]interface{}, len(slots))
	for i, slot := range slots {
		if slot.ID == "" {
			slot.ID = uuid.New().String()
		}
		if slot.CreatedAt.IsZero() {
			slot.CreatedAt = now
		}
		slot.UpdatedAt = now
		docs[i] = slot
	}

	res, err := r.coll.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	if err == nil {
		return len(res.InsertedIDs), 0, nil
	}

	var bwe mongo.BulkWriteException
	if !errors.As(err, &bwe) || bwe.WriteConcernError != nil {
		return 0, 0, fmt.Errorf("failed to insert slots: %w", err)
	}
	duplicates := 0
	for _, we := range bwe.WriteErrors {
		if we.Code != duplicateKeyCode {
			return 0, 0, fmt.Errorf("failed to insert slots: %w", err)
		}
		duplicates++
	}
	return len(slots) - duplicates, duplicates, nil
}

func (r *mongoSlotRepo) GetByID(ctx context.Context, slotID string) (*models.AppointmentSlot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var slot models.AppointmentSlot
	err := r.coll.FindOne(ctx, bson.M{"id": slotID}).Decode(&slot)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrSlotNotFound
		}
		return nil, fmt.Errorf("find slot %s: %w", slotID, err)
	}
	return &slot, nil
}

// MarkBooked flips an available slot to booked. The status condition in the filter
// makes concurrent bookings of one slot race on a single document update.
func (r *mongoSlotRepo) MarkBooked(ctx context.Context, slotID, appointmentID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"id":     slotID,
		"status": string(models.SlotAvailable),
	}
	update := bson.M{
		"$set": bson.M{
			"status":        string(models.SlotBooked),
			"appointmentId": appointmentID,
			"updatedAt":     time.Now().UTC(),
		},
	}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to book slot: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrSlotNotAvailable
	}
	return nil
}

func (r *mongoSlotRepo) DeleteInPeriod(ctx context.Context, q PeriodQuery) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := periodFilter(q)
	filter["status"] = deletableStatuses()
	res, err := r.coll.DeleteMany(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to delete period slots: %w", err)
	}
	return int(res.DeletedCount), nil
}

func (r *mongoSlotRepo) DeleteByIDs(ctx context.Context, vetID string, ids []string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := idsFilter(vetID, ids)
	filter["status"] = deletableStatuses()
	res, err := r.coll.DeleteMany(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to delete slots: %w", err)
	}
	return int(res.DeletedCount), nil
}

func (r *mongoSlotRepo) SetStatusByIDs(ctx context.Context, vetID string, ids []string, from, to models.SlotStatus) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := idsFilter(vetID, ids)
	filter["status"] = string(from)
	update := bson.M{
		"$set": bson.M{
			"status":    string(to),
			"updatedAt": time.Now().UTC(),
		},
	}
	res, err := r.coll.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("failed to update slot status: %w", err)
	}
	return int(res.ModifiedCount), nil
}
