// File: database/repository/slot/queries.go
package slotRepo

import (
	"context"
	"fmt"
	"time"

	"vetcare/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var byStart = bson.D{{Key: "date", Value: 1}, {Key: "startsAt", Value: 1}}

// CountByShift counts the slots generated from one schedule day of a vet, any status.
func (r *mongoSlotRepo) CountByShift(ctx context.Context, vetID string, shiftDate time.Time) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{"vetId": vetID, "shiftDate": shiftDate})
	if err != nil {
		return 0, fmt.Errorf("failed to count slots: %w", err)
	}
	return int(n), nil
}

func (r *mongoSlotRepo) ExistsAvailableFrom(ctx context.Context, vetID string, from time.Time) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"vetId":  vetID,
		"date":   bson.M{"$gte": from},
		"status": string(models.SlotAvailable),
	}
	n, err := r.coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to probe availability: %w", err)
	}
	return n > 0, nil
}

func (r *mongoSlotRepo) FindByVetAndRange(ctx context.Context, vetID string, from, to time.Time) ([]models.AppointmentSlot, error) {
	return r.find(ctx, rangeFilter(vetID, from, to))
}

func (r *mongoSlotRepo) FindAvailableOnDate(ctx context.Context, vetID string, date time.Time) ([]models.AppointmentSlot, error) {
	return r.find(ctx, bson.M{
		"vetId":  vetID,
		"date":   date,
		"status": string(models.SlotAvailable),
	})
}

func (r *mongoSlotRepo) FindInPeriod(ctx context.Context, q PeriodQuery) ([]models.AppointmentSlot, error) {
	return r.find(ctx, periodFilter(q))
}

func (r *mongoSlotRepo) FindByIDs(ctx context.Context, vetID string, ids []string) ([]models.AppointmentSlot, error) {
	return r.find(ctx, idsFilter(vetID, ids))
}

func (r *mongoSlotRepo) find(ctx context.Context, filter interface{}) ([]models.AppointmentSlot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(byStart))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch slots: %w", err)
	}
	defer cursor.Close(ctx)

	slots := []models.AppointmentSlot{}
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, fmt.Errorf("error decoding slots: %w", err)
	}
	return slots, nil
}
