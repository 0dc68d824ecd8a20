// FILE: database/repository/slot/indexes.go
package slotRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the slots collection.
func (r *mongoSlotRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Backstop for concurrent generation runs of the same vet/day.
		{
			Keys:    bson.D{{Key: "vetId", Value: 1}, {Key: "date", Value: 1}, {Key: "startTime", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_vet_date_start"),
		},
		{
			Keys:    bson.D{{Key: "vetId", Value: 1}, {Key: "shiftDate", Value: 1}},
			Options: options.Index().SetName("vet_shift_idx"),
		},
		{
			Keys:    bson.D{{Key: "vetId", Value: 1}, {Key: "status", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetName("vet_status_date_idx"),
		},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create slot indexes: %w", err)
	}
	return nil
}
