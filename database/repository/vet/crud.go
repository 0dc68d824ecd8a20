package vetRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"vetcare/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoVetRepo) GetByID(ctx context.Context, vetID string) (*models.Veterinarian, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var vet models.Veterinarian
	if err := r.coll.FindOne(ctx, bson.M{"id": vetID}).Decode(&vet); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrVetNotFound
		}
		return nil, fmt.Errorf("error fetching veterinarian with id %s: %w", vetID, err)
	}
	return &vet, nil
}

func (r *mongoVetRepo) ListActive(ctx context.Context) ([]models.Veterinarian, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	projection := bson.M{"id": 1, "name": 1, "isActive": 1, "timezone": 1, "noticePeriod": 1, "schedule": 1}
	cursor, err := r.coll.Find(ctx, bson.M{"isActive": true}, options.Find().SetProjection(projection))
	if err != nil {
		return nil, fmt.Errorf("error fetching active veterinarians: %w", err)
	}
	defer cursor.Close(ctx)

	var vets []models.Veterinarian
	if err := cursor.All(ctx, &vets); err != nil {
		return nil, fmt.Errorf("error decoding veterinarians: %w", err)
	}
	return vets, nil
}

func (r *mongoVetRepo) UpdateSchedule(ctx context.Context, vetID string, timezone string, noticePeriod int, schedule models.WeeklySchedule) (*models.Veterinarian, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"timezone":     timezone,
			"noticePeriod": noticePeriod,
			"schedule":     schedule,
			"updatedAt":    time.Now().UTC(),
		},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var vet models.Veterinarian
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": vetID}, update, opts).Decode(&vet)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrVetNotFound
		}
		return nil, fmt.Errorf("error updating schedule for veterinarian %s: %w", vetID, err)
	}
	return &vet, nil
}

// EnsureIndexes creates the necessary indexes on the veterinarians collection.
func (r *mongoVetRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetSparse(true).SetName("unique_email"),
		},
		{
			Keys:    bson.D{{Key: "isActive", Value: 1}},
			Options: options.Index().SetName("active_idx"),
		},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create veterinarian indexes: %w", err)
	}
	return nil
}
