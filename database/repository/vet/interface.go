// File: database/repository/vet/interface.go
package vetRepo

import (
	"context"
	"errors"

	"vetcare/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrVetNotFound is returned when no veterinarian matches the id.
var ErrVetNotFound = errors.New("veterinarian not found")

// VetRepository reads and updates the schedule part of veterinarian profiles.
type VetRepository interface {
	GetByID(ctx context.Context, vetID string) (*models.Veterinarian, error)
	ListActive(ctx context.Context) ([]models.Veterinarian, error)
	UpdateSchedule(ctx context.Context, vetID string, timezone string, noticePeriod int, schedule models.WeeklySchedule) (*models.Veterinarian, error)
	EnsureIndexes(ctx context.Context) error
}

type mongoVetRepo struct {
	coll *mongo.Collection
}

// NewMongoVetRepo constructs a MongoDB VetRepository on the "veterinarians" collection.
func NewMongoVetRepo(db *mongo.Database) VetRepository {
	return &mongoVetRepo{
		coll: db.Collection("veterinarians"),
	}
}
