package appointmentRepo

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

// ErrAppointmentNotFound is returned when no appointment matches the id.
var ErrAppointmentNotFound = errors.New("appointment not found")

// AppointmentRepository stores the appointments created by slot bookings.
type AppointmentRepository interface {
	Create(ctx context.Context, appt *models.Appointment) error
	GetByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	EnsureIndexes(ctx context.Context) error
}

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a MongoDB AppointmentRepository on the "appointments" collection.
func NewMongoAppointmentRepo(db *mongo.Database) AppointmentRepository {
	return &mongoAppointmentRepo{coll: db.Collection("appointments")}
}

// Create inserts a new appointment document.
func (r *mongoAppointmentRepo) Create(ctx context.Context, appt *models.Appointment) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, appt); err != nil {
		return fmt.Errorf("error creating appointment: %w", err)
	}
	return nil
}

// GetByID retrieves an appointment by its ID.
func (r *mongoAppointmentRepo) GetByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var appt models.Appointment
	if err := r.coll.FindOne(ctx, bson.M{"id": appointmentID}).Decode(&appt); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("appointment lookup failed: %w", err)
	}
	return &appt, nil
}

// EnsureIndexes creates the necessary indexes on the appointments collection.
func (r *mongoAppointmentRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// One appointment per slot.
		{
			Keys:    bson.D{{Key: "slotId", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_slot"),
		},
		{
			Keys:    bson.D{{Key: "vetId", Value: 1}, {Key: "startsAt", Value: 1}},
			Options: options.Index().SetName("vet_starts_idx"),
		},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create appointment indexes: %w", err)
	}
	return nil
}
