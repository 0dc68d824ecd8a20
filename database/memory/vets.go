package memory

import (
	"context"
	"sort"
	"time"

	appointmentRepo "vetcare/database/repository/appointment"
	vetRepo "vetcare/database/repository/vet"
	"vetcare/models"

	"github.com/google/uuid"
)

type vetRepository struct {
	*Store
}

// Vets returns the store's VetRepository.
func (s *Store) Vets() vetRepo.VetRepository {
	return vetRepository{s}
}

// PutVet stores vet, assigning an id when it has none.
func (s *Store) PutVet(vet *models.Veterinarian) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if vet.ID == "" {
		vet.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	vet.CreatedAt, vet.UpdatedAt = now, now
	s.vets[vet.ID] = *vet
}

func (r vetRepository) GetByID(_ context.Context, vetID string) (*models.Veterinarian, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failure != nil {
		return nil, r.failure
	}
	vet, ok := r.vets[vetID]
	if !ok {
		return nil, vetRepo.ErrVetNotFound
	}
	return &vet, nil
}

func (r vetRepository) ListActive(context.Context) ([]models.Veterinarian, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failure != nil {
		return nil, r.failure
	}
	var out []models.Veterinarian
	for _, vet := range r.vets {
		if vet.IsActive {
			out = append(out, vet)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r vetRepository) UpdateSchedule(_ context.Context, vetID string, timezone string, noticePeriod int, schedule models.WeeklySchedule) (*models.Veterinarian, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failure != nil {
		return nil, r.failure
	}
	vet, ok := r.vets[vetID]
	if !ok {
		return nil, vetRepo.ErrVetNotFound
	}
	vet.Timezone = timezone
	vet.NoticePeriod = noticePeriod
	vet.Schedule = schedule
	vet.UpdatedAt = time.Now().UTC()
	r.vets[vetID] = vet
	return &vet, nil
}

func (r vetRepository) EnsureIndexes(context.Context) error { return nil }

type appointmentRepository struct {
	*Store
}

// Appointments returns the store's AppointmentRepository.
func (s *Store) Appointments() appointmentRepo.AppointmentRepository {
	return appointmentRepository{s}
}

func (r appointmentRepository) Create(_ context.Context, appt *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failure != nil {
		return r.failure
	}
	r.appointments[appt.ID] = *appt
	return nil
}

func (r appointmentRepository) GetByID(_ context.Context, appointmentID string) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failure != nil {
		return nil, r.failure
	}
	appt, ok := r.appointments[appointmentID]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	return &appt, nil
}

func (r appointmentRepository) EnsureIndexes(context.Context) error { return nil }
