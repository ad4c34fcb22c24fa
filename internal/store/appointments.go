// internal/store/appointments.go
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/apatelabs/apate/internal/kv"
	"github.com/apatelabs/apate/internal/models"
)

// AppointmentStore exposes the full-collection contract: List, GetByID,
// and Save. There is no partial update; callers read-modify-write the
// whole collection.
type AppointmentStore struct {
	store kv.Store
}

func NewAppointmentStore(store kv.Store) *AppointmentStore {
	return &AppointmentStore{store: store}
}

// List returns every appointment. An empty storage key is seeded with the
// mock records; unparseable data logs and falls back to the seed set
// without overwriting what is stored.
func (s *AppointmentStore) List(ctx context.Context) ([]models.Appointment, error) {
	raw, ok, err := s.store.Get(ctx, kv.KeyAppointments)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	if !ok {
		seed := models.SeedAppointments()
		if err := s.Save(ctx, seed); err != nil {
			return nil, err
		}
		return seed, nil
	}

	var appointments []models.Appointment
	if err := json.Unmarshal(raw, &appointments); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("Failed to parse appointments from storage")
		return models.SeedAppointments(), nil
	}
	return appointments, nil
}

// GetByID returns the appointment with id, or ErrNotFound.
func (s *AppointmentStore) GetByID(ctx context.Context, id string) (models.Appointment, error) {
	appointments, err := s.List(ctx)
	if err != nil {
		return models.Appointment{}, err
	}
	for _, appointment := range appointments {
		if appointment.ID == id {
			return appointment, nil
		}
	}
	return models.Appointment{}, ErrNotFound
}

// Save overwrites the full collection.
func (s *AppointmentStore) Save(ctx context.Context, appointments []models.Appointment) error {
	encoded, err := json.Marshal(appointments)
	if err != nil {
		return fmt.Errorf("encode appointments: %w", err)
	}
	if err := s.store.Put(ctx, kv.KeyAppointments, encoded); err != nil {
		return fmt.Errorf("save appointments: %w", err)
	}
	return nil
}
