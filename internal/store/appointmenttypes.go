// internal/store/appointmenttypes.go
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/apatelabs/apate/internal/kv"
	"github.com/apatelabs/apate/internal/models"
)

// AppointmentTypeStore manages the bookable categories. The collection
// never drops below one entry.
type AppointmentTypeStore struct {
	store kv.Store
}

func NewAppointmentTypeStore(store kv.Store) *AppointmentTypeStore {
	return &AppointmentTypeStore{store: store}
}

func (s *AppointmentTypeStore) Get(ctx context.Context) ([]models.AppointmentType, error) {
	raw, ok, err := s.store.Get(ctx, kv.KeyAppointmentTypes)
	if err != nil {
		return nil, fmt.Errorf("get appointment types: %w", err)
	}
	if !ok {
		return models.DefaultAppointmentTypes(), nil
	}

	var types []models.AppointmentType
	if err := json.Unmarshal(raw, &types); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("Failed to parse appointment types from storage")
		return models.DefaultAppointmentTypes(), nil
	}
	return types, nil
}

func (s *AppointmentTypeStore) Save(ctx context.Context, types []models.AppointmentType) error {
	encoded, err := json.Marshal(types)
	if err != nil {
		return fmt.Errorf("encode appointment types: %w", err)
	}
	if err := s.store.Put(ctx, kv.KeyAppointmentTypes, encoded); err != nil {
		return fmt.Errorf("save appointment types: %w", err)
	}
	return nil
}

// Upsert validates t and merges it into the collection by identifier,
// appending when the identifier is new. The stored list is returned.
func (s *AppointmentTypeStore) Upsert(ctx context.Context, t models.AppointmentType) ([]models.AppointmentType, error) {
	if err := t.Validate(); err != nil {
		return nil, validationErr(err)
	}

	types, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	merged := false
	for i := range types {
		if types[i].ID == t.ID {
			types[i] = t
			merged = true
			break
		}
	}
	if !merged {
		types = append(types, t)
	}

	if err := s.Save(ctx, types); err != nil {
		return nil, err
	}
	return types, nil
}

// Delete removes the type with id. Deleting the last remaining type is
// rejected with ErrLastAppointmentType.
func (s *AppointmentTypeStore) Delete(ctx context.Context, id string) ([]models.AppointmentType, error) {
	types, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	remaining := make([]models.AppointmentType, 0, len(types))
	for _, t := range types {
		if t.ID != id {
			remaining = append(remaining, t)
		}
	}
	if len(remaining) == len(types) {
		return nil, ErrNotFound
	}
	if len(remaining) == 0 {
		return nil, ErrLastAppointmentType
	}

	if err := s.Save(ctx, remaining); err != nil {
		return nil, err
	}
	return remaining, nil
}

// Reset restores the default categories.
func (s *AppointmentTypeStore) Reset(ctx context.Context) ([]models.AppointmentType, error) {
	defaults := models.DefaultAppointmentTypes()
	if err := s.Save(ctx, defaults); err != nil {
		return nil, err
	}
	return defaults, nil
}
