// internal/store/availability.go
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/apatelabs/apate/internal/kv"
	"github.com/apatelabs/apate/internal/models"
)

// AvailabilityStore manages the working-day and slot-spacing settings.
type AvailabilityStore struct {
	store kv.Store
}

func NewAvailabilityStore(store kv.Store) *AvailabilityStore {
	return &AvailabilityStore{store: store}
}

func (s *AvailabilityStore) Get(ctx context.Context) (models.AvailabilitySettings, error) {
	raw, ok, err := s.store.Get(ctx, kv.KeyAvailability)
	if err != nil {
		return models.AvailabilitySettings{}, fmt.Errorf("get availability settings: %w", err)
	}
	if !ok {
		return models.DefaultAvailabilitySettings(), nil
	}

	var settings models.AvailabilitySettings
	if err := json.Unmarshal(raw, &settings); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("Failed to parse availability settings from storage")
		return models.DefaultAvailabilitySettings(), nil
	}
	return settings, nil
}

// Save validates and persists settings.
func (s *AvailabilityStore) Save(ctx context.Context, settings models.AvailabilitySettings) error {
	if err := settings.Validate(); err != nil {
		return validationErr(err)
	}
	encoded, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode availability settings: %w", err)
	}
	if err := s.store.Put(ctx, kv.KeyAvailability, encoded); err != nil {
		return fmt.Errorf("save availability settings: %w", err)
	}
	return nil
}

// Reset restores the default settings.
func (s *AvailabilityStore) Reset(ctx context.Context) (models.AvailabilitySettings, error) {
	defaults := models.DefaultAvailabilitySettings()
	if err := s.Save(ctx, defaults); err != nil {
		return models.AvailabilitySettings{}, err
	}
	return defaults, nil
}
