// internal/store/settings.go
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/apatelabs/apate/internal/kv"
	"github.com/apatelabs/apate/internal/models"
)

// SettingsStore manages the general UI preferences. Unlike the profile,
// updates persist immediately; there is no draft state.
type SettingsStore struct {
	store kv.Store
}

func NewSettingsStore(store kv.Store) *SettingsStore {
	return &SettingsStore{store: store}
}

func (s *SettingsStore) Get(ctx context.Context) (models.Settings, error) {
	raw, ok, err := s.store.Get(ctx, kv.KeySettings)
	if err != nil {
		return models.Settings{}, fmt.Errorf("get settings: %w", err)
	}
	if !ok {
		return models.DefaultSettings(), nil
	}

	var settings models.Settings
	if err := json.Unmarshal(raw, &settings); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("Failed to parse settings from storage")
		defaults := models.DefaultSettings()
		if err := s.Save(ctx, defaults); err != nil {
			return models.Settings{}, err
		}
		return defaults, nil
	}
	return settings, nil
}

func (s *SettingsStore) Save(ctx context.Context, settings models.Settings) error {
	if err := settings.Validate(); err != nil {
		return validationErr(err)
	}
	encoded, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := s.store.Put(ctx, kv.KeySettings, encoded); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// Update applies the partial JSON document over the current settings and
// persists the result.
func (s *SettingsStore) Update(ctx context.Context, partial []byte) (models.Settings, error) {
	settings, err := s.Get(ctx)
	if err != nil {
		return models.Settings{}, err
	}
	if err := json.Unmarshal(partial, &settings); err != nil {
		return models.Settings{}, validationErr(fmt.Errorf("invalid settings payload: %v", err))
	}
	if err := s.Save(ctx, settings); err != nil {
		return models.Settings{}, err
	}
	return settings, nil
}

// Reset restores and persists the default settings.
func (s *SettingsStore) Reset(ctx context.Context) (models.Settings, error) {
	defaults := models.DefaultSettings()
	if err := s.Save(ctx, defaults); err != nil {
		return models.Settings{}, err
	}
	return defaults, nil
}
