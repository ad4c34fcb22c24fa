// internal/store/profile.go
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/apatelabs/apate/internal/kv"
	"github.com/apatelabs/apate/internal/models"
)

// ProfileUpdate is a shallow partial: only non-nil fields replace the
// draft's fields, and nested objects replace wholesale. Callers editing a
// single nested field must send the whole nested object.
type ProfileUpdate struct {
	Name          *string                 `json:"name,omitempty"`
	Description   *string                 `json:"description,omitempty"`
	Logo          *string                 `json:"logo,omitempty"`
	ContactInfo   *models.ContactInfo     `json:"contactInfo,omitempty"`
	Address       *models.Address         `json:"address,omitempty"`
	BusinessHours *[]models.BusinessHours `json:"businessHours,omitempty"`
	Locations     *[]models.Location      `json:"locations,omitempty"`
	Policies      *models.Policies        `json:"policies,omitempty"`
	Branding      *models.Branding        `json:"branding,omitempty"`
}

// ProfileManager wraps the single business-profile record with a live
// editable draft and the last-saved snapshot. Dirty state is derived by
// comparing the two, never tracked by hand. Handlers run on concurrent
// goroutines, so every method takes the mutex; draft and snapshot are
// cloned at each boundary so the two never share backing arrays.
type ProfileManager struct {
	mu    sync.Mutex
	store kv.Store
	draft models.BusinessProfile
	saved models.BusinessProfile
}

// NewProfileManager loads the persisted profile. Missing or unparseable
// storage logs and starts from the default profile.
func NewProfileManager(ctx context.Context, store kv.Store) (*ProfileManager, error) {
	m := &ProfileManager{store: store}

	raw, ok, err := store.Get(ctx, kv.KeyBusinessProfile)
	if err != nil {
		return nil, fmt.Errorf("load business profile: %w", err)
	}

	profile := models.DefaultBusinessProfile()
	if ok {
		if err := json.Unmarshal(raw, &profile); err != nil {
			log.Ctx(ctx).Error().Err(err).Msg("Failed to parse business profile from storage")
			profile = models.DefaultBusinessProfile()
		}
	}

	m.draft = profile
	m.saved = profile.Clone()
	return m, nil
}

// Profile returns a copy of the current draft.
func (m *ProfileManager) Profile() models.BusinessProfile {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.draft.Clone()
}

// Saved returns a copy of the last persisted snapshot.
func (m *ProfileManager) Saved() models.BusinessProfile {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saved.Clone()
}

// HasUnsavedChanges reports whether the draft differs from the snapshot.
func (m *ProfileManager) HasUnsavedChanges() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.dirtyLocked()
}

func (m *ProfileManager) dirtyLocked() bool {
	draftJSON, err := json.Marshal(m.draft)
	if err != nil {
		return true
	}
	savedJSON, err := json.Marshal(m.saved)
	if err != nil {
		return true
	}
	return !bytes.Equal(draftJSON, savedJSON)
}

// Update shallow-merges the partial into the draft. The contact website is
// normalized to an absolute URL on the way in.
func (m *ProfileManager) Update(update ProfileUpdate) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if update.Name != nil {
		m.draft.Name = *update.Name
	}
	if update.Description != nil {
		m.draft.Description = *update.Description
	}
	if update.Logo != nil {
		m.draft.Logo = *update.Logo
	}
	if update.ContactInfo != nil {
		contact := *update.ContactInfo
		contact.Website = models.NormalizeWebsite(contact.Website)
		m.draft.ContactInfo = contact
	}
	if update.Address != nil {
		m.draft.Address = *update.Address
	}
	if update.BusinessHours != nil {
		hours := make([]models.BusinessHours, len(*update.BusinessHours))
		copy(hours, *update.BusinessHours)
		m.draft.BusinessHours = hours
	}
	if update.Locations != nil {
		locations := make([]models.Location, len(*update.Locations))
		copy(locations, *update.Locations)
		m.draft.Locations = locations
	}
	if update.Policies != nil {
		m.draft.Policies = *update.Policies
	}
	if update.Branding != nil {
		m.draft.Branding = *update.Branding
	}
}

// SetDefaultLocation marks one draft location as default and clears the
// flag on every other location.
func (m *ProfileManager) SetDefaultLocation(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.draft.SetDefaultLocation(id) {
		return ErrNotFound
	}
	return nil
}

// RemoveLocation deletes a draft location, promoting the first remaining
// location when the default was removed.
func (m *ProfileManager) RemoveLocation(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.draft.RemoveLocation(id) {
		return ErrNotFound
	}
	return nil
}

// Save validates the full draft, persists it, and promotes it to be the
// new snapshot. Validation failure leaves storage and the snapshot as
// they were; the draft keeps its unsaved edits.
func (m *ProfileManager) Save(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.draft.Validate(); err != nil {
		return validationErr(err)
	}

	encoded, err := json.Marshal(m.draft)
	if err != nil {
		return fmt.Errorf("encode business profile: %w", err)
	}
	if err := m.store.Put(ctx, kv.KeyBusinessProfile, encoded); err != nil {
		return fmt.Errorf("save business profile: %w", err)
	}

	m.saved = m.draft.Clone()
	return nil
}

// Reset discards the draft and restores the last-saved snapshot.
func (m *ProfileManager) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.draft = m.saved.Clone()
}
