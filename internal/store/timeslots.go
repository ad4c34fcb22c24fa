// internal/store/timeslots.go
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/apatelabs/apate/internal/kv"
	"github.com/apatelabs/apate/internal/models"
)

// TimeSlotStore manages the bookable time-of-day labels.
type TimeSlotStore struct {
	store kv.Store
}

func NewTimeSlotStore(store kv.Store) *TimeSlotStore {
	return &TimeSlotStore{store: store}
}

// Get returns the slot list, falling back to the defaults when storage is
// empty or unparseable.
func (s *TimeSlotStore) Get(ctx context.Context) ([]string, error) {
	raw, ok, err := s.store.Get(ctx, kv.KeyTimeSlots)
	if err != nil {
		return nil, fmt.Errorf("get time slots: %w", err)
	}
	if !ok {
		return models.DefaultTimeSlots(), nil
	}

	var slots []string
	if err := json.Unmarshal(raw, &slots); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("Failed to parse time slots from storage")
		return models.DefaultTimeSlots(), nil
	}
	return slots, nil
}

// Save overwrites the stored slot list.
func (s *TimeSlotStore) Save(ctx context.Context, slots []string) error {
	encoded, err := json.Marshal(slots)
	if err != nil {
		return fmt.Errorf("encode time slots: %w", err)
	}
	if err := s.store.Put(ctx, kv.KeyTimeSlots, encoded); err != nil {
		return fmt.Errorf("save time slots: %w", err)
	}
	return nil
}

// Add parses raw as 24-hour or 12-hour input, normalizes it to 12-hour
// display form, and persists it in sorted position. Inserting an exact
// duplicate leaves the collection unchanged. The stored list is returned.
func (s *TimeSlotStore) Add(ctx context.Context, raw string) ([]string, error) {
	slots, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	updated, _, err := models.InsertSlot(slots, raw)
	if err != nil {
		return nil, validationErr(err)
	}
	if err := s.Save(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// Remove deletes the exact formatted entry and returns the stored list.
func (s *TimeSlotStore) Remove(ctx context.Context, slot string) ([]string, error) {
	slots, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	updated := models.RemoveSlot(slots, slot)
	if err := s.Save(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// Reset restores the default slot list.
func (s *TimeSlotStore) Reset(ctx context.Context) ([]string, error) {
	defaults := models.DefaultTimeSlots()
	if err := s.Save(ctx, defaults); err != nil {
		return nil, err
	}
	return defaults, nil
}
