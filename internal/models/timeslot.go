// internal/models/timeslot.go
package models

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Time slots are stored in their 12-hour display form ("9:00 AM"). All
// ordering is done by converting back to 24-hour form, so the stored list
// stays chronological regardless of how entries were typed in.

const (
	slotLayout24 = "15:04"
	slotLayout12 = "3:04 PM"
)

// DefaultTimeSlots returns the out-of-the-box slot list. Callers get a
// fresh copy; the defaults are also the reset target.
func DefaultTimeSlots() []string {
	return []string{
		"9:00 AM",
		"10:00 AM",
		"11:00 AM",
		"1:00 PM",
		"2:00 PM",
		"3:00 PM",
		"4:00 PM",
	}
}

// ParseSlot parses raw as either 24-hour ("14:30") or 12-hour ("2:30 PM")
// input and returns its canonical 12-hour display form. Malformed input is
// rejected, never coerced.
func ParseSlot(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("time slot is required")
	}
	parsed, err := time.Parse(slotLayout24, raw)
	if err != nil {
		parsed, err = time.Parse(slotLayout12, strings.ToUpper(raw))
		if err != nil {
			return "", fmt.Errorf("time slot must be in HH:MM or H:MM AM/PM format")
		}
	}
	return parsed.Format(slotLayout12), nil
}

// SlotSortKey converts a stored 12-hour slot back to its 24-hour form for
// comparison. Entries that fail to parse sort last, after all valid slots.
func SlotSortKey(slot string) string {
	parsed, err := time.Parse(slotLayout12, strings.ToUpper(strings.TrimSpace(slot)))
	if err != nil {
		return "99:99 " + slot
	}
	return parsed.Format(slotLayout24)
}

// SortSlots orders slots chronologically in place.
func SortSlots(slots []string) {
	sort.SliceStable(slots, func(i, j int) bool {
		return SlotSortKey(slots[i]) < SlotSortKey(slots[j])
	})
}

// InsertSlot parses raw, and returns the slot list with the normalized
// entry in sorted position. Inserting an exact duplicate of an existing
// formatted entry returns the list unchanged.
func InsertSlot(slots []string, raw string) ([]string, string, error) {
	formatted, err := ParseSlot(raw)
	if err != nil {
		return slots, "", err
	}
	for _, existing := range slots {
		if existing == formatted {
			return slots, formatted, nil
		}
	}
	updated := make([]string, 0, len(slots)+1)
	updated = append(updated, slots...)
	updated = append(updated, formatted)
	SortSlots(updated)
	return updated, formatted, nil
}

// RemoveSlot returns the list without the exact entry. Removing a missing
// entry is not an error.
func RemoveSlot(slots []string, slot string) []string {
	updated := make([]string, 0, len(slots))
	for _, existing := range slots {
		if existing != slot {
			updated = append(updated, existing)
		}
	}
	return updated
}
