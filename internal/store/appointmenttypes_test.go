package store

import (
	"context"
	"errors"
	"testing"

	"github.com/apatelabs/apate/internal/kv"
	"github.com/apatelabs/apate/internal/models"
)

func TestAppointmentTypeUpsertNewAndExisting(t *testing.T) {
	ctx := context.Background()
	types := NewAppointmentTypeStore(kv.NewMemoryStore())

	added, err := types.Upsert(ctx, models.AppointmentType{
		ID:       "intake",
		Label:    "Intake",
		Duration: 90,
		Color:    "bg-amber-100",
	})
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if len(added) != 4 {
		t.Fatalf("len = %d, want 4", len(added))
	}

	updated, err := types.Upsert(ctx, models.AppointmentType{
		ID:       "consultation",
		Label:    "Long Consultation",
		Duration: 120,
		Color:    "bg-blue-100",
	})
	if err != nil {
		t.Fatalf("Upsert existing: %v", err)
	}
	if len(updated) != 4 {
		t.Fatalf("merge by id added instead of replacing: len = %d", len(updated))
	}
	for _, entry := range updated {
		if entry.ID == "consultation" && entry.Duration != 120 {
			t.Errorf("existing entry not replaced: %+v", entry)
		}
	}
}

func TestAppointmentTypeUpsertValidation(t *testing.T) {
	ctx := context.Background()
	types := NewAppointmentTypeStore(kv.NewMemoryStore())

	tests := []struct {
		name string
		t    models.AppointmentType
	}{
		{"empty label", models.AppointmentType{ID: "x", Label: " ", Duration: 30, Color: "bg-red-100"}},
		{"duration too short", models.AppointmentType{ID: "x", Label: "X", Duration: 4, Color: "bg-red-100"}},
		{"duration too long", models.AppointmentType{ID: "x", Label: "X", Duration: 241, Color: "bg-red-100"}},
		{"empty color", models.AppointmentType{ID: "x", Label: "X", Duration: 30, Color: ""}},
		{"empty id", models.AppointmentType{ID: "", Label: "X", Duration: 30, Color: "bg-red-100"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := types.Upsert(ctx, tt.t); !errors.Is(err, ErrValidation) {
				t.Errorf("err = %v, want ErrValidation", err)
			}
		})
	}
}

func TestAppointmentTypeDeleteLastRejected(t *testing.T) {
	ctx := context.Background()
	types := NewAppointmentTypeStore(kv.NewMemoryStore())

	if err := types.Save(ctx, []models.AppointmentType{
		{ID: "only", Label: "Only", Duration: 30, Color: "bg-red-100"},
	}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if _, err := types.Delete(ctx, "only"); !errors.Is(err, ErrLastAppointmentType) {
		t.Fatalf("err = %v, want ErrLastAppointmentType", err)
	}

	// An unknown id is still not-found, even at the floor.
	if _, err := types.Delete(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound for unknown id", err)
	}

	remaining, err := types.Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(remaining) != 1 {
		t.Errorf("len = %d, collection must keep at least one type", len(remaining))
	}
}

func TestAppointmentTypeDelete(t *testing.T) {
	ctx := context.Background()
	types := NewAppointmentTypeStore(kv.NewMemoryStore())

	remaining, err := types.Delete(ctx, "routine")
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(remaining) != 2 {
		t.Errorf("len = %d, want 2", len(remaining))
	}

	if _, err := types.Delete(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestAppointmentTypeReset(t *testing.T) {
	ctx := context.Background()
	types := NewAppointmentTypeStore(kv.NewMemoryStore())

	if _, err := types.Delete(ctx, "routine"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	reset, err := types.Reset(ctx)
	if err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if len(reset) != 3 {
		t.Errorf("len = %d, want 3 defaults", len(reset))
	}
}
