package store

import (
	"context"
	"errors"
	"testing"

	"github.com/apatelabs/apate/internal/kv"
	"github.com/apatelabs/apate/internal/models"
)

func TestSettingsGetDefaults(t *testing.T) {
	ctx := context.Background()
	settings := NewSettingsStore(kv.NewMemoryStore())

	got, err := settings.Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != models.DefaultSettings() {
		t.Errorf("Get = %+v, want defaults", got)
	}
}

func TestSettingsUpdateMergesPartial(t *testing.T) {
	ctx := context.Background()
	settings := NewSettingsStore(kv.NewMemoryStore())

	got, err := settings.Update(ctx, []byte(`{"themeMode":"dark","showWeekends":true}`))
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.ThemeMode != "dark" || !got.ShowWeekends {
		t.Errorf("updated fields not applied: %+v", got)
	}
	if got.ThemeColor != "lime" || got.TimeFormat != "12h" {
		t.Errorf("untouched fields changed: %+v", got)
	}

	stored, err := settings.Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if stored.ThemeMode != "dark" {
		t.Error("update was not persisted")
	}
}

func TestSettingsUpdateRejectsInvalid(t *testing.T) {
	ctx := context.Background()
	settings := NewSettingsStore(kv.NewMemoryStore())

	if _, err := settings.Update(ctx, []byte(`{"themeMode":"sepia"}`)); !errors.Is(err, ErrValidation) {
		t.Errorf("err = %v, want ErrValidation", err)
	}
	if _, err := settings.Update(ctx, []byte(`{"fontScale":3}`)); !errors.Is(err, ErrValidation) {
		t.Errorf("err = %v, want ErrValidation", err)
	}
	if _, err := settings.Update(ctx, []byte(`{"fontScale":`)); !errors.Is(err, ErrValidation) {
		t.Errorf("err = %v, want ErrValidation", err)
	}
}

func TestSettingsCorruptStorageResetsDefaults(t *testing.T) {
	ctx := context.Background()
	memory := kv.NewMemoryStore()
	if err := memory.Put(ctx, kv.KeySettings, []byte("corrupt")); err != nil {
		t.Fatalf("Put: %v", err)
	}

	settings := NewSettingsStore(memory)
	got, err := settings.Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != models.DefaultSettings() {
		t.Errorf("Get = %+v, want defaults", got)
	}

	// Unlike other domains, corrupt settings are rewritten with defaults.
	raw, ok, err := memory.Get(ctx, kv.KeySettings)
	if err != nil || !ok {
		t.Fatalf("Get raw: ok=%v err=%v", ok, err)
	}
	if string(raw) == "corrupt" {
		t.Error("corrupt entry was not replaced with defaults")
	}
}

func TestSettingsReset(t *testing.T) {
	ctx := context.Background()
	settings := NewSettingsStore(kv.NewMemoryStore())

	if _, err := settings.Update(ctx, []byte(`{"viewMode":"list"}`)); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, err := settings.Reset(ctx)
	if err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if got != models.DefaultSettings() {
		t.Errorf("Reset = %+v, want defaults", got)
	}
}
