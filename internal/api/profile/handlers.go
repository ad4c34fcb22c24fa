// internal/api/profile/handlers.go
package profile

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/apatelabs/apate/internal/api/apiutil"
	"github.com/apatelabs/apate/internal/store"
)

const profileQueryTimeout = 5 * time.Second

var (
	manager   *store.ProfileManager
	storeOnce sync.Once
)

type statusResponse struct {
	HasUnsavedChanges bool `json:"hasUnsavedChanges"`
}

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(m *store.ProfileManager) {
	if m == nil {
		return
	}
	storeOnce.Do(func() {
		manager = m
	})
}

// GET /api/v1/profile
func HandleGet(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	payload := map[string]any{
		"profile":           manager.Profile(),
		"hasUnsavedChanges": manager.HasUnsavedChanges(),
	}
	if err := apiutil.WriteJSON(w, http.StatusOK, payload); err != nil {
		logger.Error().Err(err).Msg("Failed to write profile response")
	}
}

// PATCH /api/v1/profile
func HandleUpdate(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	var update store.ProfileUpdate
	if err := apiutil.DecodeJSON(r, &update); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	manager.Update(update)

	payload := map[string]any{
		"profile":           manager.Profile(),
		"hasUnsavedChanges": manager.HasUnsavedChanges(),
	}
	if err := apiutil.WriteJSON(w, http.StatusOK, payload); err != nil {
		logger.Error().Err(err).Msg("Failed to write profile response")
	}
}

// POST /api/v1/profile/save
func HandleSave(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), profileQueryTimeout)
	defer cancel()

	if err := manager.Save(ctx); err != nil {
		apiutil.WriteStoreError(w, r, err, "Failed to save business profile")
		return
	}

	logger.Info().Msg("Business profile saved")
	payload := map[string]any{
		"profile":           manager.Profile(),
		"hasUnsavedChanges": manager.HasUnsavedChanges(),
	}
	if err := apiutil.WriteJSON(w, http.StatusOK, payload); err != nil {
		logger.Error().Err(err).Msg("Failed to write profile response")
	}
}

// POST /api/v1/profile/reset
func HandleReset(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	manager.Reset()

	logger.Info().Msg("Business profile changes discarded")
	payload := map[string]any{
		"profile":           manager.Profile(),
		"hasUnsavedChanges": manager.HasUnsavedChanges(),
	}
	if err := apiutil.WriteJSON(w, http.StatusOK, payload); err != nil {
		logger.Error().Err(err).Msg("Failed to write profile response")
	}
}

// GET /api/v1/profile/status
func HandleStatus(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	if err := apiutil.WriteJSON(w, http.StatusOK, statusResponse{
		HasUnsavedChanges: manager.HasUnsavedChanges(),
	}); err != nil {
		logger.Error().Err(err).Msg("Failed to write profile status response")
	}
}

// POST /api/v1/profile/locations/{id}/default
func HandleSetDefaultLocation(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	id := strings.TrimSpace(r.PathValue("id"))
	if id == "" {
		http.Error(w, "location id is required", http.StatusBadRequest)
		return
	}

	if err := manager.SetDefaultLocation(id); err != nil {
		apiutil.WriteStoreError(w, r, err, "Failed to set default location")
		return
	}

	logger.Info().Str("location_id", id).Msg("Default location changed")
	payload := map[string]any{
		"profile":           manager.Profile(),
		"hasUnsavedChanges": manager.HasUnsavedChanges(),
	}
	if err := apiutil.WriteJSON(w, http.StatusOK, payload); err != nil {
		logger.Error().Err(err).Msg("Failed to write profile response")
	}
}

// DELETE /api/v1/profile/locations/{id}
func HandleRemoveLocation(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	id := strings.TrimSpace(r.PathValue("id"))
	if id == "" {
		http.Error(w, "location id is required", http.StatusBadRequest)
		return
	}

	if err := manager.RemoveLocation(id); err != nil {
		apiutil.WriteStoreError(w, r, err, "Failed to remove location")
		return
	}

	logger.Info().Str("location_id", id).Msg("Location removed")
	payload := map[string]any{
		"profile":           manager.Profile(),
		"hasUnsavedChanges": manager.HasUnsavedChanges(),
	}
	if err := apiutil.WriteJSON(w, http.StatusOK, payload); err != nil {
		logger.Error().Err(err).Msg("Failed to write profile response")
	}
}
