// internal/api/settings/handlers.go
package settings

import (
	"context"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/apatelabs/apate/internal/api/apiutil"
	"github.com/apatelabs/apate/internal/store"
)

const settingsQueryTimeout = 5 * time.Second

var (
	settingsStore *store.SettingsStore
	storeOnce     sync.Once
)

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(s *store.SettingsStore) {
	if s == nil {
		return
	}
	storeOnce.Do(func() {
		settingsStore = s
	})
}

// GET /api/v1/settings
func HandleGet(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), settingsQueryTimeout)
	defer cancel()

	settings, err := settingsStore.Get(ctx)
	if err != nil {
		apiutil.WriteStoreError(w, r, err, "Failed to load settings")
		return
	}
	if err := apiutil.WriteJSON(w, http.StatusOK, settings); err != nil {
		logger.Error().Err(err).Msg("Failed to write settings response")
	}
}

// PATCH /api/v1/settings
func HandleUpdate(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	if r.Body == nil {
		http.Error(w, "missing request body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()
	partial, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "failed to read request body", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), settingsQueryTimeout)
	defer cancel()

	settings, err := settingsStore.Update(ctx, partial)
	if err != nil {
		apiutil.WriteStoreError(w, r, err, "Failed to update settings")
		return
	}

	logger.Info().Msg("Settings updated")
	if err := apiutil.WriteJSON(w, http.StatusOK, settings); err != nil {
		logger.Error().Err(err).Msg("Failed to write settings response")
	}
}

// POST /api/v1/settings/reset
func HandleReset(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), settingsQueryTimeout)
	defer cancel()

	settings, err := settingsStore.Reset(ctx)
	if err != nil {
		apiutil.WriteStoreError(w, r, err, "Failed to reset settings")
		return
	}

	logger.Info().Msg("Settings reset to defaults")
	if err := apiutil.WriteJSON(w, http.StatusOK, settings); err != nil {
		logger.Error().Err(err).Msg("Failed to write settings response")
	}
}
