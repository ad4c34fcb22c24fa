// internal/api/availability/handlers.go
package availability

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/apatelabs/apate/internal/api/apiutil"
	"github.com/apatelabs/apate/internal/models"
	"github.com/apatelabs/apate/internal/store"
)

const availabilityQueryTimeout = 5 * time.Second

var (
	availabilityStore *store.AvailabilityStore
	storeOnce         sync.Once
)

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(s *store.AvailabilityStore) {
	if s == nil {
		return
	}
	storeOnce.Do(func() {
		availabilityStore = s
	})
}

// GET /api/v1/availability
func HandleGet(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), availabilityQueryTimeout)
	defer cancel()

	settings, err := availabilityStore.Get(ctx)
	if err != nil {
		apiutil.WriteStoreError(w, r, err, "Failed to load availability settings")
		return
	}
	if err := apiutil.WriteJSON(w, http.StatusOK, settings); err != nil {
		logger.Error().Err(err).Msg("Failed to write availability response")
	}
}

// PUT /api/v1/availability
func HandleSave(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	var settings models.AvailabilitySettings
	if err := apiutil.DecodeJSON(r, &settings); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), availabilityQueryTimeout)
	defer cancel()

	if err := availabilityStore.Save(ctx, settings); err != nil {
		apiutil.WriteStoreError(w, r, err, "Failed to save availability settings")
		return
	}

	logger.Info().Msg("Availability settings saved")
	if err := apiutil.WriteJSON(w, http.StatusOK, settings); err != nil {
		logger.Error().Err(err).Msg("Failed to write availability response")
	}
}

// POST /api/v1/availability/reset
func HandleReset(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), availabilityQueryTimeout)
	defer cancel()

	settings, err := availabilityStore.Reset(ctx)
	if err != nil {
		apiutil.WriteStoreError(w, r, err, "Failed to reset availability settings")
		return
	}

	logger.Info().Msg("Availability settings reset to defaults")
	if err := apiutil.WriteJSON(w, http.StatusOK, settings); err != nil {
		logger.Error().Err(err).Msg("Failed to write availability response")
	}
}

// GET /api/v1/availability/slots
func HandleGeneratedSlots(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), availabilityQueryTimeout)
	defer cancel()

	settings, err := availabilityStore.Get(ctx)
	if err != nil {
		apiutil.WriteStoreError(w, r, err, "Failed to load availability settings")
		return
	}

	slots, err := settings.GenerateSlots()
	if err != nil {
		logger.Error().Err(err).Msg("Stored availability settings failed slot generation")
		http.Error(w, "Failed to generate slots", http.StatusInternalServerError)
		return
	}
	if err := apiutil.WriteJSON(w, http.StatusOK, slots); err != nil {
		logger.Error().Err(err).Msg("Failed to write availability response")
	}
}
