// internal/api/appointmenttypes/handlers.go
package appointmenttypes

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/apatelabs/apate/internal/api/apiutil"
	"github.com/apatelabs/apate/internal/models"
	"github.com/apatelabs/apate/internal/store"
)

const typeQueryTimeout = 5 * time.Second

var (
	typeStore *store.AppointmentTypeStore
	storeOnce sync.Once
)

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(s *store.AppointmentTypeStore) {
	if s == nil {
		return
	}
	storeOnce.Do(func() {
		typeStore = s
	})
}

// GET /api/v1/appointment-types
func HandleList(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), typeQueryTimeout)
	defer cancel()

	types, err := typeStore.Get(ctx)
	if err != nil {
		apiutil.WriteStoreError(w, r, err, "Failed to load appointment types")
		return
	}
	if err := apiutil.WriteJSON(w, http.StatusOK, types); err != nil {
		logger.Error().Err(err).Msg("Failed to write appointment types response")
	}
}

// PUT /api/v1/appointment-types
func HandleUpsert(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	var t models.AppointmentType
	if err := apiutil.DecodeJSON(r, &t); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), typeQueryTimeout)
	defer cancel()

	types, err := typeStore.Upsert(ctx, t)
	if err != nil {
		apiutil.WriteStoreError(w, r, err, "Failed to save appointment type")
		return
	}

	logger.Info().Str("type_id", t.ID).Msg("Appointment type saved")
	if err := apiutil.WriteJSON(w, http.StatusOK, types); err != nil {
		logger.Error().Err(err).Msg("Failed to write appointment types response")
	}
}

// DELETE /api/v1/appointment-types/{id}
func HandleDelete(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	id := strings.TrimSpace(r.PathValue("id"))
	if id == "" {
		http.Error(w, "id is required", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), typeQueryTimeout)
	defer cancel()

	types, err := typeStore.Delete(ctx, id)
	if err != nil {
		apiutil.WriteStoreError(w, r, err, "Failed to delete appointment type")
		return
	}

	logger.Info().Str("type_id", id).Msg("Appointment type deleted")
	if err := apiutil.WriteJSON(w, http.StatusOK, types); err != nil {
		logger.Error().Err(err).Msg("Failed to write appointment types response")
	}
}

// POST /api/v1/appointment-types/reset
func HandleReset(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), typeQueryTimeout)
	defer cancel()

	types, err := typeStore.Reset(ctx)
	if err != nil {
		apiutil.WriteStoreError(w, r, err, "Failed to reset appointment types")
		return
	}

	logger.Info().Msg("Appointment types reset to defaults")
	if err := apiutil.WriteJSON(w, http.StatusOK, types); err != nil {
		logger.Error().Err(err).Msg("Failed to write appointment types response")
	}
}
