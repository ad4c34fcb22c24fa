// internal/api/timeslots/handlers.go
package timeslots

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

const timeSlotQueryTimeout = 5 * time.Second

var (
	slotStore *store.TimeSlotStore
	storeOnce sync.Once
)

type slotRequest struct {
	Time string `json:"time"`
}

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(s *store.TimeSlotStore) {
	if s == nil {
		return
	}
	storeOnce.Do(func() {
		slotStore = s
	})
}

// GET /api/v1/timeslots
func HandleList(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), timeSlotQueryTimeout)
	defer cancel()

	slots, err := slotStore.Get(ctx)
	if err != nil {
		apiutil.WriteStoreError(w, r, err, "Failed to load time slots")
		return
	}
	if err := apiutil.WriteJSON(w, http.StatusOK, slots); err != nil {
		logger.Error().Err(err).Msg("Failed to write time slots response")
	}
}

// POST /api/v1/timeslots
func HandleAdd(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	var req slotRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeSlotQueryTimeout)
	defer cancel()

	slots, err := slotStore.Add(ctx, req.Time)
	if err != nil {
		apiutil.WriteStoreError(w, r, err, "Failed to add time slot")
		return
	}

	logger.Info().Str("slot", req.Time).Msg("Time slot added")
	if err := apiutil.WriteJSON(w, http.StatusOK, slots); err != nil {
		logger.Error().Err(err).Msg("Failed to write time slots response")
	}
}

// DELETE /api/v1/timeslots/{slot}
func HandleRemove(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	slot := strings.TrimSpace(r.PathValue("slot"))
	if slot == "" {
		http.Error(w, "slot is required", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeSlotQueryTimeout)
	defer cancel()

	slots, err := slotStore.Remove(ctx, slot)
	if err != nil {
		apiutil.WriteStoreError(w, r, err, "Failed to remove time slot")
		return
	}

	logger.Info().Str("slot", slot).Msg("Time slot removed")
	if err := apiutil.WriteJSON(w, http.StatusOK, slots); err != nil {
		logger.Error().Err(err).Msg("Failed to write time slots response")
	}
}

// POST /api/v1/timeslots/reset
func HandleReset(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), timeSlotQueryTimeout)
	defer cancel()

	slots, err := slotStore.Reset(ctx)
	if err != nil {
		apiutil.WriteStoreError(w, r, err, "Failed to reset time slots")
		return
	}

	logger.Info().Msg("Time slots reset to defaults")
	if err := apiutil.WriteJSON(w, http.StatusOK, slots); err != nil {
		logger.Error().Err(err).Msg("Failed to write time slots response")
	}
}
