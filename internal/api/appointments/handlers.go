// internal/api/appointments/handlers.go
package appointments

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/apatelabs/apate/internal/api/apiutil"
	"github.com/apatelabs/apate/internal/models"
	"github.com/apatelabs/apate/internal/sharelink"
	"github.com/apatelabs/apate/internal/store"
)

const (
	appointmentQueryTimeout = 5 * time.Second
	appointmentIDParam      = "id"
)

var (
	appointmentStore *store.AppointmentStore
	typeStore        *store.AppointmentTypeStore
	shareBaseURL     string
	storesOnce       sync.Once
)

type appointmentRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Date  string `json:"date"`
	Time  string `json:"time"`
	Type  string `json:"type"`
	Notes string `json:"notes,omitempty"`
}

type confirmRequest struct {
	ClientName  string `json:"clientName"`
	ClientEmail string `json:"clientEmail"`
	ClientPhone string `json:"clientPhone,omitempty"`
}

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(appointments *store.AppointmentStore, types *store.AppointmentTypeStore, baseURL string) {
	if appointments == nil || types == nil {
		return
	}
	storesOnce.Do(func() {
		appointmentStore = appointments
		typeStore = types
		shareBaseURL = baseURL
	})
}

// GET /api/v1/appointments
func HandleList(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), appointmentQueryTimeout)
	defer cancel()

	appointments, err := appointmentStore.List(ctx)
	if err != nil {
		apiutil.WriteStoreError(w, r, err, "Failed to load appointments")
		return
	}
	if err := apiutil.WriteJSON(w, http.StatusOK, appointments); err != nil {
		logger.Error().Err(err).Msg("Failed to write appointments response")
	}
}

// POST /api/v1/appointments
func HandleCreate(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	var req appointmentRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), appointmentQueryTimeout)
	defer cancel()

	appointment, err := appointmentFromRequest(ctx, req)
	if err != nil {
		apiutil.WriteStoreError(w, r, err, "Failed to create appointment")
		return
	}
	appointment.ID = uuid.New().String()

	appointments, err := appointmentStore.List(ctx)
	if err != nil {
		apiutil.WriteStoreError(w, r, err, "Failed to create appointment")
		return
	}
	appointments = append(appointments, appointment)
	if err := appointmentStore.Save(ctx, appointments); err != nil {
		apiutil.WriteStoreError(w, r, err, "Failed to create appointment")
		return
	}

	logger.Info().Str("appointment_id", appointment.ID).Msg("Appointment created")
	if err := apiutil.WriteJSON(w, http.StatusCreated, appointment); err != nil {
		logger.Error().Err(err).Msg("Failed to write appointment response")
	}
}

// GET /api/v1/appointments/{id}
func HandleGet(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	id, err := appointmentIDFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), appointmentQueryTimeout)
	defer cancel()

	appointment, err := appointmentStore.GetByID(ctx, id)
	if err != nil {
		apiutil.WriteStoreError(w, r, err, "Failed to load appointment")
		return
	}
	if err := apiutil.WriteJSON(w, http.StatusOK, appointment); err != nil {
		logger.Error().Err(err).Msg("Failed to write appointment response")
	}
}

// PUT /api/v1/appointments/{id}
func HandleUpdate(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	id, err := appointmentIDFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req appointmentRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), appointmentQueryTimeout)
	defer cancel()

	updated, err := appointmentFromRequest(ctx, req)
	if err != nil {
		apiutil.WriteStoreError(w, r, err, "Failed to update appointment")
		return
	}

	appointments, err := appointmentStore.List(ctx)
	if err != nil {
		apiutil.WriteStoreError(w, r, err, "Failed to update appointment")
		return
	}

	found := false
	for i := range appointments {
		if appointments[i].ID == id {
			updated.ID = id
			updated.ClientName = appointments[i].ClientName
			updated.ClientEmail = appointments[i].ClientEmail
			updated.ClientPhone = appointments[i].ClientPhone
			updated.Confirmed = appointments[i].Confirmed
			appointments[i] = updated
			found = true
			break
		}
	}
	if !found {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}

	if err := appointmentStore.Save(ctx, appointments); err != nil {
		apiutil.WriteStoreError(w, r, err, "Failed to update appointment")
		return
	}

	logger.Info().Str("appointment_id", id).Msg("Appointment updated")
	if err := apiutil.WriteJSON(w, http.StatusOK, updated); err != nil {
		logger.Error().Err(err).Msg("Failed to write appointment response")
	}
}

// DELETE /api/v1/appointments/{id}
func HandleDelete(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	id, err := appointmentIDFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), appointmentQueryTimeout)
	defer cancel()

	appointments, err := appointmentStore.List(ctx)
	if err != nil {
		apiutil.WriteStoreError(w, r, err, "Failed to delete appointment")
		return
	}

	remaining := make([]models.Appointment, 0, len(appointments))
	for _, appointment := range appointments {
		if appointment.ID != id {
			remaining = append(remaining, appointment)
		}
	}
	if len(remaining) == len(appointments) {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}

	if err := appointmentStore.Save(ctx, remaining); err != nil {
		apiutil.WriteStoreError(w, r, err, "Failed to delete appointment")
		return
	}

	logger.Info().Str("appointment_id", id).Msg("Appointment deleted")
	if err := apiutil.WriteJSON(w, http.StatusOK, map[string]any{"deleted": true}); err != nil {
		logger.Error().Err(err).Msg("Failed to write appointment response")
	}
}

// POST /api/v1/appointments/{id}/confirm
func HandleConfirm(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	id, err := appointmentIDFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req confirmRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.ClientName) == "" {
		http.Error(w, "clientName is required", http.StatusBadRequest)
		return
	}
	if !models.IsEmail(req.ClientEmail) {
		http.Error(w, "clientEmail must be a valid email address", http.StatusBadRequest)
		return
	}
	if req.ClientPhone != "" && !models.IsPhoneNumber(req.ClientPhone) {
		http.Error(w, "clientPhone must be a valid phone number", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), appointmentQueryTimeout)
	defer cancel()

	appointments, err := appointmentStore.List(ctx)
	if err != nil {
		apiutil.WriteStoreError(w, r, err, "Failed to confirm appointment")
		return
	}

	var confirmed *models.Appointment
	for i := range appointments {
		if appointments[i].ID == id {
			appointments[i].ClientName = req.ClientName
			appointments[i].ClientEmail = req.ClientEmail
			appointments[i].ClientPhone = models.NormalizePhone(req.ClientPhone)
			appointments[i].Confirmed = true
			confirmed = &appointments[i]
			break
		}
	}
	if confirmed == nil {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}

	if err := appointmentStore.Save(ctx, appointments); err != nil {
		apiutil.WriteStoreError(w, r, err, "Failed to confirm appointment")
		return
	}

	logger.Info().Str("appointment_id", id).Msg("Appointment confirmed")
	if err := apiutil.WriteJSON(w, http.StatusOK, confirmed); err != nil {
		logger.Error().Err(err).Msg("Failed to write appointment response")
	}
}

// GET /api/v1/appointments/{id}/share
func HandleShare(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	id, err := appointmentIDFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), appointmentQueryTimeout)
	defer cancel()

	appointment, err := appointmentStore.GetByID(ctx, id)
	if err != nil {
		apiutil.WriteStoreError(w, r, err, "Failed to load appointment")
		return
	}

	shareURL, err := sharelink.Encode(shareBaseURL, appointment.ID)
	if err != nil {
		logger.Error().Err(err).Str("appointment_id", id).Msg("Failed to build share URL")
		http.Error(w, "Failed to build share URL", http.StatusInternalServerError)
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, map[string]string{"url": shareURL}); err != nil {
		logger.Error().Err(err).Msg("Failed to write share response")
	}
}

// GET /book?id={id}&share=true
func HandleBook(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	link, ok := sharelink.Decode(r.URL.String())
	if !ok {
		http.Error(w, "id is required", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), appointmentQueryTimeout)
	defer cancel()

	appointment, err := appointmentStore.GetByID(ctx, link.AppointmentID)
	if err != nil {
		apiutil.WriteStoreError(w, r, err, "Failed to load appointment")
		return
	}

	payload := map[string]any{
		"appointment": appointment,
		"isShared":    link.IsShared,
	}
	if err := apiutil.WriteJSON(w, http.StatusOK, payload); err != nil {
		logger.Error().Err(err).Msg("Failed to write booking response")
	}
}

func appointmentFromRequest(ctx context.Context, req appointmentRequest) (models.Appointment, error) {
	date, err := models.ParseAppointmentDate(req.Date)
	if err != nil {
		return models.Appointment{}, fmt.Errorf("%w: %v", store.ErrValidation, err)
	}

	appointment := models.Appointment{
		Name:  req.Name,
		Email: req.Email,
		Date:  date,
		Time:  req.Time,
		Type:  req.Type,
		Notes: req.Notes,
	}
	if err := appointment.Validate(); err != nil {
		return models.Appointment{}, fmt.Errorf("%w: %v", store.ErrValidation, err)
	}

	types, err := typeStore.Get(ctx)
	if err != nil {
		return models.Appointment{}, err
	}
	known := false
	for _, t := range types {
		if t.ID == appointment.Type {
			known = true
			break
		}
	}
	if !known {
		return models.Appointment{}, fmt.Errorf("%w: type %q is not a known appointment type", store.ErrValidation, appointment.Type)
	}

	return appointment, nil
}

func appointmentIDFromRequest(r *http.Request) (string, error) {
	id := strings.TrimSpace(r.PathValue(appointmentIDParam))
	if id == "" {
		return "", fmt.Errorf("appointment id is required")
	}
	return id, nil
}
