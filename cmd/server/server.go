// cmd/server/server.go
package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/apatelabs/apate/internal/api"
	"github.com/apatelabs/apate/internal/api/appointments"
	"github.com/apatelabs/apate/internal/api/appointmenttypes"
	"github.com/apatelabs/apate/internal/api/availability"
	"github.com/apatelabs/apate/internal/api/profile"
	apisettings "github.com/apatelabs/apate/internal/api/settings"
	"github.com/apatelabs/apate/internal/api/timeslots"
	"github.com/apatelabs/apate/internal/config"
)

func newServer(cfg *config.Config) *http.Server {
	router := http.NewServeMux()

	// Setup middleware chain
	handler := api.ChainMiddleware(
		router,
		api.WithLogging,
		api.WithRecovery,
		api.WithRequestID,
	)

	// Register routes
	registerRoutes(router)

	return &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.App.Host, cfg.App.Port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

func registerRoutes(mux *http.ServeMux) {
	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Shared booking links
	mux.HandleFunc("GET /book", appointments.HandleBook)

	// Appointment routes
	mux.HandleFunc("GET /api/v1/appointments", appointments.HandleList)
	mux.HandleFunc("POST /api/v1/appointments", appointments.HandleCreate)
	mux.HandleFunc("GET /api/v1/appointments/{id}", appointments.HandleGet)
	mux.HandleFunc("PUT /api/v1/appointments/{id}", appointments.HandleUpdate)
	mux.HandleFunc("DELETE /api/v1/appointments/{id}", appointments.HandleDelete)
	mux.HandleFunc("POST /api/v1/appointments/{id}/confirm", appointments.HandleConfirm)
	mux.HandleFunc("GET /api/v1/appointments/{id}/share", appointments.HandleShare)

	// Time slot configuration
	mux.HandleFunc("GET /api/v1/timeslots", timeslots.HandleList)
	mux.HandleFunc("POST /api/v1/timeslots", timeslots.HandleAdd)
	mux.HandleFunc("DELETE /api/v1/timeslots/{slot}", timeslots.HandleRemove)
	mux.HandleFunc("POST /api/v1/timeslots/reset", timeslots.HandleReset)

	// Appointment type configuration
	mux.HandleFunc("GET /api/v1/appointment-types", appointmenttypes.HandleList)
	mux.HandleFunc("PUT /api/v1/appointment-types", appointmenttypes.HandleUpsert)
	mux.HandleFunc("DELETE /api/v1/appointment-types/{id}", appointmenttypes.HandleDelete)
	mux.HandleFunc("POST /api/v1/appointment-types/reset", appointmenttypes.HandleReset)

	// Availability configuration
	mux.HandleFunc("GET /api/v1/availability", availability.HandleGet)
	mux.HandleFunc("PUT /api/v1/availability", availability.HandleSave)
	mux.HandleFunc("POST /api/v1/availability/reset", availability.HandleReset)
	mux.HandleFunc("GET /api/v1/availability/slots", availability.HandleGeneratedSlots)

	// Business profile
	mux.HandleFunc("GET /api/v1/profile", profile.HandleGet)
	mux.HandleFunc("PATCH /api/v1/profile", profile.HandleUpdate)
	mux.HandleFunc("POST /api/v1/profile/save", profile.HandleSave)
	mux.HandleFunc("POST /api/v1/profile/reset", profile.HandleReset)
	mux.HandleFunc("GET /api/v1/profile/status", profile.HandleStatus)
	mux.HandleFunc("POST /api/v1/profile/locations/{id}/default", profile.HandleSetDefaultLocation)
	mux.HandleFunc("DELETE /api/v1/profile/locations/{id}", profile.HandleRemoveLocation)

	// General UI settings
	mux.HandleFunc("GET /api/v1/settings", apisettings.HandleGet)
	mux.HandleFunc("PATCH /api/v1/settings", apisettings.HandleUpdate)
	mux.HandleFunc("POST /api/v1/settings/reset", apisettings.HandleReset)
}
