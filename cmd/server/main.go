// cmd/server/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/apatelabs/apate/internal/api/appointments"
	"github.com/apatelabs/apate/internal/api/appointmenttypes"
	"github.com/apatelabs/apate/internal/api/availability"
	"github.com/apatelabs/apate/internal/api/profile"
	apisettings "github.com/apatelabs/apate/internal/api/settings"
	"github.com/apatelabs/apate/internal/api/timeslots"
	"github.com/apatelabs/apate/internal/config"
	"github.com/apatelabs/apate/internal/kv"
	"github.com/apatelabs/apate/internal/scheduler"
	"github.com/apatelabs/apate/internal/store"
)

const shutdownTimeout = 30 * time.Second

func setupLogger(environment string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

func configPath() string {
	if path, ok := os.LookupEnv("CONFIG_PATH"); ok {
		return path
	}
	return "config/config.yaml"
}

func main() {
	cfg, err := config.Load(configPath())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	setupLogger(cfg.App.Environment)

	kvStore, err := kv.Open(cfg.Database.Filename)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open key-value store")
	}
	defer kvStore.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appointmentStore := store.NewAppointmentStore(kvStore)
	typeStore := store.NewAppointmentTypeStore(kvStore)
	slotStore := store.NewTimeSlotStore(kvStore)
	availabilityStore := store.NewAvailabilityStore(kvStore)
	settingsStore := store.NewSettingsStore(kvStore)

	profileManager, err := store.NewProfileManager(ctx, kvStore)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load business profile")
	}

	appointments.InitHandlers(appointmentStore, typeStore, cfg.App.BaseURL)
	appointmenttypes.InitHandlers(typeStore)
	timeslots.InitHandlers(slotStore)
	availability.InitHandlers(availabilityStore)
	profile.InitHandlers(profileManager)
	apisettings.InitHandlers(settingsStore)

	if cfg.Features.EnableReminders {
		if err := scheduler.Init(); err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize scheduler")
		}
		if err := scheduler.RegisterReminderJob(appointmentStore, settingsStore, cfg.Features.ReminderCron); err != nil {
			log.Fatal().Err(err).Msg("Failed to register reminder job")
		}
		if err := scheduler.Start(); err != nil {
			log.Fatal().Err(err).Msg("Failed to start scheduler")
		}
		defer func() {
			if err := scheduler.Stop(); err != nil {
				log.Error().Err(err).Msg("Failed to stop scheduler")
			}
		}()
	}

	server := newServer(cfg)

	g, ctx := errgroup.WithContext(ctx)

	// Run server
	g.Go(func() error {
		log.Info().Str("addr", server.Addr).Msg("Starting server")
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	// Wait for interrupt signal
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		log.Info().Msg("Shutting down server")
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown error: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("Server terminated with error")
		os.Exit(1)
	}
}
