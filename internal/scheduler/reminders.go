// internal/scheduler/reminders.go
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"

	"github.com/apatelabs/apate/internal/store"
)

const (
	reminderWindow     = 24 * time.Hour
	reminderJobTimeout = 2 * time.Minute
)

// RegisterReminderJob registers a job that scans for appointments starting
// within the next day and emits a reminder event for each. Reminders stay
// on the local device: they are log events, not network deliveries, and
// they are skipped entirely while notifications are disabled in settings.
func RegisterReminderJob(appointments *store.AppointmentStore, settings *store.SettingsStore, cronExpr string) error {
	if appointments == nil || settings == nil {
		return fmt.Errorf("reminder job requires appointment and settings stores")
	}

	jobName := "appointment_reminders"
	jobLogger := log.With().
		Str("component", "appointment_reminders_job").
		Str("job_name", jobName).
		Str("cron", cronExpr).
		Logger()

	_, err := AddJob(jobName, cronExpr, func() {
		ctx, cancel := context.WithTimeout(context.Background(), reminderJobTimeout)
		defer cancel()
		ctx = jobLogger.WithContext(ctx)

		current, err := settings.Get(ctx)
		if err != nil {
			jobLogger.Error().Err(err).Msg("Failed to load settings for reminder job")
			return
		}
		if !current.EnableNotifications {
			jobLogger.Debug().Msg("Reminder job skipped: notifications disabled")
			return
		}

		records, err := appointments.List(ctx)
		if err != nil {
			jobLogger.Error().Err(err).Msg("Failed to load appointments for reminder job")
			return
		}

		now := time.Now()
		windowEnd := now.Add(reminderWindow)
		for _, appointment := range records {
			start, err := appointment.StartTime()
			if err != nil {
				jobLogger.Warn().Err(err).Str("appointment_id", appointment.ID).Msg("Skipping appointment with unparseable slot")
				continue
			}
			if start.Before(now) || start.After(windowEnd) {
				continue
			}
			jobLogger.Info().
				Str("appointment_id", appointment.ID).
				Str("name", appointment.Name).
				Str("type", appointment.Type).
				Time("starts_at", start).
				Msg("Upcoming appointment reminder")
		}
	}, gocron.WithSingletonMode(gocron.LimitModeWait))
	if err != nil {
		return fmt.Errorf("add appointment reminder job: %w", err)
	}

	jobLogger.Info().Msg("Appointment reminder job registered")
	return nil
}
