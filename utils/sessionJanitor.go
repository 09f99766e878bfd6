package utils

import (
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"courseweb/storage"
)

// InitializeSessionJanitor schedules periodic cleanup of expired
// session rows. The returned cron is stopped by main on shutdown so
// the timer never outlives the app.
func InitializeSessionJanitor(store *storage.Storage, spec string) *cron.Cron {
	c := cron.New()

	_, err := c.AddFunc(spec, func() {
		if err := store.GC(); err != nil {
			log.Error().Err(err).Msg("Session cleanup failed")
		} else {
			log.Debug().Msg("Session cleanup done")
		}
	})
	if err != nil {
		log.Error().Err(err).Str("spec", spec).Msg("Invalid session cleanup schedule")
		return c
	}

	c.Start()
	log.Info().Str("spec", spec).Msg("Session janitor started")
	return c
}
