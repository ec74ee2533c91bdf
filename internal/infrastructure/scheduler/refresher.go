// Package scheduler runs the periodic holdings price refresh.
package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/cardinal-capital/club-system/internal/core/ports"
)

const refreshTimeout = 2 * time.Minute

// Refresher invokes the holdings price refresh on a cron schedule.
type Refresher struct {
	cron *cron.Cron
	log  zerolog.Logger
}

// NewRefresher schedules svc.RefreshPrices according to spec (standard
// 5-field cron syntax).
func NewRefresher(spec string, svc ports.HoldingsService, log zerolog.Logger) (*Refresher, error) {
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
		defer cancel()

		updated, err := svc.RefreshPrices(ctx)
		if err != nil {
			log.Error().Err(err).Msg("scheduled price refresh failed")
			return
		}
		log.Info().Int("updated", updated).Msg("scheduled price refresh complete")
	})
	if err != nil {
		return nil, err
	}
	return &Refresher{cron: c, log: log}, nil
}

// Start launches the schedule in its own goroutine.
func (r *Refresher) Start() {
	r.cron.Start()
}

// Stop halts the schedule and waits for a running job to finish.
func (r *Refresher) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
}
