package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/ternarybob/arbor"

	"github.com/hospitek/vitrine/internal/common"
	"github.com/hospitek/vitrine/internal/services/events"
)

// Service runs background maintenance on cron schedules. Currently the
// only job is the event status refresher.
type Service struct {
	config *common.SchedulerConfig
	events *events.Service
	cron   *cron.Cron
	logger arbor.ILogger
}

// NewService creates a new scheduler service
func NewService(cfg *common.SchedulerConfig, eventService *events.Service, logger arbor.ILogger) *Service {
	return &Service{
		config: cfg,
		events: eventService,
		cron:   cron.New(),
		logger: logger,
	}
}

// Start registers the scheduled jobs and begins running them. It also
// runs the event status refresh once immediately so a restarted service
// never serves stale statuses until the first tick.
func (s *Service) Start(ctx context.Context) error {
	if !s.config.Enabled {
		s.logger.Info().Msg("Scheduler disabled, skipping background jobs")
		return nil
	}

	_, err := s.cron.AddFunc(s.config.EventStatusSchedule, func() {
		if err := s.events.RefreshStatuses(context.Background()); err != nil {
			s.logger.Warn().Err(err).Msg("Scheduled event status refresh failed")
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule event status refresh: %w", err)
	}

	if err := s.events.RefreshStatuses(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("Initial event status refresh failed")
	}

	s.cron.Start()
	s.logger.Info().Str("event_status_schedule", s.config.EventStatusSchedule).Msg("Scheduler started")
	return nil
}

// Stop halts the cron runner and waits for running jobs to finish
func (s *Service) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info().Msg("Scheduler stopped")
}
