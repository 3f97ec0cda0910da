package tasks

import (
	"context"
	"fmt"
	"time"

	"docuport/internal/session"
	"docuport/internal/upstream"
	"docuport/internal/utils/logger"

	"github.com/robfig/cron/v3"
)

// Scheduler handles periodic background jobs. The only job today is the
// role-catalog refresh; reminder or profile sweeps would register here too.
type Scheduler struct {
	cron         *cron.Cron
	catalog      *upstream.Catalog
	schedule     string
	serviceToken string
	logger       *logger.Logger
}

// NewScheduler creates a scheduler around the catalog cache. serviceToken
// authenticates the refresh calls; with an empty token the job is skipped
// and catalogs fill lazily from user-driven requests instead.
func NewScheduler(catalog *upstream.Catalog, schedule, serviceToken string, logger *logger.Logger) *Scheduler {
	return &Scheduler{
		cron:         cron.New(),
		catalog:      catalog,
		schedule:     schedule,
		serviceToken: serviceToken,
		logger:       logger,
	}
}

// Start registers the periodic jobs and runs the scheduler.
func (s *Scheduler) Start() error {
	if err := s.registerJobs(); err != nil {
		return fmt.Errorf("failed to register jobs: %w", err)
	}

	s.logger.Info("starting task scheduler")
	s.cron.Start()
	return nil
}

// Stop stops the scheduler and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("task scheduler stopped")
}

func (s *Scheduler) registerJobs() error {
	if s.serviceToken == "" {
		s.logger.Warn("no service token configured, skipping catalog refresh job")
		return nil
	}
	_, err := s.cron.AddFunc(s.schedule, s.refreshCatalogs)
	if err != nil {
		return err
	}
	s.logger.Info("registered catalog refresh job (%s)", s.schedule)
	return nil
}

func (s *Scheduler) refreshCatalogs() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	ctx = session.ContextWithSession(ctx, &session.Session{Token: s.serviceToken})

	if err := s.catalog.Refresh(ctx); err != nil {
		s.logger.Warn("catalog refresh failed: %v", err)
		return
	}
	s.logger.Debug("catalogs refreshed")
}
