// Package scheduler runs the background refresh that reloads tracked
// employers on a cron spec.
package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"

	"github.com/avoronova/hh-scout/internal/domain/ingest"
	"github.com/avoronova/hh-scout/pkg/logging"
)

// Scheduler wraps robfig/cron around the loader service. A Scheduler with
// an empty spec is a no-op so the console can run without background work.
type Scheduler struct {
	cron        *cron.Cron
	service     ingest.Service
	employerIDs []int
	spec        string // cron spec, e.g. "@every 6h"
	log         *logging.Logger
}

// New creates a Scheduler that reloads employerIDs on the given spec.
func New(service ingest.Service, employerIDs []int, spec string, log *logging.Logger) *Scheduler {
	if log == nil {
		log = logging.Nop()
	}
	return &Scheduler{
		cron:        cron.New(),
		service:     service,
		employerIDs: employerIDs,
		spec:        spec,
		log:         log.Named("scheduler"),
	}
}

// Start registers the refresh job and starts the cron loop. With an empty
// spec nothing is scheduled.
func (s *Scheduler) Start(ctx context.Context) error {
	if s.spec == "" {
		s.log.Debug("refresh disabled, no cron spec configured")
		return nil
	}

	_, err := s.cron.AddFunc(s.spec, func() {
		s.runRefresh(ctx)
	})
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	s.cron.Start()
	s.log.Info("background refresh started", "spec", s.spec)
	return nil
}

// Stop shuts the cron loop down and waits for a running refresh to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.log.Info("background refresh stopped")
}

func (s *Scheduler) runRefresh(ctx context.Context) {
	s.log.Info("refresh cycle started", "employers", len(s.employerIDs))

	report, err := s.service.LoadEmployers(ctx, s.employerIDs)
	if err != nil {
		s.log.Warn("refresh cycle interrupted", "err", err)
	}

	stored := 0
	for _, e := range report.Employers {
		stored += e.Stored
	}
	s.log.Info("refresh cycle complete", "stored", stored)
}
