package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/avoronova/hh-scout/internal/domain"
	"github.com/avoronova/hh-scout/pkg/logging"
)

type Service interface {
	// LoadEmployers pulls every employer in order, stores its company row
	// and then its vacancies. A failing employer is skipped, never fatal.
	LoadEmployers(ctx context.Context, employerIDs []int) (domain.LoadReport, error)
}

// Option configures Service
type Option func(*config)

type config struct {
	provider Provider
	repo     Repository
	delay    time.Duration
	clock    func() time.Time
	log      *logging.Logger
}

// WithProvider sets the vacancy source
func WithProvider(provider Provider) Option {
	return func(c *config) {
		c.provider = provider
	}
}

// WithRepository sets the repository
func WithRepository(repo Repository) Option {
	return func(c *config) {
		c.repo = repo
	}
}

// WithEmployerDelay sets the pause between employers
func WithEmployerDelay(delay time.Duration) Option {
	return func(c *config) {
		c.delay = delay
	}
}

// WithClock sets a custom clock
func WithClock(clock func() time.Time) Option {
	return func(c *config) {
		c.clock = clock
	}
}

// WithLogger sets the logger
func WithLogger(log *logging.Logger) Option {
	return func(c *config) {
		c.log = log
	}
}

// NewService builds Service from options
func NewService(opts ...Option) (Service, error) {
	cfg := &config{
		clock: time.Now,
		log:   logging.Nop(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.repo == nil {
		return nil, fmt.Errorf("ingest.Service: repository is required")
	}
	if cfg.provider == nil {
		return nil, fmt.Errorf("ingest.Service: provider is required")
	}

	return &service{
		provider: cfg.provider,
		repo:     cfg.repo,
		delay:    cfg.delay,
		clock:    cfg.clock,
		log:      cfg.log,
	}, nil
}

// NewServiceWithDeps creates a Service with direct dependencies (Wire-compatible)
func NewServiceWithDeps(provider Provider, repo Repository, delay time.Duration, log *logging.Logger) (Service, error) {
	if log == nil {
		log = logging.Nop()
	}
	return NewService(
		WithProvider(provider),
		WithRepository(repo),
		WithEmployerDelay(delay),
		WithLogger(log.Named("ingest")),
	)
}

type service struct {
	provider Provider
	repo     Repository
	delay    time.Duration
	clock    func() time.Time
	log      *logging.Logger
}

func (s *service) LoadEmployers(ctx context.Context, employerIDs []int) (domain.LoadReport, error) {
	report := domain.LoadReport{
		RunID:   uuid.New(),
		Started: s.clock(),
	}
	log := s.log.With("run_id", report.RunID, "source", s.provider.Name())
	log.Info("load started", "employers", len(employerIDs))

	for i, employerID := range employerIDs {
		stat := s.loadEmployer(ctx, log, employerID)
		report.Employers = append(report.Employers, stat)

		if err := ctx.Err(); err != nil {
			return report, err
		}
		if i < len(employerIDs)-1 {
			if err := s.pause(ctx); err != nil {
				return report, err
			}
		}
	}

	log.Info("load finished", "employers", len(report.Employers))
	return report, nil
}

func (s *service) loadEmployer(ctx context.Context, log *logging.Logger, employerID int) domain.EmployerLoad {
	stat := domain.EmployerLoad{EmployerID: employerID}
	log = log.With("employer_id", employerID)

	employer, err := s.provider.Employer(ctx, employerID)
	if err != nil {
		log.Warn("failed to fetch employer, skipping", "err", err)
		stat.Skipped = true
		return stat
	}
	stat.Name = employer.Name

	// The company row has to exist before its vacancies: the vacancies
	// table carries a foreign key to it.
	if err := s.repo.UpsertCompany(ctx, employer); err != nil {
		log.Warn("failed to store company, skipping its vacancies", "err", err)
		stat.Skipped = true
		return stat
	}

	vacancies, err := s.provider.Vacancies(ctx, employerID)
	if err != nil {
		log.Warn("vacancy listing incomplete, keeping what was fetched", "err", err)
	}
	stat.Fetched = len(vacancies)

	for _, vacancy := range vacancies {
		inserted, err := s.repo.InsertVacancy(ctx, vacancy)
		if err != nil {
			log.Warn("failed to store vacancy", "vacancy_id", vacancy.ID, "err", err)
			continue
		}
		if inserted {
			stat.Stored++
		}
	}

	log.Info("employer loaded",
		"name", employer.Name,
		"fetched", stat.Fetched,
		"stored", stat.Stored,
	)
	return stat
}

func (s *service) pause(ctx context.Context) error {
	if s.delay <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(s.delay):
		return nil
	}
}
