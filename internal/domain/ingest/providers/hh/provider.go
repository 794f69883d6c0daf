package hh

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/avoronova/hh-scout/internal/domain"
	"github.com/avoronova/hh-scout/internal/domain/ingest"
	hhapi "github.com/avoronova/hh-scout/pkg/hh"
	"github.com/avoronova/hh-scout/pkg/logging"
)

// vacancyClient describes the subset of the hh client used by the provider.
type vacancyClient interface {
	EmployerInfo(ctx context.Context, employerID int) (*hhapi.Employer, error)
	AllEmployerVacancies(ctx context.Context, employerID int) ([]json.RawMessage, error)
}

// Provider implements ingest.Provider on top of the hh.ru API client.
type Provider struct {
	client vacancyClient
	log    *logging.Logger
}

// NewProvider builds an hh.ru provider
func NewProvider(client vacancyClient, log *logging.Logger) (*Provider, error) {
	if client == nil {
		return nil, fmt.Errorf("hh provider: client is required")
	}
	if log == nil {
		log = logging.Nop()
	}
	return &Provider{client: client, log: log.Named("hh")}, nil
}

// Name returns provider identifier
func (p *Provider) Name() string {
	return "hh"
}

// Employer fetches and normalizes one employer record. The employer is
// keyed by the id the caller asked for, not by whatever the payload says.
func (p *Provider) Employer(ctx context.Context, employerID int) (domain.Employer, error) {
	info, err := p.client.EmployerInfo(ctx, employerID)
	if err != nil {
		return domain.Employer{}, err
	}
	return domain.Employer{
		ID:            employerID,
		Name:          info.Name,
		SiteURL:       info.SiteURL,
		OpenVacancies: info.OpenVacancies,
	}, nil
}

// Vacancies downloads every listing page of the employer and normalizes
// the items. Items that fail to normalize are logged and skipped; a page
// download failure keeps the partial result. Neither is a hard stop.
func (p *Provider) Vacancies(ctx context.Context, employerID int) ([]domain.Vacancy, error) {
	items, err := p.client.AllEmployerVacancies(ctx, employerID)
	if err != nil {
		p.log.Warn("vacancy listing interrupted",
			"employer_id", employerID,
			"collected", len(items),
			"err", err,
		)
	}

	out := make([]domain.Vacancy, 0, len(items))
	for _, raw := range items {
		vacancy, err := ParseVacancy(raw)
		if err != nil {
			p.log.Warn("skipping malformed vacancy", "employer_id", employerID, "err", err)
			continue
		}
		out = append(out, vacancy)
	}
	return out, nil
}

var _ ingest.Provider = (*Provider)(nil)

// ParseVacancy flattens one raw vacancy object. The vacancy id and the
// employer id are the only mandatory pieces: both must be present and
// numeric. Every other field degrades to its zero/absent default.
// Description defaults to an empty string rather than absence, matching
// the upstream payload convention.
func ParseVacancy(raw json.RawMessage) (domain.Vacancy, error) {
	var item hhapi.Vacancy
	if err := json.Unmarshal(raw, &item); err != nil {
		return domain.Vacancy{}, fmt.Errorf("decode vacancy: %w", err)
	}

	id, err := strconv.Atoi(item.ID)
	if err != nil {
		return domain.Vacancy{}, fmt.Errorf("vacancy id %q is not numeric", item.ID)
	}
	if item.Employer == nil {
		return domain.Vacancy{}, fmt.Errorf("vacancy %d has no employer", id)
	}
	employerID, err := strconv.Atoi(item.Employer.ID)
	if err != nil {
		return domain.Vacancy{}, fmt.Errorf("vacancy %d employer id %q is not numeric", id, item.Employer.ID)
	}

	vacancy := domain.Vacancy{
		ID:         id,
		EmployerID: employerID,
		Name:       item.Name,
		URL:        item.AlternateURL,
	}

	if item.Salary != nil {
		vacancy.SalaryFrom = item.Salary.From
		vacancy.SalaryTo = item.Salary.To
		vacancy.Currency = item.Salary.Currency
	}
	if item.Area != nil {
		vacancy.Area = &item.Area.Name
	}
	if item.Experience != nil {
		vacancy.Experience = &item.Experience.Name
	}
	if item.Employment != nil {
		vacancy.Employment = &item.Employment.Name
	}
	if item.Description != nil {
		vacancy.Description = *item.Description
	}
	if item.PublishedAt != nil {
		if ts, err := parsePublishedAt(*item.PublishedAt); err == nil {
			vacancy.PublishedAt = &ts
		}
	}

	return vacancy, nil
}

// hh.ru serves timestamps like "2024-01-15T10:00:00+0300", which is
// RFC 3339 with the colon missing from the zone offset.
func parsePublishedAt(value string) (time.Time, error) {
	if ts, err := time.Parse("2006-01-02T15:04:05-0700", value); err == nil {
		return ts, nil
	}
	return time.Parse(time.RFC3339, value)
}
