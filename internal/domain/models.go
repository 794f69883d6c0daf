package domain

import (
	"time"

	"github.com/google/uuid"
)

// Employer is an organization publishing vacancies, identified by the
// integer id assigned by hh.ru.
type Employer struct {
	ID            int
	Name          string
	SiteURL       *string
	OpenVacancies int
}

// Vacancy is a normalized job posting. Only the identifiers and the name
// are mandatory; everything else is optional. Description defaults to an
// empty string instead of absence, matching the upstream payload shape.
type Vacancy struct {
	ID          int
	EmployerID  int
	Name        string
	SalaryFrom  *int
	SalaryTo    *int
	Currency    *string
	Area        *string
	Experience  *string
	Employment  *string
	Description string
	URL         *string
	PublishedAt *time.Time
}

// CompanyVacancyCount pairs a company with its stored vacancy count.
type CompanyVacancyCount struct {
	Company string
	Count   int
}

// VacancyListing is the read-side row shared by the listing queries.
type VacancyListing struct {
	Company    string
	Vacancy    string
	SalaryFrom *int
	SalaryTo   *int
	Currency   *string
	URL        *string
}

// LoadReport summarizes one ingestion run.
type LoadReport struct {
	RunID     uuid.UUID
	Started   time.Time
	Employers []EmployerLoad
}

// EmployerLoad holds per-employer ingestion stats.
type EmployerLoad struct {
	EmployerID int
	Name       string
	Fetched    int
	Stored     int
	Skipped    bool
}
