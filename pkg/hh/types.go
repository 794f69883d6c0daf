package hh

import (
	"encoding/json"
	"net/http"
	"time"
)

// Config defines hh.ru API client settings
type Config struct {
	BaseURL    string
	UserAgent  string
	Timeout    time.Duration
	PageSize   int
	PageDelay  time.Duration
	HTTPClient *http.Client
}

// Client queries the hh.ru public API
type Client struct {
	baseURL    string
	userAgent  string
	pageSize   int
	pageDelay  time.Duration
	httpClient *http.Client
}

// Employer is the employer lookup payload.
type Employer struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	SiteURL       *string `json:"site_url"`
	OpenVacancies int     `json:"open_vacancies"`
}

// VacanciesPage is one page of an employer's vacancy listing. Items are
// kept raw so that a malformed listing spoils only itself, not the page.
type VacanciesPage struct {
	Items   []json.RawMessage `json:"items"`
	Found   int               `json:"found"`
	Page    int               `json:"page"`
	Pages   int               `json:"pages"`
	PerPage int               `json:"per_page"`
}

// Vacancy mirrors a single vacancy object as served by hh.ru. Identifiers
// arrive as JSON strings; optional sub-objects are pointers.
type Vacancy struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Employer     *EmployerRef `json:"employer"`
	Salary       *Salary      `json:"salary"`
	Area         *NamedRef    `json:"area"`
	Experience   *NamedRef    `json:"experience"`
	Employment   *NamedRef    `json:"employment"`
	Description  *string      `json:"description"`
	AlternateURL *string      `json:"alternate_url"`
	PublishedAt  *string      `json:"published_at"`
}

// EmployerRef is the employer stub embedded in a vacancy.
type EmployerRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Salary is the optional compensation sub-object.
type Salary struct {
	From     *int    `json:"from"`
	To       *int    `json:"to"`
	Currency *string `json:"currency"`
}

// NamedRef covers the nested {"id": ..., "name": ...} lookups
// (area, experience, employment).
type NamedRef struct {
	Name string `json:"name"`
}
