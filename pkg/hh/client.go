package hh

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	defaultBaseURL   = "https://api.hh.ru"
	defaultUserAgent = "hh-scout/1.0"
	defaultTimeout   = 5 * time.Second
	defaultPageSize  = 100
	defaultPageDelay = 100 * time.Millisecond

	// hh.ru rejects per_page above 100.
	maxPageSize = 100
)

// NewClient instantiates an hh.ru API client
func NewClient(cfg Config) (*Client, error) {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL = strings.TrimSuffix(baseURL, "/")

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	pageDelay := cfg.PageDelay
	if pageDelay <= 0 {
		pageDelay = defaultPageDelay
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		baseURL:    baseURL,
		userAgent:  userAgent,
		pageSize:   pageSize,
		pageDelay:  pageDelay,
		httpClient: httpClient,
	}, nil
}

// EmployerInfo fetches a single employer record
func (c *Client) EmployerInfo(ctx context.Context, employerID int) (*Employer, error) {
	if c == nil {
		return nil, fmt.Errorf("hh: client is nil")
	}

	var employer Employer
	u := fmt.Sprintf("%s/employers/%d", c.baseURL, employerID)
	if err := c.getJSON(ctx, u, &employer); err != nil {
		return nil, err
	}
	return &employer, nil
}

// EmployerVacancies fetches one page of an employer's vacancies.
// perPage values above the API maximum are capped.
func (c *Client) EmployerVacancies(ctx context.Context, employerID, page, perPage int) (*VacanciesPage, error) {
	if c == nil {
		return nil, fmt.Errorf("hh: client is nil")
	}
	if perPage <= 0 {
		perPage = c.pageSize
	}
	if perPage > maxPageSize {
		perPage = maxPageSize
	}

	values := url.Values{}
	values.Set("employer_id", strconv.Itoa(employerID))
	values.Set("page", strconv.Itoa(page))
	values.Set("per_page", strconv.Itoa(perPage))

	var result VacanciesPage
	u := fmt.Sprintf("%s/vacancies?%s", c.baseURL, values.Encode())
	if err := c.getJSON(ctx, u, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// VacancyDetails fetches the full record of a single vacancy.
func (c *Client) VacancyDetails(ctx context.Context, vacancyID int) (*Vacancy, error) {
	if c == nil {
		return nil, fmt.Errorf("hh: client is nil")
	}

	var vacancy Vacancy
	u := fmt.Sprintf("%s/vacancies/%d", c.baseURL, vacancyID)
	if err := c.getJSON(ctx, u, &vacancy); err != nil {
		return nil, err
	}
	return &vacancy, nil
}

// AllEmployerVacancies walks the employer's vacancy listing page by page,
// starting at page 0, and accumulates the raw items. It stops once the
// requested page reaches the last page reported by the server. On a page
// failure the items collected so far are returned together with the error,
// so callers can keep partial results. A short pause between page requests
// keeps the request rate polite.
func (c *Client) AllEmployerVacancies(ctx context.Context, employerID int) ([]json.RawMessage, error) {
	if c == nil {
		return nil, fmt.Errorf("hh: client is nil")
	}

	var all []json.RawMessage
	page := 0
	for {
		data, err := c.EmployerVacancies(ctx, employerID, page, c.pageSize)
		if err != nil {
			return all, fmt.Errorf("page %d: %w", page, err)
		}
		all = append(all, data.Items...)

		if page >= data.Pages-1 {
			break
		}
		page++

		select {
		case <-ctx.Done():
			return all, ctx.Err()
		case <-time.After(c.pageDelay):
		}
	}

	return all, nil
}

func (c *Client) getJSON(ctx context.Context, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("hh: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("hh: request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("hh: API error (%d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("hh: decode response: %w", err)
	}
	return nil
}
