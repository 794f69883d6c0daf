package hh

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	hhapi "github.com/avoronova/hh-scout/pkg/hh"
)

func TestParseVacancyFullPayload(t *testing.T) {
	raw := json.RawMessage(`{
		"id": "112233",
		"name": "Go Developer",
		"employer": {"id": "1740", "name": "Acme"},
		"salary": {"from": 150000, "to": 250000, "currency": "RUR"},
		"area": {"name": "Moscow"},
		"experience": {"name": "1-3 years"},
		"employment": {"name": "full"},
		"description": "Backend services",
		"alternate_url": "https://hh.ru/vacancy/112233",
		"published_at": "2024-01-15T10:00:00+0300"
	}`)

	v, err := ParseVacancy(raw)
	if err != nil {
		t.Fatalf("ParseVacancy: %v", err)
	}

	if v.ID != 112233 || v.EmployerID != 1740 {
		t.Errorf("ids = (%d, %d), want (112233, 1740)", v.ID, v.EmployerID)
	}
	if v.Name != "Go Developer" {
		t.Errorf("Name = %q", v.Name)
	}
	if v.SalaryFrom == nil || *v.SalaryFrom != 150000 {
		t.Errorf("SalaryFrom = %v, want 150000", v.SalaryFrom)
	}
	if v.SalaryTo == nil || *v.SalaryTo != 250000 {
		t.Errorf("SalaryTo = %v, want 250000", v.SalaryTo)
	}
	if v.Currency == nil || *v.Currency != "RUR" {
		t.Errorf("Currency = %v, want RUR", v.Currency)
	}
	if v.Area == nil || *v.Area != "Moscow" {
		t.Errorf("Area = %v, want Moscow", v.Area)
	}
	if v.Experience == nil || *v.Experience != "1-3 years" {
		t.Errorf("Experience = %v", v.Experience)
	}
	if v.Employment == nil || *v.Employment != "full" {
		t.Errorf("Employment = %v", v.Employment)
	}
	if v.Description != "Backend services" {
		t.Errorf("Description = %q", v.Description)
	}
	if v.URL == nil || *v.URL != "https://hh.ru/vacancy/112233" {
		t.Errorf("URL = %v", v.URL)
	}
	if v.PublishedAt == nil {
		t.Error("PublishedAt not parsed")
	}
}

func TestParseVacancyMinimalPayload(t *testing.T) {
	raw := json.RawMessage(`{"id": "5", "name": "Courier", "employer": {"id": "9"}}`)

	v, err := ParseVacancy(raw)
	if err != nil {
		t.Fatalf("ParseVacancy: %v", err)
	}

	if v.SalaryFrom != nil || v.SalaryTo != nil || v.Currency != nil {
		t.Error("salary fields must be absent without a salary object")
	}
	if v.Area != nil || v.Experience != nil || v.Employment != nil || v.URL != nil || v.PublishedAt != nil {
		t.Error("optional fields must be absent when nesting is missing")
	}
	if v.Description != "" {
		t.Errorf("Description = %q, want empty string default", v.Description)
	}
}

func TestParseVacancyRejectsBadIdentifiers(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"missing id", `{"name": "x", "employer": {"id": "9"}}`},
		{"non-numeric id", `{"id": "abc", "employer": {"id": "9"}}`},
		{"missing employer", `{"id": "5", "name": "x"}`},
		{"non-numeric employer id", `{"id": "5", "employer": {"id": "n/a"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseVacancy(json.RawMessage(tt.raw)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

type stubClient struct {
	employer *hhapi.Employer
	items    []json.RawMessage
	err      error
}

func (s *stubClient) EmployerInfo(context.Context, int) (*hhapi.Employer, error) {
	if s.employer == nil {
		return nil, fmt.Errorf("no employer")
	}
	return s.employer, nil
}

func (s *stubClient) AllEmployerVacancies(context.Context, int) ([]json.RawMessage, error) {
	return s.items, s.err
}

func TestVacanciesSkipsMalformedItems(t *testing.T) {
	client := &stubClient{
		items: []json.RawMessage{
			json.RawMessage(`{"id": "1", "name": "first", "employer": {"id": "10"}}`),
			json.RawMessage(`{"id": "broken", "name": "second", "employer": {"id": "10"}}`),
			json.RawMessage(`{"id": "3", "name": "third", "employer": {"id": "10"}}`),
		},
	}
	provider, err := NewProvider(client, nil)
	if err != nil {
		t.Fatalf("NewProvider: %v", err)
	}

	vacancies, err := provider.Vacancies(context.Background(), 10)
	if err != nil {
		t.Fatalf("Vacancies: %v", err)
	}

	if len(vacancies) != 2 {
		t.Fatalf("got %d vacancies, want 2", len(vacancies))
	}
	if vacancies[0].Name != "first" || vacancies[1].Name != "third" {
		t.Errorf("order not preserved after skip: %q, %q", vacancies[0].Name, vacancies[1].Name)
	}
}

func TestVacanciesKeepsPartialOnListingFailure(t *testing.T) {
	client := &stubClient{
		items: []json.RawMessage{
			json.RawMessage(`{"id": "1", "name": "kept", "employer": {"id": "10"}}`),
		},
		err: fmt.Errorf("page 1: connection reset"),
	}
	provider, err := NewProvider(client, nil)
	if err != nil {
		t.Fatalf("NewProvider: %v", err)
	}

	vacancies, err := provider.Vacancies(context.Background(), 10)
	if err != nil {
		t.Fatalf("listing failure must not surface as an error, got %v", err)
	}
	if len(vacancies) != 1 {
		t.Fatalf("got %d vacancies, want the 1 partial", len(vacancies))
	}
}

func TestEmployerKeyedByRequestedID(t *testing.T) {
	site := "https://acme.test"
	client := &stubClient{
		employer: &hhapi.Employer{ID: "1740", Name: "Acme", SiteURL: &site, OpenVacancies: 3},
	}
	provider, err := NewProvider(client, nil)
	if err != nil {
		t.Fatalf("NewProvider: %v", err)
	}

	employer, err := provider.Employer(context.Background(), 1740)
	if err != nil {
		t.Fatalf("Employer: %v", err)
	}
	if employer.ID != 1740 || employer.Name != "Acme" || employer.OpenVacancies != 3 {
		t.Errorf("employer = %+v", employer)
	}
}
