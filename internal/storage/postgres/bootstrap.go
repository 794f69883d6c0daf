package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const createCompaniesTable = `
CREATE TABLE IF NOT EXISTS companies (
	id SERIAL PRIMARY KEY,
	company_id INTEGER UNIQUE NOT NULL,
	name VARCHAR(255) NOT NULL,
	site_url VARCHAR(255),
	open_vacancies INTEGER DEFAULT 0
)`

const createVacanciesTable = `
CREATE TABLE IF NOT EXISTS vacancies (
	id SERIAL PRIMARY KEY,
	vacancy_id INTEGER UNIQUE NOT NULL,
	company_id INTEGER NOT NULL,
	name VARCHAR(255) NOT NULL,
	salary_from INTEGER,
	salary_to INTEGER,
	currency VARCHAR(10),
	area VARCHAR(100),
	experience VARCHAR(100),
	employment_type VARCHAR(100),
	description TEXT,
	url VARCHAR(500),
	published_at TIMESTAMP,
	FOREIGN KEY (company_id) REFERENCES companies(company_id)
)`

// EnsureDatabase creates the target database when it does not exist yet.
// It connects to the maintenance database with a short-lived plain
// connection; CREATE DATABASE cannot run inside a pool transaction.
func EnsureDatabase(ctx context.Context, cfg Config) error {
	conn, err := pgx.Connect(ctx, cfg.adminDSN())
	if err != nil {
		return fmt.Errorf("connect to maintenance database: %w", err)
	}
	defer func() {
		_ = conn.Close(ctx)
	}()

	var exists bool
	err = conn.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = $1)",
		cfg.Database,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check database existence: %w", err)
	}
	if exists {
		return nil
	}

	// Database names cannot be bound as parameters.
	stmt := fmt.Sprintf("CREATE DATABASE %s", pgx.Identifier{cfg.Database}.Sanitize())
	if _, err := conn.Exec(ctx, stmt); err != nil {
		return fmt.Errorf("create database %s: %w", cfg.Database, err)
	}
	return nil
}

// EnsureSchema creates the companies and vacancies tables.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, createCompaniesTable); err != nil {
		return fmt.Errorf("create companies table: %w", err)
	}
	if _, err := pool.Exec(ctx, createVacanciesTable); err != nil {
		return fmt.Errorf("create vacancies table: %w", err)
	}
	return nil
}

// TruncateAll wipes both tables.
func TruncateAll(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, "TRUNCATE TABLE vacancies CASCADE"); err != nil {
		return fmt.Errorf("truncate vacancies: %w", err)
	}
	if _, err := pool.Exec(ctx, "TRUNCATE TABLE companies CASCADE"); err != nil {
		return fmt.Errorf("truncate companies: %w", err)
	}
	return nil
}
