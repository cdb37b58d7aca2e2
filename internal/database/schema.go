package database

import "context"

// schemaStatements creates the seven logical tables. Documents live in JSONB;
// jsonb keeps numerics as exact decimal text, so scores round-trip without
// narrowing.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS employees (
		user_id TEXT PRIMARY KEY,
		doc JSONB NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS projects (
		project_id TEXT PRIMARY KEY,
		doc JSONB NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS employee_affinity (
		affinity_id TEXT PRIMARY KEY,
		employee_1 TEXT NOT NULL,
		employee_2 TEXT NOT NULL,
		doc JSONB NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_employee_affinity_e1 ON employee_affinity (employee_1)`,
	`CREATE INDEX IF NOT EXISTS idx_employee_affinity_e2 ON employee_affinity (employee_2)`,
	`CREATE TABLE IF NOT EXISTS messenger_logs (
		log_id TEXT PRIMARY KEY,
		doc JSONB NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS company_events (
		event_id TEXT PRIMARY KEY,
		doc JSONB NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS tech_trends (
		tech_name TEXT PRIMARY KEY,
		doc JSONB NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS employee_evaluations (
		evaluation_id TEXT PRIMARY KEY,
		status TEXT NOT NULL,
		doc JSONB NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_employee_evaluations_status ON employee_evaluations (status)`,
}

// EnsureSchema creates any missing tables and indexes. Safe to run on every
// startup.
func EnsureSchema(ctx context.Context, db DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
