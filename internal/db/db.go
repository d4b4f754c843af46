package db

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
)

func Connect(connString string) (*sql.DB, error) {
	db, err := sql.Open("postgres", connString)
	if err != nil {
		return nil, err
	}

	err = db.Ping()
	if err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates the tables on boot if they do not exist yet.
func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS tasks (
			id UUID PRIMARY KEY,
			title VARCHAR(100) NOT NULL,
			description TEXT,
			category VARCHAR(16) NOT NULL,
			priority VARCHAR(16) NOT NULL,
			urgency VARCHAR(16) NOT NULL,
			status VARCHAR(16) NOT NULL DEFAULT 'not_started',
			progress INTEGER NOT NULL DEFAULT 0 CHECK (progress BETWEEN 0 AND 100),
			due_date TIMESTAMPTZ,
			planned_start_date TIMESTAMPTZ,
			planned_end_date TIMESTAMPTZ,
			actual_start_date TIMESTAMPTZ,
			actual_end_date TIMESTAMPTZ,
			estimated_hours DOUBLE PRECISION CHECK (estimated_hours >= 0),
			actual_hours DOUBLE PRECISION CHECK (actual_hours >= 0),
			notes TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS subtasks (
			id UUID PRIMARY KEY,
			task_id UUID NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
			title VARCHAR(200) NOT NULL,
			completed BOOLEAN NOT NULL DEFAULT FALSE,
			order_index INTEGER NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS task_comments (
			id UUID PRIMARY KEY,
			task_id UUID NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
			content TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_subtasks_task_id ON subtasks (task_id)`,
		`CREATE INDEX IF NOT EXISTS idx_task_comments_task_id ON task_comments (task_id)`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
