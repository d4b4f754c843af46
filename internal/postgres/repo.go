// Package postgres implements the tasks.Repo persistence boundary over
// database/sql with the lib/pq driver.
package postgres

import (
	"database/sql"
	"time"

	"github.com/charmbracelet/log"

	"taskdeck-backend/internal/tasks"
)

type Repo struct {
	db *sql.DB
	lg *log.Logger
}

var _ tasks.Repo = (*Repo)(nil)

func NewRepo(db *sql.DB, lg *log.Logger) *Repo {
	return &Repo{db: db, lg: lg}
}

const taskColumns = `id, title, description, category, priority, urgency, status, progress,
	due_date, planned_start_date, planned_end_date, actual_start_date, actual_end_date,
	estimated_hours, actual_hours, notes, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(s rowScanner) (tasks.Task, error) {
	var (
		t           tasks.Task
		desc, notes sql.NullString
		due, ps, pe sql.NullTime
		as, ae      sql.NullTime
		est, act    sql.NullFloat64
	)

	err := s.Scan(
		&t.ID, &t.Title, &desc, &t.Category, &t.Priority, &t.Urgency, &t.Status, &t.Progress,
		&due, &ps, &pe, &as, &ae,
		&est, &act, &notes, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return tasks.Task{}, err
	}

	t.Description = nullString(desc)
	t.Notes = nullString(notes)
	t.DueDate = nullTime(due)
	t.PlannedStartDate = nullTime(ps)
	t.PlannedEndDate = nullTime(pe)
	t.ActualStartDate = nullTime(as)
	t.ActualEndDate = nullTime(ae)
	t.EstimatedHours = nullFloat(est)
	t.ActualHours = nullFloat(act)

	return t, nil
}

func nullString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func nullTime(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}
	t := v.Time
	return &t
}

func nullFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
