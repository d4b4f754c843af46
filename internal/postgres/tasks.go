package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"taskdeck-backend/internal/tasks"
)

func (r *Repo) ListTasks(ctx context.Context, p tasks.ListParams) ([]tasks.TaskWithCounts, int, error) {
	var (
		where []string
		args  []any
	)
	add := func(cond string, v any) {
		args = append(args, v)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}

	if p.Category != nil {
		add("category = $%d", *p.Category)
	}
	if p.Priority != nil {
		add("priority = $%d", *p.Priority)
	}
	if p.Urgency != nil {
		add("urgency = $%d", *p.Urgency)
	}
	if p.Status != nil {
		add("status = $%d", *p.Status)
	}
	if p.Search != "" {
		add("title LIKE $%d", "%"+p.Search+"%")
	}

	whereSQL := ""
	if len(where) > 0 {
		whereSQL = " WHERE " + strings.Join(where, " AND ")
	}

	col, ok := tasks.SortColumn(p.SortBy)
	if !ok {
		return nil, 0, fmt.Errorf("unknown sort field %q", p.SortBy)
	}
	dir := "ASC"
	if p.SortDesc {
		dir = "DESC"
	}

	var total int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM tasks"+whereSQL, args...).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	query := "SELECT " + taskColumns + " FROM tasks" + whereSQL +
		" ORDER BY " + col + " " + dir +
		fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, p.Limit, (p.Page-1)*p.Limit)

	r.lg.Debug("listing tasks", "query", query, "args", args)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var result []tasks.TaskWithCounts
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, tasks.TaskWithCounts{Task: t})
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	for i := range result {
		if err := r.fillCounts(ctx, &result[i]); err != nil {
			return nil, 0, err
		}
	}

	return result, total, nil
}

// fillCounts runs the scoped per-task child counts, one query per count.
func (r *Repo) fillCounts(ctx context.Context, t *tasks.TaskWithCounts) error {
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM subtasks WHERE task_id = $1`, t.ID,
	).Scan(&t.SubtaskCount)
	if err != nil {
		return err
	}

	err = r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM subtasks WHERE task_id = $1 AND completed = TRUE`, t.ID,
	).Scan(&t.CompletedSubtasks)
	if err != nil {
		return err
	}

	return r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM task_comments WHERE task_id = $1`, t.ID,
	).Scan(&t.CommentCount)
}

func (r *Repo) CreateTask(ctx context.Context, c tasks.TaskCreate) (tasks.Task, error) {
	t := tasks.Task{
		ID:               uuid.New(),
		Title:            c.Title,
		Description:      c.Description,
		Category:         c.Category,
		Priority:         c.Priority,
		Urgency:          c.Urgency,
		DueDate:          c.DueDate,
		PlannedStartDate: c.PlannedStartDate,
		PlannedEndDate:   c.PlannedEndDate,
		EstimatedHours:   c.EstimatedHours,
		Notes:            c.Notes,
	}

	row := r.db.QueryRowContext(ctx, `
		INSERT INTO tasks (id, title, description, category, priority, urgency,
			due_date, planned_start_date, planned_end_date, estimated_hours, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING status, progress, created_at, updated_at
	`, t.ID, t.Title, t.Description, t.Category, t.Priority, t.Urgency,
		t.DueDate, t.PlannedStartDate, t.PlannedEndDate, t.EstimatedHours, t.Notes)

	if err := row.Scan(&t.Status, &t.Progress, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return tasks.Task{}, err
	}
	return t, nil
}

func (r *Repo) getTask(ctx context.Context, q interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}, id uuid.UUID, forUpdate bool) (tasks.Task, error) {
	query := "SELECT " + taskColumns + " FROM tasks WHERE id = $1"
	if forUpdate {
		query += " FOR UPDATE"
	}
	t, err := scanTask(q.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return tasks.Task{}, fmt.Errorf("task %s: %w", id, tasks.ErrNotFound)
	}
	return t, err
}

func (r *Repo) GetTaskDetail(ctx context.Context, id uuid.UUID) (tasks.TaskDetail, error) {
	t, err := r.getTask(ctx, r.db, id, false)
	if err != nil {
		return tasks.TaskDetail{}, err
	}

	detail := tasks.TaskDetail{
		Task:     t,
		Subtasks: []tasks.SubTaskSimple{},
		Comments: []tasks.CommentSimple{},
	}

	subs, err := r.listSubTasks(ctx, id)
	if err != nil {
		return tasks.TaskDetail{}, err
	}
	for _, s := range subs {
		detail.Subtasks = append(detail.Subtasks, tasks.SubTaskSimple{
			ID:         s.ID,
			Title:      s.Title,
			Completed:  s.Completed,
			OrderIndex: s.OrderIndex,
			CreatedAt:  s.CreatedAt,
		})
	}

	comments, err := r.listComments(ctx, id)
	if err != nil {
		return tasks.TaskDetail{}, err
	}
	for _, c := range comments {
		detail.Comments = append(detail.Comments, tasks.CommentSimple{
			ID:        c.ID,
			Content:   c.Content,
			CreatedAt: c.CreatedAt,
		})
	}

	return detail, nil
}

func (r *Repo) UpdateTask(ctx context.Context, id uuid.UUID, u tasks.TaskUpdate) (tasks.Task, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return tasks.Task{}, err
	}
	defer tx.Rollback()

	t, err := r.getTask(ctx, tx, id, true)
	if err != nil {
		return tasks.Task{}, err
	}

	u.Apply(&t)

	row := tx.QueryRowContext(ctx, `
		UPDATE tasks SET
			title = $1, description = $2, category = $3, priority = $4, urgency = $5,
			status = $6, progress = $7,
			due_date = $8, planned_start_date = $9, planned_end_date = $10,
			actual_start_date = $11, actual_end_date = $12,
			estimated_hours = $13, actual_hours = $14, notes = $15,
			updated_at = now()
		WHERE id = $16
		RETURNING updated_at
	`, t.Title, t.Description, t.Category, t.Priority, t.Urgency,
		t.Status, t.Progress,
		t.DueDate, t.PlannedStartDate, t.PlannedEndDate,
		t.ActualStartDate, t.ActualEndDate,
		t.EstimatedHours, t.ActualHours, t.Notes,
		id)
	if err := row.Scan(&t.UpdatedAt); err != nil {
		return tasks.Task{}, err
	}

	if err := tx.Commit(); err != nil {
		return tasks.Task{}, err
	}
	return t, nil
}

// DeleteTask removes the task and its children in one transaction. The
// explicit child deletes keep the cascade visible; the FK ON DELETE
// CASCADE remains as a schema backstop.
func (r *Repo) DeleteTask(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM subtasks WHERE task_id = $1`, id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM task_comments WHERE task_id = $1`, id); err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return fmt.Errorf("task %s: %w", id, tasks.ErrNotFound)
	}

	return tx.Commit()
}

func (r *Repo) ActiveTasks(ctx context.Context) ([]tasks.Task, error) {
	return r.queryTasks(ctx,
		"SELECT "+taskColumns+" FROM tasks WHERE status <> $1", tasks.StatusCompleted)
}

func (r *Repo) TasksInRange(ctx context.Context, start, end time.Time) ([]tasks.Task, error) {
	return r.queryTasks(ctx, "SELECT "+taskColumns+` FROM tasks
		WHERE due_date BETWEEN $1 AND $2
		   OR planned_start_date BETWEEN $1 AND $2
		   OR actual_start_date BETWEEN $1 AND $2`, start, end)
}

func (r *Repo) queryTasks(ctx context.Context, query string, args ...any) ([]tasks.Task, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []tasks.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	return result, rows.Err()
}

func (r *Repo) taskExists(ctx context.Context, id uuid.UUID) error {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM tasks WHERE id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("task %s: %w", id, tasks.ErrNotFound)
	}
	return nil
}
