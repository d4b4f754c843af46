package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"taskdeck-backend/internal/tasks"
)

const subtaskColumns = `id, task_id, title, completed, order_index, created_at`

func scanSubTask(s rowScanner) (tasks.SubTask, error) {
	var st tasks.SubTask
	err := s.Scan(&st.ID, &st.TaskID, &st.Title, &st.Completed, &st.OrderIndex, &st.CreatedAt)
	return st, err
}

func (r *Repo) ListSubTasks(ctx context.Context, taskID uuid.UUID) ([]tasks.SubTask, error) {
	if err := r.taskExists(ctx, taskID); err != nil {
		return nil, err
	}
	return r.listSubTasks(ctx, taskID)
}

func (r *Repo) listSubTasks(ctx context.Context, taskID uuid.UUID) ([]tasks.SubTask, error) {
	// created_at then id keep ties in insertion order
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+subtaskColumns+` FROM subtasks
		 WHERE task_id = $1
		 ORDER BY order_index, created_at, id`, taskID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []tasks.SubTask
	for rows.Next() {
		st, err := scanSubTask(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, st)
	}
	return result, rows.Err()
}

func (r *Repo) CreateSubTask(ctx context.Context, taskID uuid.UUID, c tasks.SubTaskCreate) (tasks.SubTask, error) {
	if err := r.taskExists(ctx, taskID); err != nil {
		return tasks.SubTask{}, err
	}

	st := tasks.SubTask{
		ID:         uuid.New(),
		TaskID:     taskID,
		Title:      c.Title,
		OrderIndex: *c.OrderIndex,
	}

	row := r.db.QueryRowContext(ctx, `
		INSERT INTO subtasks (id, task_id, title, order_index)
		VALUES ($1, $2, $3, $4)
		RETURNING completed, created_at
	`, st.ID, st.TaskID, st.Title, st.OrderIndex)

	if err := row.Scan(&st.Completed, &st.CreatedAt); err != nil {
		return tasks.SubTask{}, err
	}
	return st, nil
}

func (r *Repo) UpdateSubTask(ctx context.Context, id uuid.UUID, u tasks.SubTaskUpdate) (tasks.SubTask, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return tasks.SubTask{}, err
	}
	defer tx.Rollback()

	st, err := scanSubTask(tx.QueryRowContext(ctx,
		"SELECT "+subtaskColumns+" FROM subtasks WHERE id = $1 FOR UPDATE", id))
	if errors.Is(err, sql.ErrNoRows) {
		return tasks.SubTask{}, fmt.Errorf("subtask %s: %w", id, tasks.ErrNotFound)
	}
	if err != nil {
		return tasks.SubTask{}, err
	}

	u.Apply(&st)

	_, err = tx.ExecContext(ctx, `
		UPDATE subtasks SET title = $1, completed = $2, order_index = $3 WHERE id = $4
	`, st.Title, st.Completed, st.OrderIndex, id)
	if err != nil {
		return tasks.SubTask{}, err
	}

	if err := tx.Commit(); err != nil {
		return tasks.SubTask{}, err
	}
	return st, nil
}

func (r *Repo) DeleteSubTask(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM subtasks WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return fmt.Errorf("subtask %s: %w", id, tasks.ErrNotFound)
	}
	return nil
}
