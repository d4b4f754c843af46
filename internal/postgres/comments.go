package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"taskdeck-backend/internal/tasks"
)

const commentColumns = `id, task_id, content, created_at`

func scanComment(s rowScanner) (tasks.Comment, error) {
	var c tasks.Comment
	err := s.Scan(&c.ID, &c.TaskID, &c.Content, &c.CreatedAt)
	return c, err
}

func (r *Repo) ListComments(ctx context.Context, taskID uuid.UUID) ([]tasks.Comment, error) {
	if err := r.taskExists(ctx, taskID); err != nil {
		return nil, err
	}
	return r.listComments(ctx, taskID)
}

func (r *Repo) listComments(ctx context.Context, taskID uuid.UUID) ([]tasks.Comment, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+commentColumns+` FROM task_comments
		 WHERE task_id = $1
		 ORDER BY created_at DESC`, taskID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []tasks.Comment
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

func (r *Repo) CreateComment(ctx context.Context, taskID uuid.UUID, c tasks.CommentCreate) (tasks.Comment, error) {
	if err := r.taskExists(ctx, taskID); err != nil {
		return tasks.Comment{}, err
	}

	comment := tasks.Comment{
		ID:      uuid.New(),
		TaskID:  taskID,
		Content: c.Content,
	}

	row := r.db.QueryRowContext(ctx, `
		INSERT INTO task_comments (id, task_id, content)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`, comment.ID, comment.TaskID, comment.Content)

	if err := row.Scan(&comment.CreatedAt); err != nil {
		return tasks.Comment{}, err
	}
	return comment, nil
}

func (r *Repo) DeleteComment(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM task_comments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return fmt.Errorf("comment %s: %w", id, tasks.ErrNotFound)
	}
	return nil
}
