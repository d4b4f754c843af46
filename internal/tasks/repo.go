package tasks

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound reports that the referenced task, subtask, or comment does
// not exist. Implementations wrap it so callers can match with errors.Is.
var ErrNotFound = errors.New("not found")

// sortColumns whitelists the sortable task fields. Anything else is a
// caller error, never a silent fallback.
var sortColumns = map[string]string{
	"created_at":         "created_at",
	"updated_at":         "updated_at",
	"title":              "title",
	"category":           "category",
	"priority":           "priority",
	"urgency":            "urgency",
	"status":             "status",
	"progress":           "progress",
	"due_date":           "due_date",
	"planned_start_date": "planned_start_date",
	"planned_end_date":   "planned_end_date",
	"actual_start_date":  "actual_start_date",
	"actual_end_date":    "actual_end_date",
	"estimated_hours":    "estimated_hours",
	"actual_hours":       "actual_hours",
}

func SortColumn(field string) (string, bool) {
	col, ok := sortColumns[field]
	return col, ok
}

type ListParams struct {
	Category *Category
	Priority *Priority
	Urgency  *Urgency
	Status   *Status
	Search   string
	SortBy   string
	SortDesc bool
	Page     int
	Limit    int
}

// Repo is the persistence boundary for tasks and their children. Every
// method is scoped to a single request.
type Repo interface {
	ListTasks(ctx context.Context, p ListParams) ([]TaskWithCounts, int, error)
	CreateTask(ctx context.Context, c TaskCreate) (Task, error)
	GetTaskDetail(ctx context.Context, id uuid.UUID) (TaskDetail, error)
	UpdateTask(ctx context.Context, id uuid.UUID, u TaskUpdate) (Task, error)
	DeleteTask(ctx context.Context, id uuid.UUID) error

	// ActiveTasks returns every task whose status is not completed.
	ActiveTasks(ctx context.Context) ([]Task, error)
	// TasksInRange returns tasks whose due, planned-start, or
	// actual-start date falls within [start, end].
	TasksInRange(ctx context.Context, start, end time.Time) ([]Task, error)

	ListSubTasks(ctx context.Context, taskID uuid.UUID) ([]SubTask, error)
	CreateSubTask(ctx context.Context, taskID uuid.UUID, c SubTaskCreate) (SubTask, error)
	UpdateSubTask(ctx context.Context, id uuid.UUID, u SubTaskUpdate) (SubTask, error)
	DeleteSubTask(ctx context.Context, id uuid.UUID) error

	ListComments(ctx context.Context, taskID uuid.UUID) ([]Comment, error)
	CreateComment(ctx context.Context, taskID uuid.UUID, c CommentCreate) (Comment, error)
	DeleteComment(ctx context.Context, id uuid.UUID) error
}
