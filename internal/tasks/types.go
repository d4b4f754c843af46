package tasks

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Optional tracks whether a key was present in the request body at all,
// and whether it carried a value or an explicit null. Partial updates
// apply only fields with Set == true.
type Optional[T any] struct {
	Set   bool
	Valid bool
	Value T
}

func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.Set = true
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(b, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

type TaskCreate struct {
	Title            string     `json:"title"`
	Description      *string    `json:"description"`
	Category         Category   `json:"category"`
	Priority         Priority   `json:"priority"`
	Urgency          Urgency    `json:"urgency"`
	DueDate          *time.Time `json:"due_date"`
	PlannedStartDate *time.Time `json:"planned_start_date"`
	PlannedEndDate   *time.Time `json:"planned_end_date"`
	EstimatedHours   *float64   `json:"estimated_hours"`
	Notes            *string    `json:"notes"`
}

type TaskUpdate struct {
	Title            Optional[string]    `json:"title"`
	Description      Optional[string]    `json:"description"`
	Category         Optional[Category]  `json:"category"`
	Priority         Optional[Priority]  `json:"priority"`
	Urgency          Optional[Urgency]   `json:"urgency"`
	Status           Optional[Status]    `json:"status"`
	Progress         Optional[int]       `json:"progress"`
	DueDate          Optional[time.Time] `json:"due_date"`
	PlannedStartDate Optional[time.Time] `json:"planned_start_date"`
	PlannedEndDate   Optional[time.Time] `json:"planned_end_date"`
	ActualStartDate  Optional[time.Time] `json:"actual_start_date"`
	ActualEndDate    Optional[time.Time] `json:"actual_end_date"`
	EstimatedHours   Optional[float64]   `json:"estimated_hours"`
	ActualHours      Optional[float64]   `json:"actual_hours"`
	Notes            Optional[string]    `json:"notes"`
}

// Apply copies the fields present in the update onto t. Callers must
// validate the update first; Apply assumes required fields are non-null.
func (u TaskUpdate) Apply(t *Task) {
	if u.Title.Set {
		t.Title = u.Title.Value
	}
	if u.Description.Set {
		t.Description = optionalString(u.Description)
	}
	if u.Category.Set {
		t.Category = u.Category.Value
	}
	if u.Priority.Set {
		t.Priority = u.Priority.Value
	}
	if u.Urgency.Set {
		t.Urgency = u.Urgency.Value
	}
	if u.Status.Set {
		t.Status = u.Status.Value
	}
	if u.Progress.Set {
		t.Progress = u.Progress.Value
	}
	if u.DueDate.Set {
		t.DueDate = optionalTime(u.DueDate)
	}
	if u.PlannedStartDate.Set {
		t.PlannedStartDate = optionalTime(u.PlannedStartDate)
	}
	if u.PlannedEndDate.Set {
		t.PlannedEndDate = optionalTime(u.PlannedEndDate)
	}
	if u.ActualStartDate.Set {
		t.ActualStartDate = optionalTime(u.ActualStartDate)
	}
	if u.ActualEndDate.Set {
		t.ActualEndDate = optionalTime(u.ActualEndDate)
	}
	if u.EstimatedHours.Set {
		t.EstimatedHours = optionalFloat(u.EstimatedHours)
	}
	if u.ActualHours.Set {
		t.ActualHours = optionalFloat(u.ActualHours)
	}
	if u.Notes.Set {
		t.Notes = optionalString(u.Notes)
	}
}

func optionalString(o Optional[string]) *string {
	if !o.Valid {
		return nil
	}
	v := o.Value
	return &v
}

func optionalTime(o Optional[time.Time]) *time.Time {
	if !o.Valid {
		return nil
	}
	v := o.Value
	return &v
}

func optionalFloat(o Optional[float64]) *float64 {
	if !o.Valid {
		return nil
	}
	v := o.Value
	return &v
}

type SubTaskCreate struct {
	Title      string `json:"title"`
	OrderIndex *int   `json:"order_index"`
}

type SubTaskUpdate struct {
	Title      Optional[string] `json:"title"`
	Completed  Optional[bool]   `json:"completed"`
	OrderIndex Optional[int]    `json:"order_index"`
}

func (u SubTaskUpdate) Apply(s *SubTask) {
	if u.Title.Set {
		s.Title = u.Title.Value
	}
	if u.Completed.Set {
		s.Completed = u.Completed.Value
	}
	if u.OrderIndex.Set {
		s.OrderIndex = u.OrderIndex.Value
	}
}

type CommentCreate struct {
	Content string `json:"content"`
}

// SubTaskSimple and CommentSimple are the trimmed child shapes embedded
// in a task detail response.
type SubTaskSimple struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	Completed  bool      `json:"completed"`
	OrderIndex int       `json:"order_index"`
	CreatedAt  time.Time `json:"created_at"`
}

type CommentSimple struct {
	ID        uuid.UUID `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type TaskDetail struct {
	Task
	Subtasks []SubTaskSimple `json:"subtasks"`
	Comments []CommentSimple `json:"comments"`
}

type TaskWithCounts struct {
	Task
	SubtaskCount      int `json:"subtask_count"`
	CompletedSubtasks int `json:"completed_subtasks"`
	CommentCount      int `json:"comment_count"`
}

type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

type TaskListResponse struct {
	Tasks      []TaskWithCounts `json:"tasks"`
	Pagination Pagination       `json:"pagination"`
}
