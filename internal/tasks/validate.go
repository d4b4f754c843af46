package tasks

import (
	"fmt"
	"strings"
)

const (
	maxTaskTitleLen    = 100
	maxSubTaskTitleLen = 200
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func (e *ValidationError) add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

func (e *ValidationError) or() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

func (c TaskCreate) Validate() error {
	var v ValidationError

	if strings.TrimSpace(c.Title) == "" {
		v.add("title", "is required")
	} else if len(c.Title) > maxTaskTitleLen {
		v.add("title", fmt.Sprintf("must be at most %d characters", maxTaskTitleLen))
	}
	if !c.Category.Valid() {
		v.add("category", "must be one of work, private, study, other")
	}
	if !c.Priority.Valid() {
		v.add("priority", "must be one of high, medium, low")
	}
	if !c.Urgency.Valid() {
		v.add("urgency", "must be one of high, medium, low")
	}
	if c.EstimatedHours != nil && *c.EstimatedHours < 0 {
		v.add("estimated_hours", "must be greater than or equal to 0")
	}

	return v.or()
}

func (u TaskUpdate) Validate() error {
	var v ValidationError

	if u.Title.Set {
		switch {
		case !u.Title.Valid:
			v.add("title", "must not be null")
		case strings.TrimSpace(u.Title.Value) == "":
			v.add("title", "is required")
		case len(u.Title.Value) > maxTaskTitleLen:
			v.add("title", fmt.Sprintf("must be at most %d characters", maxTaskTitleLen))
		}
	}
	if u.Category.Set {
		if !u.Category.Valid {
			v.add("category", "must not be null")
		} else if !u.Category.Value.Valid() {
			v.add("category", "must be one of work, private, study, other")
		}
	}
	if u.Priority.Set {
		if !u.Priority.Valid {
			v.add("priority", "must not be null")
		} else if !u.Priority.Value.Valid() {
			v.add("priority", "must be one of high, medium, low")
		}
	}
	if u.Urgency.Set {
		if !u.Urgency.Valid {
			v.add("urgency", "must not be null")
		} else if !u.Urgency.Value.Valid() {
			v.add("urgency", "must be one of high, medium, low")
		}
	}
	if u.Status.Set {
		if !u.Status.Valid {
			v.add("status", "must not be null")
		} else if !u.Status.Value.Valid() {
			v.add("status", "must be one of not_started, in_progress, completed, on_hold")
		}
	}
	if u.Progress.Set {
		if !u.Progress.Valid {
			v.add("progress", "must not be null")
		} else if u.Progress.Value < 0 || u.Progress.Value > 100 {
			v.add("progress", "must be between 0 and 100")
		}
	}
	if u.EstimatedHours.Set && u.EstimatedHours.Valid && u.EstimatedHours.Value < 0 {
		v.add("estimated_hours", "must be greater than or equal to 0")
	}
	if u.ActualHours.Set && u.ActualHours.Valid && u.ActualHours.Value < 0 {
		v.add("actual_hours", "must be greater than or equal to 0")
	}

	return v.or()
}

func (c SubTaskCreate) Validate() error {
	var v ValidationError

	if strings.TrimSpace(c.Title) == "" {
		v.add("title", "is required")
	} else if len(c.Title) > maxSubTaskTitleLen {
		v.add("title", fmt.Sprintf("must be at most %d characters", maxSubTaskTitleLen))
	}
	if c.OrderIndex == nil {
		v.add("order_index", "is required")
	}

	return v.or()
}

func (u SubTaskUpdate) Validate() error {
	var v ValidationError

	if u.Title.Set {
		switch {
		case !u.Title.Valid:
			v.add("title", "must not be null")
		case strings.TrimSpace(u.Title.Value) == "":
			v.add("title", "is required")
		case len(u.Title.Value) > maxSubTaskTitleLen:
			v.add("title", fmt.Sprintf("must be at most %d characters", maxSubTaskTitleLen))
		}
	}
	if u.Completed.Set && !u.Completed.Valid {
		v.add("completed", "must not be null")
	}
	if u.OrderIndex.Set && !u.OrderIndex.Valid {
		v.add("order_index", "must not be null")
	}

	return v.or()
}

func (c CommentCreate) Validate() error {
	var v ValidationError

	if strings.TrimSpace(c.Content) == "" {
		v.add("content", "is required")
	}

	return v.or()
}
