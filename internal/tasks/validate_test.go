package tasks

import (
	"errors"
	"testing"
)

func validCreate() TaskCreate {
	return TaskCreate{
		Title:    "Write report",
		Category: CategoryWork,
		Priority: PriorityHigh,
		Urgency:  UrgencyLow,
	}
}

func fieldNames(t *testing.T, err error) []string {
	t.Helper()
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	names := make([]string, 0, len(ve.Fields))
	for _, f := range ve.Fields {
		names = append(names, f.Field)
	}
	return names
}

func TestTaskCreateValidate(t *testing.T) {
	longTitle := make([]byte, 101)
	for i := range longTitle {
		longTitle[i] = 'a'
	}

	tests := []struct {
		name      string
		mutate    func(*TaskCreate)
		wantField string
	}{
		{"valid", func(c *TaskCreate) {}, ""},
		{"missing title", func(c *TaskCreate) { c.Title = "" }, "title"},
		{"blank title", func(c *TaskCreate) { c.Title = "   " }, "title"},
		{"title too long", func(c *TaskCreate) { c.Title = string(longTitle) }, "title"},
		{"bad category", func(c *TaskCreate) { c.Category = "hobby" }, "category"},
		{"bad priority", func(c *TaskCreate) { c.Priority = "urgent" }, "priority"},
		{"bad urgency", func(c *TaskCreate) { c.Urgency = "" }, "urgency"},
		{"negative estimated hours", func(c *TaskCreate) {
			h := -1.5
			c.EstimatedHours = &h
		}, "estimated_hours"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCreate()
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("Validate: unexpected error %v", err)
				}
				return
			}
			names := fieldNames(t, err)
			if len(names) != 1 || names[0] != tt.wantField {
				t.Errorf("fields: got %v, want [%s]", names, tt.wantField)
			}
		})
	}
}

func TestTaskCreateValidateCollectsAllFields(t *testing.T) {
	c := TaskCreate{}
	err := c.Validate()
	names := fieldNames(t, err)
	if len(names) != 4 {
		t.Errorf("fields: got %v, want title, category, priority, urgency", names)
	}
}

func TestTaskUpdateValidate(t *testing.T) {
	set := func(v string) Optional[string] {
		return Optional[string]{Set: true, Valid: true, Value: v}
	}
	setNull := Optional[string]{Set: true}

	tests := []struct {
		name      string
		u         TaskUpdate
		wantField string
	}{
		{"empty update", TaskUpdate{}, ""},
		{"valid status", TaskUpdate{Status: Optional[Status]{Set: true, Valid: true, Value: StatusCompleted}}, ""},
		{"null title", TaskUpdate{Title: setNull}, "title"},
		{"blank title", TaskUpdate{Title: set(" ")}, "title"},
		{"bad status", TaskUpdate{Status: Optional[Status]{Set: true, Valid: true, Value: "done"}}, "status"},
		{"null status", TaskUpdate{Status: Optional[Status]{Set: true}}, "status"},
		{"progress too high", TaskUpdate{Progress: Optional[int]{Set: true, Valid: true, Value: 101}}, "progress"},
		{"progress negative", TaskUpdate{Progress: Optional[int]{Set: true, Valid: true, Value: -1}}, "progress"},
		{"negative actual hours", TaskUpdate{ActualHours: Optional[float64]{Set: true, Valid: true, Value: -0.5}}, "actual_hours"},
		{"null hours allowed", TaskUpdate{ActualHours: Optional[float64]{Set: true}}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.u.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("Validate: unexpected error %v", err)
				}
				return
			}
			names := fieldNames(t, err)
			if len(names) != 1 || names[0] != tt.wantField {
				t.Errorf("fields: got %v, want [%s]", names, tt.wantField)
			}
		})
	}
}

func TestSubTaskCreateValidate(t *testing.T) {
	idx := 0
	if err := (SubTaskCreate{Title: "step 1", OrderIndex: &idx}).Validate(); err != nil {
		t.Fatalf("Validate: unexpected error %v", err)
	}

	err := (SubTaskCreate{Title: "step 1"}).Validate()
	names := fieldNames(t, err)
	if len(names) != 1 || names[0] != "order_index" {
		t.Errorf("fields: got %v, want [order_index]", names)
	}

	long := make([]byte, 201)
	for i := range long {
		long[i] = 'b'
	}
	err = (SubTaskCreate{Title: string(long), OrderIndex: &idx}).Validate()
	names = fieldNames(t, err)
	if len(names) != 1 || names[0] != "title" {
		t.Errorf("fields: got %v, want [title]", names)
	}
}

func TestCommentCreateValidate(t *testing.T) {
	if err := (CommentCreate{Content: "looks good"}).Validate(); err != nil {
		t.Fatalf("Validate: unexpected error %v", err)
	}
	err := (CommentCreate{Content: "  "}).Validate()
	names := fieldNames(t, err)
	if len(names) != 1 || names[0] != "content" {
		t.Errorf("fields: got %v, want [content]", names)
	}
}
