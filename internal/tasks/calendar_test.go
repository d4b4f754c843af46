package tasks

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestMonthRange(t *testing.T) {
	tests := []struct {
		name        string
		year, month int
		wantStart   time.Time
		wantEnd     time.Time
	}{
		{
			"march", 2024, 3,
			time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			"february leap year", 2024, 2,
			time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			"december rolls into january", 2024, 12,
			time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := MonthRange(tt.year, tt.month)
			if !start.Equal(tt.wantStart) {
				t.Errorf("start: got %v, want %v", start, tt.wantStart)
			}
			if !end.Equal(tt.wantEnd) {
				t.Errorf("end: got %v, want %v", end, tt.wantEnd)
			}
		})
	}
}

func TestBuildCalendarSingleDueDate(t *testing.T) {
	due := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	task := Task{ID: uuid.New(), Title: "T1", Priority: PriorityHigh, Urgency: UrgencyLow, DueDate: &due}

	start, end := MonthRange(2024, 3)
	got := BuildCalendar([]Task{task}, start, end)

	events := got.CalendarData["2024-03-15"]
	if len(events) != 1 {
		t.Fatalf("events on 2024-03-15: got %d, want 1", len(events))
	}
	if events[0].Type != "due" {
		t.Errorf("type: got %q, want due", events[0].Type)
	}
	if events[0].ID != task.ID || events[0].Title != "T1" {
		t.Errorf("event identity: got %+v", events[0])
	}
	if got.Summary.DueDates != 1 || got.Summary.StartDates != 0 ||
		got.Summary.Milestones != 0 || got.Summary.TotalEvents != 1 {
		t.Errorf("summary: got %+v", got.Summary)
	}
}

func TestBuildCalendarTaskAppearsTwiceOnSameDay(t *testing.T) {
	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	task := Task{ID: uuid.New(), Title: "T1", DueDate: &day, PlannedStartDate: &day}

	start, end := MonthRange(2024, 3)
	got := BuildCalendar([]Task{task}, start, end)

	events := got.CalendarData["2024-03-15"]
	if len(events) != 2 {
		t.Fatalf("events: got %d, want 2", len(events))
	}
	types := map[string]bool{}
	for _, e := range events {
		types[e.Type] = true
	}
	if !types["due"] || !types["start"] {
		t.Errorf("types: got %v, want due and start", types)
	}
	if got.Summary.TotalEvents != 2 || got.Summary.DueDates != 1 || got.Summary.StartDates != 1 {
		t.Errorf("summary: got %+v", got.Summary)
	}
}

func TestBuildCalendarActualStartEmitsNothing(t *testing.T) {
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	task := Task{ID: uuid.New(), Title: "T1", ActualStartDate: &day}

	start, end := MonthRange(2024, 3)
	got := BuildCalendar([]Task{task}, start, end)

	if len(got.CalendarData) != 0 {
		t.Errorf("calendar_data: got %v, want empty", got.CalendarData)
	}
	if got.Summary.TotalEvents != 0 {
		t.Errorf("total_events: got %d, want 0", got.Summary.TotalEvents)
	}
}

func TestBuildCalendarIgnoresOutOfRangeDates(t *testing.T) {
	inRange := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	outOfRange := time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC)
	task := Task{ID: uuid.New(), Title: "T1", DueDate: &inRange, PlannedStartDate: &outOfRange}

	start, end := MonthRange(2024, 3)
	got := BuildCalendar([]Task{task}, start, end)

	if got.Summary.DueDates != 1 || got.Summary.StartDates != 0 {
		t.Errorf("summary: got %+v, want one due and no starts", got.Summary)
	}
}
