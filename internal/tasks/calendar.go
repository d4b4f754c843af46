package tasks

import (
	"time"

	"github.com/google/uuid"
)

type CalendarEvent struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	Type     string    `json:"type"` // "due", "start", "milestone"
	Priority Priority  `json:"priority"`
	Urgency  Urgency   `json:"urgency"`
}

type CalendarSummary struct {
	TotalEvents int `json:"total_events"`
	DueDates    int `json:"due_dates"`
	StartDates  int `json:"start_dates"`
	Milestones  int `json:"milestones"`
}

type CalendarData struct {
	CalendarData map[string][]CalendarEvent `json:"calendar_data"`
	Summary      CalendarSummary            `json:"summary"`
}

// MonthRange returns the inclusive bounds of a month in UTC. The end
// bound is midnight on the last day; December rolls into January.
func MonthRange(year, month int) (start, end time.Time) {
	start = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, 0).AddDate(0, 0, -1)
	return start, end
}

// BuildCalendar maps days (YYYY-MM-DD) to the events falling on them. A
// task contributes one event per matching date field, so it can show up
// twice on the same day. Milestone events are declared in the shape but
// never generated; actual start dates select tasks into the range query
// without emitting events.
func BuildCalendar(ts []Task, start, end time.Time) CalendarData {
	data := map[string][]CalendarEvent{}
	var dueCount, startCount, milestoneCount int

	for _, t := range ts {
		if t.DueDate != nil && inRange(*t.DueDate, start, end) {
			key := t.DueDate.Format("2006-01-02")
			data[key] = append(data[key], CalendarEvent{
				ID:       t.ID,
				Title:    t.Title,
				Type:     "due",
				Priority: t.Priority,
				Urgency:  t.Urgency,
			})
			dueCount++
		}

		if t.PlannedStartDate != nil && inRange(*t.PlannedStartDate, start, end) {
			key := t.PlannedStartDate.Format("2006-01-02")
			data[key] = append(data[key], CalendarEvent{
				ID:       t.ID,
				Title:    t.Title,
				Type:     "start",
				Priority: t.Priority,
				Urgency:  t.Urgency,
			})
			startCount++
		}
	}

	return CalendarData{
		CalendarData: data,
		Summary: CalendarSummary{
			TotalEvents: dueCount + startCount + milestoneCount,
			DueDates:    dueCount,
			StartDates:  startCount,
			Milestones:  milestoneCount,
		},
	}
}

func inRange(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}
