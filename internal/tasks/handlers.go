package tasks

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

const (
	defaultPage  = 1
	defaultLimit = 20
	maxLimit     = 100
)

func pathID(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	return id, err == nil
}

func parseListParams(r *http.Request) (ListParams, error) {
	q := r.URL.Query()

	p := ListParams{
		Search: q.Get("search"),
		SortBy: "created_at",
		Page:   defaultPage,
		Limit:  defaultLimit,
	}

	var v ValidationError
	if s := q.Get("category"); s != "" {
		c := Category(s)
		if !c.Valid() {
			v.add("category", "must be one of work, private, study, other")
		}
		p.Category = &c
	}
	if s := q.Get("priority"); s != "" {
		pr := Priority(s)
		if !pr.Valid() {
			v.add("priority", "must be one of high, medium, low")
		}
		p.Priority = &pr
	}
	if s := q.Get("urgency"); s != "" {
		u := Urgency(s)
		if !u.Valid() {
			v.add("urgency", "must be one of high, medium, low")
		}
		p.Urgency = &u
	}
	if s := q.Get("status"); s != "" {
		st := Status(s)
		if !st.Valid() {
			v.add("status", "must be one of not_started, in_progress, completed, on_hold")
		}
		p.Status = &st
	}

	if s := q.Get("page"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return p, badParamError("page")
		}
		if n < 1 {
			v.add("page", "must be greater than or equal to 1")
		}
		p.Page = n
	}
	if s := q.Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return p, badParamError("limit")
		}
		if n < 1 || n > maxLimit {
			v.add("limit", "must be between 1 and 100")
		}
		p.Limit = n
	}

	if s := q.Get("sort_by"); s != "" {
		p.SortBy = s
	}
	if _, ok := SortColumn(p.SortBy); !ok {
		return p, badParamError("sort_by")
	}
	// anything but "desc" sorts ascending
	p.SortDesc = q.Get("sort_order") == "desc" || q.Get("sort_order") == ""

	if err := v.or(); err != nil {
		return p, err
	}
	return p, nil
}

type badParam string

func badParamError(name string) error { return badParam(name) }

func (b badParam) Error() string { return "invalid " + string(b) + " parameter" }

// -------------------------------
// TASK HANDLERS
// -------------------------------

func ListTasksHandler(repo Repo, lg *log.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := parseListParams(r)
		if err != nil {
			if bp, ok := err.(badParam); ok {
				writeError(w, http.StatusBadRequest, bp.Error())
				return
			}
			respondDomainError(w, lg, err, "")
			return
		}

		items, total, err := repo.ListTasks(r.Context(), p)
		if err != nil {
			respondDomainError(w, lg, err, "")
			return
		}
		if items == nil {
			items = []TaskWithCounts{}
		}

		writeJSON(w, http.StatusOK, TaskListResponse{
			Tasks: items,
			Pagination: Pagination{
				Page:       p.Page,
				Limit:      p.Limit,
				Total:      total,
				TotalPages: (total + p.Limit - 1) / p.Limit,
			},
		})
	}
}

func CreateTaskHandler(repo Repo, lg *log.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body TaskCreate
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}
		if err := body.Validate(); err != nil {
			respondDomainError(w, lg, err, "")
			return
		}

		t, err := repo.CreateTask(r.Context(), body)
		if err != nil {
			respondDomainError(w, lg, err, "")
			return
		}
		writeJSON(w, http.StatusOK, t)
	}
}

func GetTaskHandler(repo Repo, lg *log.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			writeError(w, http.StatusBadRequest, "invalid task id")
			return
		}

		detail, err := repo.GetTaskDetail(r.Context(), id)
		if err != nil {
			respondDomainError(w, lg, err, "Task not found")
			return
		}
		writeJSON(w, http.StatusOK, detail)
	}
}

func UpdateTaskHandler(repo Repo, lg *log.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			writeError(w, http.StatusBadRequest, "invalid task id")
			return
		}

		var body TaskUpdate
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}
		if err := body.Validate(); err != nil {
			respondDomainError(w, lg, err, "")
			return
		}

		t, err := repo.UpdateTask(r.Context(), id, body)
		if err != nil {
			respondDomainError(w, lg, err, "Task not found")
			return
		}
		writeJSON(w, http.StatusOK, t)
	}
}

func DeleteTaskHandler(repo Repo, lg *log.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			writeError(w, http.StatusBadRequest, "invalid task id")
			return
		}

		if err := repo.DeleteTask(r.Context(), id); err != nil {
			respondDomainError(w, lg, err, "Task not found")
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "Task deleted successfully"})
	}
}

// -------------------------------
// VIEW HANDLERS
// -------------------------------

func MatrixHandler(repo Repo, lg *log.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ts, err := repo.ActiveTasks(r.Context())
		if err != nil {
			respondDomainError(w, lg, err, "")
			return
		}
		writeJSON(w, http.StatusOK, BuildMatrix(ts))
	}
}

func CalendarHandler(repo Repo, lg *log.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		year, err := strconv.Atoi(q.Get("year"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid year parameter")
			return
		}
		month, err := strconv.Atoi(q.Get("month"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid month parameter")
			return
		}
		if month < 1 || month > 12 {
			writeValidationError(w, &ValidationError{Fields: []FieldError{
				{Field: "month", Message: "must be between 1 and 12"},
			}})
			return
		}

		start, end := MonthRange(year, month)
		ts, err := repo.TasksInRange(r.Context(), start, end)
		if err != nil {
			respondDomainError(w, lg, err, "")
			return
		}
		writeJSON(w, http.StatusOK, BuildCalendar(ts, start, end))
	}
}
