package tasks

import (
	"encoding/json"
	"net/http"

	"github.com/charmbracelet/log"
)

func ListSubTasksHandler(repo Repo, lg *log.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		taskID, ok := pathID(r)
		if !ok {
			writeError(w, http.StatusBadRequest, "invalid task id")
			return
		}

		subs, err := repo.ListSubTasks(r.Context(), taskID)
		if err != nil {
			respondDomainError(w, lg, err, "Task not found")
			return
		}
		if subs == nil {
			subs = []SubTask{}
		}
		writeJSON(w, http.StatusOK, subs)
	}
}

func CreateSubTaskHandler(repo Repo, lg *log.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		taskID, ok := pathID(r)
		if !ok {
			writeError(w, http.StatusBadRequest, "invalid task id")
			return
		}

		var body SubTaskCreate
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}
		if err := body.Validate(); err != nil {
			respondDomainError(w, lg, err, "")
			return
		}

		sub, err := repo.CreateSubTask(r.Context(), taskID, body)
		if err != nil {
			respondDomainError(w, lg, err, "Task not found")
			return
		}
		writeJSON(w, http.StatusOK, sub)
	}
}

func UpdateSubTaskHandler(repo Repo, lg *log.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			writeError(w, http.StatusBadRequest, "invalid subtask id")
			return
		}

		var body SubTaskUpdate
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}
		if err := body.Validate(); err != nil {
			respondDomainError(w, lg, err, "")
			return
		}

		sub, err := repo.UpdateSubTask(r.Context(), id, body)
		if err != nil {
			respondDomainError(w, lg, err, "Subtask not found")
			return
		}
		writeJSON(w, http.StatusOK, sub)
	}
}

func DeleteSubTaskHandler(repo Repo, lg *log.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			writeError(w, http.StatusBadRequest, "invalid subtask id")
			return
		}

		if err := repo.DeleteSubTask(r.Context(), id); err != nil {
			respondDomainError(w, lg, err, "Subtask not found")
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "Subtask deleted successfully"})
	}
}
