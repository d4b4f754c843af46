package tasks

import (
	"encoding/json"
	"net/http"

	"github.com/charmbracelet/log"
)

func ListCommentsHandler(repo Repo, lg *log.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		taskID, ok := pathID(r)
		if !ok {
			writeError(w, http.StatusBadRequest, "invalid task id")
			return
		}

		comments, err := repo.ListComments(r.Context(), taskID)
		if err != nil {
			respondDomainError(w, lg, err, "Task not found")
			return
		}
		if comments == nil {
			comments = []Comment{}
		}
		writeJSON(w, http.StatusOK, comments)
	}
}

func CreateCommentHandler(repo Repo, lg *log.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		taskID, ok := pathID(r)
		if !ok {
			writeError(w, http.StatusBadRequest, "invalid task id")
			return
		}

		var body CommentCreate
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}
		if err := body.Validate(); err != nil {
			respondDomainError(w, lg, err, "")
			return
		}

		comment, err := repo.CreateComment(r.Context(), taskID, body)
		if err != nil {
			respondDomainError(w, lg, err, "Task not found")
			return
		}
		writeJSON(w, http.StatusOK, comment)
	}
}

func DeleteCommentHandler(repo Repo, lg *log.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			writeError(w, http.StatusBadRequest, "invalid comment id")
			return
		}

		if err := repo.DeleteComment(r.Context(), id); err != nil {
			respondDomainError(w, lg, err, "Comment not found")
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "Comment deleted successfully"})
	}
}
