package main

import (
	"context"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/rs/cors"

	"taskdeck-backend/internal/config"
	"taskdeck-backend/internal/db"
	"taskdeck-backend/internal/postgres"
	"taskdeck-backend/internal/tasks"
)

const version = "1.0.0"

func main() {
	cfg := config.Load()

	lg := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
	})
	if lvl, err := log.ParseLevel(cfg.LogLevel); err == nil {
		lg.SetLevel(lvl)
	}

	database, err := db.Connect(cfg.ConnString())
	if err != nil {
		lg.Fatal("failed to connect DB", "err", err)
	}
	defer database.Close()

	if err := db.Migrate(context.Background(), database); err != nil {
		lg.Fatal("failed to migrate DB", "err", err)
	}
	lg.Info("connected to PostgreSQL")

	repo := postgres.NewRepo(database, lg)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"Task Management API","version":"` + version + `"}`))
	})
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"healthy"}`))
	})

	// ----- TASKS API -----
	mux.Handle("GET /tasks", tasks.ListTasksHandler(repo, lg))
	mux.Handle("POST /tasks", tasks.CreateTaskHandler(repo, lg))
	mux.Handle("GET /tasks/matrix", tasks.MatrixHandler(repo, lg))
	mux.Handle("GET /tasks/calendar", tasks.CalendarHandler(repo, lg))
	mux.Handle("GET /tasks/{id}", tasks.GetTaskHandler(repo, lg))
	mux.Handle("PUT /tasks/{id}", tasks.UpdateTaskHandler(repo, lg))
	mux.Handle("DELETE /tasks/{id}", tasks.DeleteTaskHandler(repo, lg))

	// ----- SUBTASKS API -----
	mux.Handle("GET /tasks/{id}/subtasks", tasks.ListSubTasksHandler(repo, lg))
	mux.Handle("POST /tasks/{id}/subtasks", tasks.CreateSubTaskHandler(repo, lg))
	mux.Handle("PUT /subtasks/{id}", tasks.UpdateSubTaskHandler(repo, lg))
	mux.Handle("DELETE /subtasks/{id}", tasks.DeleteSubTaskHandler(repo, lg))

	// ----- COMMENTS API -----
	mux.Handle("GET /tasks/{id}/comments", tasks.ListCommentsHandler(repo, lg))
	mux.Handle("POST /tasks/{id}/comments", tasks.CreateCommentHandler(repo, lg))
	mux.Handle("DELETE /comments/{id}", tasks.DeleteCommentHandler(repo, lg))

	// CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})

	handler := c.Handler(mux)

	lg.Info("API server is running", "addr", cfg.HTTPAddr)
	lg.Fatal(http.ListenAndServe(cfg.HTTPAddr, handler))
}
