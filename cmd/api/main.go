package main

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/cors"
	"go.uber.org/zap"

	"todo-ai-backend/internal/ai"
	"todo-ai-backend/internal/config"
	"todo-ai-backend/internal/search"
	"todo-ai-backend/internal/todos"
)

func main() {
	cfg := config.Load()

	var log *zap.Logger
	var err error
	if cfg.Env == "development" {
		log, err = zap.NewDevelopment()
	} else {
		log, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	store := todos.NewStore(cfg.DataFile)

	client, err := ai.NewClient(context.Background(), cfg.AWSRegion, cfg.ModelID, cfg.MaxAttempts, log)
	if err != nil {
		log.Fatal("failed to initialize AI client", zap.Error(err))
	}
	assistant := ai.NewAssistant(client, log)

	searcher := search.NewService(cfg.GoogleAPIKey, cfg.GoogleSearchEngineID, cfg.SearchTimeout, log)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"message": "TODO AI Backend API",
			"endpoints": map[string]string{
				"todos":  "/api/todos",
				"ai":     "/api/ai",
				"search": "/api/search",
				"health": "/health",
			},
		})
	})

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	mux.Handle("GET /api/todos", todos.ListHandler(store, log))
	mux.Handle("POST /api/todos", todos.CreateHandler(store, log))
	mux.Handle("GET /api/todos/{id}", todos.GetHandler(store, log))
	mux.Handle("PUT /api/todos/{id}", todos.UpdateHandler(store, log))
	mux.Handle("DELETE /api/todos/{id}", todos.DeleteHandler(store, log))
	mux.Handle("PATCH /api/todos/{id}/complete", todos.ToggleHandler(store, log))

	mux.Handle("POST /api/ai/generate-tasks", ai.GenerateTasksHandler(assistant, log))
	mux.Handle("POST /api/ai/classify-task", ai.ClassifyTaskHandler(assistant, log))
	mux.Handle("POST /api/ai/set-priority", ai.SetPriorityHandler(assistant, log))
	mux.Handle("POST /api/ai/generate-execution-guide", ai.ExecutionGuideHandler(assistant, log))
	mux.Handle("POST /api/ai/generate-completion-message", ai.CompletionMessageHandler(assistant, log))
	mux.Handle("POST /api/ai/detect-stale-tasks", ai.DetectStaleTasksHandler(assistant, log))
	mux.Handle("POST /api/ai/recommend-tasks", ai.RecommendTasksHandler(assistant, log))

	mux.Handle("POST /api/search/task-context", search.TaskContextHandler(assistant, searcher, log))

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})
	handler := c.Handler(mux)

	log.Info("API server is running", zap.String("addr", cfg.Addr()))
	if err := http.ListenAndServe(cfg.Addr(), handler); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
