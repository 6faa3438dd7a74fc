package ai

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"todo-ai-backend/internal/todos"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, name, message string) {
	writeJSON(w, status, map[string]string{"error": name, "message": message})
}

// respondError maps the capability error taxonomy onto HTTP statuses.
// Validation problems are the caller's to fix; provider and parse failures
// surface as opaque service errors (raw model output stays in the logs).
func respondError(w http.ResponseWriter, log *zap.Logger, err error) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		writeError(w, http.StatusBadRequest, "Validation Error", verr.Message)
		return
	}

	var merr *ModelInvocationError
	if errors.As(err, &merr) {
		log.Error("AI service error", zap.Error(err))
		writeError(w, http.StatusBadGateway, "AI Service Error",
			"the AI service is temporarily unavailable, please try again later")
		return
	}

	var perr *ResponseParseError
	if errors.As(err, &perr) {
		writeError(w, http.StatusInternalServerError, "AI Response Error",
			"the AI response could not be processed")
		return
	}

	log.Error("unexpected AI handler error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, "ServerError", "an internal error occurred")
}

// GenerateTasksHandler handles POST /api/ai/generate-tasks.
func GenerateTasksHandler(assistant *Assistant, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Description string `json:"description"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "Validation Error", "invalid JSON body")
			return
		}

		tasks, err := assistant.GenerateTasks(r.Context(), body.Description)
		if err != nil {
			respondError(w, log, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"tasks": tasks})
	}
}

// ClassifyTaskHandler handles POST /api/ai/classify-task.
func ClassifyTaskHandler(assistant *Assistant, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Title       string `json:"title"`
			Description string `json:"description"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "Validation Error", "invalid JSON body")
			return
		}

		result, err := assistant.ClassifyTask(r.Context(), body.Title, body.Description)
		if err != nil {
			respondError(w, log, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

// SetPriorityHandler handles POST /api/ai/set-priority.
func SetPriorityHandler(assistant *Assistant, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			Deadline    string `json:"deadline"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "Validation Error", "invalid JSON body")
			return
		}

		result, err := assistant.SetPriority(r.Context(), body.Title, body.Description, body.Deadline)
		if err != nil {
			respondError(w, log, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

// ExecutionGuideHandler handles POST /api/ai/generate-execution-guide.
func ExecutionGuideHandler(assistant *Assistant, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			Category    string `json:"category"`
			Priority    string `json:"priority"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "Validation Error", "invalid JSON body")
			return
		}

		result, err := assistant.GenerateExecutionGuide(r.Context(), body.Title, body.Description, body.Category, body.Priority)
		if err != nil {
			respondError(w, log, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

// CompletionMessageHandler handles POST /api/ai/generate-completion-message.
func CompletionMessageHandler(assistant *Assistant, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			Category    string `json:"category"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "Validation Error", "invalid JSON body")
			return
		}

		result, err := assistant.GenerateCompletionMessage(r.Context(), body.Title, body.Description, body.Category)
		if err != nil {
			respondError(w, log, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

// DetectStaleTasksHandler handles POST /api/ai/detect-stale-tasks.
func DetectStaleTasksHandler(assistant *Assistant, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Todos []todos.Todo `json:"todos"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "Validation Error", "invalid JSON body")
			return
		}
		if len(body.Todos) == 0 {
			writeError(w, http.StatusBadRequest, "Validation Error", "todos must not be empty")
			return
		}

		result, err := assistant.DetectStaleTasks(r.Context(), body.Todos)
		if err != nil {
			respondError(w, log, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

// RecommendTasksHandler handles POST /api/ai/recommend-tasks.
func RecommendTasksHandler(assistant *Assistant, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Todos []todos.Todo `json:"todos"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "Validation Error", "invalid JSON body")
			return
		}
		if len(body.Todos) == 0 {
			writeError(w, http.StatusBadRequest, "Validation Error", "todos must not be empty")
			return
		}

		result, err := assistant.RecommendTasks(r.Context(), body.Todos)
		if err != nil {
			respondError(w, log, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}
