package todos

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, name, message string, details []string) {
	body := map[string]any{"error": name, "message": message}
	if len(details) > 0 {
		body["details"] = details
	}
	writeJSON(w, status, body)
}

// ListHandler handles GET /api/todos with optional completed/category/priority
// query filters.
func ListHandler(store *Store, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		var f Filters
		if v := q.Get("completed"); v != "" {
			completed := v == "true"
			f.Completed = &completed
		}
		f.Category = q.Get("category")
		f.Priority = q.Get("priority")

		items, err := store.List(f)
		if err != nil {
			log.Error("failed to list todos", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "ServerError", "failed to load todos", nil)
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

// CreateHandler handles POST /api/todos.
func CreateHandler(store *Store, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in Input
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeError(w, http.StatusBadRequest, "Validation Error", "invalid JSON body", nil)
			return
		}
		if details := in.Validate(true); len(details) > 0 {
			writeError(w, http.StatusBadRequest, "Validation Error", "invalid input", details)
			return
		}

		todo, err := store.Create(in)
		if err != nil {
			log.Error("failed to create todo", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "ServerError", "failed to create todo", nil)
			return
		}
		writeJSON(w, http.StatusCreated, todo)
	}
}

// GetHandler handles GET /api/todos/{id}.
func GetHandler(store *Store, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		todo, ok, err := store.Get(r.PathValue("id"))
		if err != nil {
			log.Error("failed to load todo", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "ServerError", "failed to load todo", nil)
			return
		}
		if !ok {
			writeError(w, http.StatusNotFound, "NotFound", "todo not found", nil)
			return
		}
		writeJSON(w, http.StatusOK, todo)
	}
}

// UpdateHandler handles PUT /api/todos/{id}.
func UpdateHandler(store *Store, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in Input
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeError(w, http.StatusBadRequest, "Validation Error", "invalid JSON body", nil)
			return
		}
		if details := in.Validate(false); len(details) > 0 {
			writeError(w, http.StatusBadRequest, "Validation Error", "invalid input", details)
			return
		}

		todo, ok, err := store.Update(r.PathValue("id"), in)
		if err != nil {
			log.Error("failed to update todo", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "ServerError", "failed to update todo", nil)
			return
		}
		if !ok {
			writeError(w, http.StatusNotFound, "NotFound", "todo not found", nil)
			return
		}
		writeJSON(w, http.StatusOK, todo)
	}
}

// DeleteHandler handles DELETE /api/todos/{id}.
func DeleteHandler(store *Store, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ok, err := store.Delete(r.PathValue("id"))
		if err != nil {
			log.Error("failed to delete todo", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "ServerError", "failed to delete todo", nil)
			return
		}
		if !ok {
			writeError(w, http.StatusNotFound, "NotFound", "todo not found", nil)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// ToggleHandler handles PATCH /api/todos/{id}/complete.
func ToggleHandler(store *Store, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		todo, ok, err := store.ToggleComplete(r.PathValue("id"))
		if err != nil {
			log.Error("failed to toggle todo", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "ServerError", "failed to toggle todo", nil)
			return
		}
		if !ok {
			writeError(w, http.StatusNotFound, "NotFound", "todo not found", nil)
			return
		}
		writeJSON(w, http.StatusOK, todo)
	}
}
