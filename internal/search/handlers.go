package search

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// QueryGenerator turns task details into an optimized search query. It never
// fails; implementations fall back to the raw title.
type QueryGenerator interface {
	GenerateSearchQuery(ctx context.Context, title, description string) string
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, name, message string) {
	writeJSON(w, status, map[string]string{"error": name, "message": message})
}

// TaskContextHandler handles POST /api/search/task-context. It asks the model
// for an optimized query for the given task, then runs a web search with it.
func TaskContextHandler(gen QueryGenerator, svc *Service, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			NumResults  int    `json:"numResults"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "Validation Error", "invalid JSON body")
			return
		}
		if strings.TrimSpace(body.Title) == "" {
			writeError(w, http.StatusBadRequest, "Validation Error", "title must not be empty")
			return
		}

		query := gen.GenerateSearchQuery(r.Context(), body.Title, body.Description)

		result, err := svc.Search(r.Context(), query, body.NumResults)
		if err != nil {
			respondSearchError(w, log, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"originalTitle":  body.Title,
			"optimizedQuery": query,
			"query":          result.Query,
			"results":        result.Results,
			"totalResults":   result.TotalResults,
			"searchTime":     result.SearchTime,
		})
	}
}

func respondSearchError(w http.ResponseWriter, log *zap.Logger, err error) {
	switch {
	case errors.Is(err, ErrNotConfigured):
		log.Error("search not configured", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Configuration Error",
			"the search service is not configured")
	case errors.Is(err, ErrRateLimited):
		writeError(w, http.StatusTooManyRequests, "Rate Limit Error",
			"search quota exceeded, please try again later")
	case errors.Is(err, ErrAuthFailed):
		log.Error("search authentication failed", zap.Error(err))
		writeError(w, http.StatusBadGateway, "Search Service Error",
			"search authentication failed")
	case errors.Is(err, ErrTimeout):
		writeError(w, http.StatusGatewayTimeout, "Timeout Error",
			"the search request timed out")
	default:
		log.Error("search failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "ServerError", "search failed")
	}
}
