package search

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// staticGen returns a fixed optimized query.
type staticGen struct {
	query string
}

func (g staticGen) GenerateSearchQuery(ctx context.Context, title, description string) string {
	return g.query
}

func postTaskContext(h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/search/task-context", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestTaskContextHandler(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "faucet repair guide", r.URL.Query().Get("q"))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"items": []map[string]any{
				{"title": "Guide", "link": "https://example.com", "snippet": "how to", "displayLink": "example.com"},
			},
			"searchInformation": map[string]any{"totalResults": "1", "searchTime": 0.2},
		})
	})
	h := TaskContextHandler(staticGen{query: "faucet repair guide"}, svc, zap.NewNop())

	rec := postTaskContext(h, `{"title":"fix leaking faucet","description":"kitchen"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var got struct {
		OriginalTitle  string   `json:"originalTitle"`
		OptimizedQuery string   `json:"optimizedQuery"`
		Query          string   `json:"query"`
		Results        []Result `json:"results"`
		TotalResults   string   `json:"totalResults"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "fix leaking faucet", got.OriginalTitle)
	assert.Equal(t, "faucet repair guide", got.OptimizedQuery)
	assert.Equal(t, "faucet repair guide", got.Query)
	require.Len(t, got.Results, 1)
	assert.Equal(t, "1", got.TotalResults)
}

func TestTaskContextHandlerEmptyTitle(t *testing.T) {
	h := TaskContextHandler(staticGen{}, NewService("k", "e", time.Second, zap.NewNop()), zap.NewNop())

	rec := postTaskContext(h, `{"title":"  "}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Validation Error")
}

func TestTaskContextHandlerErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		service    func(t *testing.T) *Service
		wantStatus int
		wantError  string
	}{
		{
			name: "not configured",
			service: func(t *testing.T) *Service {
				return NewService("", "", time.Second, zap.NewNop())
			},
			wantStatus: http.StatusInternalServerError,
			wantError:  "Configuration Error",
		},
		{
			name: "rate limited",
			service: func(t *testing.T) *Service {
				return newTestService(t, func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusTooManyRequests)
				})
			},
			wantStatus: http.StatusTooManyRequests,
			wantError:  "Rate Limit Error",
		},
		{
			name: "auth failed",
			service: func(t *testing.T) *Service {
				return newTestService(t, func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusForbidden)
				})
			},
			wantStatus: http.StatusBadGateway,
			wantError:  "Search Service Error",
		},
		{
			name: "timeout",
			service: func(t *testing.T) *Service {
				svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
					time.Sleep(200 * time.Millisecond)
				})
				svc.client.Timeout = 50 * time.Millisecond
				return svc
			},
			wantStatus: http.StatusGatewayTimeout,
			wantError:  "Timeout Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := TaskContextHandler(staticGen{query: "q"}, tt.service(t), zap.NewNop())
			rec := postTaskContext(h, `{"title":"fix faucet"}`)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantError)
		})
	}
}
