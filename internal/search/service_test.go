package search

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(t *testing.T, handler http.HandlerFunc) *Service {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	svc := NewService("key", "engine", time.Second, zap.NewNop())
	svc.baseURL = srv.URL
	return svc
}

func TestSearch(t *testing.T) {
	var gotQuery url.Values
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_ = json.NewEncoder(w).Encode(map[string]any{
			"items": []map[string]any{
				{"title": "Result", "link": "https://example.com", "snippet": "text", "displayLink": "example.com"},
			},
			"searchInformation": map[string]any{"totalResults": "123", "searchTime": 0.42},
		})
	})

	resp, err := svc.Search(context.Background(), "faucet repair", 0)
	require.NoError(t, err)

	assert.Equal(t, "faucet repair", resp.Query)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "Result", resp.Results[0].Title)
	assert.Equal(t, "123", resp.TotalResults)
	assert.Equal(t, 0.42, resp.SearchTime)

	assert.Equal(t, "key", gotQuery.Get("key"))
	assert.Equal(t, "engine", gotQuery.Get("cx"))
	assert.Equal(t, "faucet repair", gotQuery.Get("q"))
	assert.Equal(t, "5", gotQuery.Get("num"), "numResults defaults to 5")
	assert.Equal(t, "active", gotQuery.Get("safe"))
}

func TestSearchCapsNumResults(t *testing.T) {
	var num string
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		num = r.URL.Query().Get("num")
		_ = json.NewEncoder(w).Encode(map[string]any{})
	})

	_, err := svc.Search(context.Background(), "q", 50)
	require.NoError(t, err)
	assert.Equal(t, "10", num)
}

func TestSearchNotConfigured(t *testing.T) {
	svc := NewService("", "", time.Second, zap.NewNop())
	_, err := svc.Search(context.Background(), "q", 5)
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestSearchRateLimited(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})
	_, err := svc.Search(context.Background(), "q", 5)
	assert.ErrorIs(t, err, ErrRateLimited)
}

func TestSearchAuthFailed(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})
	_, err := svc.Search(context.Background(), "q", 5)
	assert.ErrorIs(t, err, ErrAuthFailed)
}

func TestSearchTimeout(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	})
	svc.client.Timeout = 50 * time.Millisecond

	_, err := svc.Search(context.Background(), "q", 5)
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestSearchUnexpectedStatus(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	_, err := svc.Search(context.Background(), "q", 5)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrRateLimited)
	assert.NotErrorIs(t, err, ErrAuthFailed)
}

func TestSearchNoItems(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"searchInformation": map[string]any{"totalResults": "0", "searchTime": 0.1},
		})
	})

	resp, err := svc.Search(context.Background(), "obscure query", 5)
	require.NoError(t, err)
	assert.Empty(t, resp.Results)
	assert.Equal(t, "0", resp.TotalResults)
}
