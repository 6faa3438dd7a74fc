package todos

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestMux(t *testing.T) (*http.ServeMux, *Store) {
	t.Helper()
	store := newTestStore(t)
	log := zap.NewNop()

	mux := http.NewServeMux()
	mux.Handle("GET /api/todos", ListHandler(store, log))
	mux.Handle("POST /api/todos", CreateHandler(store, log))
	mux.Handle("GET /api/todos/{id}", GetHandler(store, log))
	mux.Handle("PUT /api/todos/{id}", UpdateHandler(store, log))
	mux.Handle("DELETE /api/todos/{id}", DeleteHandler(store, log))
	mux.Handle("PATCH /api/todos/{id}/complete", ToggleHandler(store, log))
	return mux, store
}

func serve(mux *http.ServeMux, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestCreateTodoEndpoint(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := serve(mux, http.MethodPost, "/api/todos", `{"title":"buy milk","category":"shopping"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var got Todo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, "shopping", got.Category)
}

func TestCreateTodoValidation(t *testing.T) {
	mux, _ := newTestMux(t)

	tests := []struct {
		name string
		body string
	}{
		{"missing title", `{"description":"no title"}`},
		{"empty title", `{"title":""}`},
		{"title too long", `{"title":"` + strings.Repeat("x", 201) + `"}`},
		{"bad category", `{"title":"ok","category":"finance"}`},
		{"bad priority", `{"title":"ok","priority":"extreme"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(mux, http.MethodPost, "/api/todos", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var body struct {
				Error   string   `json:"error"`
				Details []string `json:"details"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "Validation Error", body.Error)
			assert.NotEmpty(t, body.Details)
		})
	}
}

func TestGetTodoEndpoint(t *testing.T) {
	mux, store := newTestMux(t)
	created, err := store.Create(Input{Title: strPtr("find me")})
	require.NoError(t, err)

	rec := serve(mux, http.MethodGet, "/api/todos/"+created.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = serve(mux, http.MethodGet, "/api/todos/missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "todo not found")
}

func TestUpdateTodoEndpoint(t *testing.T) {
	mux, store := newTestMux(t)
	created, err := store.Create(Input{Title: strPtr("before")})
	require.NoError(t, err)

	rec := serve(mux, http.MethodPut, "/api/todos/"+created.ID, `{"title":"after"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var got Todo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "after", got.Title)

	rec = serve(mux, http.MethodPut, "/api/todos/missing", `{"title":"x"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteTodoEndpoint(t *testing.T) {
	mux, store := newTestMux(t)
	created, err := store.Create(Input{Title: strPtr("doomed")})
	require.NoError(t, err)

	rec := serve(mux, http.MethodDelete, "/api/todos/"+created.ID, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = serve(mux, http.MethodDelete, "/api/todos/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestToggleTodoEndpoint(t *testing.T) {
	mux, store := newTestMux(t)
	created, err := store.Create(Input{Title: strPtr("toggle me")})
	require.NoError(t, err)

	rec := serve(mux, http.MethodPatch, "/api/todos/"+created.ID+"/complete", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got Todo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.True(t, got.Completed)
	assert.NotNil(t, got.CompletedAt)
}

func TestListTodosEndpointFilters(t *testing.T) {
	mux, store := newTestMux(t)
	_, err := store.Create(Input{Title: strPtr("work"), Category: strPtr("work")})
	require.NoError(t, err)
	_, err = store.Create(Input{Title: strPtr("home"), Category: strPtr("personal")})
	require.NoError(t, err)

	rec := serve(mux, http.MethodGet, "/api/todos?category=work", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var items []Todo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "work", items[0].Title)
}
