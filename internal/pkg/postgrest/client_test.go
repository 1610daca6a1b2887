package postgrest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRow struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestSelectBuildsFilters(t *testing.T) {
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		_ = json.NewEncoder(w).Encode([]testRow{{ID: "1", Name: "a"}})
	}))
	defer srv.Close()

	var rows []testRow
	err := NewClient(srv.URL, "").From("task_logs").
		Eq("periode", "Jan-2025").
		Eq("status", "Approved").
		Order("tanggal", true).
		Select(context.Background(), &rows)
	require.NoError(t, err)

	assert.Equal(t, "/task_logs", gotPath)
	assert.Contains(t, gotQuery, "periode=eq.Jan-2025")
	assert.Contains(t, gotQuery, "status=eq.Approved")
	assert.Contains(t, gotQuery, "order=tanggal.asc")
	require.Len(t, rows, 1)
	assert.Equal(t, "a", rows[0].Name)
}

func TestInsertSendsRepresentationPrefer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "return=representation", r.Header.Get("Prefer"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var body []testRow
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(body)
	}))
	defer srv.Close()

	var created []testRow
	err := NewClient(srv.URL, "key").From("clients").
		Insert(context.Background(), []testRow{{ID: "1", Name: "b"}}, &created)
	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.Equal(t, "b", created[0].Name)
}

func TestAPIKeyHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "secret", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte("[]"))
	}))
	defer srv.Close()

	var rows []testRow
	err := NewClient(srv.URL, "secret").From("users").Select(context.Background(), &rows)
	require.NoError(t, err)
}

func TestErrorResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"permission denied"}`, http.StatusForbidden)
	}))
	defer srv.Close()

	var rows []testRow
	err := NewClient(srv.URL, "").From("users").Select(context.Background(), &rows)
	require.Error(t, err)

	var restErr *Error
	require.ErrorAs(t, err, &restErr)
	assert.Equal(t, http.StatusForbidden, restErr.StatusCode)
	assert.Equal(t, "users", restErr.Table)
	assert.Contains(t, restErr.Detail, "permission denied")
}

func TestDeleteReturnsRows(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Contains(t, r.URL.RawQuery, "id=eq.42")
		_ = json.NewEncoder(w).Encode([]testRow{{ID: "42"}})
	}))
	defer srv.Close()

	var deleted []testRow
	err := NewClient(srv.URL, "").From("fix_cost").Eq("id", "42").Delete(context.Background(), &deleted)
	require.NoError(t, err)
	require.Len(t, deleted, 1)
}
