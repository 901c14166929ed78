package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tuitionhub/internal/errdefs"
)

// ── helpers ─────────────────────────────────────────────────────────

func withChiParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

type mockCache struct {
	store map[string][]byte
}

func newMockCache() *mockCache {
	return &mockCache{store: make(map[string][]byte)}
}

func (m *mockCache) Get(_ context.Context, key string) ([]byte, bool) {
	v, ok := m.store[key]
	return v, ok
}

func (m *mockCache) Set(_ context.Context, key string, data []byte, _ time.Duration) {
	m.store[key] = data
}

func (m *mockCache) Delete(_ context.Context, key string) {
	delete(m.store, key)
}

// ── mapErr ──────────────────────────────────────────────────────────

func TestMapErr(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"Validation", errdefs.ErrValidation, http.StatusBadRequest},
		{"Authentication", errdefs.ErrAuthentication, http.StatusUnauthorized},
		{"PermissionDenied", errdefs.ErrPermissionDenied, http.StatusForbidden},
		{"NotFound", errdefs.ErrNotFound, http.StatusNotFound},
		{"AlreadyExists", errdefs.ErrAlreadyExists, http.StatusConflict},
		{"Conflict", errdefs.ErrConflict, http.StatusConflict},
		{"WrappedValidation", errors.Join(errors.New("field missing"), errdefs.ErrValidation), http.StatusBadRequest},
		{"UnknownError", errors.New("unknown"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, mapErr(tc.err))
		})
	}
}

// ── writeErrorJSON ──────────────────────────────────────────────────

func TestWriteErrorJSON(t *testing.T) {
	w := httptest.NewRecorder()
	writeErrorJSON(w, http.StatusBadRequest, "test error")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &body)
	require.NoError(t, err)
	assert.Equal(t, "test error", body["error"])
}

// ── writeServiceError ───────────────────────────────────────────────

func TestWriteServiceError(t *testing.T) {
	t.Run("DomainErrorKeepsMessage", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/posts", nil)

		writeServiceError(w, r, errors.Join(errors.New("post belongs to another student"), errdefs.ErrPermissionDenied))

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "post belongs to another student")
	})

	t.Run("UnexpectedErrorHidesDetails", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/posts", nil)

		writeServiceError(w, r, errors.New("pq: connection refused"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "connection refused")
	})
}

// ── writeCachedJSON ─────────────────────────────────────────────────

func TestWriteCachedJSON(t *testing.T) {
	cache := newMockCache()
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/teacher/profile", nil)

	writeCachedJSON(w, r, cache, "profile:teacher:abc", map[string]string{"full_name": "Ms. Akter"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Ms. Akter")

	data, ok := cache.Get(context.Background(), "profile:teacher:abc")
	require.True(t, ok)
	assert.JSONEq(t, w.Body.String(), string(data))
}

// ── parseUUIDParam ──────────────────────────────────────────────────

func TestParseUUIDParam(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		id := uuid.New()
		r := httptest.NewRequest(http.MethodGet, "/posts/"+id.String(), nil)
		r = withChiParam(r, "postId", id.String())

		parsed, err := parseUUIDParam(r, "postId")
		require.NoError(t, err)
		assert.Equal(t, id, parsed)
	})

	t.Run("Missing", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/posts/", nil)

		_, err := parseUUIDParam(r, "postId")
		assert.ErrorIs(t, err, errdefs.ErrValidation)
	})

	t.Run("NotAUUID", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/posts/abc", nil)
		r = withChiParam(r, "postId", "abc")

		_, err := parseUUIDParam(r, "postId")
		assert.ErrorIs(t, err, errdefs.ErrValidation)
	})
}
