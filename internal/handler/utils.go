package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"tuitionhub/internal/errdefs"
	"tuitionhub/pkg/logging"
)

type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration)
	Delete(ctx context.Context, key string)
}

const cacheTTL = 5 * time.Minute

func mapErr(err error) int {
	switch {
	case errors.Is(err, errdefs.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, errdefs.ErrAuthentication):
		return http.StatusUnauthorized
	case errors.Is(err, errdefs.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, errdefs.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, errdefs.ErrAlreadyExists), errors.Is(err, errdefs.ErrConflict):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// writeServiceError translates a domain error into a response. Domain
// errors carry their own human-readable reason; anything unexpected is
// logged server-side and surfaces as a generic 500 body.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	statusCode := mapErr(err)
	if statusCode == http.StatusInternalServerError {
		if logger, ok := logging.GetFromContext(r.Context()); ok {
			logger.Error(r.Context(), "request failed",
				zap.String("path", r.URL.Path),
				zap.String("method", r.Method),
				zap.Error(err),
			)
		}
		writeErrorJSON(w, statusCode, http.StatusText(statusCode))
		return
	}
	writeErrorJSON(w, statusCode, err.Error())
}

func writeErrorJSON(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	resp, _ := json.Marshal(map[string]string{"error": message})
	w.Write(resp)
}

func writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		writeErrorJSON(w, http.StatusInternalServerError, "failed to serialize response")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(data)
}

// writeCachedJSON writes the payload and stores the serialized bytes so the
// next read within the TTL is served straight from the cache.
func writeCachedJSON(w http.ResponseWriter, r *http.Request, cache Cache, key string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		writeErrorJSON(w, http.StatusInternalServerError, "failed to serialize response")
		return
	}
	cache.Set(r.Context(), key, data, cacheTTL)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("invalid request body: %w", errdefs.ErrValidation)
	}
	return nil
}

func parsePathParam(r *http.Request, key string) (string, error) {
	val := chi.URLParam(r, key)
	if val == "" {
		return "", fmt.Errorf("missing path param %s: %w", key, errdefs.ErrValidation)
	}
	return val, nil
}

func parseUUIDParam(r *http.Request, key string) (uuid.UUID, error) {
	val, err := parsePathParam(r, key)
	if err != nil {
		return uuid.Nil, err
	}
	id, err := uuid.Parse(val)
	if err != nil {
		return uuid.Nil, fmt.Errorf("path param %s is not a valid id: %w", key, errdefs.ErrValidation)
	}
	return id, nil
}
