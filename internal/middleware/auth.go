package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tuitionhub/internal/model"
	"tuitionhub/pkg/ctxdata"
	"tuitionhub/pkg/logging"
)

type TokenVerifier interface {
	Verify(token string) (uuid.UUID, model.Role, error)
}

// NewAuthMiddleware verifies the bearer token and stores the caller's
// identity in the request context. Domain services re-check fine-grained
// ownership themselves; this layer only establishes who is calling.
func NewAuthMiddleware(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			header := r.Header.Get("Authorization")
			if header == "" {
				if logger, ok := logging.GetFromContext(ctx); ok {
					logger.Info(ctx, "no authorization header", zap.String("path", r.URL.Path))
				}
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer"))
			userID, role, err := verifier.Verify(token)
			if err != nil {
				if logger, ok := logging.GetFromContext(ctx); ok {
					logger.Info(ctx, "invalid token", zap.String("path", r.URL.Path), zap.Error(err))
				}
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			ctx = ctxdata.WithUserID(ctx, userID.String())
			ctx = ctxdata.WithUserRole(ctx, role.String())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole gates a route on the caller's coarse role; it runs after
// the auth middleware has populated the context.
func RequireRole(role model.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			current, ok := ctxdata.GetUserRole(r.Context())
			if !ok || model.Role(current) != role {
				w.WriteHeader(http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
