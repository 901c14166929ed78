package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"tuitionhub/internal/service"
	"tuitionhub/pkg/ctxdata"
)

type AvatarHandler struct {
	svc   *service.AvatarService
	cache Cache
}

func NewAvatarHandler(svc *service.AvatarService, cache Cache) *AvatarHandler {
	return &AvatarHandler{svc: svc, cache: cache}
}

// RegisterRoutes mounts the avatar routes. Reading an avatar is public so
// listings can render pictures without a token; updating requires auth.
func (h *AvatarHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.With(authMiddleware).Put("/update", h.UpdateAvatar)
	r.Get("/{userId}", h.GetAvatar)
}

type updateAvatarRequest struct {
	ProfilePicture string `json:"profile_picture"`
}

type avatarResponse struct {
	ProfilePicture *string `json:"profile_picture"`
}

func avatarCacheKey(userID string) string {
	return "avatar:" + userID
}

func (h *AvatarHandler) UpdateAvatar(w http.ResponseWriter, r *http.Request) {
	var req updateAvatarRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	locator, err := h.svc.UpdateAvatar(r.Context(), req.ProfilePicture)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if userID, ok := ctxdata.GetUserID(r.Context()); ok {
		h.cache.Delete(r.Context(), avatarCacheKey(userID))
	}

	writeJSON(w, http.StatusOK, avatarResponse{ProfilePicture: &locator})
}

func (h *AvatarHandler) GetAvatar(w http.ResponseWriter, r *http.Request) {
	userID, err := parseUUIDParam(r, "userId")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	key := avatarCacheKey(userID.String())
	if data, ok := h.cache.Get(r.Context(), key); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(data)
		return
	}

	locator, err := h.svc.GetAvatar(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeCachedJSON(w, r, h.cache, key, avatarResponse{ProfilePicture: locator})
}
