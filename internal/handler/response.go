package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"tuitionhub/internal/middleware"
	"tuitionhub/internal/model"
	"tuitionhub/internal/service"
)

type ResponseHandler struct {
	svc *service.ResponseService
}

func NewResponseHandler(svc *service.ResponseService) *ResponseHandler {
	return &ResponseHandler{svc: svc}
}

func (h *ResponseHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.With(authMiddleware, middleware.RequireRole(model.RoleTeacher)).Post("/{postId}/respond", h.RespondToPost)
	r.With(authMiddleware, middleware.RequireRole(model.RoleStudent)).Get("/{postId}/responses", h.ListResponses)
	r.With(authMiddleware, middleware.RequireRole(model.RoleTeacher)).Get("/{postId}/hasResponded", h.HasResponded)
	r.With(authMiddleware, middleware.RequireRole(model.RoleTeacher)).Get("/responded", h.ListRespondedPosts)
	r.With(authMiddleware, middleware.RequireRole(model.RoleStudent)).Patch("/responses/{responseId}/status", h.UpdateResponseStatus)
}

type respondRequest struct {
	ProposedSalary *int32 `json:"proposed_salary"`
	Message        string `json:"message"`
}

type responseStatusRequest struct {
	Status string `json:"status"`
}

type responseView struct {
	Id             uuid.UUID `json:"id"`
	PostId         uuid.UUID `json:"post_id"`
	TeacherId      uuid.UUID `json:"teacher_id"`
	ProposedSalary *int32    `json:"proposed_salary"`
	Message        string    `json:"message"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

type responseListingView struct {
	responseView
	TeacherName  *string `json:"teacher_name"`
	TeacherEmail string  `json:"teacher_email"`
	AvatarKey    *string `json:"avatar_key"`
}

func toResponseView(resp *model.Response) responseView {
	return responseView{
		Id:             resp.Id,
		PostId:         resp.PostId,
		TeacherId:      resp.TeacherId,
		ProposedSalary: resp.ProposedSalary,
		Message:        resp.Message,
		Status:         resp.Status.String(),
		CreatedAt:      resp.CreatedAt,
	}
}

func (h *ResponseHandler) RespondToPost(w http.ResponseWriter, r *http.Request) {
	postID, err := parseUUIDParam(r, "postId")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	var req respondRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	response, err := h.svc.RespondToPost(r.Context(), &model.RespondToPostInput{
		PostId:         postID,
		ProposedSalary: req.ProposedSalary,
		Message:        req.Message,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toResponseView(response))
}

func (h *ResponseHandler) ListResponses(w http.ResponseWriter, r *http.Request) {
	postID, err := parseUUIDParam(r, "postId")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	listings, err := h.svc.ListResponses(r.Context(), postID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	views := make([]responseListingView, 0, len(listings))
	for _, l := range listings {
		views = append(views, responseListingView{
			responseView: toResponseView(&l.Response),
			TeacherName:  l.TeacherName,
			TeacherEmail: l.TeacherEmail,
			AvatarKey:    l.AvatarKey,
		})
	}
	writeJSON(w, http.StatusOK, views)
}

func (h *ResponseHandler) HasResponded(w http.ResponseWriter, r *http.Request) {
	postID, err := parseUUIDParam(r, "postId")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	responded, err := h.svc.HasResponded(r.Context(), postID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"has_responded": responded})
}

func (h *ResponseHandler) ListRespondedPosts(w http.ResponseWriter, r *http.Request) {
	listings, err := h.svc.ListRespondedPosts(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPostListingViews(listings))
}

func (h *ResponseHandler) UpdateResponseStatus(w http.ResponseWriter, r *http.Request) {
	responseID, err := parseUUIDParam(r, "responseId")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	var req responseStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	response, err := h.svc.UpdateResponseStatus(r.Context(), responseID, model.ResponseStatus(req.Status))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toResponseView(response))
}
