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

type PostHandler struct {
	svc *service.PostService
}

func NewPostHandler(svc *service.PostService) *PostHandler {
	return &PostHandler{svc: svc}
}

func (h *PostHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.With(authMiddleware, middleware.RequireRole(model.RoleStudent)).Post("/", h.CreatePost)
	r.With(authMiddleware).Get("/", h.ListPosts)
	r.With(authMiddleware, middleware.RequireRole(model.RoleStudent)).Put("/{postId}", h.UpdatePost)
	r.With(authMiddleware, middleware.RequireRole(model.RoleStudent)).Patch("/{postId}/status", h.UpdatePostStatus)
	r.With(authMiddleware, middleware.RequireRole(model.RoleStudent)).Delete("/{postId}", h.DeletePost)
}

type postRequest struct {
	Subject     string `json:"subject"`
	ClassLevel  string `json:"class_level"`
	DaysPerWeek int32  `json:"days_per_week"`
	Salary      int32  `json:"salary"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

type postStatusRequest struct {
	Status string `json:"status"`
}

type postView struct {
	Id          uuid.UUID `json:"id"`
	StudentId   uuid.UUID `json:"student_id"`
	Subject     string    `json:"subject"`
	ClassLevel  string    `json:"class_level"`
	DaysPerWeek int32     `json:"days_per_week"`
	Salary      int32     `json:"salary"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type postListingView struct {
	postView
	StudentName   *string `json:"student_name"`
	StudentEmail  *string `json:"student_email"`
	ResponseCount int64   `json:"response_count"`
}

func toPostView(p *model.TuitionPost) postView {
	return postView{
		Id:          p.Id,
		StudentId:   p.StudentId,
		Subject:     p.Subject,
		ClassLevel:  p.ClassLevel,
		DaysPerWeek: p.DaysPerWeek,
		Salary:      p.Salary,
		Location:    p.Location,
		Description: p.Description,
		Status:      p.Status.String(),
		CreatedAt:   p.CreatedAt,
	}
}

func toPostListingViews(listings []*model.PostListing) []postListingView {
	views := make([]postListingView, 0, len(listings))
	for _, l := range listings {
		views = append(views, postListingView{
			postView:      toPostView(&l.TuitionPost),
			StudentName:   l.StudentName,
			StudentEmail:  l.StudentEmail,
			ResponseCount: l.ResponseCount,
		})
	}
	return views
}

func (r *postRequest) toInput() *model.CreatePostInput {
	return &model.CreatePostInput{
		Subject:     r.Subject,
		ClassLevel:  r.ClassLevel,
		DaysPerWeek: r.DaysPerWeek,
		Salary:      r.Salary,
		Location:    r.Location,
		Description: r.Description,
	}
}

func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req postRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	post, err := h.svc.CreatePost(r.Context(), req.toInput())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toPostView(post))
}

func (h *PostHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	listings, err := h.svc.ListPosts(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPostListingViews(listings))
}

func (h *PostHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	postID, err := parseUUIDParam(r, "postId")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	var req postRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	post, err := h.svc.UpdatePost(r.Context(), postID, req.toInput())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toPostView(post))
}

func (h *PostHandler) UpdatePostStatus(w http.ResponseWriter, r *http.Request) {
	postID, err := parseUUIDParam(r, "postId")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	var req postStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	post, err := h.svc.UpdatePostStatus(r.Context(), postID, model.PostStatus(req.Status))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toPostView(post))
}

func (h *PostHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	postID, err := parseUUIDParam(r, "postId")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if err := h.svc.DeletePost(r.Context(), postID); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
