package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"tuitionhub/internal/middleware"
	"tuitionhub/internal/model"
	"tuitionhub/internal/service"
	"tuitionhub/pkg/ctxdata"
)

type ProfileHandler struct {
	svc   *service.ProfileService
	cache Cache
}

func NewProfileHandler(svc *service.ProfileService, cache Cache) *ProfileHandler {
	return &ProfileHandler{svc: svc, cache: cache}
}

func (h *ProfileHandler) RegisterStudentRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.With(authMiddleware, middleware.RequireRole(model.RoleStudent)).Post("/profile", h.UpsertStudentProfile)
	r.With(authMiddleware, middleware.RequireRole(model.RoleStudent)).Get("/profile", h.GetStudentProfile)
	r.With(authMiddleware, middleware.RequireRole(model.RoleTeacher)).Get("/profile/{studentId}", h.GetStudentProfileByID)
}

func (h *ProfileHandler) RegisterTeacherRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.With(authMiddleware, middleware.RequireRole(model.RoleTeacher)).Post("/profile", h.UpsertTeacherProfile)
	r.With(authMiddleware, middleware.RequireRole(model.RoleTeacher)).Get("/profile", h.GetTeacherProfile)
}

type studentProfileRequest struct {
	FullName     string  `json:"full_name"`
	Phone        *string `json:"phone"`
	Institution  *string `json:"institution"`
	ClassLevel   *string `json:"class_level"`
	Medium       *string `json:"medium"`
	Location     *string `json:"location"`
	GuardianName *string `json:"guardian_name"`
}

type studentProfileView struct {
	Id           uuid.UUID `json:"id"`
	UserId       uuid.UUID `json:"user_id"`
	FullName     string    `json:"full_name"`
	Phone        *string   `json:"phone"`
	Institution  *string   `json:"institution"`
	ClassLevel   *string   `json:"class_level"`
	Medium       *string   `json:"medium"`
	Location     *string   `json:"location"`
	GuardianName *string   `json:"guardian_name"`
	CreatedAt    time.Time `json:"created_at"`
	EditedAt     time.Time `json:"edited_at"`
}

func toStudentProfileView(p *model.StudentProfile) studentProfileView {
	return studentProfileView{
		Id:           p.Id,
		UserId:       p.UserId,
		FullName:     p.FullName,
		Phone:        p.Phone,
		Institution:  p.Institution,
		ClassLevel:   p.ClassLevel,
		Medium:       p.Medium,
		Location:     p.Location,
		GuardianName: p.GuardianName,
		CreatedAt:    p.CreatedAt,
		EditedAt:     p.EditedAt,
	}
}

type teacherProfileRequest struct {
	FullName          string  `json:"full_name"`
	Phone             *string `json:"phone"`
	Qualification     *string `json:"qualification"`
	Institution       *string `json:"institution"`
	ExperienceYears   *int32  `json:"experience_years"`
	PreferredClasses  *string `json:"preferred_classes"`
	PreferredSubjects *string `json:"preferred_subjects"`
	Location          *string `json:"location"`
	Bio               *string `json:"bio"`
}

type teacherProfileView struct {
	Id                uuid.UUID `json:"id"`
	UserId            uuid.UUID `json:"user_id"`
	FullName          string    `json:"full_name"`
	Phone             *string   `json:"phone"`
	Qualification     *string   `json:"qualification"`
	Institution       *string   `json:"institution"`
	ExperienceYears   *int32    `json:"experience_years"`
	PreferredClasses  *string   `json:"preferred_classes"`
	PreferredSubjects *string   `json:"preferred_subjects"`
	Location          *string   `json:"location"`
	Bio               *string   `json:"bio"`
	IsVerified        bool      `json:"is_verified"`
	CreatedAt         time.Time `json:"created_at"`
	EditedAt          time.Time `json:"edited_at"`
}

func toTeacherProfileView(p *model.TeacherProfile) teacherProfileView {
	return teacherProfileView{
		Id:                p.Id,
		UserId:            p.UserId,
		FullName:          p.FullName,
		Phone:             p.Phone,
		Qualification:     p.Qualification,
		Institution:       p.Institution,
		ExperienceYears:   p.ExperienceYears,
		PreferredClasses:  p.PreferredClasses,
		PreferredSubjects: p.PreferredSubjects,
		Location:          p.Location,
		Bio:               p.Bio,
		IsVerified:        p.IsVerified,
		CreatedAt:         p.CreatedAt,
		EditedAt:          p.EditedAt,
	}
}

func studentProfileCacheKey(userID string) string {
	return "profile:student:" + userID
}

func teacherProfileCacheKey(userID string) string {
	return "profile:teacher:" + userID
}

func (h *ProfileHandler) UpsertStudentProfile(w http.ResponseWriter, r *http.Request) {
	var req studentProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	profile, err := h.svc.UpsertStudentProfile(r.Context(), &model.UpsertStudentProfileInput{
		FullName:     req.FullName,
		Phone:        req.Phone,
		Institution:  req.Institution,
		ClassLevel:   req.ClassLevel,
		Medium:       req.Medium,
		Location:     req.Location,
		GuardianName: req.GuardianName,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if userID, ok := ctxdata.GetUserID(r.Context()); ok {
		h.cache.Delete(r.Context(), studentProfileCacheKey(userID))
	}

	writeJSON(w, http.StatusOK, toStudentProfileView(profile))
}

func (h *ProfileHandler) GetStudentProfile(w http.ResponseWriter, r *http.Request) {
	userID, _ := ctxdata.GetUserID(r.Context())
	key := studentProfileCacheKey(userID)
	if data, ok := h.cache.Get(r.Context(), key); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(data)
		return
	}

	profile, err := h.svc.GetStudentProfile(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeCachedJSON(w, r, h.cache, key, toStudentProfileView(profile))
}

type studentProfileWithEmail struct {
	Profile studentProfileView `json:"profile"`
	Email   string             `json:"email"`
}

func (h *ProfileHandler) GetStudentProfileByID(w http.ResponseWriter, r *http.Request) {
	studentID, err := parseUUIDParam(r, "studentId")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	view, err := h.svc.GetStudentProfileByID(r.Context(), studentID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, studentProfileWithEmail{
		Profile: toStudentProfileView(view.Profile),
		Email:   view.Email,
	})
}

func (h *ProfileHandler) UpsertTeacherProfile(w http.ResponseWriter, r *http.Request) {
	var req teacherProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	profile, err := h.svc.UpsertTeacherProfile(r.Context(), &model.UpsertTeacherProfileInput{
		FullName:          req.FullName,
		Phone:             req.Phone,
		Qualification:     req.Qualification,
		Institution:       req.Institution,
		ExperienceYears:   req.ExperienceYears,
		PreferredClasses:  req.PreferredClasses,
		PreferredSubjects: req.PreferredSubjects,
		Location:          req.Location,
		Bio:               req.Bio,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if userID, ok := ctxdata.GetUserID(r.Context()); ok {
		h.cache.Delete(r.Context(), teacherProfileCacheKey(userID))
	}

	writeJSON(w, http.StatusOK, toTeacherProfileView(profile))
}

func (h *ProfileHandler) GetTeacherProfile(w http.ResponseWriter, r *http.Request) {
	userID, _ := ctxdata.GetUserID(r.Context())
	key := teacherProfileCacheKey(userID)
	if data, ok := h.cache.Get(r.Context(), key); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(data)
		return
	}

	profile, err := h.svc.GetTeacherProfile(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeCachedJSON(w, r, h.cache, key, toTeacherProfileView(profile))
}
