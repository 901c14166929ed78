package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"tuitionhub/internal/errdefs"
	"tuitionhub/internal/model"
)

type ProfileRepository interface {
	UpsertStudentProfile(ctx context.Context, input *model.RepositoryUpsertStudentProfileInput) (*model.StudentProfile, error)
	GetStudentProfile(ctx context.Context, userID uuid.UUID) (*model.StudentProfile, error)
	UpsertTeacherProfile(ctx context.Context, input *model.RepositoryUpsertTeacherProfileInput) (*model.TeacherProfile, error)
	GetTeacherProfile(ctx context.Context, userID uuid.UUID) (*model.TeacherProfile, error)
}

type ProfileService struct {
	profileRepository ProfileRepository
	userRepository    UserRepository
}

func NewProfileService(profileRepository ProfileRepository, userRepository UserRepository) *ProfileService {
	return &ProfileService{
		profileRepository: profileRepository,
		userRepository:    userRepository,
	}
}

func (s *ProfileService) UpsertStudentProfile(ctx context.Context, input *model.UpsertStudentProfileInput) (*model.StudentProfile, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}
	if err := ensureCurrentUserRole(ctx, model.RoleStudent); err != nil {
		return nil, err
	}
	if input.FullName == "" {
		return nil, fmt.Errorf("full_name is required: %w", errdefs.ErrValidation)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}

	return s.profileRepository.UpsertStudentProfile(ctx, &model.RepositoryUpsertStudentProfileInput{
		Id:           id,
		UserId:       userID,
		FullName:     input.FullName,
		Phone:        input.Phone,
		Institution:  input.Institution,
		ClassLevel:   input.ClassLevel,
		Medium:       input.Medium,
		Location:     input.Location,
		GuardianName: input.GuardianName,
	})
}

func (s *ProfileService) GetStudentProfile(ctx context.Context) (*model.StudentProfile, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}
	return s.profileRepository.GetStudentProfile(ctx, userID)
}

// StudentProfileView is the teacher-facing projection: the profile plus
// the student's contact email resolved at read time.
type StudentProfileView struct {
	Profile *model.StudentProfile
	Email   string
}

func (s *ProfileService) GetStudentProfileByID(ctx context.Context, studentID uuid.UUID) (*StudentProfileView, error) {
	if err := ensureCurrentUserRole(ctx, model.RoleTeacher); err != nil {
		return nil, err
	}

	profile, err := s.profileRepository.GetStudentProfile(ctx, studentID)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepository.GetUser(ctx, studentID)
	if err != nil {
		return nil, err
	}

	return &StudentProfileView{Profile: profile, Email: user.Email}, nil
}

func (s *ProfileService) UpsertTeacherProfile(ctx context.Context, input *model.UpsertTeacherProfileInput) (*model.TeacherProfile, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}
	if err := ensureCurrentUserRole(ctx, model.RoleTeacher); err != nil {
		return nil, err
	}
	if input.FullName == "" {
		return nil, fmt.Errorf("full_name is required: %w", errdefs.ErrValidation)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}

	return s.profileRepository.UpsertTeacherProfile(ctx, &model.RepositoryUpsertTeacherProfileInput{
		Id:                id,
		UserId:            userID,
		FullName:          input.FullName,
		Phone:             input.Phone,
		Qualification:     input.Qualification,
		Institution:       input.Institution,
		ExperienceYears:   input.ExperienceYears,
		PreferredClasses:  input.PreferredClasses,
		PreferredSubjects: input.PreferredSubjects,
		Location:          input.Location,
		Bio:               input.Bio,
	})
}

func (s *ProfileService) GetTeacherProfile(ctx context.Context) (*model.TeacherProfile, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}
	return s.profileRepository.GetTeacherProfile(ctx, userID)
}
