package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"tuitionhub/internal/errdefs"
	"tuitionhub/internal/model"
	"tuitionhub/internal/service"
	"tuitionhub/internal/service/mocks"
)

func setupProfile(t *testing.T) (
	*service.ProfileService,
	*mocks.MockProfileRepository,
	*mocks.MockUserRepository,
) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockProfileRepo := mocks.NewMockProfileRepository(ctrl)
	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	svc := service.NewProfileService(mockProfileRepo, mockUserRepo)

	return svc, mockProfileRepo, mockUserRepo
}

// ── UpsertStudentProfile ────────────────────────────────────────────

func TestUpsertStudentProfile(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc, mockProfileRepo, _ := setupProfile(t)
		studentID := uuid.New()
		ctx := userCtx(studentID, model.RoleStudent)

		mockProfileRepo.EXPECT().UpsertStudentProfile(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, input *model.RepositoryUpsertStudentProfileInput) (*model.StudentProfile, error) {
				assert.Equal(t, studentID, input.UserId)
				assert.Equal(t, "Rahim Uddin", input.FullName)
				return &model.StudentProfile{
					Id:       input.Id,
					UserId:   input.UserId,
					FullName: input.FullName,
				}, nil
			})

		profile, err := svc.UpsertStudentProfile(ctx, &model.UpsertStudentProfileInput{
			FullName: "Rahim Uddin",
		})
		require.NoError(t, err)
		assert.Equal(t, "Rahim Uddin", profile.FullName)
	})

	t.Run("FullNameRequired", func(t *testing.T) {
		svc, _, _ := setupProfile(t)
		ctx := userCtx(uuid.New(), model.RoleStudent)

		_, err := svc.UpsertStudentProfile(ctx, &model.UpsertStudentProfileInput{})
		assert.ErrorIs(t, err, errdefs.ErrValidation)
	})

	t.Run("TeacherDenied", func(t *testing.T) {
		svc, _, _ := setupProfile(t)
		ctx := userCtx(uuid.New(), model.RoleTeacher)

		_, err := svc.UpsertStudentProfile(ctx, &model.UpsertStudentProfileInput{FullName: "X"})
		assert.ErrorIs(t, err, errdefs.ErrPermissionDenied)
	})
}

// ── GetStudentProfile ───────────────────────────────────────────────

func TestGetStudentProfile(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc, mockProfileRepo, _ := setupProfile(t)
		studentID := uuid.New()
		ctx := userCtx(studentID, model.RoleStudent)

		mockProfileRepo.EXPECT().GetStudentProfile(gomock.Any(), studentID).Return(&model.StudentProfile{
			UserId:   studentID,
			FullName: "Rahim Uddin",
		}, nil)

		profile, err := svc.GetStudentProfile(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Rahim Uddin", profile.FullName)
	})

	t.Run("NotFound", func(t *testing.T) {
		svc, mockProfileRepo, _ := setupProfile(t)
		studentID := uuid.New()
		ctx := userCtx(studentID, model.RoleStudent)

		mockProfileRepo.EXPECT().GetStudentProfile(gomock.Any(), studentID).Return(nil, errdefs.ErrNotFound)

		_, err := svc.GetStudentProfile(ctx)
		assert.ErrorIs(t, err, errdefs.ErrNotFound)
	})
}

// ── GetStudentProfileByID ───────────────────────────────────────────

func TestGetStudentProfileByID(t *testing.T) {
	t.Run("TeacherSeesProfileWithEmail", func(t *testing.T) {
		svc, mockProfileRepo, mockUserRepo := setupProfile(t)
		studentID := uuid.New()
		ctx := userCtx(uuid.New(), model.RoleTeacher)

		mockProfileRepo.EXPECT().GetStudentProfile(gomock.Any(), studentID).Return(&model.StudentProfile{
			UserId:   studentID,
			FullName: "Karim",
		}, nil)
		mockUserRepo.EXPECT().GetUser(gomock.Any(), studentID).Return(&model.User{
			Id:    studentID,
			Email: "karim@example.com",
		}, nil)

		view, err := svc.GetStudentProfileByID(ctx, studentID)
		require.NoError(t, err)
		assert.Equal(t, "Karim", view.Profile.FullName)
		assert.Equal(t, "karim@example.com", view.Email)
	})

	t.Run("StudentDenied", func(t *testing.T) {
		svc, _, _ := setupProfile(t)
		ctx := userCtx(uuid.New(), model.RoleStudent)

		_, err := svc.GetStudentProfileByID(ctx, uuid.New())
		assert.ErrorIs(t, err, errdefs.ErrPermissionDenied)
	})
}

// ── UpsertTeacherProfile ────────────────────────────────────────────

func TestUpsertTeacherProfile(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc, mockProfileRepo, _ := setupProfile(t)
		teacherID := uuid.New()
		ctx := userCtx(teacherID, model.RoleTeacher)
		years := int32(5)

		mockProfileRepo.EXPECT().UpsertTeacherProfile(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, input *model.RepositoryUpsertTeacherProfileInput) (*model.TeacherProfile, error) {
				assert.Equal(t, teacherID, input.UserId)
				assert.Equal(t, &years, input.ExperienceYears)
				return &model.TeacherProfile{
					UserId:          input.UserId,
					FullName:        input.FullName,
					ExperienceYears: input.ExperienceYears,
				}, nil
			})

		profile, err := svc.UpsertTeacherProfile(ctx, &model.UpsertTeacherProfileInput{
			FullName:        "Ms. Akter",
			ExperienceYears: &years,
		})
		require.NoError(t, err)
		assert.Equal(t, "Ms. Akter", profile.FullName)
	})

	t.Run("StudentDenied", func(t *testing.T) {
		svc, _, _ := setupProfile(t)
		ctx := userCtx(uuid.New(), model.RoleStudent)

		_, err := svc.UpsertTeacherProfile(ctx, &model.UpsertTeacherProfileInput{FullName: "X"})
		assert.ErrorIs(t, err, errdefs.ErrPermissionDenied)
	})
}
