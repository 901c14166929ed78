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

func setupPost(t *testing.T) (*service.PostService, *mocks.MockPostRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockPostRepo := mocks.NewMockPostRepository(ctrl)
	svc := service.NewPostService(mockPostRepo)

	return svc, mockPostRepo
}

func validPostInput() *model.CreatePostInput {
	return &model.CreatePostInput{
		Subject:     "Mathematics",
		ClassLevel:  "Class 10",
		DaysPerWeek: 3,
		Salary:      5000,
		Location:    "Dhanmondi",
		Description: "Need help with algebra",
	}
}

// ── CreatePost ──────────────────────────────────────────────────────

func TestCreatePost(t *testing.T) {
	t.Run("Success_OpensWithAllFields", func(t *testing.T) {
		svc, mockPostRepo := setupPost(t)
		studentID := uuid.New()
		ctx := userCtx(studentID, model.RoleStudent)

		mockPostRepo.EXPECT().CreatePost(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, input *model.RepositoryCreatePostInput) (*model.TuitionPost, error) {
				assert.Equal(t, studentID, input.StudentId)
				assert.Equal(t, "Mathematics", input.Subject)
				assert.Equal(t, "Class 10", input.ClassLevel)
				assert.Equal(t, int32(3), input.DaysPerWeek)
				assert.Equal(t, int32(5000), input.Salary)
				assert.Equal(t, model.PostStatusOpen, input.Status)
				return &model.TuitionPost{
					Id:        input.Id,
					StudentId: input.StudentId,
					Subject:   input.Subject,
					Status:    input.Status,
				}, nil
			})

		post, err := svc.CreatePost(ctx, validPostInput())
		require.NoError(t, err)
		assert.Equal(t, model.PostStatusOpen, post.Status)
	})

	t.Run("TeacherCannotCreate", func(t *testing.T) {
		svc, _ := setupPost(t)
		ctx := userCtx(uuid.New(), model.RoleTeacher)

		_, err := svc.CreatePost(ctx, validPostInput())
		assert.ErrorIs(t, err, errdefs.ErrPermissionDenied)
	})

	t.Run("MissingField", func(t *testing.T) {
		svc, _ := setupPost(t)
		ctx := userCtx(uuid.New(), model.RoleStudent)

		input := validPostInput()
		input.Location = ""

		_, err := svc.CreatePost(ctx, input)
		assert.ErrorIs(t, err, errdefs.ErrValidation)
	})

	t.Run("Unauthenticated", func(t *testing.T) {
		svc, _ := setupPost(t)

		_, err := svc.CreatePost(context.Background(), validPostInput())
		assert.ErrorIs(t, err, errdefs.ErrAuthentication)
	})
}

// ── ListPosts ───────────────────────────────────────────────────────

func TestListPosts(t *testing.T) {
	t.Run("TeacherSeesOpenPosts", func(t *testing.T) {
		svc, mockPostRepo := setupPost(t)
		ctx := userCtx(uuid.New(), model.RoleTeacher)

		mockPostRepo.EXPECT().ListOpenPosts(gomock.Any()).Return([]*model.PostListing{
			{TuitionPost: model.TuitionPost{Subject: "Physics", Status: model.PostStatusOpen}},
		}, nil)

		listings, err := svc.ListPosts(ctx)
		require.NoError(t, err)
		require.Len(t, listings, 1)
		assert.Equal(t, "Physics", listings[0].Subject)
	})

	t.Run("StudentSeesOwnPosts", func(t *testing.T) {
		svc, mockPostRepo := setupPost(t)
		studentID := uuid.New()
		ctx := userCtx(studentID, model.RoleStudent)

		mockPostRepo.EXPECT().ListPostsByStudent(gomock.Any(), studentID).Return([]*model.PostListing{
			{TuitionPost: model.TuitionPost{Status: model.PostStatusClosed}},
		}, nil)

		listings, err := svc.ListPosts(ctx)
		require.NoError(t, err)
		require.Len(t, listings, 1)
		assert.Equal(t, model.PostStatusClosed, listings[0].Status)
	})
}

// ── UpdatePostStatus ────────────────────────────────────────────────

func TestUpdatePostStatus(t *testing.T) {
	t.Run("OwnerCloses", func(t *testing.T) {
		svc, mockPostRepo := setupPost(t)
		studentID := uuid.New()
		postID := uuid.New()
		ctx := userCtx(studentID, model.RoleStudent)

		mockPostRepo.EXPECT().GetPost(gomock.Any(), postID).Return(&model.TuitionPost{
			Id:        postID,
			StudentId: studentID,
			Status:    model.PostStatusOpen,
		}, nil)
		mockPostRepo.EXPECT().UpdatePostStatus(gomock.Any(), postID, model.PostStatusClosed).Return(&model.TuitionPost{
			Id:        postID,
			StudentId: studentID,
			Status:    model.PostStatusClosed,
		}, nil)

		post, err := svc.UpdatePostStatus(ctx, postID, model.PostStatusClosed)
		require.NoError(t, err)
		assert.Equal(t, model.PostStatusClosed, post.Status)
	})

	t.Run("InvalidStatus", func(t *testing.T) {
		svc, _ := setupPost(t)
		ctx := userCtx(uuid.New(), model.RoleStudent)

		_, err := svc.UpdatePostStatus(ctx, uuid.New(), "ARCHIVED")
		assert.ErrorIs(t, err, errdefs.ErrValidation)
	})

	t.Run("NonOwnerDenied", func(t *testing.T) {
		svc, mockPostRepo := setupPost(t)
		postID := uuid.New()
		ctx := userCtx(uuid.New(), model.RoleStudent)

		mockPostRepo.EXPECT().GetPost(gomock.Any(), postID).Return(&model.TuitionPost{
			Id:        postID,
			StudentId: uuid.New(),
		}, nil)

		_, err := svc.UpdatePostStatus(ctx, postID, model.PostStatusClosed)
		assert.ErrorIs(t, err, errdefs.ErrPermissionDenied)
	})

	t.Run("MissingPostIs404Not403", func(t *testing.T) {
		svc, mockPostRepo := setupPost(t)
		postID := uuid.New()
		ctx := userCtx(uuid.New(), model.RoleStudent)

		mockPostRepo.EXPECT().GetPost(gomock.Any(), postID).Return(nil, errdefs.ErrNotFound)

		_, err := svc.UpdatePostStatus(ctx, postID, model.PostStatusClosed)
		assert.ErrorIs(t, err, errdefs.ErrNotFound)
	})
}

// ── UpdatePost ──────────────────────────────────────────────────────

func TestUpdatePost(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc, mockPostRepo := setupPost(t)
		studentID := uuid.New()
		postID := uuid.New()
		ctx := userCtx(studentID, model.RoleStudent)

		mockPostRepo.EXPECT().GetPost(gomock.Any(), postID).Return(&model.TuitionPost{
			Id:        postID,
			StudentId: studentID,
		}, nil)
		mockPostRepo.EXPECT().UpdatePost(gomock.Any(), postID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ uuid.UUID, input *model.RepositoryUpdatePostInput) (*model.TuitionPost, error) {
				assert.Equal(t, "Mathematics", input.Subject)
				return &model.TuitionPost{Id: postID, Subject: input.Subject}, nil
			})

		post, err := svc.UpdatePost(ctx, postID, validPostInput())
		require.NoError(t, err)
		assert.Equal(t, "Mathematics", post.Subject)
	})

	t.Run("NonOwnerDenied", func(t *testing.T) {
		svc, mockPostRepo := setupPost(t)
		postID := uuid.New()
		ctx := userCtx(uuid.New(), model.RoleStudent)

		mockPostRepo.EXPECT().GetPost(gomock.Any(), postID).Return(&model.TuitionPost{
			Id:        postID,
			StudentId: uuid.New(),
		}, nil)

		_, err := svc.UpdatePost(ctx, postID, validPostInput())
		assert.ErrorIs(t, err, errdefs.ErrPermissionDenied)
	})
}

// ── DeletePost ──────────────────────────────────────────────────────

func TestDeletePost(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc, mockPostRepo := setupPost(t)
		studentID := uuid.New()
		postID := uuid.New()
		ctx := userCtx(studentID, model.RoleStudent)

		mockPostRepo.EXPECT().GetPost(gomock.Any(), postID).Return(&model.TuitionPost{
			Id:        postID,
			StudentId: studentID,
		}, nil)
		mockPostRepo.EXPECT().DeletePost(gomock.Any(), postID).Return(nil)

		err := svc.DeletePost(ctx, postID)
		assert.NoError(t, err)
	})

	t.Run("NonOwnerDenied", func(t *testing.T) {
		svc, mockPostRepo := setupPost(t)
		postID := uuid.New()
		ctx := userCtx(uuid.New(), model.RoleStudent)

		mockPostRepo.EXPECT().GetPost(gomock.Any(), postID).Return(&model.TuitionPost{
			Id:        postID,
			StudentId: uuid.New(),
		}, nil)

		err := svc.DeletePost(ctx, postID)
		assert.ErrorIs(t, err, errdefs.ErrPermissionDenied)
	})
}
