package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"tuitionhub/internal/errdefs"
	"tuitionhub/internal/model"
	"tuitionhub/internal/service"
	"tuitionhub/internal/service/mocks"
	"tuitionhub/pkg/ctxdata"
)

func setupAuth(t *testing.T) (
	*service.AuthService,
	*mocks.MockUserRepository,
	*mocks.MockPasswordHasher,
	*mocks.MockTokenIssuer,
) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	mockHasher := mocks.NewMockPasswordHasher(ctrl)
	mockTokens := mocks.NewMockTokenIssuer(ctrl)
	svc := service.NewAuthService(mockUserRepo, mockHasher, mockTokens)

	return svc, mockUserRepo, mockHasher, mockTokens
}

func userCtx(userID uuid.UUID, role model.Role) context.Context {
	ctx := context.Background()
	ctx = ctxdata.WithUserID(ctx, userID.String())
	ctx = ctxdata.WithUserRole(ctx, string(role))
	return ctx
}

// ── Register ────────────────────────────────────────────────────────

func TestRegister(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc, mockUserRepo, mockHasher, mockTokens := setupAuth(t)

		mockHasher.EXPECT().Hash("secret123").Return("hashed", nil)
		mockUserRepo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, input *model.RepositoryCreateUserInput) (*model.User, error) {
				assert.Equal(t, "student@example.com", input.Email)
				assert.Equal(t, "hashed", input.PasswordHash)
				assert.Equal(t, model.RoleStudent, input.Role)
				return &model.User{Id: input.Id, Email: input.Email, Role: input.Role}, nil
			})
		mockTokens.EXPECT().Issue(gomock.Any(), model.RoleStudent).Return("token-abc", nil)

		result, err := svc.Register(context.Background(), &model.RegisterInput{
			Email:    "student@example.com",
			Password: "secret123",
			Role:     model.RoleStudent,
		})
		require.NoError(t, err)
		assert.Equal(t, "token-abc", result.Token)
		assert.Equal(t, "student@example.com", result.User.Email)
	})

	t.Run("MissingEmail", func(t *testing.T) {
		svc, _, _, _ := setupAuth(t)

		_, err := svc.Register(context.Background(), &model.RegisterInput{
			Password: "secret123",
			Role:     model.RoleStudent,
		})
		assert.ErrorIs(t, err, errdefs.ErrValidation)
	})

	t.Run("InvalidRole", func(t *testing.T) {
		svc, _, _, _ := setupAuth(t)

		_, err := svc.Register(context.Background(), &model.RegisterInput{
			Email:    "x@example.com",
			Password: "secret123",
			Role:     "ADMIN",
		})
		assert.ErrorIs(t, err, errdefs.ErrValidation)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		svc, mockUserRepo, mockHasher, _ := setupAuth(t)

		mockHasher.EXPECT().Hash(gomock.Any()).Return("hashed", nil)
		mockUserRepo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil, errdefs.ErrAlreadyExists)

		_, err := svc.Register(context.Background(), &model.RegisterInput{
			Email:    "dup@example.com",
			Password: "secret123",
			Role:     model.RoleTeacher,
		})
		assert.ErrorIs(t, err, errdefs.ErrAlreadyExists)
	})

	t.Run("HasherFailure", func(t *testing.T) {
		svc, _, mockHasher, _ := setupAuth(t)

		mockHasher.EXPECT().Hash(gomock.Any()).Return("", errors.New("bcrypt broke"))

		_, err := svc.Register(context.Background(), &model.RegisterInput{
			Email:    "x@example.com",
			Password: "secret123",
			Role:     model.RoleStudent,
		})
		assert.Error(t, err)
	})
}

// ── Login ───────────────────────────────────────────────────────────

func TestLogin(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc, mockUserRepo, mockHasher, mockTokens := setupAuth(t)
		userID := uuid.New()

		mockUserRepo.EXPECT().GetUserByEmail(gomock.Any(), "teacher@example.com").Return(&model.User{
			Id:           userID,
			Email:        "teacher@example.com",
			PasswordHash: "hashed",
			Role:         model.RoleTeacher,
		}, nil)
		mockHasher.EXPECT().Check("hashed", "secret123").Return(true)
		mockTokens.EXPECT().Issue(userID, model.RoleTeacher).Return("token-xyz", nil)

		result, err := svc.Login(context.Background(), &model.LoginInput{
			Email:    "teacher@example.com",
			Password: "secret123",
		})
		require.NoError(t, err)
		assert.Equal(t, "token-xyz", result.Token)
		assert.Equal(t, userID, result.User.Id)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		svc, mockUserRepo, _, _ := setupAuth(t)

		mockUserRepo.EXPECT().GetUserByEmail(gomock.Any(), gomock.Any()).Return(nil, errdefs.ErrNotFound)

		_, err := svc.Login(context.Background(), &model.LoginInput{
			Email:    "nobody@example.com",
			Password: "secret123",
		})
		assert.ErrorIs(t, err, errdefs.ErrAuthentication)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		svc, mockUserRepo, mockHasher, _ := setupAuth(t)

		mockUserRepo.EXPECT().GetUserByEmail(gomock.Any(), gomock.Any()).Return(&model.User{
			Id:           uuid.New(),
			PasswordHash: "hashed",
		}, nil)
		mockHasher.EXPECT().Check("hashed", "wrong").Return(false)

		_, err := svc.Login(context.Background(), &model.LoginInput{
			Email:    "teacher@example.com",
			Password: "wrong",
		})
		assert.ErrorIs(t, err, errdefs.ErrAuthentication)
	})

	t.Run("MissingFields", func(t *testing.T) {
		svc, _, _, _ := setupAuth(t)

		_, err := svc.Login(context.Background(), &model.LoginInput{})
		assert.ErrorIs(t, err, errdefs.ErrValidation)
	})
}
