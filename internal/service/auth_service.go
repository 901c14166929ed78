package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"tuitionhub/internal/errdefs"
	"tuitionhub/internal/model"
)

type UserRepository interface {
	CreateUser(ctx context.Context, input *model.RepositoryCreateUserInput) (*model.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	UpdateAvatarKey(ctx context.Context, id uuid.UUID, avatarKey string) error
	GetAvatarKey(ctx context.Context, id uuid.UUID) (*string, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Check(hash, password string) bool
}

type TokenIssuer interface {
	Issue(userID uuid.UUID, role model.Role) (string, error)
}

type AuthService struct {
	userRepository UserRepository
	hasher         PasswordHasher
	tokens         TokenIssuer
}

func NewAuthService(userRepository UserRepository, hasher PasswordHasher, tokens TokenIssuer) *AuthService {
	return &AuthService{
		userRepository: userRepository,
		hasher:         hasher,
		tokens:         tokens,
	}
}

type AuthResult struct {
	User  *model.User
	Token string
}

func (s *AuthService) Register(ctx context.Context, input *model.RegisterInput) (*AuthResult, error) {
	if input.Email == "" || input.Password == "" {
		return nil, fmt.Errorf("email and password are required: %w", errdefs.ErrValidation)
	}
	if !input.Role.IsValid() {
		return nil, fmt.Errorf("role must be STUDENT or TEACHER: %w", errdefs.ErrValidation)
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}

	user, err := s.userRepository.CreateUser(ctx, &model.RepositoryCreateUserInput{
		Id:           id,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         input.Role,
	})
	if err != nil {
		if errors.Is(err, errdefs.ErrAlreadyExists) {
			return nil, fmt.Errorf("user already exists: %w", errdefs.ErrAlreadyExists)
		}
		return nil, err
	}

	token, err := s.tokens.Issue(user.Id, user.Role)
	if err != nil {
		return nil, err
	}

	return &AuthResult{User: user, Token: token}, nil
}

// Login deliberately reports one error for both unknown email and wrong
// password so the endpoint cannot be used to probe registered addresses.
func (s *AuthService) Login(ctx context.Context, input *model.LoginInput) (*AuthResult, error) {
	if input.Email == "" || input.Password == "" {
		return nil, fmt.Errorf("email and password are required: %w", errdefs.ErrValidation)
	}

	user, err := s.userRepository.GetUserByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, errdefs.ErrNotFound) {
			return nil, fmt.Errorf("invalid credentials: %w", errdefs.ErrAuthentication)
		}
		return nil, err
	}

	if !s.hasher.Check(user.PasswordHash, input.Password) {
		return nil, fmt.Errorf("invalid credentials: %w", errdefs.ErrAuthentication)
	}

	token, err := s.tokens.Issue(user.Id, user.Role)
	if err != nil {
		return nil, err
	}

	return &AuthResult{User: user, Token: token}, nil
}
