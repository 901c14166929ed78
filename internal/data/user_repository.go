package data

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"tuitionhub/internal/model"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) CreateUser(ctx context.Context, input *model.RepositoryCreateUserInput) (*model.User, error) {
	query := `
INSERT INTO users (id, email, password_hash, role)
VALUES ($1, $2, $3, $4)
RETURNING id, email, password_hash, role, is_verified, avatar_key, created_at
`
	var user model.User
	err := pgxscan.Get(ctx, r.db, &user, query,
		input.Id,
		input.Email,
		input.PasswordHash,
		input.Role,
	)
	if err != nil {
		return nil, handleError(err)
	}
	return &user, nil
}

func (r *UserRepository) GetUser(ctx context.Context, id uuid.UUID) (*model.User, error) {
	query := `
SELECT id, email, password_hash, role, is_verified, avatar_key, created_at
FROM users
WHERE id = $1
`
	var user model.User
	err := pgxscan.Get(ctx, r.db, &user, query, id)
	if err != nil {
		return nil, handleError(err)
	}
	return &user, nil
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `
SELECT id, email, password_hash, role, is_verified, avatar_key, created_at
FROM users
WHERE email = $1
`
	var user model.User
	err := pgxscan.Get(ctx, r.db, &user, query, email)
	if err != nil {
		return nil, handleError(err)
	}
	return &user, nil
}

func (r *UserRepository) UpdateAvatarKey(ctx context.Context, id uuid.UUID, avatarKey string) error {
	query := `
UPDATE users
SET avatar_key = $1
WHERE id = $2
RETURNING id
`
	var updated uuid.UUID
	err := pgxscan.Get(ctx, r.db, &updated, query, avatarKey, id)
	if err != nil {
		return handleError(err)
	}
	return nil
}

func (r *UserRepository) GetAvatarKey(ctx context.Context, id uuid.UUID) (*string, error) {
	query := `
SELECT avatar_key
FROM users
WHERE id = $1
`
	var avatarKey *string
	err := pgxscan.Get(ctx, r.db, &avatarKey, query, id)
	if err != nil {
		return nil, handleError(err)
	}
	return avatarKey, nil
}
