package data

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"tuitionhub/internal/errdefs"
	"tuitionhub/internal/model"
)

type PostRepository struct {
	db *pgxpool.Pool
}

func NewPostRepository(db *pgxpool.Pool) *PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) CreatePost(ctx context.Context, input *model.RepositoryCreatePostInput) (*model.TuitionPost, error) {
	query := `
INSERT INTO tuition_posts (
	id, student_id, subject, class_level,
	days_per_week, salary, location, description, status
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id, student_id, subject, class_level,
	days_per_week, salary, location, description, status, created_at
`
	var post model.TuitionPost
	err := pgxscan.Get(ctx, r.db, &post, query,
		input.Id,
		input.StudentId,
		input.Subject,
		input.ClassLevel,
		input.DaysPerWeek,
		input.Salary,
		input.Location,
		input.Description,
		input.Status,
	)
	if err != nil {
		return nil, handleError(err)
	}
	return &post, nil
}

func (r *PostRepository) GetPost(ctx context.Context, id uuid.UUID) (*model.TuitionPost, error) {
	query := `
SELECT id, student_id, subject, class_level,
	days_per_week, salary, location, description, status, created_at
FROM tuition_posts
WHERE id = $1
`
	var post model.TuitionPost
	err := pgxscan.Get(ctx, r.db, &post, query, id)
	if err != nil {
		return nil, handleError(err)
	}
	return &post, nil
}

// ListOpenPosts is the teacher-facing feed: every OPEN post annotated
// with the owning student's display data and its response count.
func (r *PostRepository) ListOpenPosts(ctx context.Context) ([]*model.PostListing, error) {
	query := `
SELECT p.id, p.student_id, p.subject, p.class_level,
	p.days_per_week, p.salary, p.location, p.description, p.status, p.created_at,
	COALESCE(sp.full_name, u.email) AS student_name,
	u.email AS student_email,
	(SELECT COUNT(*) FROM responses r WHERE r.post_id = p.id) AS response_count
FROM tuition_posts p
JOIN users u ON u.id = p.student_id
LEFT JOIN student_profiles sp ON sp.user_id = p.student_id
WHERE p.status = 'OPEN'
ORDER BY p.created_at DESC
`
	var posts []*model.PostListing
	err := pgxscan.Select(ctx, r.db, &posts, query)
	if err != nil {
		return nil, handleError(err)
	}
	return posts, nil
}

func (r *PostRepository) ListPostsByStudent(ctx context.Context, studentID uuid.UUID) ([]*model.PostListing, error) {
	query := `
SELECT p.id, p.student_id, p.subject, p.class_level,
	p.days_per_week, p.salary, p.location, p.description, p.status, p.created_at,
	(SELECT COUNT(*) FROM responses r WHERE r.post_id = p.id) AS response_count
FROM tuition_posts p
WHERE p.student_id = $1
ORDER BY p.created_at DESC
`
	var posts []*model.PostListing
	err := pgxscan.Select(ctx, r.db, &posts, query, studentID)
	if err != nil {
		return nil, handleError(err)
	}
	return posts, nil
}

// UpdatePost overwrites all six content fields unconditionally.
func (r *PostRepository) UpdatePost(ctx context.Context, id uuid.UUID, input *model.RepositoryUpdatePostInput) (*model.TuitionPost, error) {
	query := `
UPDATE tuition_posts
SET subject = $1, class_level = $2, days_per_week = $3,
	salary = $4, location = $5, description = $6
WHERE id = $7
RETURNING id, student_id, subject, class_level,
	days_per_week, salary, location, description, status, created_at
`
	var post model.TuitionPost
	err := pgxscan.Get(ctx, r.db, &post, query,
		input.Subject,
		input.ClassLevel,
		input.DaysPerWeek,
		input.Salary,
		input.Location,
		input.Description,
		id,
	)
	if err != nil {
		return nil, handleError(err)
	}
	return &post, nil
}

func (r *PostRepository) UpdatePostStatus(ctx context.Context, id uuid.UUID, status model.PostStatus) (*model.TuitionPost, error) {
	query := `
UPDATE tuition_posts
SET status = $1
WHERE id = $2
RETURNING id, student_id, subject, class_level,
	days_per_week, salary, location, description, status, created_at
`
	var post model.TuitionPost
	err := pgxscan.Get(ctx, r.db, &post, query, status, id)
	if err != nil {
		return nil, handleError(err)
	}
	return &post, nil
}

func (r *PostRepository) DeletePost(ctx context.Context, id uuid.UUID) error {
	query := `
DELETE FROM tuition_posts
WHERE id = $1
`
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return handleError(err)
	}
	if tag.RowsAffected() == 0 {
		return errdefs.ErrNotFound
	}
	return nil
}
