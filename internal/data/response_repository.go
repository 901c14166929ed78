package data

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"tuitionhub/internal/model"
)

type ResponseRepository struct {
	db *pgxpool.Pool
}

func NewResponseRepository(db *pgxpool.Pool) *ResponseRepository {
	return &ResponseRepository{db: db}
}

// CreateResponse inserts only while the post is still OPEN. The insert is a
// single conditional statement so a concurrent close cannot slip a response
// in, and the (post_id, teacher_id) unique constraint turns a duplicate
// submission into ErrAlreadyExists instead of racing a prior read.
// pgx.ErrNoRows means the post is missing or no longer open; the caller
// tells the two apart.
func (r *ResponseRepository) CreateResponse(ctx context.Context, input *model.RepositoryCreateResponseInput) (*model.Response, error) {
	query := `
INSERT INTO responses (id, post_id, teacher_id, proposed_salary, message, status)
SELECT $1, p.id, $3, $4, $5, $6
FROM tuition_posts p
WHERE p.id = $2 AND p.status = 'OPEN'
RETURNING id, post_id, teacher_id, proposed_salary, message, status, created_at
`
	var response model.Response
	err := pgxscan.Get(ctx, r.db, &response, query,
		input.Id,
		input.PostId,
		input.TeacherId,
		input.ProposedSalary,
		input.Message,
		input.Status,
	)
	if err != nil {
		return nil, handleError(err)
	}
	return &response, nil
}

func (r *ResponseRepository) GetResponse(ctx context.Context, id uuid.UUID) (*model.Response, error) {
	query := `
SELECT id, post_id, teacher_id, proposed_salary, message, status, created_at
FROM responses
WHERE id = $1
`
	var response model.Response
	err := pgxscan.Get(ctx, r.db, &response, query, id)
	if err != nil {
		return nil, handleError(err)
	}
	return &response, nil
}

func (r *ResponseRepository) ListResponsesByPost(ctx context.Context, postID uuid.UUID) ([]*model.ResponseListing, error) {
	query := `
SELECT r.id, r.post_id, r.teacher_id, r.proposed_salary, r.message, r.status, r.created_at,
	COALESCE(tp.full_name, u.email) AS teacher_name,
	u.email AS teacher_email,
	u.avatar_key
FROM responses r
JOIN users u ON u.id = r.teacher_id
LEFT JOIN teacher_profiles tp ON tp.user_id = r.teacher_id
WHERE r.post_id = $1
ORDER BY r.created_at ASC
`
	var responses []*model.ResponseListing
	err := pgxscan.Select(ctx, r.db, &responses, query, postID)
	if err != nil {
		return nil, handleError(err)
	}
	return responses, nil
}

func (r *ResponseRepository) HasResponded(ctx context.Context, postID, teacherID uuid.UUID) (bool, error) {
	query := `
SELECT EXISTS (
	SELECT 1 FROM responses WHERE post_id = $1 AND teacher_id = $2
)
`
	var exists bool
	err := pgxscan.Get(ctx, r.db, &exists, query, postID, teacherID)
	if err != nil {
		return false, handleError(err)
	}
	return exists, nil
}

// ListPostsByTeacher returns every post the teacher has responded to,
// regardless of the post's current status.
func (r *ResponseRepository) ListPostsByTeacher(ctx context.Context, teacherID uuid.UUID) ([]*model.PostListing, error) {
	query := `
SELECT p.id, p.student_id, p.subject, p.class_level,
	p.days_per_week, p.salary, p.location, p.description, p.status, p.created_at,
	COALESCE(sp.full_name, u.email) AS student_name,
	u.email AS student_email,
	(SELECT COUNT(*) FROM responses rc WHERE rc.post_id = p.id) AS response_count
FROM tuition_posts p
JOIN responses r ON r.post_id = p.id
JOIN users u ON u.id = p.student_id
LEFT JOIN student_profiles sp ON sp.user_id = p.student_id
WHERE r.teacher_id = $1
ORDER BY r.created_at DESC
`
	var posts []*model.PostListing
	err := pgxscan.Select(ctx, r.db, &posts, query, teacherID)
	if err != nil {
		return nil, handleError(err)
	}
	return posts, nil
}

func (r *ResponseRepository) UpdateResponseStatus(ctx context.Context, id uuid.UUID, status model.ResponseStatus) (*model.Response, error) {
	query := `
UPDATE responses
SET status = $1
WHERE id = $2
RETURNING id, post_id, teacher_id, proposed_salary, message, status, created_at
`
	var response model.Response
	err := pgxscan.Get(ctx, r.db, &response, query, status, id)
	if err != nil {
		return nil, handleError(err)
	}
	return &response, nil
}
