package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"tuitionhub/internal/errdefs"
	"tuitionhub/internal/model"
)

type PostRepository interface {
	CreatePost(ctx context.Context, input *model.RepositoryCreatePostInput) (*model.TuitionPost, error)
	GetPost(ctx context.Context, id uuid.UUID) (*model.TuitionPost, error)
	ListOpenPosts(ctx context.Context) ([]*model.PostListing, error)
	ListPostsByStudent(ctx context.Context, studentID uuid.UUID) ([]*model.PostListing, error)
	UpdatePost(ctx context.Context, id uuid.UUID, input *model.RepositoryUpdatePostInput) (*model.TuitionPost, error)
	UpdatePostStatus(ctx context.Context, id uuid.UUID, status model.PostStatus) (*model.TuitionPost, error)
	DeletePost(ctx context.Context, id uuid.UUID) error
}

type PostService struct {
	postRepository PostRepository
}

func NewPostService(postRepository PostRepository) *PostService {
	return &PostService{postRepository: postRepository}
}

func validatePostFields(input *model.CreatePostInput) error {
	if input.Subject == "" || input.ClassLevel == "" || input.DaysPerWeek == 0 ||
		input.Salary == 0 || input.Location == "" || input.Description == "" {
		return fmt.Errorf(
			"all fields are required: subject, class_level, days_per_week, salary, location, description: %w",
			errdefs.ErrValidation,
		)
	}
	return nil
}

func (s *PostService) CreatePost(ctx context.Context, input *model.CreatePostInput) (*model.TuitionPost, error) {
	studentID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}
	if err := ensureCurrentUserRole(ctx, model.RoleStudent); err != nil {
		return nil, err
	}
	if err := validatePostFields(input); err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}

	return s.postRepository.CreatePost(ctx, &model.RepositoryCreatePostInput{
		Id:          id,
		StudentId:   studentID,
		Subject:     input.Subject,
		ClassLevel:  input.ClassLevel,
		DaysPerWeek: input.DaysPerWeek,
		Salary:      input.Salary,
		Location:    input.Location,
		Description: input.Description,
		Status:      model.PostStatusOpen,
	})
}

// ListPosts is role-dependent: teachers browse every OPEN post, students
// see their own posts in any status.
func (s *PostService) ListPosts(ctx context.Context) ([]*model.PostListing, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	if role, _ := currentUserRole(ctx); role == model.RoleTeacher {
		return s.postRepository.ListOpenPosts(ctx)
	}
	return s.postRepository.ListPostsByStudent(ctx, userID)
}

// ownedPost loads the post and enforces that the caller is its owner.
// Existence is checked before ownership so a missing post is a 404, not
// a 403.
func (s *PostService) ownedPost(ctx context.Context, postID uuid.UUID) (*model.TuitionPost, error) {
	callerID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	post, err := s.postRepository.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.StudentId != callerID {
		return nil, fmt.Errorf("post belongs to another student: %w", errdefs.ErrPermissionDenied)
	}
	return post, nil
}

func (s *PostService) UpdatePostStatus(ctx context.Context, postID uuid.UUID, status model.PostStatus) (*model.TuitionPost, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("status must be OPEN or CLOSED: %w", errdefs.ErrValidation)
	}

	if _, err := s.ownedPost(ctx, postID); err != nil {
		return nil, err
	}

	return s.postRepository.UpdatePostStatus(ctx, postID, status)
}

func (s *PostService) UpdatePost(ctx context.Context, postID uuid.UUID, input *model.CreatePostInput) (*model.TuitionPost, error) {
	if err := validatePostFields(input); err != nil {
		return nil, err
	}

	if _, err := s.ownedPost(ctx, postID); err != nil {
		return nil, err
	}

	return s.postRepository.UpdatePost(ctx, postID, &model.RepositoryUpdatePostInput{
		Subject:     input.Subject,
		ClassLevel:  input.ClassLevel,
		DaysPerWeek: input.DaysPerWeek,
		Salary:      input.Salary,
		Location:    input.Location,
		Description: input.Description,
	})
}

// DeletePost cascades to responses, conversations and messages at the
// storage layer. A row that vanishes between the ownership check and the
// delete collapses to not-found.
func (s *PostService) DeletePost(ctx context.Context, postID uuid.UUID) error {
	if _, err := s.ownedPost(ctx, postID); err != nil {
		return err
	}
	return s.postRepository.DeletePost(ctx, postID)
}
