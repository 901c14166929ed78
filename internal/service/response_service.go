package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tuitionhub/internal/errdefs"
	"tuitionhub/internal/model"
	"tuitionhub/pkg/logging"
)

type ResponseRepository interface {
	CreateResponse(ctx context.Context, input *model.RepositoryCreateResponseInput) (*model.Response, error)
	GetResponse(ctx context.Context, id uuid.UUID) (*model.Response, error)
	ListResponsesByPost(ctx context.Context, postID uuid.UUID) ([]*model.ResponseListing, error)
	HasResponded(ctx context.Context, postID, teacherID uuid.UUID) (bool, error)
	ListPostsByTeacher(ctx context.Context, teacherID uuid.UUID) ([]*model.PostListing, error)
	UpdateResponseStatus(ctx context.Context, id uuid.UUID, status model.ResponseStatus) (*model.Response, error)
}

type ResponseService struct {
	responseRepository ResponseRepository
	postRepository     PostRepository
	events             EventProducer
}

func NewResponseService(responseRepository ResponseRepository, postRepository PostRepository, events EventProducer) *ResponseService {
	return &ResponseService{
		responseRepository: responseRepository,
		postRepository:     postRepository,
		events:             events,
	}
}

type ResponseCreatedEvent struct {
	ResponseId string `json:"response_id"`
	PostId     string `json:"post_id"`
	TeacherId  string `json:"teacher_id"`
	StudentId  string `json:"student_id"`
}

// RespondToPost submits a teacher's offer against an OPEN post. The
// repository performs the insert as one conditional statement guarded by
// the (post, teacher) unique constraint, so neither a concurrent close
// nor a duplicate submission can race past the checks here.
func (s *ResponseService) RespondToPost(ctx context.Context, input *model.RespondToPostInput) (*model.Response, error) {
	teacherID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}
	if err := ensureCurrentUserRole(ctx, model.RoleTeacher); err != nil {
		return nil, err
	}
	if input.Message == "" {
		return nil, fmt.Errorf("message is required: %w", errdefs.ErrValidation)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}

	response, err := s.responseRepository.CreateResponse(ctx, &model.RepositoryCreateResponseInput{
		Id:             id,
		PostId:         input.PostId,
		TeacherId:      teacherID,
		ProposedSalary: input.ProposedSalary,
		Message:        input.Message,
		Status:         model.ResponseStatusPending,
	})
	if err != nil {
		if errors.Is(err, errdefs.ErrAlreadyExists) {
			return nil, fmt.Errorf("already responded to this post: %w", errdefs.ErrConflict)
		}
		if errors.Is(err, errdefs.ErrNotFound) {
			// the conditional insert matched nothing: either the post is
			// gone or it is no longer open
			if _, getErr := s.postRepository.GetPost(ctx, input.PostId); getErr != nil {
				return nil, getErr
			}
			return nil, fmt.Errorf("post is not open for responses: %w", errdefs.ErrConflict)
		}
		return nil, err
	}

	s.emitResponseCreated(ctx, response)

	return response, nil
}

func (s *ResponseService) emitResponseCreated(ctx context.Context, response *model.Response) {
	post, err := s.postRepository.GetPost(ctx, response.PostId)
	if err != nil {
		return
	}
	event := &ResponseCreatedEvent{
		ResponseId: response.Id.String(),
		PostId:     response.PostId.String(),
		TeacherId:  response.TeacherId.String(),
		StudentId:  post.StudentId.String(),
	}
	if err := s.events.Send(ctx, TopicResponseCreated, event); err != nil {
		if logger, ok := logging.GetFromContext(ctx); ok {
			logger.Warn(ctx, "failed to emit response event", zap.Error(err))
		}
	}
}

func (s *ResponseService) ListResponses(ctx context.Context, postID uuid.UUID) ([]*model.ResponseListing, error) {
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

	return s.responseRepository.ListResponsesByPost(ctx, postID)
}

func (s *ResponseService) HasResponded(ctx context.Context, postID uuid.UUID) (bool, error) {
	teacherID, err := currentUserID(ctx)
	if err != nil {
		return false, err
	}
	return s.responseRepository.HasResponded(ctx, postID, teacherID)
}

func (s *ResponseService) ListRespondedPosts(ctx context.Context) ([]*model.PostListing, error) {
	teacherID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}
	if err := ensureCurrentUserRole(ctx, model.RoleTeacher); err != nil {
		return nil, err
	}
	return s.responseRepository.ListPostsByTeacher(ctx, teacherID)
}

// UpdateResponseStatus lets the post owner accept or reject an offer.
func (s *ResponseService) UpdateResponseStatus(ctx context.Context, responseID uuid.UUID, status model.ResponseStatus) (*model.Response, error) {
	callerID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("status must be PENDING, ACCEPTED or REJECTED: %w", errdefs.ErrValidation)
	}

	response, err := s.responseRepository.GetResponse(ctx, responseID)
	if err != nil {
		return nil, err
	}

	post, err := s.postRepository.GetPost(ctx, response.PostId)
	if err != nil {
		return nil, err
	}
	if post.StudentId != callerID {
		return nil, fmt.Errorf("post belongs to another student: %w", errdefs.ErrPermissionDenied)
	}

	return s.responseRepository.UpdateResponseStatus(ctx, responseID, status)
}
