package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tuitionhub/internal/errdefs"
	"tuitionhub/internal/model"
	"tuitionhub/pkg/logging"
)

type ConversationRepository interface {
	CreateOrGetConversation(ctx context.Context, input *model.RepositoryCreateConversationInput) (*model.Conversation, error)
	GetConversation(ctx context.Context, id uuid.UUID) (*model.Conversation, error)
	ListConversationsByUser(ctx context.Context, userID uuid.UUID) ([]*model.ConversationListing, error)
	CreateMessage(ctx context.Context, input *model.RepositoryCreateMessageInput) (*model.Message, error)
	ListMessages(ctx context.Context, conversationID uuid.UUID) ([]*model.MessageListing, error)
	MarkMessagesRead(ctx context.Context, conversationID, readerID uuid.UUID) error
}

type MessagingService struct {
	conversationRepository ConversationRepository
	postRepository         PostRepository
	events                 EventProducer
}

func NewMessagingService(conversationRepository ConversationRepository, postRepository PostRepository, events EventProducer) *MessagingService {
	return &MessagingService{
		conversationRepository: conversationRepository,
		postRepository:         postRepository,
		events:                 events,
	}
}

type MessageSentEvent struct {
	MessageId      string `json:"message_id"`
	ConversationId string `json:"conversation_id"`
	SenderId       string `json:"sender_id"`
	RecipientId    string `json:"recipient_id"`
}

// StartConversation is idempotent: repeated calls for the same post and
// initiator land on the same conversation row via the storage-level
// uniqueness on the (student, teacher, post) triple.
func (s *MessagingService) StartConversation(ctx context.Context, postID uuid.UUID) (*model.Conversation, error) {
	initiatorID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	post, err := s.postRepository.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}

	return s.conversationRepository.CreateOrGetConversation(ctx, &model.RepositoryCreateConversationInput{
		Id:        id,
		StudentId: post.StudentId,
		TeacherId: initiatorID,
		PostId:    postID,
	})
}

func (s *MessagingService) ListConversations(ctx context.Context) ([]*model.ConversationListing, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}
	return s.conversationRepository.ListConversationsByUser(ctx, userID)
}

// memberConversation loads the conversation and rejects callers that are
// not one of its two participants.
func (s *MessagingService) memberConversation(ctx context.Context, conversationID uuid.UUID) (*model.Conversation, uuid.UUID, error) {
	callerID, err := currentUserID(ctx)
	if err != nil {
		return nil, uuid.Nil, err
	}

	conversation, err := s.conversationRepository.GetConversation(ctx, conversationID)
	if err != nil {
		return nil, uuid.Nil, err
	}
	if conversation.StudentId != callerID && conversation.TeacherId != callerID {
		return nil, uuid.Nil, fmt.Errorf("not a conversation participant: %w", errdefs.ErrPermissionDenied)
	}
	return conversation, callerID, nil
}

func (s *MessagingService) GetMessages(ctx context.Context, conversationID uuid.UUID) ([]*model.MessageListing, error) {
	if _, _, err := s.memberConversation(ctx, conversationID); err != nil {
		return nil, err
	}
	return s.conversationRepository.ListMessages(ctx, conversationID)
}

func (s *MessagingService) SendMessage(ctx context.Context, input *model.SendMessageInput) (*model.Message, error) {
	if input.Body == "" {
		return nil, fmt.Errorf("message body is required: %w", errdefs.ErrValidation)
	}

	conversation, senderID, err := s.memberConversation(ctx, input.ConversationId)
	if err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}

	message, err := s.conversationRepository.CreateMessage(ctx, &model.RepositoryCreateMessageInput{
		Id:             id,
		ConversationId: input.ConversationId,
		SenderId:       senderID,
		Body:           input.Body,
	})
	if err != nil {
		return nil, err
	}

	recipientID := conversation.StudentId
	if senderID == conversation.StudentId {
		recipientID = conversation.TeacherId
	}
	event := &MessageSentEvent{
		MessageId:      message.Id.String(),
		ConversationId: message.ConversationId.String(),
		SenderId:       senderID.String(),
		RecipientId:    recipientID.String(),
	}
	if err := s.events.Send(ctx, TopicMessageSent, event); err != nil {
		if logger, ok := logging.GetFromContext(ctx); ok {
			logger.Warn(ctx, "failed to emit message event", zap.Error(err))
		}
	}

	return message, nil
}

// MarkMessagesRead never touches the reader's own messages and is a
// no-op when everything is already read.
func (s *MessagingService) MarkMessagesRead(ctx context.Context, conversationID uuid.UUID) error {
	_, readerID, err := s.memberConversation(ctx, conversationID)
	if err != nil {
		return err
	}
	return s.conversationRepository.MarkMessagesRead(ctx, conversationID, readerID)
}
