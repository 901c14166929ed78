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

func setupMessaging(t *testing.T) (
	*service.MessagingService,
	*mocks.MockConversationRepository,
	*mocks.MockPostRepository,
	*mocks.MockEventProducer,
) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockConvRepo := mocks.NewMockConversationRepository(ctrl)
	mockPostRepo := mocks.NewMockPostRepository(ctrl)
	mockEvents := mocks.NewMockEventProducer(ctrl)
	svc := service.NewMessagingService(mockConvRepo, mockPostRepo, mockEvents)

	return svc, mockConvRepo, mockPostRepo, mockEvents
}

// ── StartConversation ───────────────────────────────────────────────

func TestStartConversation(t *testing.T) {
	t.Run("TeacherStartsAgainstPost", func(t *testing.T) {
		svc, mockConvRepo, mockPostRepo, _ := setupMessaging(t)
		teacherID := uuid.New()
		studentID := uuid.New()
		postID := uuid.New()
		ctx := userCtx(teacherID, model.RoleTeacher)

		mockPostRepo.EXPECT().GetPost(gomock.Any(), postID).Return(&model.TuitionPost{
			Id:        postID,
			StudentId: studentID,
		}, nil)
		mockConvRepo.EXPECT().CreateOrGetConversation(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, input *model.RepositoryCreateConversationInput) (*model.Conversation, error) {
				assert.Equal(t, studentID, input.StudentId)
				assert.Equal(t, teacherID, input.TeacherId)
				assert.Equal(t, postID, input.PostId)
				return &model.Conversation{
					Id:        input.Id,
					StudentId: input.StudentId,
					TeacherId: input.TeacherId,
					PostId:    input.PostId,
				}, nil
			})

		conversation, err := svc.StartConversation(ctx, postID)
		require.NoError(t, err)
		assert.Equal(t, studentID, conversation.StudentId)
		assert.Equal(t, teacherID, conversation.TeacherId)
	})

	t.Run("RepeatedStartReturnsSameConversation", func(t *testing.T) {
		svc, mockConvRepo, mockPostRepo, _ := setupMessaging(t)
		teacherID := uuid.New()
		studentID := uuid.New()
		postID := uuid.New()
		existingID := uuid.New()
		ctx := userCtx(teacherID, model.RoleTeacher)

		mockPostRepo.EXPECT().GetPost(gomock.Any(), postID).Return(&model.TuitionPost{
			Id:        postID,
			StudentId: studentID,
		}, nil).Times(2)
		mockConvRepo.EXPECT().CreateOrGetConversation(gomock.Any(), gomock.Any()).Return(&model.Conversation{
			Id:        existingID,
			StudentId: studentID,
			TeacherId: teacherID,
			PostId:    postID,
		}, nil).Times(2)

		first, err := svc.StartConversation(ctx, postID)
		require.NoError(t, err)
		second, err := svc.StartConversation(ctx, postID)
		require.NoError(t, err)
		assert.Equal(t, first.Id, second.Id)
	})

	t.Run("MissingPost", func(t *testing.T) {
		svc, _, mockPostRepo, _ := setupMessaging(t)
		postID := uuid.New()
		ctx := userCtx(uuid.New(), model.RoleTeacher)

		mockPostRepo.EXPECT().GetPost(gomock.Any(), postID).Return(nil, errdefs.ErrNotFound)

		_, err := svc.StartConversation(ctx, postID)
		assert.ErrorIs(t, err, errdefs.ErrNotFound)
	})
}

// ── GetMessages ─────────────────────────────────────────────────────

func TestGetMessages(t *testing.T) {
	t.Run("ParticipantReadsThread", func(t *testing.T) {
		svc, mockConvRepo, _, _ := setupMessaging(t)
		studentID := uuid.New()
		conversationID := uuid.New()
		ctx := userCtx(studentID, model.RoleStudent)

		mockConvRepo.EXPECT().GetConversation(gomock.Any(), conversationID).Return(&model.Conversation{
			Id:        conversationID,
			StudentId: studentID,
			TeacherId: uuid.New(),
		}, nil)
		mockConvRepo.EXPECT().ListMessages(gomock.Any(), conversationID).Return([]*model.MessageListing{
			{Message: model.Message{Body: "hello"}, SenderName: "Rahim", SenderRole: model.RoleStudent},
		}, nil)

		messages, err := svc.GetMessages(ctx, conversationID)
		require.NoError(t, err)
		require.Len(t, messages, 1)
		assert.Equal(t, "hello", messages[0].Body)
	})

	t.Run("ThirdPartyDenied", func(t *testing.T) {
		svc, mockConvRepo, _, _ := setupMessaging(t)
		conversationID := uuid.New()
		ctx := userCtx(uuid.New(), model.RoleTeacher)

		mockConvRepo.EXPECT().GetConversation(gomock.Any(), conversationID).Return(&model.Conversation{
			Id:        conversationID,
			StudentId: uuid.New(),
			TeacherId: uuid.New(),
		}, nil)

		_, err := svc.GetMessages(ctx, conversationID)
		assert.ErrorIs(t, err, errdefs.ErrPermissionDenied)
	})
}

// ── SendMessage ─────────────────────────────────────────────────────

func TestSendMessage(t *testing.T) {
	t.Run("Success_EventNamesRecipient", func(t *testing.T) {
		svc, mockConvRepo, _, mockEvents := setupMessaging(t)
		studentID := uuid.New()
		teacherID := uuid.New()
		conversationID := uuid.New()
		ctx := userCtx(studentID, model.RoleStudent)

		mockConvRepo.EXPECT().GetConversation(gomock.Any(), conversationID).Return(&model.Conversation{
			Id:        conversationID,
			StudentId: studentID,
			TeacherId: teacherID,
		}, nil)
		mockConvRepo.EXPECT().CreateMessage(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, input *model.RepositoryCreateMessageInput) (*model.Message, error) {
				assert.Equal(t, studentID, input.SenderId)
				return &model.Message{
					Id:             input.Id,
					ConversationId: input.ConversationId,
					SenderId:       input.SenderId,
					Body:           input.Body,
				}, nil
			})
		mockEvents.EXPECT().Send(gomock.Any(), service.TopicMessageSent, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, message interface{}) error {
				event, ok := message.(*service.MessageSentEvent)
				require.True(t, ok)
				assert.Equal(t, teacherID.String(), event.RecipientId)
				return nil
			})

		message, err := svc.SendMessage(ctx, &model.SendMessageInput{
			ConversationId: conversationID,
			Body:           "salam",
		})
		require.NoError(t, err)
		assert.Equal(t, "salam", message.Body)
	})

	t.Run("EmptyBody", func(t *testing.T) {
		svc, _, _, _ := setupMessaging(t)
		ctx := userCtx(uuid.New(), model.RoleStudent)

		_, err := svc.SendMessage(ctx, &model.SendMessageInput{ConversationId: uuid.New()})
		assert.ErrorIs(t, err, errdefs.ErrValidation)
	})

	t.Run("ThirdPartyDenied", func(t *testing.T) {
		svc, mockConvRepo, _, _ := setupMessaging(t)
		conversationID := uuid.New()
		ctx := userCtx(uuid.New(), model.RoleStudent)

		mockConvRepo.EXPECT().GetConversation(gomock.Any(), conversationID).Return(&model.Conversation{
			Id:        conversationID,
			StudentId: uuid.New(),
			TeacherId: uuid.New(),
		}, nil)

		_, err := svc.SendMessage(ctx, &model.SendMessageInput{
			ConversationId: conversationID,
			Body:           "let me in",
		})
		assert.ErrorIs(t, err, errdefs.ErrPermissionDenied)
	})
}

// ── MarkMessagesRead ────────────────────────────────────────────────

func TestMarkMessagesRead(t *testing.T) {
	t.Run("ParticipantMarksRead", func(t *testing.T) {
		svc, mockConvRepo, _, _ := setupMessaging(t)
		teacherID := uuid.New()
		conversationID := uuid.New()
		ctx := userCtx(teacherID, model.RoleTeacher)

		mockConvRepo.EXPECT().GetConversation(gomock.Any(), conversationID).Return(&model.Conversation{
			Id:        conversationID,
			StudentId: uuid.New(),
			TeacherId: teacherID,
		}, nil)
		mockConvRepo.EXPECT().MarkMessagesRead(gomock.Any(), conversationID, teacherID).Return(nil)

		err := svc.MarkMessagesRead(ctx, conversationID)
		assert.NoError(t, err)
	})

	t.Run("IdempotentWhenNothingUnread", func(t *testing.T) {
		svc, mockConvRepo, _, _ := setupMessaging(t)
		teacherID := uuid.New()
		conversationID := uuid.New()
		ctx := userCtx(teacherID, model.RoleTeacher)

		mockConvRepo.EXPECT().GetConversation(gomock.Any(), conversationID).Return(&model.Conversation{
			Id:        conversationID,
			StudentId: uuid.New(),
			TeacherId: teacherID,
		}, nil).Times(2)
		mockConvRepo.EXPECT().MarkMessagesRead(gomock.Any(), conversationID, teacherID).Return(nil).Times(2)

		require.NoError(t, svc.MarkMessagesRead(ctx, conversationID))
		require.NoError(t, svc.MarkMessagesRead(ctx, conversationID))
	})

	t.Run("ThirdPartyDenied", func(t *testing.T) {
		svc, mockConvRepo, _, _ := setupMessaging(t)
		conversationID := uuid.New()
		ctx := userCtx(uuid.New(), model.RoleTeacher)

		mockConvRepo.EXPECT().GetConversation(gomock.Any(), conversationID).Return(&model.Conversation{
			Id:        conversationID,
			StudentId: uuid.New(),
			TeacherId: uuid.New(),
		}, nil)

		err := svc.MarkMessagesRead(ctx, conversationID)
		assert.ErrorIs(t, err, errdefs.ErrPermissionDenied)
	})
}
