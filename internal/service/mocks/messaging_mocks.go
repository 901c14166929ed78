package mocks

import (
	"context"
	"reflect"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	"tuitionhub/internal/model"
)

type MockConversationRepository struct {
	ctrl     *gomock.Controller
	recorder *MockConversationRepositoryMockRecorder
}

type MockConversationRepositoryMockRecorder struct {
	mock *MockConversationRepository
}

func NewMockConversationRepository(ctrl *gomock.Controller) *MockConversationRepository {
	mock := &MockConversationRepository{ctrl: ctrl}
	mock.recorder = &MockConversationRepositoryMockRecorder{mock}
	return mock
}

func (m *MockConversationRepository) EXPECT() *MockConversationRepositoryMockRecorder {
	return m.recorder
}

func (m *MockConversationRepository) CreateOrGetConversation(ctx context.Context, input *model.RepositoryCreateConversationInput) (*model.Conversation, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateOrGetConversation", ctx, input)
	ret0, _ := ret[0].(*model.Conversation)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockConversationRepositoryMockRecorder) CreateOrGetConversation(ctx, input interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateOrGetConversation", reflect.TypeOf((*MockConversationRepository)(nil).CreateOrGetConversation), ctx, input)
}

func (m *MockConversationRepository) GetConversation(ctx context.Context, id uuid.UUID) (*model.Conversation, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetConversation", ctx, id)
	ret0, _ := ret[0].(*model.Conversation)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockConversationRepositoryMockRecorder) GetConversation(ctx, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetConversation", reflect.TypeOf((*MockConversationRepository)(nil).GetConversation), ctx, id)
}

func (m *MockConversationRepository) ListConversationsByUser(ctx context.Context, userID uuid.UUID) ([]*model.ConversationListing, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListConversationsByUser", ctx, userID)
	ret0, _ := ret[0].([]*model.ConversationListing)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockConversationRepositoryMockRecorder) ListConversationsByUser(ctx, userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListConversationsByUser", reflect.TypeOf((*MockConversationRepository)(nil).ListConversationsByUser), ctx, userID)
}

func (m *MockConversationRepository) CreateMessage(ctx context.Context, input *model.RepositoryCreateMessageInput) (*model.Message, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateMessage", ctx, input)
	ret0, _ := ret[0].(*model.Message)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockConversationRepositoryMockRecorder) CreateMessage(ctx, input interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateMessage", reflect.TypeOf((*MockConversationRepository)(nil).CreateMessage), ctx, input)
}

func (m *MockConversationRepository) ListMessages(ctx context.Context, conversationID uuid.UUID) ([]*model.MessageListing, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListMessages", ctx, conversationID)
	ret0, _ := ret[0].([]*model.MessageListing)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockConversationRepositoryMockRecorder) ListMessages(ctx, conversationID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListMessages", reflect.TypeOf((*MockConversationRepository)(nil).ListMessages), ctx, conversationID)
}

func (m *MockConversationRepository) MarkMessagesRead(ctx context.Context, conversationID, readerID uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MarkMessagesRead", ctx, conversationID, readerID)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockConversationRepositoryMockRecorder) MarkMessagesRead(ctx, conversationID, readerID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MarkMessagesRead", reflect.TypeOf((*MockConversationRepository)(nil).MarkMessagesRead), ctx, conversationID, readerID)
}
