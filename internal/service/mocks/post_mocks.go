package mocks

import (
	"context"
	"reflect"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	"tuitionhub/internal/model"
)

type MockPostRepository struct {
	ctrl     *gomock.Controller
	recorder *MockPostRepositoryMockRecorder
}

type MockPostRepositoryMockRecorder struct {
	mock *MockPostRepository
}

func NewMockPostRepository(ctrl *gomock.Controller) *MockPostRepository {
	mock := &MockPostRepository{ctrl: ctrl}
	mock.recorder = &MockPostRepositoryMockRecorder{mock}
	return mock
}

func (m *MockPostRepository) EXPECT() *MockPostRepositoryMockRecorder {
	return m.recorder
}

func (m *MockPostRepository) CreatePost(ctx context.Context, input *model.RepositoryCreatePostInput) (*model.TuitionPost, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreatePost", ctx, input)
	ret0, _ := ret[0].(*model.TuitionPost)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockPostRepositoryMockRecorder) CreatePost(ctx, input interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreatePost", reflect.TypeOf((*MockPostRepository)(nil).CreatePost), ctx, input)
}

func (m *MockPostRepository) GetPost(ctx context.Context, id uuid.UUID) (*model.TuitionPost, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetPost", ctx, id)
	ret0, _ := ret[0].(*model.TuitionPost)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockPostRepositoryMockRecorder) GetPost(ctx, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetPost", reflect.TypeOf((*MockPostRepository)(nil).GetPost), ctx, id)
}

func (m *MockPostRepository) ListOpenPosts(ctx context.Context) ([]*model.PostListing, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListOpenPosts", ctx)
	ret0, _ := ret[0].([]*model.PostListing)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockPostRepositoryMockRecorder) ListOpenPosts(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListOpenPosts", reflect.TypeOf((*MockPostRepository)(nil).ListOpenPosts), ctx)
}

func (m *MockPostRepository) ListPostsByStudent(ctx context.Context, studentID uuid.UUID) ([]*model.PostListing, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListPostsByStudent", ctx, studentID)
	ret0, _ := ret[0].([]*model.PostListing)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockPostRepositoryMockRecorder) ListPostsByStudent(ctx, studentID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListPostsByStudent", reflect.TypeOf((*MockPostRepository)(nil).ListPostsByStudent), ctx, studentID)
}

func (m *MockPostRepository) UpdatePost(ctx context.Context, id uuid.UUID, input *model.RepositoryUpdatePostInput) (*model.TuitionPost, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdatePost", ctx, id, input)
	ret0, _ := ret[0].(*model.TuitionPost)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockPostRepositoryMockRecorder) UpdatePost(ctx, id, input interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdatePost", reflect.TypeOf((*MockPostRepository)(nil).UpdatePost), ctx, id, input)
}

func (m *MockPostRepository) UpdatePostStatus(ctx context.Context, id uuid.UUID, status model.PostStatus) (*model.TuitionPost, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdatePostStatus", ctx, id, status)
	ret0, _ := ret[0].(*model.TuitionPost)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockPostRepositoryMockRecorder) UpdatePostStatus(ctx, id, status interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdatePostStatus", reflect.TypeOf((*MockPostRepository)(nil).UpdatePostStatus), ctx, id, status)
}

func (m *MockPostRepository) DeletePost(ctx context.Context, id uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeletePost", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockPostRepositoryMockRecorder) DeletePost(ctx, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeletePost", reflect.TypeOf((*MockPostRepository)(nil).DeletePost), ctx, id)
}
