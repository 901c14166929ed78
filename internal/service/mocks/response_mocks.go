package mocks

import (
	"context"
	"reflect"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	"tuitionhub/internal/model"
)

type MockResponseRepository struct {
	ctrl     *gomock.Controller
	recorder *MockResponseRepositoryMockRecorder
}

type MockResponseRepositoryMockRecorder struct {
	mock *MockResponseRepository
}

func NewMockResponseRepository(ctrl *gomock.Controller) *MockResponseRepository {
	mock := &MockResponseRepository{ctrl: ctrl}
	mock.recorder = &MockResponseRepositoryMockRecorder{mock}
	return mock
}

func (m *MockResponseRepository) EXPECT() *MockResponseRepositoryMockRecorder {
	return m.recorder
}

func (m *MockResponseRepository) CreateResponse(ctx context.Context, input *model.RepositoryCreateResponseInput) (*model.Response, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateResponse", ctx, input)
	ret0, _ := ret[0].(*model.Response)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockResponseRepositoryMockRecorder) CreateResponse(ctx, input interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateResponse", reflect.TypeOf((*MockResponseRepository)(nil).CreateResponse), ctx, input)
}

func (m *MockResponseRepository) GetResponse(ctx context.Context, id uuid.UUID) (*model.Response, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetResponse", ctx, id)
	ret0, _ := ret[0].(*model.Response)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockResponseRepositoryMockRecorder) GetResponse(ctx, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetResponse", reflect.TypeOf((*MockResponseRepository)(nil).GetResponse), ctx, id)
}

func (m *MockResponseRepository) ListResponsesByPost(ctx context.Context, postID uuid.UUID) ([]*model.ResponseListing, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListResponsesByPost", ctx, postID)
	ret0, _ := ret[0].([]*model.ResponseListing)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockResponseRepositoryMockRecorder) ListResponsesByPost(ctx, postID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListResponsesByPost", reflect.TypeOf((*MockResponseRepository)(nil).ListResponsesByPost), ctx, postID)
}

func (m *MockResponseRepository) HasResponded(ctx context.Context, postID, teacherID uuid.UUID) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "HasResponded", ctx, postID, teacherID)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockResponseRepositoryMockRecorder) HasResponded(ctx, postID, teacherID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "HasResponded", reflect.TypeOf((*MockResponseRepository)(nil).HasResponded), ctx, postID, teacherID)
}

func (m *MockResponseRepository) ListPostsByTeacher(ctx context.Context, teacherID uuid.UUID) ([]*model.PostListing, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListPostsByTeacher", ctx, teacherID)
	ret0, _ := ret[0].([]*model.PostListing)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockResponseRepositoryMockRecorder) ListPostsByTeacher(ctx, teacherID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListPostsByTeacher", reflect.TypeOf((*MockResponseRepository)(nil).ListPostsByTeacher), ctx, teacherID)
}

func (m *MockResponseRepository) UpdateResponseStatus(ctx context.Context, id uuid.UUID, status model.ResponseStatus) (*model.Response, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateResponseStatus", ctx, id, status)
	ret0, _ := ret[0].(*model.Response)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockResponseRepositoryMockRecorder) UpdateResponseStatus(ctx, id, status interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateResponseStatus", reflect.TypeOf((*MockResponseRepository)(nil).UpdateResponseStatus), ctx, id, status)
}
