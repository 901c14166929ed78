package mocks

import (
	"context"
	"reflect"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	"tuitionhub/internal/model"
)

type MockProfileRepository struct {
	ctrl     *gomock.Controller
	recorder *MockProfileRepositoryMockRecorder
}

type MockProfileRepositoryMockRecorder struct {
	mock *MockProfileRepository
}

func NewMockProfileRepository(ctrl *gomock.Controller) *MockProfileRepository {
	mock := &MockProfileRepository{ctrl: ctrl}
	mock.recorder = &MockProfileRepositoryMockRecorder{mock}
	return mock
}

func (m *MockProfileRepository) EXPECT() *MockProfileRepositoryMockRecorder {
	return m.recorder
}

func (m *MockProfileRepository) UpsertStudentProfile(ctx context.Context, input *model.RepositoryUpsertStudentProfileInput) (*model.StudentProfile, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpsertStudentProfile", ctx, input)
	ret0, _ := ret[0].(*model.StudentProfile)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockProfileRepositoryMockRecorder) UpsertStudentProfile(ctx, input interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpsertStudentProfile", reflect.TypeOf((*MockProfileRepository)(nil).UpsertStudentProfile), ctx, input)
}

func (m *MockProfileRepository) GetStudentProfile(ctx context.Context, userID uuid.UUID) (*model.StudentProfile, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetStudentProfile", ctx, userID)
	ret0, _ := ret[0].(*model.StudentProfile)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockProfileRepositoryMockRecorder) GetStudentProfile(ctx, userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetStudentProfile", reflect.TypeOf((*MockProfileRepository)(nil).GetStudentProfile), ctx, userID)
}

func (m *MockProfileRepository) UpsertTeacherProfile(ctx context.Context, input *model.RepositoryUpsertTeacherProfileInput) (*model.TeacherProfile, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpsertTeacherProfile", ctx, input)
	ret0, _ := ret[0].(*model.TeacherProfile)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockProfileRepositoryMockRecorder) UpsertTeacherProfile(ctx, input interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpsertTeacherProfile", reflect.TypeOf((*MockProfileRepository)(nil).UpsertTeacherProfile), ctx, input)
}

func (m *MockProfileRepository) GetTeacherProfile(ctx context.Context, userID uuid.UUID) (*model.TeacherProfile, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetTeacherProfile", ctx, userID)
	ret0, _ := ret[0].(*model.TeacherProfile)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockProfileRepositoryMockRecorder) GetTeacherProfile(ctx, userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetTeacherProfile", reflect.TypeOf((*MockProfileRepository)(nil).GetTeacherProfile), ctx, userID)
}
