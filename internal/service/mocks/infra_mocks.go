package mocks

import (
	"context"
	"reflect"

	"go.uber.org/mock/gomock"
)

type MockEventProducer struct {
	ctrl     *gomock.Controller
	recorder *MockEventProducerMockRecorder
}

type MockEventProducerMockRecorder struct {
	mock *MockEventProducer
}

func NewMockEventProducer(ctrl *gomock.Controller) *MockEventProducer {
	mock := &MockEventProducer{ctrl: ctrl}
	mock.recorder = &MockEventProducerMockRecorder{mock}
	return mock
}

func (m *MockEventProducer) EXPECT() *MockEventProducerMockRecorder {
	return m.recorder
}

func (m *MockEventProducer) Send(ctx context.Context, topic string, message interface{}) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Send", ctx, topic, message)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockEventProducerMockRecorder) Send(ctx, topic, message interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Send", reflect.TypeOf((*MockEventProducer)(nil).Send), ctx, topic, message)
}

type MockAvatarStore struct {
	ctrl     *gomock.Controller
	recorder *MockAvatarStoreMockRecorder
}

type MockAvatarStoreMockRecorder struct {
	mock *MockAvatarStore
}

func NewMockAvatarStore(ctrl *gomock.Controller) *MockAvatarStore {
	mock := &MockAvatarStore{ctrl: ctrl}
	mock.recorder = &MockAvatarStoreMockRecorder{mock}
	return mock
}

func (m *MockAvatarStore) EXPECT() *MockAvatarStoreMockRecorder {
	return m.recorder
}

func (m *MockAvatarStore) Put(ctx context.Context, key string, data []byte) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Put", ctx, key, data)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockAvatarStoreMockRecorder) Put(ctx, key, data interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Put", reflect.TypeOf((*MockAvatarStore)(nil).Put), ctx, key, data)
}

func (m *MockAvatarStore) Locator(key string) string {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Locator", key)
	ret0, _ := ret[0].(string)
	return ret0
}

func (mr *MockAvatarStoreMockRecorder) Locator(key interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Locator", reflect.TypeOf((*MockAvatarStore)(nil).Locator), key)
}
