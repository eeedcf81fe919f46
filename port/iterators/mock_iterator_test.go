// Produced with `mockgen -destination mock_iterator_test.go -package iterators_test . Iterator`
// against an Iterator[int] instantiation, then made generic over T by hand,
// since mockgen v1.6.0 does not emit type parameters.

package iterators_test

import (
	"reflect"

	"github.com/golang/mock/gomock"

	"go.llib.dev/lazyiter/port/iterators"
)

// MockIterator is a gomock based mock of the Iterator interface.
// It allows tests to assert how many times and in what order a consumer pulls or clones an Iterator.
type MockIterator[T any] struct {
	ctrl     *gomock.Controller
	recorder *MockIteratorMockRecorder[T]
}

// MockIteratorMockRecorder is the mock recorder for MockIterator.
type MockIteratorMockRecorder[T any] struct {
	mock *MockIterator[T]
}

// NewMockIterator creates a new mock instance.
func NewMockIterator[T any](ctrl *gomock.Controller) *MockIterator[T] {
	mock := &MockIterator[T]{ctrl: ctrl}
	mock.recorder = &MockIteratorMockRecorder[T]{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockIterator[T]) EXPECT() *MockIteratorMockRecorder[T] {
	return m.recorder
}

// Iterate mocks base method.
func (m *MockIterator[T]) Iterate() iterators.Iterator[T] {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Iterate")
	ret0, _ := ret[0].(iterators.Iterator[T])
	return ret0
}

// Iterate indicates an expected call of Iterate.
func (mr *MockIteratorMockRecorder[T]) Iterate() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Iterate", reflect.TypeOf((*MockIterator[T])(nil).Iterate))
}

// Next mocks base method.
func (m *MockIterator[T]) Next() (T, bool) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Next")
	ret0, _ := ret[0].(T)
	ret1, _ := ret[1].(bool)
	return ret0, ret1
}

// Next indicates an expected call of Next.
func (mr *MockIteratorMockRecorder[T]) Next() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Next", reflect.TypeOf((*MockIterator[T])(nil).Next))
}

// Err mocks base method.
func (m *MockIterator[T]) Err() error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Err")
	ret0, _ := ret[0].(error)
	return ret0
}

// Err indicates an expected call of Err.
func (mr *MockIteratorMockRecorder[T]) Err() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Err", reflect.TypeOf((*MockIterator[T])(nil).Err))
}

// Clone mocks base method.
func (m *MockIterator[T]) Clone() (iterators.Iterator[T], error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Clone")
	ret0, _ := ret[0].(iterators.Iterator[T])
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Clone indicates an expected call of Clone.
func (mr *MockIteratorMockRecorder[T]) Clone() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Clone", reflect.TypeOf((*MockIterator[T])(nil).Clone))
}
