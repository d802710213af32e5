// Package mocks provides testify mocks for the subscriber use case ports.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/allisson/mailinglist/internal/subscriber/domain"
)

// MockSubscriberRepository is a mock implementation of usecase.SubscriberRepository.
type MockSubscriberRepository struct {
	mock.Mock
}

// MockSubscriberRepository_Expecter provides typed expectation helpers.
type MockSubscriberRepository_Expecter struct {
	mock *mock.Mock
}

// EXPECT returns the typed expecter.
func (_m *MockSubscriberRepository) EXPECT() *MockSubscriberRepository_Expecter {
	return &MockSubscriberRepository_Expecter{mock: &_m.Mock}
}

// Add mocks the Add method.
func (_m *MockSubscriberRepository) Add(ctx context.Context, user domain.UserData) error {
	ret := _m.Called(ctx, user)

	if len(ret) == 0 {
		panic("no return value specified for Add")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.UserData) error); ok {
		r0 = rf(ctx, user)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockSubscriberRepository_Add_Call wraps mock.Call for Add.
type MockSubscriberRepository_Add_Call struct {
	*mock.Call
}

// Add registers an expectation for Add.
func (_e *MockSubscriberRepository_Expecter) Add(ctx interface{}, user interface{}) *MockSubscriberRepository_Add_Call {
	return &MockSubscriberRepository_Add_Call{Call: _e.mock.On("Add", ctx, user)}
}

// Run sets a handler invoked with the call arguments.
func (_c *MockSubscriberRepository_Add_Call) Run(
	run func(ctx context.Context, user domain.UserData),
) *MockSubscriberRepository_Add_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.UserData))
	})
	return _c
}

// Return sets the return value.
func (_c *MockSubscriberRepository_Add_Call) Return(_a0 error) *MockSubscriberRepository_Add_Call {
	_c.Call.Return(_a0)
	return _c
}

// RunAndReturn sets a function computing the return value.
func (_c *MockSubscriberRepository_Add_Call) RunAndReturn(
	run func(context.Context, domain.UserData) error,
) *MockSubscriberRepository_Add_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockSubscriberRepository creates a mock and registers expectation assertions on cleanup.
func NewMockSubscriberRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSubscriberRepository {
	m := &MockSubscriberRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
