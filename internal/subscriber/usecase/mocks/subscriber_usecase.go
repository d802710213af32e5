package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/allisson/mailinglist/internal/subscriber/domain"
)

// MockSubscriberUseCase is a mock implementation of usecase.SubscriberUseCase.
type MockSubscriberUseCase struct {
	mock.Mock
}

// MockSubscriberUseCase_Expecter provides typed expectation helpers.
type MockSubscriberUseCase_Expecter struct {
	mock *mock.Mock
}

// EXPECT returns the typed expecter.
func (_m *MockSubscriberUseCase) EXPECT() *MockSubscriberUseCase_Expecter {
	return &MockSubscriberUseCase_Expecter{mock: &_m.Mock}
}

// Register mocks the Register method.
func (_m *MockSubscriberUseCase) Register(ctx context.Context, data domain.UserData) (domain.UserData, error) {
	ret := _m.Called(ctx, data)

	if len(ret) == 0 {
		panic("no return value specified for Register")
	}

	if rf, ok := ret.Get(0).(func(context.Context, domain.UserData) (domain.UserData, error)); ok {
		return rf(ctx, data)
	}

	var r0 domain.UserData
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(domain.UserData)
	}

	return r0, ret.Error(1)
}

// MockSubscriberUseCase_Register_Call wraps mock.Call for Register.
type MockSubscriberUseCase_Register_Call struct {
	*mock.Call
}

// Register registers an expectation for Register.
func (_e *MockSubscriberUseCase_Expecter) Register(ctx interface{}, data interface{}) *MockSubscriberUseCase_Register_Call {
	return &MockSubscriberUseCase_Register_Call{Call: _e.mock.On("Register", ctx, data)}
}

// Run sets a handler invoked with the call arguments.
func (_c *MockSubscriberUseCase_Register_Call) Run(
	run func(ctx context.Context, data domain.UserData),
) *MockSubscriberUseCase_Register_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.UserData))
	})
	return _c
}

// Return sets the return values.
func (_c *MockSubscriberUseCase_Register_Call) Return(
	_a0 domain.UserData,
	_a1 error,
) *MockSubscriberUseCase_Register_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

// RunAndReturn sets a function computing the return values.
func (_c *MockSubscriberUseCase_Register_Call) RunAndReturn(
	run func(context.Context, domain.UserData) (domain.UserData, error),
) *MockSubscriberUseCase_Register_Call {
	_c.Call.Return(run, nil)
	return _c
}

// NewMockSubscriberUseCase creates a mock and registers expectation assertions on cleanup.
func NewMockSubscriberUseCase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSubscriberUseCase {
	m := &MockSubscriberUseCase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
