// Package mocks holds testify mocks of the domain interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"vapor.dev/pkg/vapor/internal/domain"
	m "vapor.dev/pkg/vapor/internal/model"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockWorkflow is a mock of domain.Workflow.
type MockWorkflow struct {
	mock.Mock
}

// NewMockWorkflow creates a MockWorkflow whose expectations are asserted
// on cleanup.
func NewMockWorkflow(t testingT) *MockWorkflow {
	mockWorkflow := &MockWorkflow{}
	mockWorkflow.Mock.Test(t)

	t.Cleanup(func() { mockWorkflow.AssertExpectations(t) })

	return mockWorkflow
}

func (_m *MockWorkflow) Compile(ctx context.Context, args domain.CompileArgs) error {
	ret := _m.Called(ctx, args)

	return ret.Error(0)
}

func (_m *MockWorkflow) Classify(ctx context.Context, args domain.ClassifyArgs) error {
	ret := _m.Called(ctx, args)

	return ret.Error(0)
}

func (_m *MockWorkflow) View(ctx context.Context, args domain.ViewArgs) error {
	ret := _m.Called(ctx, args)

	return ret.Error(0)
}

// MockCompiler is a mock of domain.Compiler.
type MockCompiler struct {
	mock.Mock
}

// NewMockCompiler creates a MockCompiler whose expectations are asserted
// on cleanup.
func NewMockCompiler(t testingT) *MockCompiler {
	mockCompiler := &MockCompiler{}
	mockCompiler.Mock.Test(t)

	t.Cleanup(func() { mockCompiler.AssertExpectations(t) })

	return mockCompiler
}

func (_m *MockCompiler) Generate(source m.Source, opts domain.CompileOptions) (m.Artifact, error) {
	ret := _m.Called(source, opts)

	return ret.Get(0).(m.Artifact), ret.Error(1)
}
