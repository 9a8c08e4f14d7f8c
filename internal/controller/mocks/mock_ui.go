// Package mocks holds testify mocks of the controller interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	m "vapor.dev/pkg/vapor/internal/model"
)

// MockUI is a mock of controller.UI.
type MockUI struct {
	mock.Mock
}

// NewMockUI creates a MockUI whose expectations are asserted on cleanup.
func NewMockUI(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUI {
	mockUI := &MockUI{}
	mockUI.Mock.Test(t)

	t.Cleanup(func() { mockUI.AssertExpectations(t) })

	return mockUI
}

func (_m *MockUI) DisplayCompileResults(ctx context.Context, artifacts []m.Artifact) error {
	ret := _m.Called(ctx, artifacts)

	return ret.Error(0)
}

func (_m *MockUI) DisplayClassifications(ctx context.Context, rows []m.Classification) error {
	ret := _m.Called(ctx, rows)

	return ret.Error(0)
}

func (_m *MockUI) DisplayCode(ctx context.Context, title, code string) error {
	ret := _m.Called(ctx, title, code)

	return ret.Error(0)
}
