package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/bnema/hostpage/internal/domain"
)

// MockCommandRunner is a mock implementation of out.CommandRunner
type MockCommandRunner struct {
	mock.Mock
}

func (m *MockCommandRunner) Run(ctx context.Context, cmd domain.Command) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}
