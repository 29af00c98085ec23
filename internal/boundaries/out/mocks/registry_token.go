package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockRegistryPasswordProvider is a mock implementation of out.RegistryPasswordProvider
type MockRegistryPasswordProvider struct {
	mock.Mock
}

func (m *MockRegistryPasswordProvider) Password(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}
