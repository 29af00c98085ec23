package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/bnema/hostpage/internal/domain"
)

// MockHostService is a mock implementation of in.HostService
type MockHostService struct {
	mock.Mock
}

func (m *MockHostService) Describe(ctx context.Context) (*domain.HostInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HostInfo), args.Error(1)
}
