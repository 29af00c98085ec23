package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/bnema/hostpage/internal/domain"
)

// MockContainerRuntime is a mock implementation of out.ContainerRuntime
type MockContainerRuntime struct {
	mock.Mock
}

func (m *MockContainerRuntime) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockContainerRuntime) ListImages(ctx context.Context, reference string) ([]domain.LocalImage, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LocalImage), args.Error(1)
}
