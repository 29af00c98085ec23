package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/bnema/hostpage/internal/domain"
)

// MockImageService is a mock implementation of in.ImageService
type MockImageService struct {
	mock.Mock
}

func (m *MockImageService) ListLocal(ctx context.Context) ([]domain.LocalImage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LocalImage), args.Error(1)
}

func (m *MockImageService) Preflight(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
