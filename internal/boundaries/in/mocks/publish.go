package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/bnema/hostpage/internal/domain"
)

// MockPublishService is a mock implementation of in.PublishService
type MockPublishService struct {
	mock.Mock
}

func (m *MockPublishService) Plan() []domain.Step {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.Step)
}

func (m *MockPublishService) Publish(ctx context.Context) (*domain.PublishReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PublishReport), args.Error(1)
}
