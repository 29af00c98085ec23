package mocks

import "github.com/stretchr/testify/mock"

// MockHostnameResolver is a mock implementation of out.HostnameResolver
type MockHostnameResolver struct {
	mock.Mock
}

func (m *MockHostnameResolver) Hostname() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}
