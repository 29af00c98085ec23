package host

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/hostpage/internal/boundaries/out/mocks"
	"github.com/bnema/hostpage/internal/domain"
)

func TestService_Describe(t *testing.T) {
	resolver := new(mocks.MockHostnameResolver)
	resolver.On("Hostname").Return("ip-10-0-1-23", nil)

	svc := NewService(resolver, log.New(io.Discard))

	info, err := svc.Describe(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ip-10-0-1-23", info.Hostname)
	assert.False(t, info.RequestedAt.IsZero())
}

func TestService_Describe_LooksUpEveryCall(t *testing.T) {
	resolver := new(mocks.MockHostnameResolver)
	resolver.On("Hostname").Return("first", nil).Once()
	resolver.On("Hostname").Return("second", nil).Once()

	svc := NewService(resolver, log.New(io.Discard))

	info, err := svc.Describe(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "first", info.Hostname)

	info, err = svc.Describe(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "second", info.Hostname)
	resolver.AssertNumberOfCalls(t, "Hostname", 2)
}

func TestService_Describe_Error(t *testing.T) {
	resolver := new(mocks.MockHostnameResolver)
	resolver.On("Hostname").Return("", errors.New("uname failed"))

	svc := NewService(resolver, log.New(io.Discard))

	info, err := svc.Describe(context.Background())
	assert.Nil(t, info)
	assert.ErrorIs(t, err, domain.ErrHostnameLookup)
}
