package system

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHostname_MatchesOS(t *testing.T) {
	want, err := os.Hostname()
	require.NoError(t, err)

	got, err := NewHostname().Hostname()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
