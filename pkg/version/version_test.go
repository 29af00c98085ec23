package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet_KeepsDefaultsForEmptyValues(t *testing.T) {
	orig := Get()
	t.Cleanup(func() { version, commit, buildDate = orig.Version, orig.Commit, orig.BuildDate })

	Set("v1.2.3", "", "2026-01-02")

	assert.Equal(t, "v1.2.3", Version())
	assert.Equal(t, orig.Commit, Commit())
	assert.Equal(t, "2026-01-02", BuildDate())
}

func TestGet_ReflectsSet(t *testing.T) {
	orig := Get()
	t.Cleanup(func() { version, commit, buildDate = orig.Version, orig.Commit, orig.BuildDate })

	Set("v2.0.0", "deadbeef", "2026-03-04")

	assert.Equal(t, Info{Version: "v2.0.0", Commit: "deadbeef", BuildDate: "2026-03-04"}, Get())
}

func TestInfo_IsRelease(t *testing.T) {
	tests := []struct {
		version string
		want    bool
	}{
		{"v1.2.3", true},
		{"1.0.0", true},
		{"v2.0.0-rc.1", false},
		{"dev", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			assert.Equal(t, tt.want, Info{Version: tt.version}.IsRelease())
		})
	}
}

func TestInfo_Semver(t *testing.T) {
	v, err := Info{Version: "v1.4.2"}.Semver()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), v.Major())
	assert.Equal(t, uint64(4), v.Minor())

	_, err = Info{Version: "dev"}.Semver()
	assert.Error(t, err)
}

func TestInfo_String(t *testing.T) {
	s := Info{Version: "v1.0.0", Commit: "abc123", BuildDate: "today"}.String()
	assert.Contains(t, s, "hostpage v1.0.0")
	assert.Contains(t, s, "Commit: abc123")
	assert.NotContains(t, s, "development build")

	assert.Contains(t, Info{Version: "dev"}.String(), "development build")
}
