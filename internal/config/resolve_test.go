package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSizeLimitDefault(t *testing.T) {
	got, err := ResolveSizeLimit("")
	require.NoError(t, err)
	assert.Equal(t, DefaultSizeLimitBytes, got)
}

func TestResolveSizeLimitEnvOverridesDefault(t *testing.T) {
	t.Setenv(EnvMaxSizeBytes, "50MB")
	got, err := ResolveSizeLimit("")
	require.NoError(t, err)
	assert.Equal(t, int64(50*1024*1024), got)
}

func TestResolveSizeLimitFlagOverridesEnv(t *testing.T) {
	t.Setenv(EnvMaxSizeBytes, "50MB")
	got, err := ResolveSizeLimit("10MB")
	require.NoError(t, err)
	assert.Equal(t, int64(10*1024*1024), got)
}

func TestResolveSizeLimitInvalidFlag(t *testing.T) {
	_, err := ResolveSizeLimit("not-a-size")
	assert.Error(t, err)
}
