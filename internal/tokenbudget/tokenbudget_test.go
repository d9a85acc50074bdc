package tokenbudget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimatorCount(t *testing.T) {
	est, err := NewEstimator()
	require.NoError(t, err)

	assert.Equal(t, 0, est.Count(""))
	assert.Greater(t, est.Count("hello world"), 0)
}
