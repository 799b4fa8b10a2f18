package math

import (
	"errors"
	m "math"
	"testing"

	"github.com/spaghettifunk/quatkit/engine/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTolerance(t *testing.T) {
	tol, err := NewTolerance(1e-6)
	require.NoError(t, err)
	assert.Equal(t, 1e-6, tol.Value())

	zero, err := NewTolerance(0)
	require.NoError(t, err)
	assert.True(t, zero.Equal(1.5, 1.5))
	assert.False(t, zero.Equal(1.5, 1.5+1e-15))

	_, err = NewTolerance(-1e-9)
	assert.True(t, errors.Is(err, core.ErrNegativeTolerance))
	_, err = NewTolerance(m.NaN())
	assert.True(t, errors.Is(err, core.ErrNegativeTolerance))
}

func TestToleranceIsPerComparison(t *testing.T) {
	a := NewQuat(1, 0, 0, 0)
	b := NewQuat(1+5e-7, 0, 0, 0)

	assert.True(t, a.Compare(b, 1e-6))
	assert.False(t, a.Compare(b, 1e-7))
	assert.True(t, a.Compare(b, 1e-6))

	assert.True(t, Tolerance(0.5).Equal(1, 1.5))
	assert.False(t, Tolerance(0.5).Equal(1, 1.6))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 1.0, Clamp(1.0000000001, -1.0, 1.0))
	assert.Equal(t, -1.0, Clamp(-3.0, -1.0, 1.0))
	assert.Equal(t, 3, Clamp(3, 0, 5))
	assert.InDelta(t, K_PI, DegToRad(180), 1e-12)
	assert.InDelta(t, 90.0, RadToDeg(K_HALF_PI), 1e-12)
}
