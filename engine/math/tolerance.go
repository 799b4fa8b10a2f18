package math

import (
	"fmt"
	m "math"

	"github.com/spaghettifunk/quatkit/engine/core"
)

// Tolerance is the absolute threshold below which two floating point values,
// or all corresponding components of two vectors, matrices or quaternions,
// are considered equal. It is passed explicitly to every comparison.
type Tolerance float64

// DefaultTolerance suits values produced by exact algebra on float64.
const DefaultTolerance Tolerance = 1e-12

// NewTolerance validates v and returns it as a Tolerance.
func NewTolerance(v float64) (Tolerance, error) {
	if v < 0 || m.IsNaN(v) {
		return 0, fmt.Errorf("tolerance %v: %w", v, core.ErrNegativeTolerance)
	}
	return Tolerance(v), nil
}

func (tol Tolerance) Value() float64 {
	return float64(tol)
}

// Equal reports whether |a-b| <= tol.
func (tol Tolerance) Equal(a, b float64) bool {
	return kabs(a-b) <= float64(tol)
}

func (tol Tolerance) equalAll(a, b []float64) bool {
	for i := range a {
		if !tol.Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
