package testbed

import (
	"fmt"
	"strconv"

	"github.com/spaghettifunk/quatkit/engine/core"
	"github.com/spaghettifunk/quatkit/engine/math"
)

// unitQuat parses a quaternion argument and normalizes it, warning when the
// input was not already a unit quaternion.
func unitQuat(arg string, tol math.Tolerance) (math.Quaternion, error) {
	q, err := math.NewQuatFromString(arg)
	if err != nil {
		return math.Quaternion{}, fmt.Errorf("quaternion %q: %w", arg, err)
	}
	n, err := q.Normalize()
	if err != nil {
		return math.Quaternion{}, fmt.Errorf("quaternion %q: %w", arg, err)
	}
	if !tol.Equal(q.Norm(), 1.0) {
		core.LogWarn("quaternion %s is not a unit quaternion, using %s", q, n)
	}
	return n, nil
}

func parseFloat(arg, what string) (float64, error) {
	f, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, fmt.Errorf("%s %q: %w", what, arg, core.ErrParse)
	}
	return f, nil
}

func describe(q math.Quaternion) string {
	angle, axis, err := q.ToAngleAxis()
	if err != nil {
		return q.String()
	}
	return fmt.Sprintf("%s (%g deg about %s)", q, math.RadToDeg(angle), axis)
}
