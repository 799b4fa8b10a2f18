package math

import (
	"fmt"
	m "math"
	"strconv"
	"strings"

	"github.com/spaghettifunk/quatkit/engine/core"
)

// parseComponents splits a comma separated list of finite floats. The empty
// string yields no components.
func parseComponents(s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]float64, len(parts))
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil || m.IsNaN(f) || m.IsInf(f, 0) {
			return nil, fmt.Errorf("component %d of %q: %w", i, s, core.ErrParse)
		}
		out[i] = f
	}
	return out, nil
}

func formatComponents(values ...float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}

// expand maps 0, 1 or n values onto n components: nothing is zero, a single
// value is broadcast.
func expand(values []float64, n int, what string) ([]float64, error) {
	out := make([]float64, n)
	switch len(values) {
	case 0:
	case 1:
		for i := range out {
			out[i] = values[0]
		}
	case n:
		copy(out, values)
	default:
		return nil, fmt.Errorf("%s from %d values: %w", what, len(values), core.ErrInvalidArity)
	}
	return out, nil
}
