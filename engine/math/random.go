package math

import (
	m "math"

	"golang.org/x/exp/rand"
)

// RandomRotation returns a unit quaternion uniformly distributed over all
// rotations (Shoemake's subgroup algorithm).
func RandomRotation(r *rand.Rand) Quaternion {
	u1, u2, u3 := r.Float64(), r.Float64(), r.Float64()
	a := ksqrt(1.0 - u1)
	b := ksqrt(u1)
	t2 := K_PI_2 * u2
	t3 := K_PI_2 * u3
	return Quaternion{
		W: b * kcos(t3),
		X: a * ksin(t2),
		Y: a * kcos(t2),
		Z: b * ksin(t3),
	}
}

// RandomAxis returns a uniformly distributed unit vector.
func RandomAxis(r *rand.Rand) Vec3 {
	z := 2.0*r.Float64() - 1.0
	phi := K_PI_2 * r.Float64()
	s := m.Sqrt(1.0 - z*z)
	return Vec3{s * kcos(phi), s * ksin(phi), z}
}
