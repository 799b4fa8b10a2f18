package math

// Below this value of sin(angle) the two quaternions are treated as parallel
// (or antiparallel) and the slerp weights are not computed.
const slerpEpsilon = 1e-9

type slerpOptions struct {
	shortest bool
}

// SlerpOption tunes Slerp.
type SlerpOption func(*slerpOptions)

// WithShortestPath selects whether Slerp may flip the sign of the target
// quaternion to travel along the shorter arc. It is enabled by default.
func WithShortestPath(shortest bool) SlerpOption {
	return func(o *slerpOptions) {
		o.shortest = shortest
	}
}

/**
 * @brief Spherical linear interpolation between the unit quaternions a and b.
 * Slerp(0, a, b) is a and Slerp(1, a, b) is b (or -b when the shortest path
 * flipped it, which is the same rotation).
 *
 * @param t The interpolation parameter, typically a value from 0.0-1.0.
 * @param a The start quaternion.
 * @param b The end quaternion.
 * @return An interpolated quaternion, never NaN for finite unit inputs.
 */
func Slerp(t float64, a, b Quaternion, options ...SlerpOption) Quaternion {
	opts := &slerpOptions{shortest: true}
	for _, o := range options {
		o(opts)
	}

	ca := a.Dot(b)
	if opts.shortest && ca < 0 {
		b = b.Neg()
		ca = -ca
	}
	// Rounding can push the dot product of unit quaternions slightly past 1.
	ca = Clamp(ca, -1.0, 1.0)

	omega := kacos(ca)
	so := ksin(omega)
	if kabs(so) <= slerpEpsilon {
		if ca > 0 {
			return nlerp(t, a, b)
		}
		// Antiparallel along the long arc: every great circle through a and
		// -a is valid, pick the one through a quaternion perpendicular to a.
		p := Quaternion{-a.X, a.W, -a.Z, a.Y}
		angle := K_PI * t
		return a.MulScalar(kcos(angle)).Add(p.MulScalar(ksin(angle)))
	}

	wa := ksin(omega*(1.0-t)) / so
	wb := ksin(omega*t) / so
	return a.MulScalar(wa).Add(b.MulScalar(wb))
}

// nlerp interpolates linearly and renormalizes. Only used for nearly
// identical inputs, so the sum never vanishes.
func nlerp(t float64, a, b Quaternion) Quaternion {
	q := a.MulScalar(1.0 - t).Add(b.MulScalar(t))
	n, err := q.Normalize()
	if err != nil {
		return a
	}
	return n
}

/**
 * @brief Spherical cubic interpolation. a and d are the endpoints, b and c
 * the inner control quaternions (see SquadControlPoint).
 * Squad(0, ...) is a and Squad(1, ...) is d.
 */
func Squad(t float64, a, b, c, d Quaternion) Quaternion {
	return Slerp(2.0*t*(1.0-t), Slerp(t, a, d), Slerp(t, b, c))
}

// SquadControlPoint computes the inner control quaternion for the keyframe
// cur from its neighbours:
//
//	cur * exp(-(log(cur⁻¹ next) + log(cur⁻¹ prev)) / 4)
//
// All three must be unit quaternions in the same hemisphere.
func SquadControlPoint(prev, cur, next Quaternion) (Quaternion, error) {
	inv, err := cur.Inverse()
	if err != nil {
		return Quaternion{}, err
	}
	ln, err := inv.Mul(next).Log()
	if err != nil {
		return Quaternion{}, err
	}
	lp, err := inv.Mul(prev).Log()
	if err != nil {
		return Quaternion{}, err
	}
	return cur.Mul(ln.Add(lp).MulScalar(-0.25).Exp()), nil
}
