package math

import (
	"fmt"
	m "math"

	"github.com/spaghettifunk/quatkit/engine/core"
)

// NewQuatFromMat3 expands around w only while trace+1 is at least this value,
// which keeps w >= 0.5. Below it a diagonal expansion is used.
const fromMatTraceThreshold = 1.0

// ------------------------------------------
// Quaternion
// ------------------------------------------

/**
 * @brief Creates a quaternion with all components set to zero.
 */
func NewQuatZero() Quaternion {
	return Quaternion{}
}

/**
 * @brief Creates an identity quaternion.
 *
 * @return An identity quaternion.
 */
func NewQuatIdentity() Quaternion {
	return Quaternion{1.0, 0, 0, 0}
}

/**
 * @brief Creates the quaternion (s, 0, 0, 0).
 */
func NewQuatScalar(s float64) Quaternion {
	return Quaternion{s, 0, 0, 0}
}

/**
 * @brief Creates a quaternion from its scalar part w and vector part (x, y, z).
 */
func NewQuat(w, x, y, z float64) Quaternion {
	return Quaternion{W: w, X: x, Y: y, Z: z}
}

// NewQuatCopy returns an independent copy of q.
func NewQuatCopy(q Quaternion) Quaternion {
	c := q
	return c
}

// NewQuatFromSlice accepts no values (zero quaternion), one value (scalar) or
// four values in w,x,y,z order. Any other count is core.ErrInvalidArity.
func NewQuatFromSlice(values []float64) (Quaternion, error) {
	switch len(values) {
	case 0:
		return NewQuatZero(), nil
	case 1:
		return NewQuatScalar(values[0]), nil
	case 4:
		return NewQuat(values[0], values[1], values[2], values[3]), nil
	default:
		return Quaternion{}, fmt.Errorf("quaternion from %d values: %w", len(values), core.ErrInvalidArity)
	}
}

// NewQuatFromString parses "w,x,y,z". The empty string is the zero quaternion
// and a single number is a scalar quaternion. Non-numeric tokens yield
// core.ErrParse, any other number of components core.ErrInvalidArity.
func NewQuatFromString(s string) (Quaternion, error) {
	values, err := parseComponents(s)
	if err != nil {
		return Quaternion{}, err
	}
	return NewQuatFromSlice(values)
}

/**
 * @brief Creates a quaternion from the given angle and axis.
 * Only the direction of axis matters. A zero axis or a zero angle gives the
 * identity.
 *
 * @param angle The angle of rotation in radians.
 * @param axis The axis of rotation.
 * @return A new unit quaternion.
 */
func NewQuatFromAngleAxis(angle float64, axis Vec3) Quaternion {
	n, err := axis.Normalize()
	if err != nil || angle == 0 {
		return NewQuatIdentity()
	}
	half_angle := 0.5 * angle
	s := ksin(half_angle)
	c := kcos(half_angle)
	return Quaternion{c, s * n.X, s * n.Y, s * n.Z}
}

/**
 * @brief Converts a rotation matrix to a quaternion.
 *
 * When the trace is non-negative the quaternion is expanded around w, otherwise
 * around the component matching the largest diagonal entry, so the divisor is
 * always bounded away from zero. The sign of the result is fixed by the branch
 * taken: w >= 0 in the first branch, the expanded component > 0 in the others.
 *
 * @param mt A rotation matrix.
 * @return A unit quaternion for the same rotation.
 */
func NewQuatFromMat3(mt Mat3) Quaternion {
	d := mt.Data
	d1, d2, d3 := d[0], d[4], d[8]
	t := d1 + d2 + d3 + 1.0

	q := Quaternion{}
	switch {
	case t >= fromMatTraceThreshold:
		s := 0.5 / ksqrt(t)
		q.W = 0.25 / s
		q.X = (d[7] - d[5]) * s
		q.Y = (d[2] - d[6]) * s
		q.Z = (d[3] - d[1]) * s
	case d1 >= d2 && d1 >= d3:
		s := ksqrt(1.0+d1-d2-d3) * 2.0
		q.X = 0.25 * s
		q.W = (d[7] - d[5]) / s
		q.Y = (d[1] + d[3]) / s
		q.Z = (d[2] + d[6]) / s
	case d2 >= d3:
		s := ksqrt(1.0+d2-d1-d3) * 2.0
		q.Y = 0.25 * s
		q.W = (d[2] - d[6]) / s
		q.X = (d[1] + d[3]) / s
		q.Z = (d[5] + d[7]) / s
	default:
		s := ksqrt(1.0+d3-d1-d2) * 2.0
		q.Z = 0.25 * s
		q.W = (d[3] - d[1]) / s
		q.X = (d[2] + d[6]) / s
		q.Y = (d[5] + d[7]) / s
	}
	return q
}

// NewQuatFromMat4 converts the rotation held in the upper-left block of mt.
func NewQuatFromMat4(mt Mat4) Quaternion {
	return NewQuatFromMat3(mt.Mat3())
}

// Vector returns the vector part (x, y, z).
func (q Quaternion) Vector() Vec3 {
	return Vec3{q.X, q.Y, q.Z}
}

func (q Quaternion) ToVec4() Vec4 {
	return Vec4{q.X, q.Y, q.Z, q.W}
}

func (q Quaternion) Add(other Quaternion) Quaternion {
	return Quaternion{q.W + other.W, q.X + other.X, q.Y + other.Y, q.Z + other.Z}
}

func (q Quaternion) Sub(other Quaternion) Quaternion {
	return Quaternion{q.W - other.W, q.X - other.X, q.Y - other.Y, q.Z - other.Z}
}

// MulScalar scales all four components. Scalar multiplication commutes, so
// this serves both s*q and q*s.
func (q Quaternion) MulScalar(s float64) Quaternion {
	return Quaternion{q.W * s, q.X * s, q.Y * s, q.Z * s}
}

// DivScalar divides all four components by s. Fails when s is zero.
func (q Quaternion) DivScalar(s float64) (Quaternion, error) {
	if s == 0 {
		return Quaternion{}, fmt.Errorf("quaternion %s / 0: %w", q, core.ErrDivisionByZero)
	}
	return Quaternion{q.W / s, q.X / s, q.Y / s, q.Z / s}, nil
}

func (q Quaternion) Neg() Quaternion {
	return Quaternion{-q.W, -q.X, -q.Y, -q.Z}
}

/**
 * @brief Multiplies the provided quaternions (Hamilton product). Not commutative.
 *
 * @param other The right hand side quaternion.
 * @return The multiplied quaternion.
 */
func (q Quaternion) Mul(other Quaternion) Quaternion {
	out_quaternion := Quaternion{}

	out_quaternion.W = q.W*other.W -
		q.X*other.X -
		q.Y*other.Y -
		q.Z*other.Z

	out_quaternion.X = q.W*other.X +
		q.X*other.W +
		q.Y*other.Z -
		q.Z*other.Y

	out_quaternion.Y = q.W*other.Y -
		q.X*other.Z +
		q.Y*other.W +
		q.Z*other.X

	out_quaternion.Z = q.W*other.Z +
		q.X*other.Y -
		q.Y*other.X +
		q.Z*other.W

	return out_quaternion
}

// Pow multiplies q with itself n times. q^0 is the identity.
func (q Quaternion) Pow(n int) (Quaternion, error) {
	if n < 0 {
		return Quaternion{}, fmt.Errorf("quaternion power %d: %w", n, core.ErrNegativeExponent)
	}
	out_quaternion := NewQuatIdentity()
	for i := 0; i < n; i++ {
		out_quaternion = out_quaternion.Mul(q)
	}
	return out_quaternion, nil
}

func (q *Quaternion) AddAssign(other Quaternion) {
	*q = q.Add(other)
}

func (q *Quaternion) SubAssign(other Quaternion) {
	*q = q.Sub(other)
}

func (q *Quaternion) MulScalarAssign(s float64) {
	*q = q.MulScalar(s)
}

// DivScalarAssign leaves q untouched when s is zero.
func (q *Quaternion) DivScalarAssign(s float64) error {
	r, err := q.DivScalar(s)
	if err != nil {
		return err
	}
	*q = r
	return nil
}

/**
 * @brief Calculates the dot product of the provided quaternions.
 *
 * @param other The second quaternion.
 * @return The dot product of the provided quaternions.
 */
func (q Quaternion) Dot(other Quaternion) float64 {
	return q.W*other.W +
		q.X*other.X +
		q.Y*other.Y +
		q.Z*other.Z
}

func (q Quaternion) NormSquared() float64 {
	return q.Dot(q)
}

/**
 * @brief Returns the norm (absolute value) of the provided quaternion, the
 * euclidean length of (w, x, y, z).
 */
func (q Quaternion) Norm() float64 {
	return ksqrt(q.NormSquared())
}

/**
 * @brief Returns a normalized copy of the provided quaternion.
 * The zero quaternion yields core.ErrDivisionByZero.
 *
 * @return A normalized copy of the provided quaternion.
 */
func (q Quaternion) Normalize() (Quaternion, error) {
	normal := q.Norm()
	if normal == 0 {
		return Quaternion{}, fmt.Errorf("normalize quaternion: %w", core.ErrDivisionByZero)
	}
	return Quaternion{
		q.W / normal,
		q.X / normal,
		q.Y / normal,
		q.Z / normal}, nil
}

/**
 * @brief Returns the conjugate of the provided quaternion. That is,
 * The x, y and z elements are negated, but the w element is untouched.
 *
 * @return The conjugate quaternion.
 */
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{q.W, -q.X, -q.Y, -q.Z}
}

/**
 * @brief Returns the multiplicative inverse, the conjugate divided by the
 * squared norm. For unit quaternions this is the conjugate.
 */
func (q Quaternion) Inverse() (Quaternion, error) {
	n2 := q.NormSquared()
	if n2 == 0 {
		return Quaternion{}, fmt.Errorf("inverse of zero quaternion: %w", core.ErrDivisionByZero)
	}
	return q.Conjugate().MulScalar(1.0 / n2), nil
}

// Log returns the natural logarithm of q. For a unit quaternion the scalar
// part is zero and the vector part is half the rotation angle times the axis.
func (q Quaternion) Log() (Quaternion, error) {
	n := q.Norm()
	if n == 0 {
		return Quaternion{}, fmt.Errorf("log of zero quaternion: %w", core.ErrDivisionByZero)
	}
	v := q.Vector()
	vl := v.Length()
	if vl == 0 {
		return Quaternion{m.Log(n), 0, 0, 0}, nil
	}
	k := m.Atan2(vl, q.W) / vl
	return Quaternion{m.Log(n), q.X * k, q.Y * k, q.Z * k}, nil
}

// Exp is the inverse of Log.
func (q Quaternion) Exp() Quaternion {
	ew := m.Exp(q.W)
	a := q.Vector().Length()
	if a == 0 {
		return Quaternion{ew, 0, 0, 0}
	}
	s := ew * ksin(a) / a
	return Quaternion{ew * kcos(a), q.X * s, q.Y * s, q.Z * s}
}

/**
 * @brief Returns the rotation angle in radians and the unit rotation axis of q.
 * q is normalized first; the zero quaternion yields core.ErrDivisionByZero.
 * The identity rotation returns a zero angle and the x axis.
 */
func (q Quaternion) ToAngleAxis() (float64, Vec3, error) {
	n, err := q.Normalize()
	if err != nil {
		return 0, Vec3{}, err
	}
	half_angle := kacos(Clamp(n.W, -1.0, 1.0))
	s := ksin(half_angle)
	if s < 1e-12 {
		return 0, NewVec3Right(), nil
	}
	return 2.0 * half_angle, Vec3{n.X / s, n.Y / s, n.Z / s}, nil
}

/**
 * @brief Creates a rotation matrix from the given unit quaternion.
 *
 * @return A rotation matrix.
 */
func (q Quaternion) ToMat3() Mat3 {
	xx, yy, zz := q.X*q.X, q.Y*q.Y, q.Z*q.Z
	xy, xz, yz := q.X*q.Y, q.X*q.Z, q.Y*q.Z
	wx, wy, wz := q.W*q.X, q.W*q.Y, q.W*q.Z

	return NewMat3(
		1.0-2.0*(yy+zz), 2.0*(xy-wz), 2.0*(xz+wy),
		2.0*(xy+wz), 1.0-2.0*(xx+zz), 2.0*(yz-wx),
		2.0*(xz-wy), 2.0*(yz+wx), 1.0-2.0*(xx+yy),
	)
}

// ToMat4 is ToMat3 embedded in a 4x4 identity.
func (q Quaternion) ToMat4() Mat4 {
	return NewMat4FromMat3(q.ToMat3())
}

/**
 * @brief Rotates v by the unit quaternion q. Equivalent to q.ToMat3().MulVec(v).
 */
func (q Quaternion) RotateVec(v Vec3) Vec3 {
	u := q.Vector()
	t := u.Cross(v).MulScalar(2.0)
	return v.Add(t.MulScalar(q.W)).Add(u.Cross(t))
}

func (q Quaternion) Compare(other Quaternion, tol Tolerance) bool {
	return tol.Equal(q.W, other.W) &&
		tol.Equal(q.X, other.X) &&
		tol.Equal(q.Y, other.Y) &&
		tol.Equal(q.Z, other.Z)
}

// SameRotation reports whether q and other describe the same rotation,
// treating q and -q as equal.
func (q Quaternion) SameRotation(other Quaternion, tol Tolerance) bool {
	return q.Compare(other, tol) || q.Compare(other.Neg(), tol)
}

func (q Quaternion) String() string {
	return formatComponents(q.W, q.X, q.Y, q.Z)
}
