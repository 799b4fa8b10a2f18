package math

import (
	"errors"
	m "math"
	"testing"

	"github.com/spaghettifunk/quatkit/engine/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The reference values below were checked to about 1e-6 upstream.
const suiteTolerance Tolerance = 1e-6

func assertQuat(t *testing.T, want, got Quaternion, tol Tolerance) {
	t.Helper()
	assert.Truef(t, got.Compare(want, tol), "want %s, got %s", want, got)
}

func assertVec3(t *testing.T, want, got Vec3, tol Tolerance) {
	t.Helper()
	assert.Truef(t, got.Compare(want, tol), "want %s, got %s", want, got)
}

func mustNormalize(t *testing.T, q Quaternion) Quaternion {
	t.Helper()
	n, err := q.Normalize()
	require.NoError(t, err)
	return n
}

func TestQuatConstructors(t *testing.T) {
	q := NewQuat(1.5, -2, 3, 2)
	assert.Equal(t, Quaternion{W: 1.5, X: -2, Y: 3, Z: 2}, q)

	assert.Equal(t, Quaternion{}, NewQuatZero())
	assert.Equal(t, NewQuat(1, 0, 0, 0), NewQuatIdentity())
	assert.Equal(t, NewQuat(2.5, 0, 0, 0), NewQuatScalar(2.5))

	w := NewQuat(7, -2, 3, 2)
	q = NewQuatCopy(w)
	assertQuat(t, NewQuat(7, -2, 3, 2), q, DefaultTolerance)
	w.X = 12
	assertQuat(t, NewQuat(7, -2, 3, 2), q, DefaultTolerance)
}

func TestQuatFromString(t *testing.T) {
	q, err := NewQuatFromString("1.2")
	require.NoError(t, err)
	assertQuat(t, NewQuat(1.2, 0, 0, 0), q, DefaultTolerance)

	q, err = NewQuatFromString("")
	require.NoError(t, err)
	assert.Equal(t, NewQuatZero(), q)

	q, err = NewQuatFromString(" 1, -2.5 ,3e1,4 ")
	require.NoError(t, err)
	assert.Equal(t, NewQuat(1, -2.5, 30, 4), q)

	_, err = NewQuatFromString("x,y,z,w")
	assert.True(t, errors.Is(err, core.ErrParse), "got %v", err)

	_, err = NewQuatFromString("1,2,3,")
	assert.True(t, errors.Is(err, core.ErrParse), "got %v", err)

	for _, s := range []string{"1,2", "1,2,3", "1,2,3,4,5"} {
		_, err = NewQuatFromString(s)
		assert.Truef(t, errors.Is(err, core.ErrInvalidArity), "%q: got %v", s, err)
	}
}

func TestQuatFromSlice(t *testing.T) {
	q, err := NewQuatFromSlice([]float64{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, NewQuat(1, 2, 3, 4), q)

	q, err = NewQuatFromSlice(nil)
	require.NoError(t, err)
	assert.Equal(t, NewQuatZero(), q)

	q, err = NewQuatFromSlice([]float64{3})
	require.NoError(t, err)
	assert.Equal(t, NewQuatScalar(3), q)

	_, err = NewQuatFromSlice([]float64{1, 2, 3, 4, 5})
	assert.True(t, errors.Is(err, core.ErrInvalidArity), "got %v", err)
}

func TestQuatCompare(t *testing.T) {
	a := NewQuat(1, 2, 3, 4)
	b := NewQuat(5, 6, 7, 8)
	assert.False(t, a.Compare(b, DefaultTolerance))

	a.W = 5
	a.X = 6
	a.Y = 7
	a.Z = 8
	assert.True(t, a.Compare(b, DefaultTolerance))

	assert.True(t, a.Compare(NewQuat(5, 6, 7, 8.05), 0.1))
	assert.False(t, a.Compare(NewQuat(5, 6, 7, 8.05), 0.01))
}

func TestQuatArithmetic(t *testing.T) {
	a := NewQuat(1.5, 2, 3, 4)
	b := NewQuat(2, -1.2, 7, -2)

	assertQuat(t, NewQuat(3.5, 0.8, 10, 2), a.Add(b), DefaultTolerance)
	assertQuat(t, NewQuat(-0.5, 3.2, -4, 6), a.Sub(b), DefaultTolerance)
	assertQuat(t, NewQuat(3, 6, 2, 7), NewQuat(1, 2, 3, 4).Add(NewQuat(2, 4, -1, 3)), DefaultTolerance)

	c := NewQuat(-1, 2.5, 3, 2)
	assertQuat(t, NewQuat(-2, 5, 6, 4), c.MulScalar(2), DefaultTolerance)
	assertQuat(t, NewQuat(-2, 5, 6, 4), c.MulScalar(2.0), DefaultTolerance)

	d, err := NewQuat(2, 4, 6, 3).DivScalar(2.0)
	require.NoError(t, err)
	assertQuat(t, NewQuat(1, 2, 3, 1.5), d, DefaultTolerance)

	_, err = NewQuat(2, 4, 6, 3).DivScalar(0)
	assert.True(t, errors.Is(err, core.ErrDivisionByZero), "got %v", err)

	assertQuat(t, NewQuat(-1, 2, -3, -2), NewQuat(1, -2, 3, 2).Neg(), DefaultTolerance)
	pos := NewQuat(1, -2, 3, 2)
	assertQuat(t, NewQuat(1, -2, 3, 2), pos, DefaultTolerance)
}

func TestQuatCompoundAssignment(t *testing.T) {
	a := NewQuat(1.5, 2, 3, 4)
	a.AddAssign(NewQuat(2, -1.2, 7, -2))
	assertQuat(t, NewQuat(3.5, 0.8, 10, 2), a, DefaultTolerance)

	a = NewQuat(1.5, 2, 3, 4)
	a.SubAssign(NewQuat(2, -1.2, 7, -2))
	assertQuat(t, NewQuat(-0.5, 3.2, -4, 6), a, DefaultTolerance)

	a = NewQuat(1.5, 2, 3, 2)
	a.MulScalarAssign(2)
	assertQuat(t, NewQuat(3, 4, 6, 4), a, DefaultTolerance)

	a = NewQuat(1.5, 2, 3, 2)
	require.NoError(t, a.DivScalarAssign(2.0))
	assertQuat(t, NewQuat(0.75, 1, 1.5, 1), a, DefaultTolerance)

	err := a.DivScalarAssign(0)
	assert.True(t, errors.Is(err, core.ErrDivisionByZero))
	assertQuat(t, NewQuat(0.75, 1, 1.5, 1), a, DefaultTolerance)
}

func TestQuatHamiltonProduct(t *testing.T) {
	i := NewQuat(0, 1, 0, 0)
	j := NewQuat(0, 0, 1, 0)
	k := NewQuat(0, 0, 0, 1)

	assertQuat(t, k, i.Mul(j), DefaultTolerance)
	assertQuat(t, k.Neg(), j.Mul(i), DefaultTolerance)
	assertQuat(t, i, j.Mul(k), DefaultTolerance)
	assertQuat(t, j, k.Mul(i), DefaultTolerance)
	assertQuat(t, NewQuatScalar(-1), i.Mul(i), DefaultTolerance)

	a := NewQuat(1, 2, 3, 4)
	b := NewQuat(2, 4, -1, 3)
	// w = 1*2 - (2*4 + 3*-1 + 4*3), v = 1*b.v + 2*a.v + a.v x b.v
	assertQuat(t, NewQuat(-15, 21, 15, -3), a.Mul(b), DefaultTolerance)
}

func TestQuatPow(t *testing.T) {
	a := mustNormalize(t, NewQuat(1, -2, 3, 2))
	a = NewQuatCopy(a)

	p2, err := a.Pow(2)
	require.NoError(t, err)
	assertQuat(t, a.Mul(a), p2, DefaultTolerance)

	p3, err := a.Pow(3)
	require.NoError(t, err)
	assertQuat(t, a.Mul(a).Mul(a), p3, DefaultTolerance)

	p0, err := NewQuat(3, 1, 4, 1).Pow(0)
	require.NoError(t, err)
	assert.Equal(t, NewQuatIdentity(), p0)

	_, err = a.Pow(-1)
	assert.True(t, errors.Is(err, core.ErrNegativeExponent))
}

func TestQuatNorm(t *testing.T) {
	a := NewQuat(1, 2, 3, 4)
	assert.InDelta(t, m.Sqrt(30), a.Norm(), 1e-12)
	assert.InDelta(t, 30.0, a.NormSquared(), 1e-12)

	assertQuat(t, NewQuat(1, -2, -3, -4), a.Conjugate(), DefaultTolerance)

	assert.InDelta(t, -2.0, NewQuat(1, -2, 3, 2).Dot(NewQuat(3, 0.5, -2, 1)), 1e-12)
}

func TestQuatNormalize(t *testing.T) {
	c := mustNormalize(t, NewQuat(1, 0.5, -1.8, 2))
	assert.InDelta(t, 1.0, c.Norm(), 1e-12)

	_, err := NewQuatZero().Normalize()
	assert.True(t, errors.Is(err, core.ErrDivisionByZero))

	z, err := NewQuatFromString("")
	require.NoError(t, err)
	_, err = z.Normalize()
	assert.True(t, errors.Is(err, core.ErrDivisionByZero))
}

func TestQuatInverse(t *testing.T) {
	a := NewQuat(1, 0.5, -1.8, 2)
	ai, err := a.Inverse()
	require.NoError(t, err)
	assertQuat(t, NewQuatScalar(1), a.Mul(ai), DefaultTolerance)
	assertQuat(t, NewQuatScalar(1), ai.Mul(a), DefaultTolerance)

	u := mustNormalize(t, a)
	ui, err := u.Inverse()
	require.NoError(t, err)
	assertQuat(t, u.Conjugate(), ui, DefaultTolerance)

	_, err = NewQuatZero().Inverse()
	assert.True(t, errors.Is(err, core.ErrDivisionByZero))
}

func TestQuatAngleAxis(t *testing.T) {
	assert.Equal(t, NewQuatIdentity(), NewQuatFromAngleAxis(0, NewVec3(1, 1, 1)))
	assert.Equal(t, NewQuatIdentity(), NewQuatFromAngleAxis(0.5, NewVec3Zero()))

	axis := NewVec3(0.3, 0.8, -0.2)
	q1 := NewQuatFromAngleAxis(0.3, axis)
	q2 := NewQuatFromAngleAxis(0.3, axis.MulScalar(2.5))
	assertQuat(t, q1, q2, DefaultTolerance)

	angle, got, err := NewQuatFromAngleAxis(0.5, NewVec3(1, 0, 0)).ToAngleAxis()
	require.NoError(t, err)
	assert.InDelta(t, 0.5, angle, 1e-10)
	assertVec3(t, NewVec3(1, 0, 0), got, DefaultTolerance)

	angle, got, err = q1.ToAngleAxis()
	require.NoError(t, err)
	assert.InDelta(t, 0.3, angle, 1e-10)
	want, err := axis.Normalize()
	require.NoError(t, err)
	assertVec3(t, want, got, 1e-10)

	angle, got, err = NewQuatIdentity().ToAngleAxis()
	require.NoError(t, err)
	assert.Zero(t, angle)
	assert.InDelta(t, 1.0, got.Length(), 1e-12)

	_, _, err = NewQuatZero().ToAngleAxis()
	assert.True(t, errors.Is(err, core.ErrDivisionByZero))

	mt := NewMat3Rotation(0.5, NewVec3(0, 1, 0))
	q := NewQuatFromMat3(mt)
	assert.True(t, mt.Compare(q.ToMat3(), DefaultTolerance))
}

func TestQuatFromMat3(t *testing.T) {
	h := m.Sqrt(0.5)
	tests := []struct {
		mat  Mat3
		want Quaternion
	}{
		{NewMat3(0, -1, 0, 0, 0, 1, -1, 0, 0), NewQuat(0.5, -0.5, 0.5, 0.5)},
		{NewMat3(-1, 0, 0, 0, 0, 1, 0, 1, 0), NewQuat(0, 0, h, h)},
		{NewMat3(1, 0, 0, 0, 0, 1, 0, -1, 0), NewQuat(h, -h, 0, 0)},
		{NewMat3(0, 1, 0, 0, 0, 1, 1, 0, 0), NewQuat(0.5, -0.5, -0.5, -0.5)},
		{NewMat3(0, 1, 0, 1, 0, 0, 0, 0, -1), NewQuat(0, h, h, 0)},
		{NewMat3(0, -1, 0, -1, 0, 0, 0, 0, -1), NewQuat(0, h, -h, 0)},
		{NewMat3(-1, 0, 0, 0, 1, 0, 0, 0, -1), NewQuat(0, 0, 1, 0)},
		{NewMat3(1, 0, 0, 0, -1, 0, 0, 0, -1), NewQuat(0, 1, 0, 0)},
		{NewMat3(0, 1, 0, 0, 0, -1, -1, 0, 0), NewQuat(0.5, 0.5, 0.5, -0.5)},
		{NewMat3(-1, 0, 0, 0, 0, -1, 0, -1, 0), NewQuat(0, 0, h, -h)},
		{NewMat3(1, 0, 0, 0, 0, -1, 0, 1, 0), NewQuat(h, h, 0, 0)},
		{NewMat3(0, -1, 0, 0, 0, -1, 1, 0, 0), NewQuat(0.5, 0.5, -0.5, 0.5)},
		{NewMat3(0, 0, -1, 1, 0, 0, 0, -1, 0), NewQuat(0.5, -0.5, -0.5, 0.5)},
		{NewMat3(0, 0, -1, 0, -1, 0, -1, 0, 0), NewQuat(0, h, 0, -h)},
		{NewMat3(0, 0, -1, -1, 0, 0, 0, 1, 0), NewQuat(0.5, 0.5, -0.5, -0.5)},
		{NewMat3(0, 0, -1, 0, 1, 0, 1, 0, 0), NewQuat(h, 0, -h, 0)},
		{NewMat3(0, 0, 1, 1, 0, 0, 0, 1, 0), NewQuat(0.5, 0.5, 0.5, 0.5)},
		{NewMat3(0, 0, 1, 0, 1, 0, -1, 0, 0), NewQuat(h, 0, h, 0)},
		{NewMat3(0, 0, 1, -1, 0, 0, 0, -1, 0), NewQuat(0.5, -0.5, 0.5, -0.5)},
		{NewMat3(0, 0, 1, 0, -1, 0, 1, 0, 0), NewQuat(0, h, 0, h)},
		{NewMat3(0, -1, 0, 1, 0, 0, 0, 0, 1), NewQuat(h, 0, 0, h)},
		{NewMat3(0, 1, 0, -1, 0, 0, 0, 0, 1), NewQuat(h, 0, 0, -h)},
		{NewMat3(-1, 0, 0, 0, -1, 0, 0, 0, 1), NewQuat(0, 0, 0, 1)},
		{NewMat3Identity(), NewQuatIdentity()},
	}

	for _, tt := range tests {
		got := NewQuatFromMat3(tt.mat)
		assertQuat(t, tt.want, got, DefaultTolerance)
		assert.Truef(t, tt.mat.Compare(got.ToMat3(), DefaultTolerance), "matrix %s", tt.mat)
	}
}

func TestQuatMatrixRoundTrip(t *testing.T) {
	axes := []Vec3{
		NewVec3(1, 0, 0),
		NewVec3(0, 1, 0),
		NewVec3(0, 0, 1),
		NewVec3(1, 1, 0),
		NewVec3(-1, 2, 0.5),
		NewVec3(0.3, -0.8, -0.2),
	}
	angles := []float64{0, 0.1, 0.5, K_HALF_PI, 2, 3, K_PI - 1e-2, K_PI - 1e-4, K_PI, -1.2}

	for _, axis := range axes {
		for _, angle := range angles {
			mt := NewMat3Rotation(angle, axis)
			q := NewQuatFromMat3(mt)
			assert.InDeltaf(t, 1.0, q.Norm(), 1e-12, "angle %v axis %s", angle, axis)
			assert.Truef(t, mt.Compare(q.ToMat3(), DefaultTolerance), "angle %v axis %s", angle, axis)
			assert.Truef(t, q.SameRotation(NewQuatFromAngleAxis(angle, axis), 1e-10), "angle %v axis %s", angle, axis)
		}
	}

	q := NewQuatFromMat4(NewMat4FromMat3(NewMat3Rotation(1, NewVec3Up())))
	assertQuat(t, NewQuatFromAngleAxis(1, NewVec3Up()), q, DefaultTolerance)
}

func TestQuatToMat3AgreesWithRotateVec(t *testing.T) {
	values := []Quaternion{
		NewQuat(1, 0, 0, 0),
		NewQuat(0, 1, 0, 0),
		NewQuat(0, 0, 1, 0),
		NewQuat(0, 0, 0, 1),
		NewQuatFromAngleAxis(0.3*K_PI, NewVec3(2, -1, 1)),
		NewQuatFromAngleAxis(-0.3*K_PI, NewVec3(1, 2, 3)),
		NewQuatFromAngleAxis(-0.5*K_PI, NewVec3(-1, 0, 1)),
	}

	for _, q := range values {
		qm := q.ToMat3()
		qn := mustNormalize(t, q)
		for _, v := range []Vec3{NewVec3(1, 0, 0), NewVec3(0, 1, 0), NewVec3(0, 0, 1)} {
			assertVec3(t, qm.MulVec(v), qn.RotateVec(v), DefaultTolerance)
		}
	}
}

func TestQuatRotateVec(t *testing.T) {
	s := m.Sqrt(2) / 2.0
	q := NewQuatFromAngleAxis(0.25*K_PI, NewVec3(1, 0, 0))
	v := NewVec3(0, 1, 0)
	assertVec3(t, NewVec3(0, s, s), q.RotateVec(v), DefaultTolerance)

	mt := NewMat3Rotation(0.25*K_PI, NewVec3(1, 0, 0))
	assertVec3(t, mt.MulVec(v), q.RotateVec(NewVec3FromArray(v.ToArray())), DefaultTolerance)

	assertVec3(t, q.ToMat3().MulVec(v), q.RotateVec(v), DefaultTolerance)
}

func TestQuatLogExp(t *testing.T) {
	q := NewQuatFromAngleAxis(1.1, NewVec3(1, -2, 0.5))
	l, err := q.Log()
	require.NoError(t, err)
	assert.InDelta(t, 0.0, l.W, 1e-12)
	assert.InDelta(t, 0.55, l.Vector().Length(), 1e-12)
	assertQuat(t, q, l.Exp(), DefaultTolerance)

	g := NewQuat(2, -1, 0.5, 3)
	lg, err := g.Log()
	require.NoError(t, err)
	assertQuat(t, g, lg.Exp(), 1e-10)

	ls, err := NewQuatScalar(2).Log()
	require.NoError(t, err)
	assertQuat(t, NewQuatScalar(m.Log(2)), ls, DefaultTolerance)

	_, err = NewQuatZero().Log()
	assert.True(t, errors.Is(err, core.ErrDivisionByZero))
}

func TestQuatFromMat3NearHalfTurn(t *testing.T) {
	axes := []Vec3{NewVec3(-1, 2, 0.5), NewVec3(1, 1, 0), NewVec3(0.3, -0.8, -0.2)}
	for _, axis := range axes {
		for _, gap := range []float64{1e-1, 1e-2, 2.1e-3, 1e-4, 1e-6} {
			angle := K_PI - gap
			mt := NewMat3Rotation(angle, axis)
			q := NewQuatFromMat3(mt)
			assert.InDeltaf(t, 1.0, q.Norm(), 1e-13, "angle %v axis %s", angle, axis)
			assert.Truef(t, mt.Compare(q.ToMat3(), DefaultTolerance), "angle %v axis %s", angle, axis)
		}
	}

	// a non-negative trace always expands around w, keeping w away from zero
	for _, angle := range []float64{0, 0.5, 1, 2, 2 * K_PI / 3} {
		q := NewQuatFromMat3(NewMat3Rotation(angle, NewVec3(1, -2, 3)))
		assert.GreaterOrEqualf(t, q.W, 0.5-1e-12, "angle %v", angle)
	}
}

func TestQuatFromStringRejectsNonFinite(t *testing.T) {
	for _, s := range []string{"nan,0,0,0", "1,inf,0,0", "-Inf", "NaN"} {
		_, err := NewQuatFromString(s)
		assert.Truef(t, errors.Is(err, core.ErrParse), "%q", s)
	}
	_, err := NewVec3FromString("0,NaN,1")
	assert.True(t, errors.Is(err, core.ErrParse))
}
