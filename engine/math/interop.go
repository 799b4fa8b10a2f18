package math

import (
	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/image/math/f32"
	"gonum.org/v1/gonum/num/quat"
)

// ------------------------------------------
// gonum
// ------------------------------------------

func (q Quaternion) Gonum() quat.Number {
	return quat.Number{Real: q.W, Imag: q.X, Jmag: q.Y, Kmag: q.Z}
}

func NewQuatFromGonum(n quat.Number) Quaternion {
	return Quaternion{n.Real, n.Imag, n.Jmag, n.Kmag}
}

// ------------------------------------------
// mathgl
// ------------------------------------------

func (q Quaternion) Mgl() mgl64.Quat {
	return mgl64.Quat{W: q.W, V: mgl64.Vec3{q.X, q.Y, q.Z}}
}

func NewQuatFromMgl(q mgl64.Quat) Quaternion {
	return Quaternion{q.W, q.V[0], q.V[1], q.V[2]}
}

func (v Vec3) Mgl() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func NewVec3FromMgl(v mgl64.Vec3) Vec3 {
	return Vec3{v[0], v[1], v[2]}
}

// Mgl converts to mathgl's column-major layout.
func (mt Mat3) Mgl() mgl64.Mat3 {
	return mgl64.Mat3(mt.Transpose().Data)
}

func NewMat3FromMgl(mg mgl64.Mat3) Mat3 {
	return Mat3{Data: [9]float64(mg)}.Transpose()
}

// ------------------------------------------
// float32 views for GL uploads
// ------------------------------------------

func (v Vec3) F32() f32.Vec3 {
	return f32.Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}

func (mt Mat3) F32() f32.Mat3 {
	out := f32.Mat3{}
	for i, x := range mt.Data {
		out[i] = float32(x)
	}
	return out
}

func (mt Mat4) F32() f32.Mat4 {
	out := f32.Mat4{}
	for i, x := range mt.Data {
		out[i] = float32(x)
	}
	return out
}
