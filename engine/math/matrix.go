package math

import (
	"fmt"

	"github.com/spaghettifunk/quatkit/engine/core"
)

// ------------------------------------------
// Matrix 3
// ------------------------------------------

/**
 * @brief Creates and returns a matrix from nine row-major elements.
 */
func NewMat3(m00, m01, m02, m10, m11, m12, m20, m21, m22 float64) Mat3 {
	return Mat3{Data: [9]float64{
		m00, m01, m02,
		m10, m11, m12,
		m20, m21, m22,
	}}
}

/**
 * @brief Creates and returns an identity matrix:
 *
 * {
 *   {1, 0, 0},
 *   {0, 1, 0},
 *   {0, 0, 1}
 * }
 */
func NewMat3Identity() Mat3 {
	return NewMat3Diagonal(1.0)
}

// NewMat3Diagonal returns s on the diagonal and zero elsewhere.
func NewMat3Diagonal(s float64) Mat3 {
	out_matrix := Mat3{}
	out_matrix.Data[0] = s
	out_matrix.Data[4] = s
	out_matrix.Data[8] = s
	return out_matrix
}

// NewMat3FromSlice accepts no values (zero matrix), one value (diagonal) or
// nine row-major values.
func NewMat3FromSlice(values []float64) (Mat3, error) {
	switch len(values) {
	case 0:
		return Mat3{}, nil
	case 1:
		return NewMat3Diagonal(values[0]), nil
	case 9:
		out_matrix := Mat3{}
		copy(out_matrix.Data[:], values)
		return out_matrix, nil
	default:
		return Mat3{}, fmt.Errorf("mat3 from %d values: %w", len(values), core.ErrInvalidArity)
	}
}

// NewMat3FromString parses nine comma separated row-major values.
func NewMat3FromString(s string) (Mat3, error) {
	values, err := parseComponents(s)
	if err != nil {
		return Mat3{}, err
	}
	return NewMat3FromSlice(values)
}

/**
 * @brief Creates a matrix for a right-handed rotation of angle radians about
 * axis. Only the direction of axis matters; a zero axis yields the identity.
 *
 * @param angle The rotation angle in radians.
 * @param axis The rotation axis.
 * @return A rotation matrix.
 */
func NewMat3Rotation(angle float64, axis Vec3) Mat3 {
	n, err := axis.Normalize()
	if err != nil {
		return NewMat3Identity()
	}
	c := kcos(angle)
	s := ksin(angle)
	t := 1.0 - c
	x, y, z := n.X, n.Y, n.Z
	return NewMat3(
		t*x*x+c, t*x*y-s*z, t*x*z+s*y,
		t*x*y+s*z, t*y*y+c, t*y*z-s*x,
		t*x*z-s*y, t*y*z+s*x, t*z*z+c,
	)
}

func (mt Mat3) At(row, col int) float64 {
	return mt.Data[row*3+col]
}

func (mt Mat3) Row(i int) Vec3 {
	return Vec3{mt.Data[i*3], mt.Data[i*3+1], mt.Data[i*3+2]}
}

func (mt Mat3) Col(i int) Vec3 {
	return Vec3{mt.Data[i], mt.Data[3+i], mt.Data[6+i]}
}

/**
 * @brief Returns the result of multiplying mt and other.
 */
func (mt Mat3) Mul(other Mat3) Mat3 {
	out_matrix := Mat3{}

	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			sum := float64(0)
			for i := 0; i < 3; i++ {
				sum += mt.Data[row*3+i] * other.Data[i*3+col]
			}
			out_matrix.Data[row*3+col] = sum
		}
	}

	return out_matrix
}

/**
 * @brief Applies the linear map to v, treated as a column vector.
 */
func (mt Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		mt.Data[0]*v.X + mt.Data[1]*v.Y + mt.Data[2]*v.Z,
		mt.Data[3]*v.X + mt.Data[4]*v.Y + mt.Data[5]*v.Z,
		mt.Data[6]*v.X + mt.Data[7]*v.Y + mt.Data[8]*v.Z,
	}
}

func (mt Mat3) MulScalar(s float64) Mat3 {
	for i := range mt.Data {
		mt.Data[i] *= s
	}
	return mt
}

func (mt Mat3) Add(other Mat3) Mat3 {
	for i := range mt.Data {
		mt.Data[i] += other.Data[i]
	}
	return mt
}

func (mt Mat3) Sub(other Mat3) Mat3 {
	for i := range mt.Data {
		mt.Data[i] -= other.Data[i]
	}
	return mt
}

/**
 * @brief Returns a transposed copy of the matrix.
 */
func (mt Mat3) Transpose() Mat3 {
	d := mt.Data
	return NewMat3(
		d[0], d[3], d[6],
		d[1], d[4], d[7],
		d[2], d[5], d[8],
	)
}

func (mt Mat3) Determinant() float64 {
	d := mt.Data
	return d[0]*(d[4]*d[8]-d[5]*d[7]) -
		d[1]*(d[3]*d[8]-d[5]*d[6]) +
		d[2]*(d[3]*d[7]-d[4]*d[6])
}

/**
 * @brief Returns the inverse of the matrix. Singular matrices yield
 * core.ErrDivisionByZero.
 */
func (mt Mat3) Inverse() (Mat3, error) {
	det := mt.Determinant()
	if det == 0 {
		return Mat3{}, fmt.Errorf("inverse of singular mat3: %w", core.ErrDivisionByZero)
	}
	d := mt.Data
	adj := NewMat3(
		d[4]*d[8]-d[5]*d[7], d[2]*d[7]-d[1]*d[8], d[1]*d[5]-d[2]*d[4],
		d[5]*d[6]-d[3]*d[8], d[0]*d[8]-d[2]*d[6], d[2]*d[3]-d[0]*d[5],
		d[3]*d[7]-d[4]*d[6], d[1]*d[6]-d[0]*d[7], d[0]*d[4]-d[1]*d[3],
	)
	return adj.MulScalar(1.0 / det), nil
}

// Rotate returns mt multiplied by a rotation of angle radians about axis.
func (mt Mat3) Rotate(angle float64, axis Vec3) Mat3 {
	return mt.Mul(NewMat3Rotation(angle, axis))
}

func (mt Mat3) Compare(other Mat3, tol Tolerance) bool {
	return tol.equalAll(mt.Data[:], other.Data[:])
}

// ToQuat converts a rotation matrix to a quaternion, see NewQuatFromMat3.
func (mt Mat3) ToQuat() Quaternion {
	return NewQuatFromMat3(mt)
}

func (mt Mat3) String() string {
	return formatComponents(mt.Data[:]...)
}

// ------------------------------------------
// Matrix 4
// ------------------------------------------

/**
 * @brief Creates and returns an identity matrix:
 *
 * {
 *   {1, 0, 0, 0},
 *   {0, 1, 0, 0},
 *   {0, 0, 1, 0},
 *   {0, 0, 0, 1}
 * }
 *
 * @return A new identity matrix
 */
func NewMat4Identity() Mat4 {
	out_matrix := Mat4{}
	out_matrix.Data[0] = 1.0
	out_matrix.Data[5] = 1.0
	out_matrix.Data[10] = 1.0
	out_matrix.Data[15] = 1.0
	return out_matrix
}

/**
 * @brief Creates and returns a translation matrix from the given position.
 *
 * @param position The position to be used to create the matrix.
 * @return A newly created translation matrix.
 */
func NewMat4Translation(position Vec3) Mat4 {
	out_matrix := NewMat4Identity()
	out_matrix.Data[3] = position.X
	out_matrix.Data[7] = position.Y
	out_matrix.Data[11] = position.Z
	return out_matrix
}

/**
 * @brief Returns a scale matrix using the provided scale.
 *
 * @param scale The 3-component scale.
 * @return A scale matrix.
 */
func NewMat4Scale(scale Vec3) Mat4 {
	out_matrix := NewMat4Identity()
	out_matrix.Data[0] = scale.X
	out_matrix.Data[5] = scale.Y
	out_matrix.Data[10] = scale.Z
	return out_matrix
}

// NewMat4FromMat3 places m in the upper-left block of an identity matrix.
func NewMat4FromMat3(m Mat3) Mat4 {
	out_matrix := NewMat4Identity()
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			out_matrix.Data[row*4+col] = m.Data[row*3+col]
		}
	}
	return out_matrix
}

/**
 * @brief Returns the result of multiplying mt and other.
 */
func (mt Mat4) Mul(other Mat4) Mat4 {
	out_matrix := Mat4{}

	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			sum := float64(0)
			for i := 0; i < 4; i++ {
				sum += mt.Data[row*4+i] * other.Data[i*4+col]
			}
			out_matrix.Data[row*4+col] = sum
		}
	}

	return out_matrix
}

/**
 * @brief Transforms p by mt. The vector is treated as a point, as if a w
 * component with a value of 1.0 is there.
 */
func (mt Mat4) TransformPoint(p Vec3) Vec3 {
	d := mt.Data
	return Vec3{
		d[0]*p.X + d[1]*p.Y + d[2]*p.Z + d[3],
		d[4]*p.X + d[5]*p.Y + d[6]*p.Z + d[7],
		d[8]*p.X + d[9]*p.Y + d[10]*p.Z + d[11],
	}
}

// TransformDirection ignores the translation part of mt.
func (mt Mat4) TransformDirection(v Vec3) Vec3 {
	return mt.Mat3().MulVec(v)
}

// Mat3 returns the upper-left 3x3 block.
func (mt Mat4) Mat3() Mat3 {
	out_matrix := Mat3{}
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			out_matrix.Data[row*3+col] = mt.Data[row*4+col]
		}
	}
	return out_matrix
}

func (mt Mat4) Compare(other Mat4, tol Tolerance) bool {
	return tol.equalAll(mt.Data[:], other.Data[:])
}

func (mt Mat4) String() string {
	return formatComponents(mt.Data[:]...)
}
