package math

import (
	"fmt"

	"github.com/spaghettifunk/quatkit/engine/core"
)

// ------------------------------------------
// Vector 2
// ------------------------------------------

/**
 * @brief Creates and returns a new 2-element vector using the supplied values.
 *
 * @param x The x value.
 * @param y The y value.
 * @return A new 2-element vector.
 */
func NewVec2(x, y float64) Vec2 {
	return Vec2{
		X: x,
		Y: y,
	}
}

/**
 * @brief Creates and returns a 2-component vector with all components set to 0.0.
 */
func NewVec2Zero() Vec2 {
	return Vec2{X: 0.0, Y: 0.0}
}

/**
 * @brief Creates and returns a 2-component vector with all components set to s.
 */
func NewVec2Scalar(s float64) Vec2 {
	return Vec2{s, s}
}

// NewVec2FromSlice accepts zero, one (broadcast) or two values.
func NewVec2FromSlice(values []float64) (Vec2, error) {
	c, err := expand(values, 2, "vec2")
	if err != nil {
		return Vec2{}, err
	}
	return Vec2{c[0], c[1]}, nil
}

// NewVec2FromString parses "x,y". The empty string is the zero vector.
func NewVec2FromString(s string) (Vec2, error) {
	values, err := parseComponents(s)
	if err != nil {
		return Vec2{}, err
	}
	return NewVec2FromSlice(values)
}

/**
 *  Adds other to v and returns a copy of the result.
 */
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

/**
 * Subtracts other from v and returns a copy of the result.
 */
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

/**
 *  Multiplies v by other component-wise and returns a copy of the result.
 */
func (v Vec2) Mul(other Vec2) Vec2 {
	return Vec2{v.X * other.X, v.Y * other.Y}
}

func (v Vec2) MulScalar(scalar float64) Vec2 {
	return Vec2{v.X * scalar, v.Y * scalar}
}

func (v Vec2) DivScalar(scalar float64) (Vec2, error) {
	if scalar == 0 {
		return Vec2{}, fmt.Errorf("vec2 %s / 0: %w", v, core.ErrDivisionByZero)
	}
	return Vec2{v.X / scalar, v.Y / scalar}, nil
}

func (v Vec2) Neg() Vec2 {
	return Vec2{-v.X, -v.Y}
}

func (v Vec2) Dot(other Vec2) float64 {
	return v.X*other.X + v.Y*other.Y
}

/**
 * Returns the squared length of the provided vector.
 */
func (v Vec2) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

/**
 * @brief Returns the length of the provided vector.
 */
func (v Vec2) Length() float64 {
	return ksqrt(v.LengthSquared())
}

/**
 * @brief Returns a unit vector with the direction of v. Fails for the zero vector.
 */
func (v Vec2) Normalize() (Vec2, error) {
	length := v.Length()
	if length == 0 {
		return Vec2{}, fmt.Errorf("normalize vec2: %w", core.ErrDivisionByZero)
	}
	return Vec2{v.X / length, v.Y / length}, nil
}

func (v Vec2) Distance(other Vec2) float64 {
	return v.Sub(other).Length()
}

/**
 * @brief Compares all elements of v and other and ensures the difference
 * is within tolerance.
 */
func (v Vec2) Compare(other Vec2, tol Tolerance) bool {
	return tol.Equal(v.X, other.X) && tol.Equal(v.Y, other.Y)
}

func (v *Vec2) AddAssign(other Vec2) {
	*v = v.Add(other)
}

func (v *Vec2) SubAssign(other Vec2) {
	*v = v.Sub(other)
}

func (v *Vec2) MulScalarAssign(scalar float64) {
	*v = v.MulScalar(scalar)
}

func (v *Vec2) DivScalarAssign(scalar float64) error {
	r, err := v.DivScalar(scalar)
	if err != nil {
		return err
	}
	*v = r
	return nil
}

func (v Vec2) String() string {
	return formatComponents(v.X, v.Y)
}

// ------------------------------------------
// Vector 3
// ------------------------------------------

/**
 * @brief Creates and returns a new 3-element vector using the supplied values.
 *
 * @param x The x value.
 * @param y The y value.
 * @param z The z value.
 * @return A new 3-element vector.
 */
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{
		X: x,
		Y: y,
		Z: z,
	}
}

/**
 * @brief Returns a new vec3 containing the x, y and z components of the
 * supplied vec4, essentially dropping the w component.
 *
 * @param vector The 4-component vector to extract from.
 * @return A new vec3
 */
func NewVec3FromVec4(vector Vec4) Vec3 {
	return Vec3{
		X: vector.X,
		Y: vector.Y,
		Z: vector.Z,
	}
}

// NewVec3FromArray builds a vector from an ordered (x, y, z) triple.
func NewVec3FromArray(a [3]float64) Vec3 {
	return Vec3{a[0], a[1], a[2]}
}

// NewVec3FromSlice accepts zero, one (broadcast) or three values.
func NewVec3FromSlice(values []float64) (Vec3, error) {
	c, err := expand(values, 3, "vec3")
	if err != nil {
		return Vec3{}, err
	}
	return Vec3{c[0], c[1], c[2]}, nil
}

// NewVec3FromString parses "x,y,z". The empty string is the zero vector and a
// single number is broadcast to all components.
func NewVec3FromString(s string) (Vec3, error) {
	values, err := parseComponents(s)
	if err != nil {
		return Vec3{}, err
	}
	return NewVec3FromSlice(values)
}

/**
 * @brief Returns a new vec4 using vector as the x, y and z components and w for w.
 *
 * @param w The w component.
 * @return A new vec4
 */
func (v Vec3) ToVec4(w float64) Vec4 {
	return Vec4{v.X, v.Y, v.Z, w}
}

func (v Vec3) ToArray() [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

/**
 * @brief Creates and returns a 3-component vector with all components set to 0.0.
 */
func NewVec3Zero() Vec3 {
	return Vec3{0.0, 0.0, 0.0}
}

/**
 * @brief Creates and returns a 3-component vector with all components set to 1.0.
 */
func NewVec3One() Vec3 {
	return Vec3{1.0, 1.0, 1.0}
}

/**
 * @brief Creates and returns a 3-component vector with all components set to s.
 */
func NewVec3Scalar(s float64) Vec3 {
	return Vec3{s, s, s}
}

/**
 * @brief Creates and returns a 3-component vector pointing up (0, 1, 0).
 */
func NewVec3Up() Vec3 {
	return Vec3{0.0, 1.0, 0.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing right (1, 0, 0).
 */
func NewVec3Right() Vec3 {
	return Vec3{1.0, 0.0, 0.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing forward (0, 0, -1).
 */
func NewVec3Forward() Vec3 {
	return Vec3{0.0, 0.0, -1.0}
}

/**
 * @brief Adds other to v and returns a copy of the result.
 *
 * @param other The second vector.
 * @return The resulting vector.
 */
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{
		v.X + other.X,
		v.Y + other.Y,
		v.Z + other.Z}
}

/**
 * @brief Subtracts other from v and returns a copy of the result.
 *
 * @param other The second vector.
 * @return The resulting vector.
 */
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{
		v.X - other.X,
		v.Y - other.Y,
		v.Z - other.Z}
}

/**
 * @brief Multiplies v by other component-wise and returns a copy of the result.
 *
 * @param other The second vector.
 * @return The resulting vector.
 */
func (v Vec3) Mul(other Vec3) Vec3 {
	return Vec3{
		v.X * other.X,
		v.Y * other.Y,
		v.Z * other.Z}
}

/**
 * @brief Multiplies all elements of v by scalar and returns a copy of the result.
 *
 * @param scalar The scalar value.
 * @return A copy of the resulting vector.
 */
func (v Vec3) MulScalar(scalar float64) Vec3 {
	return Vec3{
		v.X * scalar,
		v.Y * scalar,
		v.Z * scalar}
}

/**
 * @brief Divides all elements of v by scalar. Fails when scalar is zero.
 */
func (v Vec3) DivScalar(scalar float64) (Vec3, error) {
	if scalar == 0 {
		return Vec3{}, fmt.Errorf("vec3 %s / 0: %w", v, core.ErrDivisionByZero)
	}
	return Vec3{
		v.X / scalar,
		v.Y / scalar,
		v.Z / scalar}, nil
}

func (v Vec3) Neg() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

/**
 * @brief Returns the squared length of the provided vector.
 *
 * @return The squared length.
 */
func (v Vec3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

/**
 * @brief Returns the length of the provided vector.
 *
 * @return The length.
 */
func (v Vec3) Length() float64 {
	return ksqrt(v.LengthSquared())
}

/**
 * @brief Returns a unit vector with the direction of v.
 * The zero vector has no direction and yields core.ErrDivisionByZero.
 */
func (v Vec3) Normalize() (Vec3, error) {
	length := v.Length()
	if length == 0 {
		return Vec3{}, fmt.Errorf("normalize vec3: %w", core.ErrDivisionByZero)
	}
	return Vec3{
		v.X / length,
		v.Y / length,
		v.Z / length}, nil
}

/**
 * @brief Returns the dot product between the provided vectors. Typically used
 * to calculate the difference in direction.
 *
 * @param other The second vector.
 * @return The dot product.
 */
func (v Vec3) Dot(other Vec3) float64 {
	p := float64(0)
	p += v.X * other.X
	p += v.Y * other.Y
	p += v.Z * other.Z
	return p
}

/**
 * @brief Calculates and returns the cross product of the supplied vectors.
 * The cross product is a new vector which is orthoganal to both provided vectors.
 *
 * @param other The second vector.
 * @return The cross product.
 */
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X}
}

/**
 * @brief Compares all elements of v and other and ensures the difference
 * is within tolerance.
 *
 * @param other The second vector.
 * @param tol The difference tolerance. Typically DefaultTolerance.
 * @return True if within tolerance; otherwise false.
 */
func (v Vec3) Compare(other Vec3, tol Tolerance) bool {
	if !tol.Equal(v.X, other.X) {
		return false
	}

	if !tol.Equal(v.Y, other.Y) {
		return false
	}

	if !tol.Equal(v.Z, other.Z) {
		return false
	}

	return true
}

/**
 * @brief Returns the distance between v and other.
 */
func (v Vec3) Distance(other Vec3) float64 {
	d := Vec3{
		v.X - other.X,
		v.Y - other.Y,
		v.Z - other.Z}
	return d.Length()
}

func (v *Vec3) AddAssign(other Vec3) {
	*v = v.Add(other)
}

func (v *Vec3) SubAssign(other Vec3) {
	*v = v.Sub(other)
}

func (v *Vec3) MulScalarAssign(scalar float64) {
	*v = v.MulScalar(scalar)
}

// DivScalarAssign leaves v untouched when scalar is zero.
func (v *Vec3) DivScalarAssign(scalar float64) error {
	r, err := v.DivScalar(scalar)
	if err != nil {
		return err
	}
	*v = r
	return nil
}

func (v Vec3) String() string {
	return formatComponents(v.X, v.Y, v.Z)
}

// ------------------------------------------
// Vector 4
// ------------------------------------------

/**
 * @brief Creates and returns a new 4-element vector using the supplied values.
 *
 * @param x The x value.
 * @param y The y value.
 * @param z The z value.
 * @param w The w value.
 * @return A new 4-element vector.
 */
func NewVec4(x, y, z, w float64) Vec4 {
	return Vec4{
		X: x,
		Y: y,
		Z: z,
		W: w,
	}
}

/**
 * @brief Returns a new vec3 containing the x, y and z components of the
 * supplied vec4, essentially dropping the w component.
 */
func (v Vec4) ToVec3() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

/**
 * @brief Creates and returns a 4-component vector with all components set to 0.0.
 */
func NewVec4Zero() Vec4 {
	return Vec4{0.0, 0.0, 0.0, 0.0}
}

/**
 * @brief Creates and returns a 4-component vector with all components set to s.
 */
func NewVec4Scalar(s float64) Vec4 {
	return Vec4{s, s, s, s}
}

// NewVec4FromSlice accepts zero, one (broadcast) or four values, in x,y,z,w order.
func NewVec4FromSlice(values []float64) (Vec4, error) {
	c, err := expand(values, 4, "vec4")
	if err != nil {
		return Vec4{}, err
	}
	return Vec4{c[0], c[1], c[2], c[3]}, nil
}

// NewVec4FromString parses "x,y,z,w". The empty string is the zero vector.
func NewVec4FromString(s string) (Vec4, error) {
	values, err := parseComponents(s)
	if err != nil {
		return Vec4{}, err
	}
	return NewVec4FromSlice(values)
}

func (v Vec4) Add(other Vec4) Vec4 {
	return Vec4{v.X + other.X, v.Y + other.Y, v.Z + other.Z, v.W + other.W}
}

func (v Vec4) Sub(other Vec4) Vec4 {
	return Vec4{v.X - other.X, v.Y - other.Y, v.Z - other.Z, v.W - other.W}
}

func (v Vec4) Mul(other Vec4) Vec4 {
	return Vec4{v.X * other.X, v.Y * other.Y, v.Z * other.Z, v.W * other.W}
}

func (v Vec4) MulScalar(scalar float64) Vec4 {
	return Vec4{v.X * scalar, v.Y * scalar, v.Z * scalar, v.W * scalar}
}

func (v Vec4) DivScalar(scalar float64) (Vec4, error) {
	if scalar == 0 {
		return Vec4{}, fmt.Errorf("vec4 %s / 0: %w", v, core.ErrDivisionByZero)
	}
	return Vec4{v.X / scalar, v.Y / scalar, v.Z / scalar, v.W / scalar}, nil
}

func (v Vec4) Neg() Vec4 {
	return Vec4{-v.X, -v.Y, -v.Z, -v.W}
}

func (v Vec4) Dot(other Vec4) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z + v.W*other.W
}

/**
 * @brief Returns the squared length of the provided vector.
 */
func (v Vec4) LengthSquared() float64 {
	return v.Dot(v)
}

/**
 * @brief Returns the length of the provided vector.
 */
func (v Vec4) Length() float64 {
	return ksqrt(v.LengthSquared())
}

/**
 * @brief Returns a unit vector with the direction of v. Fails for the zero vector.
 */
func (v Vec4) Normalize() (Vec4, error) {
	length := v.Length()
	if length == 0 {
		return Vec4{}, fmt.Errorf("normalize vec4: %w", core.ErrDivisionByZero)
	}
	return Vec4{v.X / length, v.Y / length, v.Z / length, v.W / length}, nil
}

/**
 * @brief Compares all elements of v and other and ensures the difference
 * is within tolerance.
 */
func (v Vec4) Compare(other Vec4, tol Tolerance) bool {
	if !tol.Equal(v.X, other.X) {
		return false
	}

	if !tol.Equal(v.Y, other.Y) {
		return false
	}

	if !tol.Equal(v.Z, other.Z) {
		return false
	}

	if !tol.Equal(v.W, other.W) {
		return false
	}

	return true
}

func (v *Vec4) AddAssign(other Vec4) {
	*v = v.Add(other)
}

func (v *Vec4) SubAssign(other Vec4) {
	*v = v.Sub(other)
}

func (v *Vec4) MulScalarAssign(scalar float64) {
	*v = v.MulScalar(scalar)
}

func (v *Vec4) DivScalarAssign(scalar float64) error {
	r, err := v.DivScalar(scalar)
	if err != nil {
		return err
	}
	*v = r
	return nil
}

func (v Vec4) String() string {
	return formatComponents(v.X, v.Y, v.Z, v.W)
}
