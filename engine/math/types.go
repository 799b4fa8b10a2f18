package math

// Vec2 represents a 2D vector
type Vec2 struct {
	X, Y float64
}

// Vec3 represents a 3D vector
type Vec3 struct {
	X, Y, Z float64
}

// Vec4 represents a 4D vector
type Vec4 struct {
	X, Y, Z, W float64
}

/**
 * @brief A quaternion, used to represent rotational orientation.
 * W is the scalar part, (X, Y, Z) the vector part. Only unit quaternions
 * represent rotations, and q and -q represent the same one.
 */
type Quaternion struct {
	W, X, Y, Z float64
}

/** @brief a 3x3 matrix, typically used to represent rotations. */
type Mat3 struct {
	/** @brief The matrix elements, row-major. */
	Data [9]float64
}

/** @brief a 4x4 matrix, typically used to represent object transformations. */
type Mat4 struct {
	/** @brief The matrix elements, row-major. Vectors are multiplied as columns. */
	Data [16]float64
}

/**
 * @brief Represents the transform of an object in the world.
 * Transforms can have a parent whose own transform is then
 * taken into account. NOTE: The properties of this should not
 * be edited directly, but done via the functions in transform.go
 * to ensure proper matrix generation.
 */
type Transform struct {
	/** @brief The position in the world. */
	Position Vec3
	/** @brief The rotation in the world. */
	Rotation Quaternion
	/** @brief The scale in the world. */
	Scale Vec3
	/**
	 * @brief Indicates if the position, rotation or scale have changed,
	 * indicating that the local matrix needs to be recalculated.
	 */
	IsDirty bool
	/**
	 * @brief The local transformation matrix, updated whenever
	 * the position, rotation or scale have changed.
	 */
	Local Mat4
	/** @brief A pointer to a parent transform if one is assigned. Can also be nil. */
	Parent *Transform
}
