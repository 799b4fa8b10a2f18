package core

import (
	"errors"
)

var (
	// ErrDivisionByZero is returned when dividing by zero or when normalizing
	// or inverting a zero-length vector or quaternion.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrInvalidArity is returned when a value is built from a number of
	// components none of its factories accept.
	ErrInvalidArity = errors.New("invalid number of components")
	// ErrParse is returned when a numeric string cannot be parsed.
	ErrParse = errors.New("malformed numeric string")

	ErrNegativeTolerance = errors.New("tolerance must be non-negative")
	ErrNegativeExponent  = errors.New("exponent must be non-negative")

	ErrEmptyTrack        = errors.New("track has no keyframes")
	ErrDuplicateKeyframe = errors.New("duplicate keyframe time")
	ErrInvalidKeyframe   = errors.New("invalid keyframe")
	ErrUnknownMode       = errors.New("unknown interpolation mode")
	ErrInvalidConfig     = errors.New("invalid configuration")
)
