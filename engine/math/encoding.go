package math

import (
	"encoding/binary"
	"fmt"
	m "math"

	"github.com/spaghettifunk/quatkit/engine/core"
)

// Text forms use the comma separated format accepted by the string
// factories, so values round trip through JSON, TOML and plain text.

func (v Vec2) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v *Vec2) UnmarshalText(text []byte) error {
	r, err := NewVec2FromString(string(text))
	if err != nil {
		return err
	}
	*v = r
	return nil
}

func (v Vec3) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v *Vec3) UnmarshalText(text []byte) error {
	r, err := NewVec3FromString(string(text))
	if err != nil {
		return err
	}
	*v = r
	return nil
}

func (v Vec4) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v *Vec4) UnmarshalText(text []byte) error {
	r, err := NewVec4FromString(string(text))
	if err != nil {
		return err
	}
	*v = r
	return nil
}

func (q Quaternion) MarshalText() ([]byte, error) {
	return []byte(q.String()), nil
}

func (q *Quaternion) UnmarshalText(text []byte) error {
	r, err := NewQuatFromString(string(text))
	if err != nil {
		return err
	}
	*q = r
	return nil
}

func (mt Mat3) MarshalText() ([]byte, error) {
	return []byte(mt.String()), nil
}

func (mt *Mat3) UnmarshalText(text []byte) error {
	r, err := NewMat3FromString(string(text))
	if err != nil {
		return err
	}
	*mt = r
	return nil
}

// Binary forms are the components as little-endian IEEE 754 doubles.

func appendFloats(values ...float64) []byte {
	buf := make([]byte, 0, 8*len(values))
	for _, v := range values {
		buf = binary.LittleEndian.AppendUint64(buf, m.Float64bits(v))
	}
	return buf
}

func readFloats(data []byte, n int, what string) ([]float64, error) {
	if len(data) != 8*n {
		return nil, fmt.Errorf("binary %s of %d bytes: %w", what, len(data), core.ErrParse)
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = m.Float64frombits(binary.LittleEndian.Uint64(data[8*i:]))
	}
	return out, nil
}

func (q Quaternion) MarshalBinary() ([]byte, error) {
	return appendFloats(q.W, q.X, q.Y, q.Z), nil
}

func (q *Quaternion) UnmarshalBinary(data []byte) error {
	c, err := readFloats(data, 4, "quaternion")
	if err != nil {
		return err
	}
	*q = NewQuat(c[0], c[1], c[2], c[3])
	return nil
}

func (v Vec3) MarshalBinary() ([]byte, error) {
	return appendFloats(v.X, v.Y, v.Z), nil
}

func (v *Vec3) UnmarshalBinary(data []byte) error {
	c, err := readFloats(data, 3, "vec3")
	if err != nil {
		return err
	}
	*v = NewVec3(c[0], c[1], c[2])
	return nil
}

func (mt Mat3) MarshalBinary() ([]byte, error) {
	return appendFloats(mt.Data[:]...), nil
}

func (mt *Mat3) UnmarshalBinary(data []byte) error {
	c, err := readFloats(data, 9, "mat3")
	if err != nil {
		return err
	}
	copy(mt.Data[:], c)
	return nil
}
