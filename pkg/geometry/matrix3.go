package geometry

import (
	"errors"
	"math"
)

// ErrInvalidAxis is returned by Rotation when the supplied axis
// normalizes to the zero vector.
var ErrInvalidAxis = errors.New("geometry: invalid rotation axis")

// Mat3 is a row-major 3x3 matrix.
type Mat3 struct {
	m [3][3]float64
}

// Identity returns the 3x3 identity matrix.
func Identity() Mat3 {
	return Mat3{m: [3][3]float64{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}}
}

// Rotation builds a rotation matrix from a non-zero axis and a radian
// angle using Rodrigues' rotation formula:
//
//	R = I + sin(θ)·K + (1−cos(θ))·K²
//
// where K is the cross-product matrix of the normalized axis. Fails
// with ErrInvalidAxis if the axis normalizes to zero.
func Rotation(axis Vec3, angleRadians float64) (Mat3, error) {
	k := axis.Normalize()
	if k == (Vec3{}) {
		return Mat3{}, ErrInvalidAxis
	}

	c := math.Cos(angleRadians)
	s := math.Sin(angleRadians)
	t := 1.0 - c

	return Mat3{m: [3][3]float64{
		{t*k.X*k.X + c, t*k.X*k.Y - s*k.Z, t*k.X*k.Z + s*k.Y},
		{t*k.X*k.Y + s*k.Z, t*k.Y*k.Y + c, t*k.Y*k.Z - s*k.X},
		{t*k.X*k.Z - s*k.Y, t*k.Y*k.Z + s*k.X, t*k.Z*k.Z + c},
	}}, nil
}

// MulVec3 applies the matrix to a vector.
func (m Mat3) MulVec3(v Vec3) Vec3 {
	return Vec3{
		X: m.m[0][0]*v.X + m.m[0][1]*v.Y + m.m[0][2]*v.Z,
		Y: m.m[1][0]*v.X + m.m[1][1]*v.Y + m.m[1][2]*v.Z,
		Z: m.m[2][0]*v.X + m.m[2][1]*v.Y + m.m[2][2]*v.Z,
	}
}

// Mul multiplies two matrices.
func (m Mat3) Mul(other Mat3) Mat3 {
	var result Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var sum float64
			for k := 0; k < 3; k++ {
				sum += m.m[i][k] * other.m[k][j]
			}
			result.m[i][j] = sum
		}
	}
	return result
}

// Transpose returns the transpose of m, which is also its inverse for
// any rotation matrix.
func (m Mat3) Transpose() Mat3 {
	var result Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			result.m[j][i] = m.m[i][j]
		}
	}
	return result
}

// At returns the element at row i, column j.
func (m Mat3) At(i, j int) float64 {
	return m.m[i][j]
}
