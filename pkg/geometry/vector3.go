// Package geometry provides the double-precision vector and matrix
// arithmetic shared by the mesh, spatial, and analysis packages.
package geometry

import "math"

// epsilon is the tolerance used for approximate vector equality.
const epsilon = 1e-9

// Vec3 is a 3-component double-precision vector or point.
type Vec3 struct {
	X, Y, Z float64
}

// NewVec3 creates a new 3D vector.
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Zero is the additive identity vector.
var Zero = Vec3{}

// Add returns the sum of two vectors.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z}
}

// Sub returns the difference between two vectors.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{X: v.X - other.X, Y: v.Y - other.Y, Z: v.Z - other.Z}
}

// Mul multiplies the vector by a scalar.
func (v Vec3) Mul(scalar float64) Vec3 {
	return Vec3{X: v.X * scalar, Y: v.Y * scalar, Z: v.Z * scalar}
}

// Dot returns the dot product of two vectors.
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors.
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Length returns the magnitude of the vector.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Distance returns the distance between two points.
func (v Vec3) Distance(other Vec3) float64 {
	return v.Sub(other).Length()
}

// Normalize returns a unit vector in the same direction, or the zero
// vector if the length is below 1e-10.
func (v Vec3) Normalize() Vec3 {
	length := v.Length()
	if length < 1e-10 {
		return Vec3{}
	}
	return v.Mul(1.0 / length)
}

// Min returns a vector with the minimum components of two vectors.
func (v Vec3) Min(other Vec3) Vec3 {
	return Vec3{X: math.Min(v.X, other.X), Y: math.Min(v.Y, other.Y), Z: math.Min(v.Z, other.Z)}
}

// Max returns a vector with the maximum components of two vectors.
func (v Vec3) Max(other Vec3) Vec3 {
	return Vec3{X: math.Max(v.X, other.X), Y: math.Max(v.Y, other.Y), Z: math.Max(v.Z, other.Z)}
}

// EqualEpsilon reports whether two vectors are equal within the
// library's approximate-equality tolerance (ε = 1e-9). STL vertex
// dedup does not use it; that compares raw bits via KeyOf.
func (v Vec3) EqualEpsilon(other Vec3) bool {
	return math.Abs(v.X-other.X) < epsilon &&
		math.Abs(v.Y-other.Y) < epsilon &&
		math.Abs(v.Z-other.Z) < epsilon
}

// Less defines a total lexicographic order over the raw components,
// used to order vertices deterministically (e.g. for sorted output or
// tie-breaking); NaN components are never produced by STL decode and
// are not handled specially.
func (v Vec3) Less(other Vec3) bool {
	if v.X != other.X {
		return v.X < other.X
	}
	if v.Y != other.Y {
		return v.Y < other.Y
	}
	return v.Z < other.Z
}

// Key is a hashable, bit-exact representation of a Vec3 suitable for
// use as a map key during vertex deduplication. Two coordinates that
// differ by a single ULP hash and compare as distinct, which is the
// deterministic dedup behavior required of the STL loader.
type Key struct {
	x, y, z uint64
}

// KeyOf returns the dedup key for v.
func KeyOf(v Vec3) Key {
	return Key{
		x: math.Float64bits(v.X),
		y: math.Float64bits(v.Y),
		z: math.Float64bits(v.Z),
	}
}
