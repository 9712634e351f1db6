// Package spatial provides the ray/AABB/triangle intersection
// primitives and the bounding-volume hierarchy used to accelerate ray
// queries against a mesh.
package spatial

import (
	"math"

	"github.com/madfam/geom-core/pkg/geometry"
)

// Ray is an origin and direction. Direction need not be unit; all
// traversal code tolerates non-unit direction, though the analyzer
// always passes unit rays.
type Ray struct {
	Origin    geometry.Vec3
	Direction geometry.Vec3
}

// NewRay constructs a Ray.
func NewRay(origin, direction geometry.Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point origin + t·direction.
func (r Ray) At(t float64) geometry.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// RayHit is the result of a ray query.
type RayHit struct {
	Hit      bool
	Distance float64
	Triangle int
	Point    geometry.Vec3
	Normal   geometry.Vec3
}

// Miss returns the default miss result: distance = +Inf, triangle
// index -1.
func Miss() RayHit {
	return RayHit{Distance: math.Inf(1), Triangle: -1}
}
