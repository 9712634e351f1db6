package spatial

import "github.com/madfam/geom-core/pkg/geometry"

// parallelEpsilon is the Möller–Trumbore determinant threshold below
// which the ray is treated as parallel to the triangle's plane.
const parallelEpsilon = 1e-8

// TriangleNormal returns the unit normal of the triangle (v0,v1,v2) by
// right-hand rule.
func TriangleNormal(v0, v1, v2 geometry.Vec3) geometry.Vec3 {
	return v1.Sub(v0).Cross(v2.Sub(v0)).Normalize()
}

// TriangleArea returns the area of the triangle (v0,v1,v2).
func TriangleArea(v0, v1, v2 geometry.Vec3) float64 {
	return v1.Sub(v0).Cross(v2.Sub(v0)).Length() * 0.5
}

// IntersectTriangle performs the Möller–Trumbore ray-triangle test.
// It rejects intersections at or behind the ray origin (t ≤ 1e-8) so
// that an epsilon-offset self-intersection probe never hits its own
// originating face.
func IntersectTriangle(r Ray, v0, v1, v2 geometry.Vec3) (t, u, v float64, hit bool) {
	edge1 := v1.Sub(v0)
	edge2 := v2.Sub(v0)

	h := r.Direction.Cross(edge2)
	a := edge1.Dot(h)
	if a > -parallelEpsilon && a < parallelEpsilon {
		return 0, 0, 0, false
	}

	f := 1.0 / a
	s := r.Origin.Sub(v0)
	u = f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return 0, 0, 0, false
	}

	q := s.Cross(edge1)
	v = f * r.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return 0, 0, 0, false
	}

	t = f * edge2.Dot(q)
	if t <= parallelEpsilon {
		return 0, 0, 0, false
	}

	return t, u, v, true
}
