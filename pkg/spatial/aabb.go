package spatial

import (
	"math"

	"github.com/madfam/geom-core/pkg/geometry"
)

// AABB is an axis-aligned bounding box. The canonical empty box has
// Min = +∞ and Max = −∞ in every component, so Expand always replaces
// it on first use.
type AABB struct {
	Min, Max geometry.Vec3
}

// EmptyAABB returns the canonical empty AABB.
func EmptyAABB() AABB {
	inf := math.Inf(1)
	return AABB{
		Min: geometry.NewVec3(inf, inf, inf),
		Max: geometry.NewVec3(-inf, -inf, -inf),
	}
}

// Expand grows the box to include point.
func (b AABB) Expand(point geometry.Vec3) AABB {
	return AABB{Min: b.Min.Min(point), Max: b.Max.Max(point)}
}

// Union returns the smallest box containing both b and other.
func (b AABB) Union(other AABB) AABB {
	return AABB{Min: b.Min.Min(other.Min), Max: b.Max.Max(other.Max)}
}

// Extent returns Max − Min.
func (b AABB) Extent() geometry.Vec3 {
	return b.Max.Sub(b.Min)
}

// LongestAxis returns the index (0=X, 1=Y, 2=Z) of the box's longest
// extent. Ties prefer X over Y over Z.
func (b AABB) LongestAxis() int {
	extent := b.Extent()
	axis := 0
	if extent.Y > axisValue(extent, axis) {
		axis = 1
	}
	if extent.Z > axisValue(extent, axis) {
		axis = 2
	}
	return axis
}

func axisValue(v geometry.Vec3, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// Intersect performs the slab-method ray-box test, returning the
// clipped [tMin, tMax] interval and whether the ray hits the box at
// all. Axes where |direction| < 1e-8 are treated as parallel to the
// slab: a miss unless the origin already lies within that slab.
func (b AABB) Intersect(r Ray) (tMin, tMax float64, hit bool) {
	tMin = 0.0
	tMax = math.Inf(1)

	origin := [3]float64{r.Origin.X, r.Origin.Y, r.Origin.Z}
	dir := [3]float64{r.Direction.X, r.Direction.Y, r.Direction.Z}
	min := [3]float64{b.Min.X, b.Min.Y, b.Min.Z}
	max := [3]float64{b.Max.X, b.Max.Y, b.Max.Z}

	for i := 0; i < 3; i++ {
		if math.Abs(dir[i]) < 1e-8 {
			if origin[i] < min[i] || origin[i] > max[i] {
				return 0, 0, false
			}
			continue
		}

		invD := 1.0 / dir[i]
		t1 := (min[i] - origin[i]) * invD
		t2 := (max[i] - origin[i]) * invD
		if t1 > t2 {
			t1, t2 = t2, t1
		}

		if t1 > tMin {
			tMin = t1
		}
		if t2 < tMax {
			tMax = t2
		}
		if tMin > tMax {
			return 0, 0, false
		}
	}

	return tMin, tMax, true
}
