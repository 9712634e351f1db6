package spatial

import (
	"math"
	"testing"

	"github.com/madfam/geom-core/pkg/geometry"
	"github.com/madfam/geom-core/pkg/mesh"
)

func unitCubeMesh() *mesh.Mesh {
	v := []geometry.Vec3{
		geometry.NewVec3(0, 0, 0), geometry.NewVec3(1, 0, 0),
		geometry.NewVec3(1, 1, 0), geometry.NewVec3(0, 1, 0),
		geometry.NewVec3(0, 0, 1), geometry.NewVec3(1, 0, 1),
		geometry.NewVec3(1, 1, 1), geometry.NewVec3(0, 1, 1),
	}
	idx := [][3]int{
		{0, 3, 1}, {1, 3, 2},
		{4, 5, 7}, {5, 6, 7},
		{0, 1, 4}, {1, 5, 4},
		{1, 2, 5}, {2, 6, 5},
		{2, 3, 6}, {3, 7, 6},
		{3, 0, 7}, {0, 4, 7},
	}
	faces := make([]mesh.Triangle, len(idx))
	for i, f := range idx {
		faces[i] = mesh.Triangle{V0: f[0], V1: f[1], V2: f[2]}
	}
	return mesh.New(v, faces)
}

func TestBVHRayCastHitsBottomFace(t *testing.T) {
	bvh := Build(unitCubeMesh())
	if !bvh.IsBuilt() {
		t.Fatalf("Build failed: expected tree to be built")
	}

	r := NewRay(geometry.NewVec3(0.5, 0.5, -5), geometry.NewVec3(0, 0, 1))
	hit := bvh.RayCast(r, math.Inf(1))
	if !hit.Hit {
		t.Fatalf("RayCast failed: expected a hit through the cube")
	}
	if math.Abs(hit.Distance-5) > 1e-9 {
		t.Errorf("RayCast failed: expected distance 5 (bottom face), got %v", hit.Distance)
	}
}

func TestBVHRayCastMissOnEmptyTree(t *testing.T) {
	bvh := Build(mesh.Empty())
	if bvh.IsBuilt() {
		t.Fatalf("Build failed: expected an empty mesh to produce an unbuilt tree")
	}

	r := NewRay(geometry.NewVec3(0, 0, 0), geometry.NewVec3(0, 0, 1))
	hit := bvh.RayCast(r, math.Inf(1))
	if hit.Hit {
		t.Errorf("RayCast failed: expected a miss against an unbuilt tree")
	}
	if !math.IsInf(hit.Distance, 1) {
		t.Errorf("RayCast failed: expected +Inf distance on miss, got %v", hit.Distance)
	}
}

func TestBVHRayCastRespectsMaxDistance(t *testing.T) {
	bvh := Build(unitCubeMesh())
	r := NewRay(geometry.NewVec3(0.5, 0.5, -5), geometry.NewVec3(0, 0, 1))

	hit := bvh.RayCast(r, 2.0)
	if hit.Hit {
		t.Errorf("RayCast failed: expected miss when the true hit exceeds maxDistance")
	}
}

func TestBVHRayCastFindsClosestHit(t *testing.T) {
	bvh := Build(unitCubeMesh())
	r := NewRay(geometry.NewVec3(0.5, 0.5, -5), geometry.NewVec3(0, 0, 1))
	hit := bvh.RayCast(r, math.Inf(1))

	// The ray crosses both the bottom (z=0) and top (z=1) faces of the
	// cube; the closest hit must be the bottom one.
	if hit.Triangle != 0 && hit.Triangle != 1 {
		t.Errorf("RayCast failed: expected the closest (bottom face) triangle, got index %d", hit.Triangle)
	}
}

func TestBVHExhaustivenessAgainstBruteForce(t *testing.T) {
	m := unitCubeMesh()
	bvh := Build(m)

	rays := []Ray{
		NewRay(geometry.NewVec3(0.5, 0.5, -5), geometry.NewVec3(0, 0, 1)),
		NewRay(geometry.NewVec3(-5, 0.3, 0.3), geometry.NewVec3(1, 0, 0)),
		NewRay(geometry.NewVec3(0.2, -5, 0.7), geometry.NewVec3(0, 1, 0)),
	}

	for _, r := range rays {
		bestT := math.Inf(1)
		bestIdx := -1
		for i, f := range m.Faces() {
			v0, v1, v2 := m.Vertex(f.V0), m.Vertex(f.V1), m.Vertex(f.V2)
			if t, _, _, ok := IntersectTriangle(r, v0, v1, v2); ok && t < bestT {
				bestT = t
				bestIdx = i
			}
		}

		hit := bvh.RayCast(r, math.Inf(1))
		if bestIdx == -1 {
			if hit.Hit {
				t.Errorf("exhaustiveness failed: brute force missed but BVH hit")
			}
			continue
		}
		if !hit.Hit {
			t.Errorf("exhaustiveness failed: brute force hit t=%v but BVH missed", bestT)
			continue
		}
		if math.Abs(hit.Distance-bestT) > 1e-9 {
			t.Errorf("exhaustiveness failed: brute force t=%v, BVH t=%v", bestT, hit.Distance)
		}
	}
}
