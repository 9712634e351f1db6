package spatial

import (
	"sort"

	"github.com/madfam/geom-core/pkg/geometry"
	"github.com/madfam/geom-core/pkg/mesh"
)

// MaxLeafTriangles bounds how many triangles a BVH leaf may own before
// the builder splits it further.
const MaxLeafTriangles = 10

// MaxDepth bounds the recursion depth of BVH build and traversal.
const MaxDepth = 32

// leafHitEpsilon is the minimum ray parameter a leaf-level hit must
// exceed to be accepted, guarding against spurious self-intersection
// at the BVH level (distinct from the smaller Möller–Trumbore
// parallel-test epsilon).
const leafHitEpsilon = 1e-6

// node is either an inner node with exactly two children or a leaf
// holding a non-empty list of triangle indices.
type node struct {
	bounds   AABB
	left     *node
	right    *node
	triangles []int
}

func (n *node) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// BVH is a binary bounding-volume hierarchy over a mesh's triangles,
// built once and queried with ray casts. It borrows the mesh's vertex
// and face arrays read-only for its entire lifetime — the BVH must be
// rebuilt whenever the mesh is replaced.
type BVH struct {
	root     *node
	vertices []geometry.Vec3
	faces    []mesh.Triangle
}

// Build constructs a BVH over every triangle of m.
func Build(m *mesh.Mesh) *BVH {
	faces := m.Faces()
	vertices := m.Vertices()

	indices := make([]int, len(faces))
	for i := range indices {
		indices[i] = i
	}

	b := &BVH{vertices: vertices, faces: faces}
	if len(indices) > 0 {
		b.root = b.buildNode(indices, 0)
	}
	return b
}

// IsBuilt reports whether the tree has a root, i.e. whether Build ran
// against a non-empty mesh.
func (b *BVH) IsBuilt() bool {
	return b.root != nil
}

func (b *BVH) buildNode(indices []int, depth int) *node {
	n := &node{bounds: b.computeBounds(indices)}

	if len(indices) <= MaxLeafTriangles || depth >= MaxDepth {
		n.triangles = indices
		return n
	}

	axis := n.bounds.LongestAxis()
	sort.Slice(indices, func(i, j int) bool {
		return b.centroidAxis(indices[i], axis) < b.centroidAxis(indices[j], axis)
	})

	mid := len(indices) / 2
	n.left = b.buildNode(indices[:mid], depth+1)
	n.right = b.buildNode(indices[mid:], depth+1)
	return n
}

func (b *BVH) computeBounds(indices []int) AABB {
	box := EmptyAABB()
	for _, idx := range indices {
		f := b.faces[idx]
		box = box.Expand(b.vertices[f.V0])
		box = box.Expand(b.vertices[f.V1])
		box = box.Expand(b.vertices[f.V2])
	}
	return box
}

func (b *BVH) centroidAxis(triIdx, axis int) float64 {
	f := b.faces[triIdx]
	centroid := b.vertices[f.V0].Add(b.vertices[f.V1]).Add(b.vertices[f.V2]).Mul(1.0 / 3.0)
	switch axis {
	case 0:
		return centroid.X
	case 1:
		return centroid.Y
	default:
		return centroid.Z
	}
}

// RayCast traverses the tree depth-first, returning the closest hit
// within maxDistance, or a miss if none was found (including when the
// tree is unbuilt).
func (b *BVH) RayCast(r Ray, maxDistance float64) RayHit {
	best := Miss()
	if b.root == nil {
		return best
	}
	b.rayCastNode(b.root, r, maxDistance, &best)
	return best
}

func (b *BVH) rayCastNode(n *node, r Ray, maxDistance float64, best *RayHit) {
	tMin, _, hit := n.bounds.Intersect(r)
	if !hit {
		return
	}
	if tMin > maxDistance || tMin > best.Distance {
		return
	}

	if n.isLeaf() {
		for _, idx := range n.triangles {
			f := b.faces[idx]
			v0, v1, v2 := b.vertices[f.V0], b.vertices[f.V1], b.vertices[f.V2]

			t, _, _, ok := IntersectTriangle(r, v0, v1, v2)
			if !ok || t <= leafHitEpsilon || t >= maxDistance || t >= best.Distance {
				continue
			}

			best.Hit = true
			best.Distance = t
			best.Triangle = idx
			best.Point = r.At(t)
			best.Normal = TriangleNormal(v0, v1, v2)
		}
		return
	}

	b.rayCastNode(n.left, r, maxDistance, best)
	b.rayCastNode(n.right, r, maxDistance, best)
}
