// Package mesh implements the indexed triangle mesh: binary STL
// decoding with vertex deduplication, and the topology/volume queries
// defined over the result.
package mesh

import (
	"github.com/madfam/geom-core/pkg/geometry"
)

// Triangle is an ordered triple of vertex indices into a Mesh's vertex
// array. Winding order encodes the outward normal by right-hand rule.
type Triangle struct {
	V0, V1, V2 int
}

// Mesh is an indexed triangle mesh. It is immutable after construction
// — a reload builds a new Mesh rather than mutating an existing one.
type Mesh struct {
	vertices []geometry.Vec3
	faces    []Triangle
}

// New builds a Mesh directly from a vertex array and a face list. The
// caller is responsible for the dedup invariant; DecodeSTL and
// DecodeSTLFromPath are the normal way to construct a Mesh from bytes.
func New(vertices []geometry.Vec3, faces []Triangle) *Mesh {
	return &Mesh{vertices: vertices, faces: faces}
}

// Empty returns a Mesh with no vertices or faces.
func Empty() *Mesh {
	return &Mesh{}
}

// Vertices returns a read-only view of the vertex array. The backing
// array is shared, not copied — callers (BVH, analyzer) must not
// mutate it.
func (m *Mesh) Vertices() []geometry.Vec3 {
	return m.vertices
}

// Faces returns a read-only view of the face array. The backing array
// is shared, not copied.
func (m *Mesh) Faces() []Triangle {
	return m.faces
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.vertices)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.faces)
}

// Vertex returns the vertex at index i.
func (m *Mesh) Vertex(i int) geometry.Vec3 {
	return m.vertices[i]
}

// Face returns the triangle at index i.
func (m *Mesh) Face(i int) Triangle {
	return m.faces[i]
}

// Volume returns |Σ_f (v0 · (v1 × v2)) / 6| over all triangles: the
// signed tetrahedron sum relative to the origin, which equals the
// enclosed volume for any closed oriented mesh regardless of the
// origin's position. Returns 0 for an empty mesh.
func (m *Mesh) Volume() float64 {
	if len(m.faces) == 0 {
		return 0.0
	}

	var volume float64
	for _, face := range m.faces {
		p1 := m.vertices[face.V0]
		p2 := m.vertices[face.V1]
		p3 := m.vertices[face.V2]
		volume += p1.Dot(p2.Cross(p3))
	}

	if volume < 0 {
		volume = -volume
	}
	return volume / 6.0
}

// IsWatertight reports whether every edge of the mesh is shared by
// exactly two faces. An empty mesh is never watertight.
func (m *Mesh) IsWatertight() bool {
	if len(m.faces) == 0 {
		return false
	}

	type edge struct{ a, b int }
	edgeCount := make(map[edge]int, len(m.faces)*3)

	for _, face := range m.faces {
		pairs := [3][2]int{
			{face.V0, face.V1},
			{face.V1, face.V2},
			{face.V2, face.V0},
		}
		for _, p := range pairs {
			a, b := p[0], p[1]
			if a > b {
				a, b = b, a
			}
			edgeCount[edge{a, b}]++
		}
	}

	for _, count := range edgeCount {
		if count != 2 {
			return false
		}
	}
	return true
}

// BoundingBox returns the extent (max − min) of the vertex cloud, not
// its corners. Returns the zero vector for an empty mesh.
func (m *Mesh) BoundingBox() geometry.Vec3 {
	if len(m.vertices) == 0 {
		return geometry.Vec3{}
	}

	min := m.vertices[0]
	max := m.vertices[0]
	for _, v := range m.vertices[1:] {
		min = min.Min(v)
		max = max.Max(v)
	}
	return max.Sub(min)
}

// Bounds returns the min/max corners of the vertex cloud as a pair of
// vectors. An empty mesh returns two zero vectors and ok = false.
func (m *Mesh) Bounds() (min, max geometry.Vec3, ok bool) {
	if len(m.vertices) == 0 {
		return geometry.Vec3{}, geometry.Vec3{}, false
	}
	min = m.vertices[0]
	max = m.vertices[0]
	for _, v := range m.vertices[1:] {
		min = min.Min(v)
		max = max.Max(v)
	}
	return min, max, true
}
