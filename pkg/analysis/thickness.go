package analysis

import (
	"github.com/madfam/geom-core/pkg/geometry"
	"github.com/madfam/geom-core/pkg/mesh"
	"github.com/madfam/geom-core/pkg/spatial"
)

// wallProbeEpsilon offsets the ray origin off the surface along the
// vertex normal so the probe doesn't self-intersect its own incident
// faces.
const wallProbeEpsilon = 1e-3

// vertexNormals precomputes the averaged one-ring face normal for
// every vertex in a single pass over the faces, rather than the naive
// O(V·F) "scan all faces per vertex" the spec describes as merely
// sufficient. Vertices with no incident face get the zero vector.
func vertexNormals(m *mesh.Mesh) []geometry.Vec3 {
	normals := make([]geometry.Vec3, m.VertexCount())

	for _, face := range m.Faces() {
		v0 := m.Vertex(face.V0)
		v1 := m.Vertex(face.V1)
		v2 := m.Vertex(face.V2)
		n := spatial.TriangleNormal(v0, v1, v2)

		normals[face.V0] = normals[face.V0].Add(n)
		normals[face.V1] = normals[face.V1].Add(n)
		normals[face.V2] = normals[face.V2].Add(n)
	}

	for i, n := range normals {
		normals[i] = n.Normalize()
	}
	return normals
}

// vertexSampleStride returns 1 for meshes up to 10,000 vertices, and
// 10 otherwise, matching the spec's fixed sample-rate policy.
func vertexSampleStride(vertexCount int) int {
	if vertexCount <= 10000 {
		return 1
	}
	return 10
}

// thinWallVertexCount probes every sampled vertex by casting a ray
// from just outside the surface, along the inward (negative) vertex
// normal, up to 10·tMin. A hit closer than tMin indicates the local
// wall is thinner than tMin at that point. Requires a built BVH.
func thinWallVertexCount(m *mesh.Mesh, bvh *spatial.BVH, tMin float64) int {
	normals := vertexNormals(m)
	stride := vertexSampleStride(m.VertexCount())
	maxProbeDistance := 10 * tMin

	count := 0
	for i := 0; i < m.VertexCount(); i += stride {
		n := normals[i]
		if n == (geometry.Vec3{}) {
			continue // no incident face
		}

		origin := m.Vertex(i).Add(n.Mul(wallProbeEpsilon))
		ray := spatial.NewRay(origin, n.Mul(-1))

		hit := bvh.RayCast(ray, maxProbeDistance)
		if hit.Hit && hit.Distance < tMin {
			count++
		}
	}
	return count
}
