package analysis

import (
	"math"

	"github.com/madfam/geom-core/pkg/geometry"
	"github.com/madfam/geom-core/pkg/mesh"
	"github.com/madfam/geom-core/pkg/spatial"
)

// analyzeOverhangs classifies every face as overhang or not relative
// to up and the critical angle (degrees), accumulating total and
// overhang surface area. A face is an overhang when its normal lies
// within θ_crit of straight down (−up): n·up < −cos(θ_crit). Faces are
// visited in storage order so area sums are bit-stable across runs of
// the same mesh.
func analyzeOverhangs(m *mesh.Mesh, up geometry.Vec3, criticalAngleDegrees float64) (overhangArea, totalArea float64) {
	if m.TriangleCount() == 0 {
		return 0, 0
	}

	cosThreshold := math.Cos(criticalAngleDegrees * math.Pi / 180.0)

	for _, face := range m.Faces() {
		v0 := m.Vertex(face.V0)
		v1 := m.Vertex(face.V1)
		v2 := m.Vertex(face.V2)

		normal := spatial.TriangleNormal(v0, v1, v2)
		area := spatial.TriangleArea(v0, v1, v2)
		totalArea += area

		if normal.Dot(up) < -cosThreshold {
			overhangArea += area
		}
	}

	return overhangArea, totalArea
}
