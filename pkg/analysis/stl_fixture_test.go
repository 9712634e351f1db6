package analysis

import (
	"encoding/binary"
	"math"

	"github.com/madfam/geom-core/pkg/geometry"
	"github.com/madfam/geom-core/pkg/spatial"
)

// encodeUnitCubeSTL serializes the 12-triangle unit cube used across
// this package's tests into a binary STL buffer, for exercising the
// Analyzer's byte-level load path end to end.
func encodeUnitCubeSTL() []byte {
	m := unitCubeMesh()
	faces := m.Faces()

	buf := make([]byte, 80+4+len(faces)*50)
	binary.LittleEndian.PutUint32(buf[80:84], uint32(len(faces)))

	offset := 84
	for _, f := range faces {
		v0 := m.Vertex(f.V0)
		v1 := m.Vertex(f.V1)
		v2 := m.Vertex(f.V2)
		n := spatial.TriangleNormal(v0, v1, v2)

		putVec(buf, offset, n)
		offset += 12
		putVec(buf, offset, v0)
		offset += 12
		putVec(buf, offset, v1)
		offset += 12
		putVec(buf, offset, v2)
		offset += 12
		offset += 2 // attribute byte count
	}
	return buf
}

func putVec(buf []byte, offset int, v geometry.Vec3) {
	binary.LittleEndian.PutUint32(buf[offset:offset+4], math.Float32bits(float32(v.X)))
	binary.LittleEndian.PutUint32(buf[offset+4:offset+8], math.Float32bits(float32(v.Y)))
	binary.LittleEndian.PutUint32(buf[offset+8:offset+12], math.Float32bits(float32(v.Z)))
}

// spatialRayThroughCube returns a ray that passes straight through the
// unit cube along +Z, starting well below it.
func spatialRayThroughCube() spatial.Ray {
	return spatial.NewRay(geometry.NewVec3(0.5, 0.5, -10), geometry.NewVec3(0, 0, 1))
}
