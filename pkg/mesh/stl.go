package mesh

import (
	"encoding/binary"
	"math"
	"os"

	"github.com/madfam/geom-core/pkg/errs"
	"github.com/madfam/geom-core/pkg/geometry"
)

const (
	headerSize        = 80
	countSize         = 4
	triangleRecordSize = 50 // 12 normal + 3*12 vertices + 2 attribute
)

// DecodeSTL parses a binary STL buffer into a Mesh, deduplicating
// vertices by exact raw-bit coordinates as they're encountered. Faces
// are produced in input order; the first occurrence of a vertex wins
// the index assignment, which makes the loader deterministic across
// runs of the same bytes.
//
// Layout (little-endian): 80-byte header (ignored), u32 triangle count
// N, then N × 50-byte records of {normal (ignored), v0, v1, v2,
// attribute (ignored)}.
func DecodeSTL(buf []byte) (*Mesh, error) {
	if len(buf) < headerSize+countSize {
		return nil, errs.NewMalformedSTL("buffer too small (%d bytes, need at least %d)", len(buf), headerSize+countSize)
	}

	count := binary.LittleEndian.Uint32(buf[headerSize : headerSize+countSize])
	expected := headerSize + countSize + int(count)*triangleRecordSize
	if len(buf) < expected {
		return nil, errs.NewMalformedSTL("buffer size mismatch: expected at least %d bytes for %d triangles, got %d", expected, count, len(buf))
	}

	vertexIndex := make(map[geometry.Key]int)
	vertices := make([]geometry.Vec3, 0, count) // capacity hint only; the deduped vertex count may be above or below count
	faces := make([]Triangle, 0, count)

	offset := headerSize + countSize
	for i := uint32(0); i < count; i++ {
		offset += 12 // skip the stored normal; it's recomputed from winding order

		var indices [3]int
		for j := 0; j < 3; j++ {
			x := decodeFloat32(buf, offset)
			y := decodeFloat32(buf, offset+4)
			z := decodeFloat32(buf, offset+8)
			offset += 12

			v := geometry.NewVec3(float64(x), float64(y), float64(z))
			key := geometry.KeyOf(v)

			idx, exists := vertexIndex[key]
			if !exists {
				idx = len(vertices)
				vertexIndex[key] = idx
				vertices = append(vertices, v)
			}
			indices[j] = idx
		}

		offset += 2 // skip the attribute byte count

		faces = append(faces, Triangle{V0: indices[0], V1: indices[1], V2: indices[2]})
	}

	return New(vertices, faces), nil
}

// DecodeSTLFromPath reads a file from disk and decodes it as binary
// STL.
func DecodeSTLFromPath(path string) (*Mesh, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.NewIOError(path, err)
	}
	return DecodeSTL(buf)
}

func decodeFloat32(buf []byte, offset int) float32 {
	bits := binary.LittleEndian.Uint32(buf[offset : offset+4])
	return math.Float32frombits(bits)
}
