package analysis

import (
	"math"

	"github.com/madfam/geom-core/pkg/geometry"
	"github.com/madfam/geom-core/pkg/mesh"
)

// orientationCandidates returns the fixed 26-vector sphere sampling:
// 6 cardinal directions, 12 edge directions (45° between axis pairs),
// and 8 corner directions, in that fixed order so a smaller resolution
// takes a deterministic prefix.
func orientationCandidates() []geometry.Vec3 {
	invSqrt2 := 1.0 / math.Sqrt2
	invSqrt3 := 1.0 / math.Sqrt(3.0)

	return []geometry.Vec3{
		// 6 cardinals
		geometry.NewVec3(1, 0, 0),
		geometry.NewVec3(-1, 0, 0),
		geometry.NewVec3(0, 1, 0),
		geometry.NewVec3(0, -1, 0),
		geometry.NewVec3(0, 0, 1),
		geometry.NewVec3(0, 0, -1),

		// 12 edges
		geometry.NewVec3(invSqrt2, invSqrt2, 0),
		geometry.NewVec3(invSqrt2, -invSqrt2, 0),
		geometry.NewVec3(-invSqrt2, invSqrt2, 0),
		geometry.NewVec3(-invSqrt2, -invSqrt2, 0),
		geometry.NewVec3(invSqrt2, 0, invSqrt2),
		geometry.NewVec3(invSqrt2, 0, -invSqrt2),
		geometry.NewVec3(-invSqrt2, 0, invSqrt2),
		geometry.NewVec3(-invSqrt2, 0, -invSqrt2),
		geometry.NewVec3(0, invSqrt2, invSqrt2),
		geometry.NewVec3(0, invSqrt2, -invSqrt2),
		geometry.NewVec3(0, -invSqrt2, invSqrt2),
		geometry.NewVec3(0, -invSqrt2, -invSqrt2),

		// 8 corners
		geometry.NewVec3(invSqrt3, invSqrt3, invSqrt3),
		geometry.NewVec3(invSqrt3, invSqrt3, -invSqrt3),
		geometry.NewVec3(invSqrt3, -invSqrt3, invSqrt3),
		geometry.NewVec3(invSqrt3, -invSqrt3, -invSqrt3),
		geometry.NewVec3(-invSqrt3, invSqrt3, invSqrt3),
		geometry.NewVec3(-invSqrt3, invSqrt3, -invSqrt3),
		geometry.NewVec3(-invSqrt3, -invSqrt3, invSqrt3),
		geometry.NewVec3(-invSqrt3, -invSqrt3, -invSqrt3),
	}
}

// OrientationResult is the outcome of an auto-orient search.
type OrientationResult struct {
	OptimalUpVector       geometry.Vec3
	OriginalOverhangArea  float64
	OptimizedOverhangArea float64
	ImprovementPercent    float64
}

// autoOrient evaluates the overhang scan against up to resolution
// candidate up-vectors (the fixed 26-vector set, prefix-truncated) and
// returns the one minimizing overhang area, compared against the
// Z-up baseline.
func autoOrient(m *mesh.Mesh, resolution int, criticalAngleDegrees float64) OrientationResult {
	zUp := geometry.NewVec3(0, 0, 1)
	originalOverhang, _ := analyzeOverhangs(m, zUp, criticalAngleDegrees)

	candidates := orientationCandidates()
	if resolution > 0 && resolution < len(candidates) {
		candidates = candidates[:resolution]
	}

	bestOverhang := originalOverhang
	bestUp := zUp

	for _, candidate := range candidates {
		overhang, _ := analyzeOverhangs(m, candidate, criticalAngleDegrees)
		if overhang < bestOverhang {
			bestOverhang = overhang
			bestUp = candidate
		}
	}

	improvement := 0.0
	if originalOverhang > 0.0 {
		improvement = (originalOverhang - bestOverhang) / originalOverhang * 100.0
	}

	return OrientationResult{
		OptimalUpVector:       bestUp,
		OriginalOverhangArea:  originalOverhang,
		OptimizedOverhangArea: bestOverhang,
		ImprovementPercent:    improvement,
	}
}
