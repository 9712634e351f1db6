package analysis

import (
	"github.com/madfam/geom-core/pkg/geometry"
	"github.com/madfam/geom-core/pkg/mesh"
	"github.com/madfam/geom-core/pkg/spatial"
)

// PrintabilityReport summarizes 3D-printability: how much surface is
// an unsupported overhang, how many sampled vertices sit on a wall
// thinner than the requested minimum, and a 0-100 composite score.
type PrintabilityReport struct {
	OverhangArea        float64
	OverhangPercentage  float64
	ThinWallVertexCount int
	Score               float64
	TotalSurfaceArea    float64
}

// printabilityUp is the Z-up convention the printability report scans
// against; autoOrient explores other candidates separately.
var printabilityUp = geometry.NewVec3(0, 0, 1)

// printabilityReport runs the overhang scan and, if bvh is non-nil and
// built, the wall-thickness probe, then folds both into a composite
// score. A nil/unbuilt bvh degrades gracefully: thin-wall count is 0
// and the caller is expected to have logged a warning already.
func printabilityReport(m *mesh.Mesh, bvh *spatial.BVH, criticalAngleDegrees, minWallThicknessMM float64) PrintabilityReport {
	overhangArea, totalArea := analyzeOverhangs(m, printabilityUp, criticalAngleDegrees)

	overhangPercentage := 0.0
	if totalArea > 0.0 {
		overhangPercentage = overhangArea / totalArea * 100.0
	}

	thinWallCount := 0
	if bvh != nil && bvh.IsBuilt() {
		thinWallCount = thinWallVertexCount(m, bvh, minWallThicknessMM)
	}

	score := 100.0
	score -= min(overhangPercentage*0.5, 50.0)
	if m.VertexCount() > 0 {
		thinWallRatio := float64(thinWallCount) / float64(m.VertexCount())
		score -= min(thinWallRatio*50.0, 50.0)
	}
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return PrintabilityReport{
		OverhangArea:        overhangArea,
		OverhangPercentage:  overhangPercentage,
		ThinWallVertexCount: thinWallCount,
		Score:               score,
		TotalSurfaceArea:    totalArea,
	}
}
