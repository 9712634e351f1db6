// Package analysis implements the high-level façade that orchestrates
// overhang scanning, wall-thickness probing, and orientation search on
// top of a loaded mesh and its spatial index.
package analysis

import (
	"github.com/madfam/geom-core/pkg/geometry"
	"github.com/madfam/geom-core/pkg/mesh"
	"github.com/madfam/geom-core/pkg/spatial"
)

// State is one of the Analyzer's three lifecycle states.
type State int

const (
	// Empty: no mesh has ever been loaded.
	Empty State = iota
	// Loaded: a mesh is present but no spatial index has been built.
	Loaded
	// Indexed: a mesh and a built BVH are both present.
	Indexed
)

func (s State) String() string {
	switch s {
	case Empty:
		return "Empty"
	case Loaded:
		return "Loaded"
	case Indexed:
		return "Indexed"
	default:
		return "Unknown"
	}
}

// Analyzer holds one Mesh and optionally one BVH built against it.
// It is not safe for concurrent use from multiple goroutines; distinct
// Analyzers share no state. Query operations are total: they never
// return an error, even against an empty mesh, per the spec's
// branch-free query contract.
type Analyzer struct {
	mesh   *mesh.Mesh
	bvh    *spatial.BVH
	state  State
	logger Logger
}

// New returns an Analyzer in the Empty state with the default logger.
func New() *Analyzer {
	return &Analyzer{mesh: mesh.Empty(), state: Empty, logger: defaultLogger()}
}

// NewWithLogger returns an Analyzer using the supplied Logger for
// diagnostics instead of the default stderr logger.
func NewWithLogger(logger Logger) *Analyzer {
	a := New()
	a.logger = logger
	return a
}

// NewFromMesh returns an Analyzer in the Loaded state wrapping an
// already-decoded mesh, for callers that already hold a Mesh and skip
// the STL decode.
func NewFromMesh(m *mesh.Mesh) *Analyzer {
	a := New()
	a.setMesh(m)
	return a
}

// State returns the Analyzer's current lifecycle state.
func (a *Analyzer) State() State {
	return a.state
}

// LoadSTLFromPath reads a binary STL file from disk and replaces the
// current mesh. On failure, the Analyzer is left in whatever state it
// was in before the call — no partial mesh is ever exposed.
func (a *Analyzer) LoadSTLFromPath(path string) error {
	m, err := mesh.DecodeSTLFromPath(path)
	if err != nil {
		return err
	}
	a.setMesh(m)
	return nil
}

// LoadSTLFromBytes decodes an in-memory binary STL buffer and replaces
// the current mesh. On failure, the Analyzer is left in whatever state
// it was in before the call.
func (a *Analyzer) LoadSTLFromBytes(buf []byte) error {
	m, err := mesh.DecodeSTL(buf)
	if err != nil {
		return err
	}
	a.setMesh(m)
	return nil
}

func (a *Analyzer) setMesh(m *mesh.Mesh) {
	a.mesh = m
	a.bvh = nil
	a.state = Loaded
}

// VertexCount returns the number of vertices in the current mesh (0 if empty).
func (a *Analyzer) VertexCount() int {
	return a.mesh.VertexCount()
}

// TriangleCount returns the number of triangles in the current mesh (0 if empty).
func (a *Analyzer) TriangleCount() int {
	return a.mesh.TriangleCount()
}

// Volume returns the enclosed volume of the current mesh (0 if empty).
func (a *Analyzer) Volume() float64 {
	return a.mesh.Volume()
}

// IsWatertight reports whether the current mesh is manifold (false if empty).
func (a *Analyzer) IsWatertight() bool {
	return a.mesh.IsWatertight()
}

// BoundingBox returns the extent of the current mesh's vertex cloud
// (the zero vector if empty).
func (a *Analyzer) BoundingBox() geometry.Vec3 {
	return a.mesh.BoundingBox()
}

// BuildSpatialIndex constructs a BVH over the current mesh. Building
// against an empty mesh fails silently: it logs a warning and leaves
// the Analyzer's state unchanged rather than advancing to Indexed.
func (a *Analyzer) BuildSpatialIndex() {
	if a.mesh.TriangleCount() == 0 {
		a.logger.Printf("buildSpatialIndex: empty mesh, nothing to index")
		return
	}
	a.bvh = spatial.Build(a.mesh)
	a.state = Indexed
	a.logger.Printf("built spatial index for %d triangles", a.mesh.TriangleCount())
}

// PrintabilityReport runs the overhang scan and, if the Analyzer is in
// the Indexed state, the wall-thickness probe. Without a spatial
// index it degrades gracefully: thinWallVertexCount is 0 and a
// warning is logged, per the spec's "never an error" query contract.
func (a *Analyzer) PrintabilityReport(criticalAngleDegrees, minWallThicknessMM float64) PrintabilityReport {
	if a.state != Indexed {
		a.logger.Printf("printabilityReport: spatial index not built, skipping wall-thickness analysis")
		return printabilityReport(a.mesh, nil, criticalAngleDegrees, minWallThicknessMM)
	}
	return printabilityReport(a.mesh, a.bvh, criticalAngleDegrees, minWallThicknessMM)
}

// AutoOrient enumerates up to resolution candidate up-vectors (from
// the fixed 26-vector set) and returns the one minimizing overhang
// area, compared against the Z-up baseline. The mesh itself is never
// rotated — only normals are compared against each candidate.
func (a *Analyzer) AutoOrient(resolution int, criticalAngleDegrees float64) OrientationResult {
	return autoOrient(a.mesh, resolution, criticalAngleDegrees)
}

// RayCast exposes the underlying BVH's ray query directly, returning a
// miss if no spatial index has been built.
func (a *Analyzer) RayCast(r spatial.Ray, maxDistance float64) spatial.RayHit {
	if a.bvh == nil {
		return spatial.Miss()
	}
	return a.bvh.RayCast(r, maxDistance)
}
