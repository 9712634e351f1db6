package reload

import (
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/madfam/geom-core/pkg/analysis"
	"github.com/madfam/geom-core/pkg/geometry"
)

// encodeSingleTriangleSTL produces a minimal valid binary STL with one
// right triangle (its stored normal left zero), enough to flip an
// Analyzer from Empty to Loaded.
func encodeSingleTriangleSTL() []byte {
	buf := make([]byte, 80+4+50)
	binary.LittleEndian.PutUint32(buf[80:84], 1)

	verts := []geometry.Vec3{
		geometry.NewVec3(0, 0, 0),
		geometry.NewVec3(1, 0, 0),
		geometry.NewVec3(0, 1, 0),
	}
	offset := 84 + 12 // skip stored normal
	for _, v := range verts {
		binary.LittleEndian.PutUint32(buf[offset:offset+4], math.Float32bits(float32(v.X)))
		binary.LittleEndian.PutUint32(buf[offset+4:offset+8], math.Float32bits(float32(v.Y)))
		binary.LittleEndian.PutUint32(buf[offset+8:offset+12], math.Float32bits(float32(v.Z)))
		offset += 12
	}
	return buf
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "model.stl")
	if err := os.WriteFile(path, encodeSingleTriangleSTL(), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	a := analysis.New()
	if err := a.LoadSTLFromPath(path); err != nil {
		t.Fatalf("initial load: %v", err)
	}

	reloaded := make(chan error, 1)
	w, err := New(a, path, 20*time.Millisecond, func(err error) {
		reloaded <- err
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer w.Close()
	w.Start()

	if err := os.WriteFile(path, encodeSingleTriangleSTL(), 0o644); err != nil {
		t.Fatalf("rewriting fixture: %v", err)
	}

	select {
	case err := <-reloaded:
		if err != nil {
			t.Fatalf("reload callback reported an error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for debounced reload")
	}

	if a.State() != analysis.Loaded {
		t.Fatalf("expected analyzer to remain Loaded after reload, got %v", a.State())
	}
}

func TestWatcherRejectsMissingPath(t *testing.T) {
	a := analysis.New()
	_, err := New(a, filepath.Join(t.TempDir(), "does-not-exist.stl"), time.Millisecond, nil)
	if err == nil {
		t.Fatal("expected an error watching a nonexistent path")
	}
}

func TestWatcherOnSCADWatchesTransitiveDependencies(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, filepath.Join(dir, "lib.scad"), "module helper() {}\n")
	writeFixture(t, filepath.Join(dir, "main.scad"), "use <lib.scad>\nhelper();\n")

	a := analysis.New()
	w, err := New(a, filepath.Join(dir, "main.scad"), 20*time.Millisecond, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer w.Close()

	if len(w.watcher.WatchList()) != 2 {
		t.Fatalf("expected both main.scad and lib.scad to be watched, got %v", w.watcher.WatchList())
	}
}

func TestWatcherOnSCADReloadsWhenADependencyChanges(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, filepath.Join(dir, "lib.scad"), "module helper() {}\n")
	writeFixture(t, filepath.Join(dir, "main.scad"), "use <lib.scad>\nhelper();\n")

	a := analysis.New()
	reloaded := make(chan error, 1)
	w, err := New(a, filepath.Join(dir, "main.scad"), 20*time.Millisecond, func(err error) {
		reloaded <- err
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer w.Close()
	w.Start()

	writeFixture(t, filepath.Join(dir, "lib.scad"), "module helper() { cube(1); }\n")

	select {
	case <-reloaded:
		// Reloading a .scad always re-renders via OpenSCAD; without the
		// binary installed this errors, but the point under test is
		// that editing a *dependency* (not main.scad itself) triggers
		// a reload attempt at all.
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a reload triggered by a dependency edit")
	}
}

func writeFixture(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing fixture %s: %v", path, err)
	}
}
