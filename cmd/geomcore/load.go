package main

import (
	"path/filepath"
	"strings"

	"github.com/madfam/geom-core/pkg/analysis"
	"github.com/madfam/geom-core/pkg/ingest"
)

// loadAnalyzer loads path into a fresh Analyzer. .scad files are
// rendered through OpenSCAD first; everything else is treated as
// binary STL.
func loadAnalyzer(path string) (*analysis.Analyzer, error) {
	a := analysis.New()

	if strings.EqualFold(filepath.Ext(path), ".scad") {
		renderer := ingest.NewRenderer(filepath.Dir(path))
		buf, err := renderer.RenderToBytes(filepath.Base(path))
		if err != nil {
			return nil, err
		}
		if err := a.LoadSTLFromBytes(buf); err != nil {
			return nil, err
		}
		return a, nil
	}

	if err := a.LoadSTLFromPath(path); err != nil {
		return nil, err
	}
	return a, nil
}
