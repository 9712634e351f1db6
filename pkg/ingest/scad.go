// Package ingest supplements binary-STL loading with an OpenSCAD
// source pipeline: render a .scad model to STL via the external
// openscad binary, then decode the result the same way any other STL
// file is decoded.
package ingest

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/madfam/geom-core/pkg/errs"
)

// Renderer shells out to the openscad CLI to turn a parametric .scad
// source file into a binary STL, written to a file or returned as raw
// bytes; decoding them is left to the caller (for example
// Analyzer.LoadSTLFromBytes). It is a source adapter in front of Mesh/Analyzer, not a
// SCAD interpreter: geom-core never parses OpenSCAD geometry itself.
type Renderer struct {
	workDir string
}

// NewRenderer returns a Renderer resolving relative .scad paths
// against workDir.
func NewRenderer(workDir string) *Renderer {
	return &Renderer{workDir: workDir}
}

// RenderToSTL invokes `openscad -o outputFile scadFile` and returns an
// IOError if the binary is missing from PATH or exits non-zero.
func (r *Renderer) RenderToSTL(scadFile, outputFile string) error {
	absScadFile := scadFile
	if !filepath.IsAbs(scadFile) {
		absScadFile = filepath.Join(r.workDir, scadFile)
	}

	if _, err := exec.LookPath("openscad"); err != nil {
		return errs.NewIOError(absScadFile, fmt.Errorf("openscad not found in PATH: %w", err))
	}

	cmd := exec.Command("openscad", "-o", outputFile, absScadFile)
	cmd.Dir = r.workDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail == "" {
			detail = strings.TrimSpace(stdout.String())
		}
		return errs.NewIOError(absScadFile, fmt.Errorf("openscad render failed: %w (%s)", err, detail))
	}
	return nil
}

// RenderToBytes renders scadFile to a temporary STL in workDir and
// returns its raw bytes, for callers that feed the result through
// Analyzer.LoadSTLFromBytes rather than decoding it directly.
func (r *Renderer) RenderToBytes(scadFile string) ([]byte, error) {
	outputFile := filepath.Join(r.workDir, ".geom-core-render.stl")
	if err := r.RenderToSTL(scadFile, outputFile); err != nil {
		return nil, err
	}
	defer os.Remove(outputFile)

	buf, err := os.ReadFile(outputFile)
	if err != nil {
		return nil, errs.NewIOError(outputFile, err)
	}
	return buf, nil
}

// ResolveDependencies returns the paths of scadFile and every .scad
// file it transitively uses/includes, depth-first, each visited once.
// Relative paths are joined with workDir, so the results are absolute
// only when workDir is.
func (r *Renderer) ResolveDependencies(scadFile string) ([]string, error) {
	absScadFile := scadFile
	if !filepath.IsAbs(scadFile) {
		absScadFile = filepath.Join(r.workDir, scadFile)
	}

	visited := make(map[string]bool)
	var deps []string
	if err := r.resolveDependenciesRecursive(absScadFile, visited, &deps); err != nil {
		return nil, err
	}
	return deps, nil
}

func (r *Renderer) resolveDependenciesRecursive(scadFile string, visited map[string]bool, deps *[]string) error {
	if visited[scadFile] {
		return nil
	}
	visited[scadFile] = true
	*deps = append(*deps, scadFile)

	fileDeps, err := r.parseDependencies(scadFile)
	if err != nil {
		return err
	}
	for _, dep := range fileDeps {
		if err := r.resolveDependenciesRecursive(dep, visited, deps); err != nil {
			return err
		}
	}
	return nil
}

var (
	useRegex     = regexp.MustCompile(`^\s*use\s*<([^>]+)>`)
	includeRegex = regexp.MustCompile(`^\s*include\s*<([^>]+)>`)
)

func (r *Renderer) parseDependencies(scadFile string) ([]string, error) {
	file, err := os.Open(scadFile)
	if err != nil {
		return nil, errs.NewIOError(scadFile, err)
	}
	defer file.Close()

	var deps []string
	scanner := bufio.NewScanner(file)
	scadDir := filepath.Dir(scadFile)

	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(strings.TrimSpace(line), "//") {
			continue
		}
		if matches := useRegex.FindStringSubmatch(line); len(matches) > 1 {
			deps = append(deps, r.resolveDepPath(matches[1], scadDir))
		}
		if matches := includeRegex.FindStringSubmatch(line); len(matches) > 1 {
			deps = append(deps, r.resolveDepPath(matches[1], scadDir))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errs.NewIOError(scadFile, err)
	}
	return deps, nil
}

func (r *Renderer) resolveDepPath(depPath, currentDir string) string {
	if strings.HasPrefix(depPath, "./") || strings.HasPrefix(depPath, "../") {
		return filepath.Clean(filepath.Join(currentDir, depPath))
	}

	absPath := filepath.Join(currentDir, depPath)
	if _, err := os.Stat(absPath); err == nil {
		return filepath.Clean(absPath)
	}

	return filepath.Clean(filepath.Join(r.workDir, depPath))
}
