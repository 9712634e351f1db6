package main

import (
	"fmt"
	"os"

	"github.com/madfam/geom-core/pkg/analysis"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display mesh statistics for an STL or SCAD model",
	Long:  "Show vertex/triangle counts, enclosed volume, watertightness, and bounding box.",
	Args:  cobra.ExactArgs(1),
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) {
	filename := args[0]

	a, err := loadAnalyzer(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", filename, err)
		os.Exit(1)
	}

	printInfo(filename, a)
}

func printInfo(filename string, a *analysis.Analyzer) {
	bbox := a.BoundingBox()

	fmt.Println("Mesh Information")
	fmt.Println("=================")
	fmt.Printf("File: %s\n\n", filename)

	fmt.Println("Topology:")
	fmt.Printf("  Vertices:  %d\n", a.VertexCount())
	fmt.Printf("  Triangles: %d\n", a.TriangleCount())
	fmt.Printf("  Watertight: %t\n\n", a.IsWatertight())

	fmt.Println("Geometry:")
	fmt.Printf("  Volume: %.6f cubic units\n", a.Volume())
	fmt.Printf("  Bounding box extent: (%.6f, %.6f, %.6f)\n", bbox.X, bbox.Y, bbox.Z)
}
