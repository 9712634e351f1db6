package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	printabilityAngle   float64
	printabilityMinWall float64
)

var printabilityCmd = &cobra.Command{
	Use:   "printability [file]",
	Short: "Score a model's 3D-printability",
	Long:  "Build a spatial index, scan for overhangs past the critical angle, probe for thin walls, and report a 0-100 composite score.",
	Args:  cobra.ExactArgs(1),
	Run:   runPrintability,
}

func init() {
	printabilityCmd.Flags().Float64Var(&printabilityAngle, "angle", 45.0, "critical overhang angle in degrees")
	printabilityCmd.Flags().Float64Var(&printabilityMinWall, "min-wall", 1.0, "minimum acceptable wall thickness")
	rootCmd.AddCommand(printabilityCmd)
}

func runPrintability(cmd *cobra.Command, args []string) {
	filename := args[0]

	a, err := loadAnalyzer(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", filename, err)
		os.Exit(1)
	}

	a.BuildSpatialIndex()
	report := a.PrintabilityReport(printabilityAngle, printabilityMinWall)

	fmt.Println("Printability Report")
	fmt.Println("====================")
	fmt.Printf("Overhang area:        %.6f (%.2f%% of surface)\n", report.OverhangArea, report.OverhangPercentage)
	fmt.Printf("Thin-wall vertices:   %d\n", report.ThinWallVertexCount)
	fmt.Printf("Total surface area:   %.6f\n", report.TotalSurfaceArea)
	fmt.Printf("Score:                %.1f / 100\n", report.Score)
}
