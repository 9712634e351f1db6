package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	orientResolution int
	orientAngle      float64
)

var orientCmd = &cobra.Command{
	Use:   "orient [file]",
	Short: "Search for a print orientation that minimizes overhang",
	Long:  "Evaluate a fixed set of candidate up-vectors against the Z-up baseline and report the one with the least overhang area.",
	Args:  cobra.ExactArgs(1),
	Run:   runOrient,
}

func init() {
	orientCmd.Flags().IntVar(&orientResolution, "resolution", 26, "number of candidate orientations to evaluate (max 26)")
	orientCmd.Flags().Float64Var(&orientAngle, "angle", 45.0, "critical overhang angle in degrees")
	rootCmd.AddCommand(orientCmd)
}

func runOrient(cmd *cobra.Command, args []string) {
	filename := args[0]

	a, err := loadAnalyzer(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", filename, err)
		os.Exit(1)
	}

	result := a.AutoOrient(orientResolution, orientAngle)

	fmt.Println("Auto-Orient Result")
	fmt.Println("===================")
	fmt.Printf("Optimal up vector:      (%.4f, %.4f, %.4f)\n",
		result.OptimalUpVector.X, result.OptimalUpVector.Y, result.OptimalUpVector.Z)
	fmt.Printf("Original overhang area:  %.6f\n", result.OriginalOverhangArea)
	fmt.Printf("Optimized overhang area: %.6f\n", result.OptimizedOverhangArea)
	fmt.Printf("Improvement:             %.2f%%\n", result.ImprovementPercent)
}
