package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:     "geomcore",
	Short:   "A command-line tool for mesh analysis and print-readiness checks",
	Long:    `geomcore loads binary STL (and, via OpenSCAD, parametric .scad) models and reports volume, watertightness, overhang, wall-thickness, and orientation diagnostics.`,
	Version: "0.1.0",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
