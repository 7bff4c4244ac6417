package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/goblt/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "goblt",
	Short: "Bolt Group Load Reduction Tool",
	Long: `goblt - Go Bolt Group Load Transfer

A CLI tool for reducing external forces and moments applied to a
bolted connection into an equivalent force/moment pair at the
bolt group centroid (or any chosen reference point).

This tool helps structural engineers perform:
  - Static-equivalent load reduction to a reference point
  - Bolt group centroid calculation (equal or area-weighted)
  - Factored load combinations per NSCP 2015
  - Plan view diagrams of the bolt pattern and applied loads

The resultant is the starting point for distributing connection
forces to individual fasteners (not covered by this tool).`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   goblt v%-49s║\n", version.Version)
		fmt.Println("  ║   Go Bolt Group Load Transfer                             ║")
		fmt.Println("  ║   Alexius S. Academia ©  2026                             ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for reducing connection loads to an equivalent")
		fmt.Println("  force/moment pair at the bolt group centroid.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Force/moment reduction to any reference point")
		fmt.Println("    • Bolt group centroid calculation")
		fmt.Println("    • Factored resultants using NSCP load combinations")
		fmt.Println("    • Plan view diagrams (ASCII and png/svg/pdf export)")
		fmt.Println()
		fmt.Println("  Use 'goblt --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
