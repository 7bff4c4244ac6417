package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/goblt/internal/group"
	"github.com/alexiusacademia/goblt/internal/statics"
	"github.com/spf13/cobra"
)

var groupCentroidFile string

var groupCentroidCmd = &cobra.Command{
	Use:   "centroid",
	Short: "Calculate the fastener centroid of a bolt group",
	Long: `Calculate the centroid of the fastener pattern defined in a
bolt group JSON file.

When fastener areas are provided the centroid is area-weighted,
otherwise every fastener carries equal weight.

Examples:
  goblt group centroid --file base-plate.json`,
	Run: runGroupCentroid,
}

func init() {
	groupCmd.AddCommand(groupCentroidCmd)

	groupCentroidCmd.Flags().StringVarP(&groupCentroidFile, "file", "f", "", "Path to group JSON file [required]")
	groupCentroidCmd.MarkFlagRequired("file")
}

func runGroupCentroid(cmd *cobra.Command, args []string) {
	grp, err := group.LoadFromFile(groupCentroidFile)
	if err != nil {
		fmt.Printf("Error loading group: %v\n", err)
		return
	}

	if len(grp.Fasteners) == 0 {
		fmt.Println("Error: group file defines no fasteners.")
		return
	}

	areas := grp.FastenerAreas()
	weighted := areas != nil

	centroid, err := statics.Centroid(grp.FastenerPoints(), areas)
	if err != nil {
		fmt.Printf("Error calculating centroid: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          BOLT GROUP CENTROID")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	if grp.Name != "" {
		fmt.Printf("  Group: %s\n", grp.Name)
	}
	if grp.Units != "" {
		fmt.Printf("  Units: %s\n", grp.Units)
	}
	fmt.Println()

	fmt.Println("FASTENERS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  #\tX\tY\tZ\tArea\tDescription\n")
	fmt.Fprintf(w, "  ─\t─\t─\t─\t────\t───────────\n")
	for i, f := range grp.Fasteners {
		if weighted {
			fmt.Fprintf(w, "  %d\t%.1f\t%.1f\t%.1f\t%.2f\t%s\n", i+1, f.X, f.Y, f.Z, f.Area, f.Description)
		} else {
			fmt.Fprintf(w, "  %d\t%.1f\t%.1f\t%.1f\t—\t%s\n", i+1, f.X, f.Y, f.Z, f.Description)
		}
	}
	w.Flush()
	fmt.Println()

	weighting := "equal weights"
	if weighted {
		weighting = "area-weighted"
	}

	fmt.Println("RESULT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Printf("  Weighting: %s\n", weighting)
	fmt.Println()
	fmt.Printf("  ╔═══════════════════════════════════════════════════╗\n")
	fmt.Printf("  ║  CENTROID = (%.3f, %.3f, %.3f)            \n", centroid.X, centroid.Y, centroid.Z)
	fmt.Printf("  ╚═══════════════════════════════════════════════════╝\n")
	fmt.Println()
}
