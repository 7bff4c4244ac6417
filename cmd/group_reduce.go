package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/goblt/internal/diagram"
	"github.com/alexiusacademia/goblt/internal/group"
	"github.com/alexiusacademia/goblt/internal/statics"
	"github.com/spf13/cobra"
)

var (
	groupReduceFile        string
	groupReduceShowDiagram bool
	groupReduceExportFile  string
)

var groupReduceCmd = &cobra.Command{
	Use:   "reduce",
	Short: "Reduce group loads to a force/moment pair at the reference point",
	Long: `Reduce the loads of a bolt group JSON file to the statically
equivalent force/moment pair at the group's reference point.

When the file defines no explicit reference point, the fastener
centroid is used.

Examples:
  goblt group reduce --file base-plate.json
  goblt group reduce -f base-plate.json --diagram -o plan.png`,
	Run: runGroupReduce,
}

func init() {
	groupCmd.AddCommand(groupReduceCmd)

	groupReduceCmd.Flags().StringVarP(&groupReduceFile, "file", "f", "", "Path to group JSON file [required]")
	groupReduceCmd.MarkFlagRequired("file")

	// Diagram options
	groupReduceCmd.Flags().BoolVar(&groupReduceShowDiagram, "diagram", false, "Show ASCII plan view of the bolt pattern")
	groupReduceCmd.Flags().StringVarP(&groupReduceExportFile, "output", "o", "", "Export plan view to file (png, svg, pdf)")
}

func runGroupReduce(cmd *cobra.Command, args []string) {
	// Load group from file
	grp, err := group.LoadFromFile(groupReduceFile)
	if err != nil {
		fmt.Printf("Error loading group: %v\n", err)
		return
	}

	if len(grp.Loads) == 0 {
		fmt.Println("Error: group file defines no loads to reduce.")
		return
	}

	ref, err := grp.ReferencePoint()
	if err != nil {
		fmt.Printf("Error resolving reference point: %v\n", err)
		return
	}

	result, err := statics.Reduce(ref, grp.StaticsLoads())
	if err != nil {
		fmt.Printf("Error reducing loads: %v\n", err)
		return
	}

	// Print results
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          BOLT GROUP LOAD REDUCTION")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	// Group info
	if grp.Name != "" {
		fmt.Printf("  Group: %s\n", grp.Name)
	}
	if grp.Description != "" {
		fmt.Printf("  Description: %s\n", grp.Description)
	}
	if grp.Units != "" {
		fmt.Printf("  Units: %s\n", grp.Units)
	}
	fmt.Println()

	fmt.Println("REFERENCE POINT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if grp.Reference != nil {
		fmt.Fprintf(w, "  Source:\texplicit reference\n")
	} else {
		fmt.Fprintf(w, "  Source:\tfastener centroid (%d fasteners)\n", len(grp.Fasteners))
	}
	fmt.Fprintf(w, "  Location:\t(%.3f, %.3f, %.3f)\n", ref.X, ref.Y, ref.Z)
	w.Flush()
	fmt.Println()

	fmt.Println("APPLIED LOADS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  #\tPoint\tForce\tMoment\tDescription\n")
	fmt.Fprintf(w, "  ─\t─────\t─────\t──────\t───────────\n")
	for i, ld := range grp.Loads {
		fmt.Fprintf(w, "  %d\t(%.1f, %.1f, %.1f)\t(%.1f, %.1f, %.1f)\t(%.1f, %.1f, %.1f)\t%s\n",
			i+1,
			ld.Point.X, ld.Point.Y, ld.Point.Z,
			ld.Force.X, ld.Force.Y, ld.Force.Z,
			ld.Moment.X, ld.Moment.Y, ld.Moment.Z,
			ld.Description)
	}
	w.Flush()
	fmt.Println()

	printResultant(result)

	data := planViewData(grp, ref.X, ref.Y)

	// Show diagram if requested
	if groupReduceShowDiagram {
		fmt.Println(diagram.DrawASCIIPlanView(data))
	}

	// Export diagram if requested
	if groupReduceExportFile != "" {
		err := diagram.ExportPlanDiagram(data, groupReduceExportFile)
		if err != nil {
			fmt.Printf("Error exporting diagram: %v\n", err)
		} else {
			fmt.Printf("Diagram exported to: %s\n", groupReduceExportFile)
		}
	}
}

// planViewData projects a group onto the connection plane for drawing
func planViewData(grp *group.Group, refX, refY float64) diagram.PlanViewData {
	data := diagram.PlanViewData{
		Name:      grp.Name,
		Units:     grp.Units,
		Reference: diagram.Point{X: refX, Y: refY},
	}
	for _, f := range grp.Fasteners {
		data.Fasteners = append(data.Fasteners, diagram.Point{X: f.X, Y: f.Y})
	}
	for _, ld := range grp.Loads {
		data.LoadPoints = append(data.LoadPoints, diagram.Point{X: ld.Point.X, Y: ld.Point.Y})
	}
	return data
}
