package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/goblt/internal/group"
	"github.com/alexiusacademia/goblt/internal/statics"
	"github.com/spf13/cobra"
)

var (
	reduceRef     string
	reduceRecords []string
)

var reduceCmd = &cobra.Command{
	Use:   "reduce",
	Short: "Reduce point loads to a force/moment pair at a reference point",
	Long: `Reduce a set of point loads to the statically equivalent
force/moment pair at a reference point.

Each load is given as a comma-separated record:

  x,y,z,Fx,Fy,Fz[,Mx,My,Mz]

where x,y,z is the application point, Fx,Fy,Fz the applied force and
Mx,My,Mz an optional applied couple. All values must share one
consistent unit system (e.g. N and mm).

Examples:
  # Two forces about the origin
  goblt reduce --load "0,0,1500,-1200,2000,-3000" --load "0,800,1100,3200,1200,-1200"

  # Same loads reduced at a shifted reference point
  goblt reduce --ref "0,100,0" --load "0,0,1500,-1200,2000,-3000"`,
	Run: runReduce,
}

func init() {
	rootCmd.AddCommand(reduceCmd)

	reduceCmd.Flags().StringVarP(&reduceRef, "ref", "r", "0,0,0", "Reference point as \"x,y,z\"")
	reduceCmd.Flags().StringArrayVarP(&reduceRecords, "load", "l", nil, "Load record \"x,y,z,Fx,Fy,Fz[,Mx,My,Mz]\" (repeatable) [required]")
	reduceCmd.MarkFlagRequired("load")
}

func runReduce(cmd *cobra.Command, args []string) {
	refPoint, err := group.ParsePoint(reduceRef)
	if err != nil {
		fmt.Printf("Error parsing reference point: %v\n", err)
		return
	}

	loads, err := group.ParseRecords(reduceRecords)
	if err != nil {
		fmt.Printf("Error parsing loads: %v\n", err)
		return
	}

	result, err := statics.Reduce(refPoint.Vec(), loads)
	if err != nil {
		fmt.Printf("Error reducing loads: %v\n", err)
		return
	}

	// Print header
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          FORCE/MOMENT REDUCTION TO REFERENCE POINT")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("REFERENCE POINT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Printf("  (%.3f, %.3f, %.3f)\n", refPoint.X, refPoint.Y, refPoint.Z)
	fmt.Println()

	fmt.Println("APPLIED LOADS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  #\tPoint\tForce\tMoment\n")
	fmt.Fprintf(w, "  ─\t─────\t─────\t──────\n")
	for i, ld := range loads {
		fmt.Fprintf(w, "  %d\t(%.1f, %.1f, %.1f)\t(%.1f, %.1f, %.1f)\t(%.1f, %.1f, %.1f)\n",
			i+1,
			ld.Point.X, ld.Point.Y, ld.Point.Z,
			ld.Force.X, ld.Force.Y, ld.Force.Z,
			ld.Moment.X, ld.Moment.Y, ld.Moment.Z)
	}
	w.Flush()
	fmt.Println()

	printResultant(result)
}

// printResultant prints the shared RESULT block for reduction commands
func printResultant(r statics.Resultant) {
	fmt.Println("RESULT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Printf("  ╔═══════════════════════════════════════════════════╗\n")
	fmt.Printf("  ║  Fc = (%.2f, %.2f, %.2f)            \n", r.Force.X, r.Force.Y, r.Force.Z)
	fmt.Printf("  ║  Mc = (%.2f, %.2f, %.2f)            \n", r.Moment.X, r.Moment.Y, r.Moment.Z)
	fmt.Printf("  ╚═══════════════════════════════════════════════════╝\n")
	fmt.Printf("  |Fc| = %.2f\n", r.Force.Norm())
	fmt.Printf("  |Mc| = %.2f\n", r.Moment.Norm())
	fmt.Println()
}
