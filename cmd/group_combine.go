package cmd

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/alexiusacademia/goblt/internal/combo"
	"github.com/alexiusacademia/goblt/internal/group"
	"github.com/spf13/cobra"
)

var (
	groupCombineFile       string
	groupCombineShowAll    bool
	groupCombineSimplified bool
)

var groupCombineCmd = &cobra.Command{
	Use:   "combine",
	Short: "Apply NSCP load combinations to the per-case resultants",
	Long: `Reduce each load case of a bolt group file separately, then apply
the NSCP 2015 load combinations to the per-case resultants and report
the governing factored resultant.

Every load in the file must carry a "case" field naming one of:
dead, live, roof, wind, earthquake, rain.

Examples:
  goblt group combine --file base-plate.json
  goblt group combine -f base-plate.json --all
  goblt group combine -f base-plate.json --simplified`,
	Run: runGroupCombine,
}

func init() {
	groupCmd.AddCommand(groupCombineCmd)

	groupCombineCmd.Flags().StringVarP(&groupCombineFile, "file", "f", "", "Path to group JSON file [required]")
	groupCombineCmd.MarkFlagRequired("file")

	groupCombineCmd.Flags().BoolVarP(&groupCombineShowAll, "all", "a", false, "Show all load combination results")
	groupCombineCmd.Flags().BoolVarP(&groupCombineSimplified, "simplified", "s", false, "Use simplified combinations (gravity only: 1.4D and 1.2D+1.6L)")
}

func runGroupCombine(cmd *cobra.Command, args []string) {
	grp, err := group.LoadFromFile(groupCombineFile)
	if err != nil {
		fmt.Printf("Error loading group: %v\n", err)
		return
	}

	if len(grp.Loads) == 0 {
		fmt.Println("Error: group file defines no loads to combine.")
		return
	}

	ref, err := grp.ReferencePoint()
	if err != nil {
		fmt.Printf("Error resolving reference point: %v\n", err)
		return
	}

	byCase := grp.CaseLoads()
	cases, err := combo.FromCases(ref, byCase)
	if err != nil {
		fmt.Printf("Error reducing load cases: %v\n", err)
		return
	}

	// Select which combinations to use
	combinations := combo.Combinations
	if groupCombineSimplified {
		combinations = combo.SimplifiedCombinations
	}

	result, governing := combo.Governing(cases, combinations)

	// Print header
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          NSCP 2015 FACTORED RESULTANT CALCULATION")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	if grp.Name != "" {
		fmt.Printf("  Group: %s\n", grp.Name)
	}
	fmt.Printf("  Reference point: (%.3f, %.3f, %.3f)\n", ref.X, ref.Y, ref.Z)
	fmt.Println()

	// Per-case resultants
	fmt.Println("UNFACTORED CASE RESULTANTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Case\tLoads\t|F|\t|M|\n")
	fmt.Fprintf(w, "  ────\t─────\t───\t───\n")

	names := make([]string, 0, len(byCase))
	for name := range byCase {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		r, ok := cases.Get(name)
		if !ok {
			continue
		}
		fmt.Fprintf(w, "  %s\t%d\t%.2f\t%.2f\n", name, len(byCase[name]), r.Force.Norm(), r.Moment.Norm())
	}
	w.Flush()
	fmt.Println()

	if groupCombineShowAll {
		// Show all combinations
		fmt.Println("LOAD COMBINATIONS (NSCP 2015 Section 203.3):")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  #\tCombination\t|Fu|\t|Mu|\n")
		fmt.Fprintf(w, "  ─\t───────────\t────\t────\n")

		for _, c := range combinations {
			r := c.Factored(cases)
			marker := ""
			if c.ID == governing.ID {
				marker = " ← GOVERNS"
			}
			fmt.Fprintf(w, "  %s\t%s\t%.2f\t%.2f%s\n", c.ID, c.Description, r.Force.Norm(), r.Moment.Norm(), marker)
		}
		w.Flush()
		fmt.Println()
	}

	// Print result
	fmt.Println("RESULT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Printf("  Governing Combination: %s (%s)\n", governing.ID, governing.Description)
	fmt.Println()
	printResultant(result)
}
