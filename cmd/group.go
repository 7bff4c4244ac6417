package cmd

import (
	"github.com/spf13/cobra"
)

var groupCmd = &cobra.Command{
	Use:   "group",
	Short: "Bolt group reduction from a JSON definition file",
	Long: `Reduce the loads of a bolt group defined in a JSON file.

The file describes the fastener pattern, an optional reference point
and the applied loads. When no reference point is given, the loads
are reduced at the fastener centroid (area-weighted when fastener
areas are provided).

Subcommands:
  reduce    - Reduce the loads to a force/moment pair at the reference point
  centroid  - Calculate the fastener centroid
  combine   - Apply NSCP 2015 load combinations to the per-case resultants

Example JSON file structure:
{
  "name": "Base plate BP-3",
  "units": "N, mm",
  "fasteners": [
    {"x": -75, "y": -100, "z": 0, "area": 314.16, "description": "M20"},
    {"x": 75, "y": -100, "z": 0, "area": 314.16},
    {"x": -75, "y": 100, "z": 0, "area": 314.16},
    {"x": 75, "y": 100, "z": 0, "area": 314.16}
  ],
  "loads": [
    {
      "point": {"x": 0, "y": 0, "z": 1500},
      "force": {"x": -1200, "y": 2000, "z": -3000},
      "case": "dead",
      "description": "column reaction"
    }
  ]
}`,
}

func init() {
	rootCmd.AddCommand(groupCmd)
}
