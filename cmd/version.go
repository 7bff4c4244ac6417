package cmd

import (
	"fmt"

	"github.com/alexiusacademia/goblt/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of goblt",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("goblt v%s\n", version.Version)
		fmt.Println("Bolt Group Load Reduction Tool")
		fmt.Println("Reduces connection loads to a force/moment pair at the bolt group centroid")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
