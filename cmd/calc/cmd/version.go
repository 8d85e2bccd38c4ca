package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of calc",
	Long:  `Print the version number of calc.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "calc %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
