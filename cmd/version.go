package cmd

import (
	"fmt"

	"bucket-report/core/version"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "bucket-report %s\n", version.Version)
	},
}

func init() {
	RootCmd.AddCommand(versionCmd)
}
