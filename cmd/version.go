package cmd

import (
	"fmt"
	"scanrelay/version"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the application version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.AppVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
