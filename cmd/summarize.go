package cmd

import (
	"fmt"
	"io"
	"os"

	"scanrelay/core"

	"github.com/spf13/cobra"
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize [file]",
	Short: "Render the summary for a Semgrep JSON report",
	Long: `Reads a Semgrep JSON report from the given file (or stdin when no file
is provided) and prints the summary text that the server would post as a
pull-request comment. Useful for previewing comment output without
running the server.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var raw []byte
		var err error
		if len(args) == 1 {
			raw, err = os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading report file: %w", err)
			}
		} else {
			raw, err = io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("reading report from stdin: %w", err)
			}
		}

		fmt.Fprintln(cmd.OutOrStdout(), core.Summarize(raw))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(summarizeCmd)
}
