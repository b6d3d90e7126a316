package cmd

import (
	"fmt"
	"os"
	"scanrelay/config"

	"github.com/spf13/cobra"
)

var (
	cfgFile             string
	appLogPathFlag      string
	deliveryLogPathFlag string
	logLevelFlag        string
)

var rootCmd = &cobra.Command{
	Use:   "scanrelay",
	Short: "Webhook receiver that relays Semgrep scan results to pull requests",
	Long: `scanrelay accepts Semgrep scan-result webhooks over HTTP, renders a
human-readable summary of the findings, and posts that summary as a
comment on the pull request identified by the request's routing headers.

Delivery is fire-and-forget: a report is always accepted once it passes
authentication, whether or not a comment could be posted.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Init(cfgFile, appLogPathFlag, deliveryLogPathFlag, logLevelFlag); err != nil {
			return fmt.Errorf("failed to initialize config in PersistentPreRunE: %w", err)
		}
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/scanrelay/config.yaml or ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&appLogPathFlag, "app-log", "", "path for the application log file (overrides config/default)")
	rootCmd.PersistentFlags().StringVar(&deliveryLogPathFlag, "delivery-log", "", "path for the delivery log file (overrides config/default)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "log level: DEBUG, INFO, ERROR (overrides config/default)")
}
