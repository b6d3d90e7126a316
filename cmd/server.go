package cmd

import (
	"net/http"
	"time"

	"scanrelay/api"
	"scanrelay/api/router/handlers"
	"scanrelay/config"
	"scanrelay/core"
	"scanrelay/logger"

	"github.com/spf13/cobra"
)

var standaloneServerPort string

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Starts the webhook receiver HTTP server",
	Run: func(cmd *cobra.Command, args []string) {
		portToUse := standaloneServerPort
		if portToUse == "" {
			portToUse = config.AppConfig.Server.Port
		}
		if portToUse == "" {
			portToUse = "8000" // Fallback if flag parsing and config both came up empty
		}

		logger.Info("--- Server Command: Run ---")
		logger.Info("Attempting to start server on port %s...", portToUse)

		var poster core.CommentPoster
		if config.AppConfig.GitHub.Token != "" {
			timeout := time.Duration(config.AppConfig.GitHub.TimeoutSeconds) * time.Second
			svc, err := core.NewCommentService(config.AppConfig.GitHub.Token, config.AppConfig.GitHub.APIBaseURL, timeout)
			if err != nil {
				logger.Fatal("Server Command: failed to construct comment service: %v", err)
				return
			}
			poster = svc
			logger.Info("Server Command: GitHub comment delivery enabled.")
		} else {
			logger.Info("Server Command: no GitHub token configured, comment delivery disabled.")
		}

		receiver := handlers.NewReceiverHandler(config.AppConfig.Receiver.APIToken, poster)
		router := api.NewRouter(receiver)
		logger.Info("Server Command: router configured. Attempting to ListenAndServe on :%s...", portToUse)

		if err := http.ListenAndServe(":"+portToUse, router); err != nil {
			logger.Fatal("Could not start server: %v", err)
		}
		logger.Info("Server Command: ListenAndServe exited (should not happen unless error or shutdown).")
	},
}

func init() {
	serverCmd.Flags().StringVarP(&standaloneServerPort, "port", "p", "", "Port for the server to listen on (overrides config/default)")
	rootCmd.AddCommand(serverCmd)
}
