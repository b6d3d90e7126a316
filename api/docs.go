package api

// @title Scanrelay API
// @version v0.3.0
// @description Webhook receiver that relays Semgrep scan results to pull requests.

// @host localhost:8000
// @BasePath /
// @schemes http
