package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"scanrelay/core"
	"scanrelay/logger"
	"scanrelay/models"

	"github.com/google/uuid"
)

// ReceiverHandler handles inbound scan-result webhooks. It is constructed
// with the values it needs so tests can run it without touching the
// environment or the network.
type ReceiverHandler struct {
	apiToken string
	poster   core.CommentPoster
}

// NewReceiverHandler creates a ReceiverHandler. poster may be nil, which
// disables comment delivery entirely; reports are still accepted.
func NewReceiverHandler(apiToken string, poster core.CommentPoster) *ReceiverHandler {
	return &ReceiverHandler{apiToken: apiToken, poster: poster}
}

// ReceiveScanResults handles POST requests carrying a Semgrep JSON report.
// @Summary Receive Semgrep scan results
// @Description Accepts a Semgrep JSON report, and when the routing headers identify a pull request, posts a summary comment to it.
// @Tags Receiver
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param X-Repo-Owner header string false "Repository owner"
// @Param X-Repo-Name header string false "Repository name"
// @Param X-PR-Number header string false "Pull request number"
// @Success 200 {object} models.ReceiveResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /receiver [post]
func (h *ReceiverHandler) ReceiveScanResults(w http.ResponseWriter, r *http.Request) {
	if h.apiToken == "" || r.Header.Get("Authorization") != "Bearer "+h.apiToken {
		logger.Warn("ReceiveScanResults: rejected request from %s: bad or missing bearer token", r.RemoteAddr)
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Message: "Unauthorized"})
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		logger.Error("ReceiveScanResults: error reading request body: %v", err)
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Message: err.Error()})
		return
	}
	defer r.Body.Close()

	// The payload only has to be syntactically valid JSON; field access
	// later is lenient. The decoder's message is surfaced on failure.
	var payload interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		logger.Error("ReceiveScanResults: invalid JSON body: %v", err)
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Message: err.Error()})
		return
	}

	reportID := uuid.NewString()
	logger.Info("Report %s: received %d bytes from %s", reportID, len(body), r.RemoteAddr)

	rc := models.RoutingContextFromHeaders(
		r.Header.Get(models.HeaderRepoOwner),
		r.Header.Get(models.HeaderRepoName),
		r.Header.Get(models.HeaderPRNumber),
	)

	switch {
	case !rc.Complete():
		logger.Debug("Report %s: routing headers incomplete, skipping delivery", reportID)
	case h.poster == nil:
		logger.Debug("Report %s: delivery disabled (no GitHub credential), skipping", reportID)
	default:
		summary := core.Summarize(body)
		if err := h.poster.PostComment(r.Context(), rc.Owner, rc.Repo, rc.PRNumber, summary); err != nil {
			// Fire-and-forget: delivery failures never change the response.
			logger.DeliveryError("Report %s: delivery to %s/%s#%d failed: %v", reportID, rc.Owner, rc.Repo, rc.PRNumber, err)
		} else {
			logger.Info("Report %s: summary posted to %s/%s#%d", reportID, rc.Owner, rc.Repo, rc.PRNumber)
		}
	}

	writeJSON(w, http.StatusOK, models.ReceiveSuccess())
}
