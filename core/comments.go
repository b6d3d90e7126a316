package core

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"scanrelay/logger"

	"github.com/google/go-github/v68/github"
)

// CommentPoster is the narrow interface the receiver depends on for
// delivering a summary. Tests substitute a fake; production uses
// CommentService.
type CommentPoster interface {
	PostComment(ctx context.Context, owner, repo string, prNumber int, body string) error
}

// CommentService posts summaries as issue comments on pull requests via
// the GitHub API.
type CommentService struct {
	client *github.Client
}

// NewCommentService builds a CommentService authenticated with the given
// token. apiBaseURL overrides the GitHub API endpoint (used for GitHub
// Enterprise and for tests); empty means api.github.com. The timeout is a
// hard wall-clock bound on each outbound call.
func NewCommentService(token, apiBaseURL string, timeout time.Duration) (*CommentService, error) {
	httpClient := &http.Client{Timeout: timeout}
	client := github.NewClient(httpClient).WithAuthToken(token)

	if apiBaseURL != "" {
		base, err := url.Parse(apiBaseURL)
		if err != nil {
			return nil, fmt.Errorf("parsing GitHub API base URL %q: %w", apiBaseURL, err)
		}
		if !strings.HasSuffix(base.Path, "/") {
			base.Path += "/"
		}
		client.BaseURL = base
	}

	return &CommentService{client: client}, nil
}

// PostComment creates an issue comment on the given pull request carrying
// the summary text. Delivery counts as successful only on a 201 Created
// from the API; anything else is reported as an error for the caller to
// log and swallow.
func (s *CommentService) PostComment(ctx context.Context, owner, repo string, prNumber int, body string) error {
	comment := &github.IssueComment{Body: github.String(body)}

	logger.DeliveryDebug("Posting comment to %s/%s#%d (%d bytes)", owner, repo, prNumber, len(body))
	_, resp, err := s.client.Issues.CreateComment(ctx, owner, repo, prNumber, comment)
	if err != nil {
		return fmt.Errorf("creating comment on %s/%s#%d: %w", owner, repo, prNumber, err)
	}
	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("unexpected status %d creating comment on %s/%s#%d", resp.StatusCode, owner, repo, prNumber)
	}

	logger.DeliveryInfo("Comment created on %s/%s#%d", owner, repo, prNumber)
	return nil
}
