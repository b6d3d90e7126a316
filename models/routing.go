package models

import "strconv"

// Request headers that carry the pull-request routing metadata.
const (
	HeaderRepoOwner = "X-Repo-Owner"
	HeaderRepoName  = "X-Repo-Name"
	HeaderPRNumber  = "X-PR-Number"
)

// RoutingContext identifies the pull request a summary comment should be
// posted to. It is sourced from request headers and is entirely optional:
// an incomplete context disables delivery for that request without
// failing it.
type RoutingContext struct {
	Owner    string
	Repo     string
	PRNumber int
}

// Complete reports whether all three routing values are usable. A PR
// number that was missing or did not parse to a positive integer leaves
// PRNumber at zero, which makes the context incomplete.
func (rc RoutingContext) Complete() bool {
	return rc.Owner != "" && rc.Repo != "" && rc.PRNumber > 0
}

// RoutingContextFromHeaders builds a RoutingContext from the raw header
// values. A non-numeric PR number is not an error; it just produces an
// incomplete context.
func RoutingContextFromHeaders(owner, repo, prNumber string) RoutingContext {
	rc := RoutingContext{Owner: owner, Repo: repo}
	if prNumber != "" {
		if n, err := strconv.Atoi(prNumber); err == nil && n > 0 {
			rc.PRNumber = n
		}
	}
	return rc
}
