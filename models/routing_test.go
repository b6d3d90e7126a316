package models

import "testing"

func TestRoutingContextFromHeaders(t *testing.T) {
	tests := []struct {
		name         string
		owner        string
		repo         string
		prNumber     string
		wantComplete bool
		wantPR       int
	}{
		{name: "all present", owner: "octo", repo: "widgets", prNumber: "42", wantComplete: true, wantPR: 42},
		{name: "missing owner", repo: "widgets", prNumber: "42"},
		{name: "missing repo", owner: "octo", prNumber: "42"},
		{name: "missing pr", owner: "octo", repo: "widgets"},
		{name: "non-numeric pr", owner: "octo", repo: "widgets", prNumber: "forty-two"},
		{name: "negative pr", owner: "octo", repo: "widgets", prNumber: "-1"},
		{name: "zero pr", owner: "octo", repo: "widgets", prNumber: "0"},
		{name: "all missing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rc := RoutingContextFromHeaders(tt.owner, tt.repo, tt.prNumber)
			if rc.Complete() != tt.wantComplete {
				t.Errorf("Complete() = %v, want %v (rc = %+v)", rc.Complete(), tt.wantComplete, rc)
			}
			if rc.PRNumber != tt.wantPR {
				t.Errorf("PRNumber = %d, want %d", rc.PRNumber, tt.wantPR)
			}
		})
	}
}
