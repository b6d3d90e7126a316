package core

import (
	"fmt"
	"strings"
	"testing"

	"scanrelay/models"
)

func result(checkID, path string, line int, severity string) models.ScanResult {
	var r models.ScanResult
	r.CheckID = checkID
	r.Path = path
	r.Start.Line = line
	r.Extra.Severity = severity
	return r
}

func TestBuildSummary_NoIssues(t *testing.T) {
	got := BuildSummary(models.ScanReport{})
	if got != noIssuesSummary {
		t.Errorf("BuildSummary(empty) = %q, want %q", got, noIssuesSummary)
	}
}

func TestBuildSummary_Deterministic(t *testing.T) {
	report := models.ScanReport{
		Results: []models.ScanResult{
			result("go.lang.security.audit.xss", "web/render.go", 10, "ERROR"),
			result("go.lang.correctness.useless-eqeq", "math/eq.go", 3, "WARNING"),
		},
		Errors: []models.ScanError{{Message: "timeout scanning vendor/"}},
	}

	first := BuildSummary(report)
	for i := 0; i < 5; i++ {
		if got := BuildSummary(report); got != first {
			t.Fatalf("BuildSummary not deterministic: run %d differs\nfirst:\n%s\ngot:\n%s", i, first, got)
		}
	}
}

func TestBuildSummary_CriticalCapAndElision(t *testing.T) {
	var report models.ScanReport
	for i := 1; i <= 6; i++ {
		report.Results = append(report.Results, result("go.lang.bad-call", fmt.Sprintf("pkg/file%d.go", i), i, "ERROR"))
	}

	got := BuildSummary(report)

	listed := strings.Count(got, "- pkg/file")
	if listed != 5 {
		t.Errorf("critical section lists %d files, want 5\n%s", listed, got)
	}
	if !strings.Contains(got, "- ...and 1 more") {
		t.Errorf("missing elision line for 6th finding\n%s", got)
	}
	if !strings.Contains(got, "**go.lang.bad-call** (6)") {
		t.Errorf("missing per-rule count header\n%s", got)
	}
	if !strings.Contains(got, "### ✅ Action Items") {
		t.Errorf("critical findings should append the action-item checklist\n%s", got)
	}
}

func TestBuildSummary_WarningCap(t *testing.T) {
	var report models.ScanReport
	for i := 1; i <= 5; i++ {
		report.Results = append(report.Results, result("go.lang.sloppy", fmt.Sprintf("a/b%d.go", i), i, "WARNING"))
	}

	got := BuildSummary(report)

	listed := strings.Count(got, "- a/b")
	if listed != 3 {
		t.Errorf("warning section lists %d files, want 3\n%s", listed, got)
	}
	if !strings.Contains(got, "- ...and 2 more") {
		t.Errorf("missing elision line for warnings beyond cap\n%s", got)
	}
	if strings.Contains(got, "Action Items") {
		t.Errorf("warnings alone must not trigger the action-item checklist\n%s", got)
	}
}

func TestBuildSummary_Defaults(t *testing.T) {
	report := models.ScanReport{
		Results: []models.ScanResult{result("", "", 0, "ERROR")},
	}

	got := BuildSummary(report)

	if !strings.Contains(got, "**unknown** (1)") {
		t.Errorf("missing rule-id default\n%s", got)
	}
	if !strings.Contains(got, "- Unknown file:?") {
		t.Errorf("missing path/line defaults\n%s", got)
	}
}

func TestBuildSummary_SecurityMarker(t *testing.T) {
	tests := []struct {
		name    string
		checkID string
		want    bool
	}{
		{name: "security rule", checkID: "go.lang.security.audit.sqli", want: true},
		{name: "plain rule", checkID: "go.lang.style.naming", want: false},
		{name: "uppercase marker", checkID: "python.SECURITY.injection", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := models.ScanReport{
				Results: []models.ScanResult{result(tt.checkID, "f.go", 1, "WARNING")},
			}
			got := BuildSummary(report)
			has := strings.Contains(got, "Security Review Recommended")
			if has != tt.want {
				t.Errorf("checkID %q: recommendation block present = %v, want %v\n%s", tt.checkID, has, tt.want, got)
			}
		})
	}
}

func TestBuildSummary_SecurityBlockAppearsOnce(t *testing.T) {
	report := models.ScanReport{
		Results: []models.ScanResult{
			result("a.security.one", "f.go", 1, "ERROR"),
			result("b.security.two", "g.go", 2, "ERROR"),
		},
	}
	got := BuildSummary(report)
	if n := strings.Count(got, "Security Review Recommended"); n != 1 {
		t.Errorf("recommendation block appears %d times, want 1\n%s", n, got)
	}
}

func TestBuildSummary_UnknownSeverityBucketsAsInfo(t *testing.T) {
	report := models.ScanReport{
		Results: []models.ScanResult{result("go.lang.weird", "f.go", 1, "EXPERIMENTAL")},
	}
	got := BuildSummary(report)
	if !strings.Contains(got, "### ℹ️ Info (INFO)") {
		t.Errorf("unrecognized severity should land in the INFO section\n%s", got)
	}
	if !strings.Contains(got, "- **go.lang.weird**: 1") {
		t.Errorf("INFO section should carry per-rule counts\n%s", got)
	}
}

func TestBuildSummary_ScanErrorsCap(t *testing.T) {
	var report models.ScanReport
	for i := 1; i <= 5; i++ {
		report.Errors = append(report.Errors, models.ScanError{Message: fmt.Sprintf("error %d", i)})
	}

	got := BuildSummary(report)

	if !strings.Contains(got, "### Scan Errors") {
		t.Fatalf("missing scan-errors section\n%s", got)
	}
	listed := strings.Count(got, "- error ")
	if listed != 3 {
		t.Errorf("scan-errors section lists %d messages, want 3\n%s", listed, got)
	}
	if !strings.Contains(got, "- ...and 2 more") {
		t.Errorf("missing elision line for errors beyond cap\n%s", got)
	}
}

func TestParseReport(t *testing.T) {
	raw := []byte(`{
		"results": [
			{"check_id": "go.lang.security.audit.xss", "path": "web/render.go", "start": {"line": 42}, "extra": {"severity": "ERROR", "message": "untrusted input"}},
			{"path": "no/id.go"}
		],
		"errors": [{"message": "failed to parse foo.go"}]
	}`)

	report := ParseReport(raw)

	if len(report.Results) != 2 {
		t.Fatalf("got %d results, want 2", len(report.Results))
	}
	first := report.Results[0]
	if first.CheckID != "go.lang.security.audit.xss" || first.Path != "web/render.go" || first.Start.Line != 42 || first.Extra.Severity != "ERROR" {
		t.Errorf("first result parsed incorrectly: %+v", first)
	}
	second := report.Results[1]
	if second.CheckID != "" || second.Start.Line != 0 {
		t.Errorf("absent fields should stay zero-valued: %+v", second)
	}
	if len(report.Errors) != 1 || report.Errors[0].Message != "failed to parse foo.go" {
		t.Errorf("errors parsed incorrectly: %+v", report.Errors)
	}
}

func TestSummarize_IdenticalInputIdenticalOutput(t *testing.T) {
	raw := []byte(`{"results": [{"check_id": "r", "path": "p.go", "start": {"line": 1}, "extra": {"severity": "WARNING"}}]}`)
	if Summarize(raw) != Summarize(raw) {
		t.Error("Summarize output differs for identical input bytes")
	}
}

func TestSummarize_EmptyPayloadObjects(t *testing.T) {
	for _, raw := range []string{`{}`, `{"results": [], "errors": []}`} {
		if got := Summarize([]byte(raw)); got != noIssuesSummary {
			t.Errorf("Summarize(%s) = %q, want no-issues text", raw, got)
		}
	}
}
