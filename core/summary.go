package core

import (
	"fmt"
	"strconv"
	"strings"

	"scanrelay/models"

	"github.com/tidwall/gjson"
)

// Severity tiers as Semgrep reports them. Anything unrecognized is
// bucketed as INFO rather than dropped.
const (
	SeverityError   = "ERROR"
	SeverityWarning = "WARNING"
	SeverityInfo    = "INFO"
)

// Defaults substituted for absent payload fields.
const (
	defaultRuleID = "unknown"
	defaultPath   = "Unknown file"
	defaultLine   = "?"
)

// securityRuleMarker flags rules whose identifier warrants the fixed
// security-review recommendation block in the summary.
const securityRuleMarker = "security"

// Caps on how many entries each section lists before eliding.
const (
	maxCriticalFilesPerRule = 5
	maxWarningFilesPerRule  = 3
	maxScanErrors           = 3
)

const noIssuesSummary = "✅ Semgrep scan complete — no issues found."

// ParseReport extracts the fields the summarizer cares about from the raw
// payload. No schema is enforced; absent fields stay at their zero values
// and are defaulted at formatting time.
func ParseReport(raw []byte) models.ScanReport {
	var report models.ScanReport
	for _, res := range gjson.GetBytes(raw, "results").Array() {
		var r models.ScanResult
		r.CheckID = res.Get("check_id").String()
		r.Path = res.Get("path").String()
		r.Start.Line = int(res.Get("start.line").Int())
		r.Extra.Severity = res.Get("extra.severity").String()
		r.Extra.Message = res.Get("extra.message").String()
		report.Results = append(report.Results, r)
	}
	for _, e := range gjson.GetBytes(raw, "errors").Array() {
		report.Errors = append(report.Errors, models.ScanError{Message: e.Get("message").String()})
	}
	return report
}

// Summarize renders the comment text for a raw Semgrep payload.
func Summarize(raw []byte) string {
	return BuildSummary(ParseReport(raw))
}

// BuildSummary renders a deterministic markdown summary of a scan report.
// It is a pure function: identical input always yields identical text.
func BuildSummary(report models.ScanReport) string {
	if len(report.Results) == 0 && len(report.Errors) == 0 {
		return noIssuesSummary
	}

	critical := resultsBySeverity(report.Results, SeverityError)
	warnings := resultsBySeverity(report.Results, SeverityWarning)
	info := resultsBySeverity(report.Results, SeverityInfo)

	var b strings.Builder
	b.WriteString("## 🔍 Semgrep Scan Results\n\n")
	fmt.Fprintf(&b, "Found %d finding(s): %d critical, %d warning(s), %d informational.\n",
		len(report.Results), len(critical), len(warnings), len(info))

	if len(critical) > 0 {
		b.WriteString("\n### 🚨 Critical (ERROR)\n")
		writeRuleSections(&b, critical, maxCriticalFilesPerRule)
	}
	if len(warnings) > 0 {
		b.WriteString("\n### ⚠️ Warnings (WARNING)\n")
		writeRuleSections(&b, warnings, maxWarningFilesPerRule)
	}
	if len(info) > 0 {
		b.WriteString("\n### ℹ️ Info (INFO)\n\n")
		for _, g := range groupByRule(info) {
			fmt.Fprintf(&b, "- **%s**: %d\n", g.rule, len(g.results))
		}
	}

	if hasSecurityRule(report.Results) {
		b.WriteString("\n### 🔐 Security Review Recommended\n\n")
		b.WriteString("One or more findings were raised by security rules. ")
		b.WriteString("These should be reviewed by someone familiar with the affected code before merging.\n")
	}

	if len(critical) > 0 {
		b.WriteString("\n### ✅ Action Items\n\n")
		b.WriteString("- [ ] Review every critical finding listed above\n")
		b.WriteString("- [ ] Fix the underlying issue or document why it is a false positive\n")
		b.WriteString("- [ ] Re-run the scan and confirm the criticals are gone\n")
	}

	if len(report.Errors) > 0 {
		b.WriteString("\n### Scan Errors\n\n")
		for i, e := range report.Errors {
			if i == maxScanErrors {
				fmt.Fprintf(&b, "- ...and %d more\n", len(report.Errors)-maxScanErrors)
				break
			}
			msg := e.Message
			if msg == "" {
				msg = "unknown error"
			}
			fmt.Fprintf(&b, "- %s\n", msg)
		}
	}

	return b.String()
}

func resultsBySeverity(results []models.ScanResult, severity string) []models.ScanResult {
	var out []models.ScanResult
	for _, r := range results {
		s := strings.ToUpper(r.Extra.Severity)
		if s != SeverityError && s != SeverityWarning {
			s = SeverityInfo
		}
		if s == severity {
			out = append(out, r)
		}
	}
	return out
}

type ruleGroup struct {
	rule    string
	results []models.ScanResult
}

// groupByRule buckets results by rule identifier, preserving first-seen
// order so output stays stable across runs.
func groupByRule(results []models.ScanResult) []ruleGroup {
	index := make(map[string]int)
	var groups []ruleGroup
	for _, r := range results {
		rule := r.CheckID
		if rule == "" {
			rule = defaultRuleID
		}
		i, ok := index[rule]
		if !ok {
			i = len(groups)
			index[rule] = i
			groups = append(groups, ruleGroup{rule: rule})
		}
		groups[i].results = append(groups[i].results, r)
	}
	return groups
}

func writeRuleSections(b *strings.Builder, results []models.ScanResult, maxFiles int) {
	for _, g := range groupByRule(results) {
		fmt.Fprintf(b, "\n**%s** (%d)\n", g.rule, len(g.results))
		for i, r := range g.results {
			if i == maxFiles {
				fmt.Fprintf(b, "- ...and %d more\n", len(g.results)-maxFiles)
				break
			}
			fmt.Fprintf(b, "- %s:%s\n", pathOrDefault(r.Path), lineOrDefault(r.Start.Line))
		}
	}
}

func pathOrDefault(path string) string {
	if path == "" {
		return defaultPath
	}
	return path
}

func lineOrDefault(line int) string {
	if line <= 0 {
		return defaultLine
	}
	return strconv.Itoa(line)
}

func hasSecurityRule(results []models.ScanResult) bool {
	for _, r := range results {
		if strings.Contains(strings.ToLower(r.CheckID), securityRuleMarker) {
			return true
		}
	}
	return false
}
