package models

// ScanReport is the inbound Semgrep JSON payload. Only the fields the
// summarizer cares about are modelled; everything else in the payload is
// ignored.
type ScanReport struct {
	Results []ScanResult `json:"results"`
	Errors  []ScanError  `json:"errors"`
}

// ScanResult is a single Semgrep finding.
type ScanResult struct {
	CheckID string `json:"check_id"` // Rule identifier, e.g. "go.lang.security.audit.xss"
	Path    string `json:"path"`
	Start   struct {
		Line int `json:"line"`
	} `json:"start"`
	Extra struct {
		Severity string `json:"severity"` // ERROR, WARNING, INFO
		Message  string `json:"message"`
	} `json:"extra"`
}

// ScanError is a scan-level error reported by Semgrep itself (parse
// failures, timeouts, etc.), distinct from findings.
type ScanError struct {
	Message string `json:"message"`
}
