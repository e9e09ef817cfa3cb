package models

import "slices"

// Status is the outcome of a single check.
type Status string

const (
	StatusPass Status = "pass"
	StatusFail Status = "fail"
	StatusWarn Status = "warn"
	// StatusSkip marks a check that was not run in the selected mode.
	StatusSkip Status = "skip"
)

// CheckResult holds the outcome of a single check.
type CheckResult struct {
	// ID is a stable check identifier (e.g., "syntax", "dataset").
	ID string `json:"id"`
	// Name is the human-readable check title.
	Name string `json:"name"`
	// Status is the check outcome.
	Status Status `json:"status"`
	// Blocking reports whether a fail status fails the whole report.
	Blocking bool `json:"blocking"`
	// Summary is a one-line result for concise display.
	Summary string `json:"summary"`
	// Details provides supporting lines for diagnostics or remediation.
	Details []string `json:"details,omitempty"`
	// Syntax lists per-cell syntax findings (syntax check only).
	Syntax []SyntaxFinding `json:"syntax,omitempty"`
	// Elements lists element presence in table order (elements check only).
	Elements []ElementResult `json:"elements,omitempty"`
	// Libraries lists per-library reference and install status.
	Libraries []LibraryStatus `json:"libraries,omitempty"`
	// Dataset describes the dataset file (dataset check only).
	Dataset *DatasetInfo `json:"dataset,omitempty"`
	// Ratio is a computed ratio in [0, 1] (comment ratio check only).
	Ratio *float64 `json:"ratio,omitempty"`
}

// Failed reports whether the result fails the report.
func (r CheckResult) Failed() bool {
	return r.Blocking && r.Status == StatusFail
}

// Clone returns a deep copy of r that shares no memory with it.
func (r CheckResult) Clone() CheckResult {
	out := r
	out.Details = slices.Clone(r.Details)
	out.Syntax = slices.Clone(r.Syntax)
	out.Elements = slices.Clone(r.Elements)
	if r.Libraries != nil {
		out.Libraries = make([]LibraryStatus, len(r.Libraries))
		for i, lib := range r.Libraries {
			out.Libraries[i] = lib.Clone()
		}
	}
	if r.Dataset != nil {
		out.Dataset = r.Dataset.Clone()
	}
	if r.Ratio != nil {
		ratio := *r.Ratio
		out.Ratio = &ratio
	}
	return out
}
