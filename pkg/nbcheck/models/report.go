package models

// Report is the ordered result of one validation run.
// Build it with NewReport and treat it as read-only.
type Report struct {
	// Notebook is the validated notebook path.
	Notebook string `json:"notebook"`
	// Stats summarises the notebook cells.
	Stats CellStats `json:"stats"`
	// Results holds check results in a fixed order.
	Results []CheckResult `json:"results"`
	// Passed reports whether no blocking check failed.
	Passed bool `json:"passed"`
}

// NewReport deep-copies results and derives the overall outcome. Later
// changes to results do not reach the report.
func NewReport(notebook string, stats CellStats, results []CheckResult) *Report {
	rs := make([]CheckResult, len(results))
	for i, r := range results {
		rs[i] = r.Clone()
	}
	passed := true
	for _, r := range rs {
		if r.Failed() {
			passed = false
		}
	}
	return &Report{
		Notebook: notebook,
		Stats:    stats,
		Results:  rs,
		Passed:   passed,
	}
}

// Result returns the result with the given ID.
func (r *Report) Result(id string) (CheckResult, bool) {
	for _, res := range r.Results {
		if res.ID == id {
			return res, true
		}
	}
	return CheckResult{}, false
}

// Blocking returns the blocking results in report order.
func (r *Report) Blocking() []CheckResult {
	var out []CheckResult
	for _, res := range r.Results {
		if res.Blocking {
			out = append(out, res)
		}
	}
	return out
}
