package schema

// CheckIssue is one human-readable integrity finding about the dataset.
type CheckIssue struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// CheckResult holds the results of a dataset integrity check. Verification
// runs at data-load time; the scoring engine itself never raises on bad
// input, it only produces possibly-degenerate output.
type CheckResult struct {
	Issues []CheckIssue `json:"issues"`
}

// AddError appends an error-severity issue.
func (r *CheckResult) AddError(msg string) {
	r.Issues = append(r.Issues, CheckIssue{Severity: ErrorSeverity, Message: msg})
}

// AddWarning appends a warning-severity issue.
func (r *CheckResult) AddWarning(msg string) {
	r.Issues = append(r.Issues, CheckIssue{Severity: WarningSeverity, Message: msg})
}

// Passed reports whether the dataset has no error-severity issues.
// Warnings alone do not fail a check.
func (r *CheckResult) Passed() bool {
	for _, issue := range r.Issues {
		if issue.Severity == ErrorSeverity {
			return false
		}
	}
	return true
}

// Errors returns only the error-severity issues.
func (r *CheckResult) Errors() []CheckIssue {
	return r.filter(ErrorSeverity)
}

// Warnings returns only the warning-severity issues.
func (r *CheckResult) Warnings() []CheckIssue {
	return r.filter(WarningSeverity)
}

func (r *CheckResult) filter(sev Severity) []CheckIssue {
	var out []CheckIssue
	for _, issue := range r.Issues {
		if issue.Severity == sev {
			out = append(out, issue)
		}
	}
	return out
}
