package samples

import (
	"fmt"
	"strconv"
	"strings"
)

// Result is the outcome of running a suite.
type Result struct {
	Suite   string `json:"suite"`
	Dialect string `json:"dialect"`

	// Pass is true when every executed sample passed.
	Pass bool `json:"pass"`

	Samples []SampleResult `json:"samples"`
}

// SampleResult is the outcome of one sample.
type SampleResult struct {
	Name string `json:"name"`
	Pass bool   `json:"pass"`

	// SQL is the translated text, when translation succeeded.
	SQL string `json:"sql,omitempty"`

	// ErrorCode is the translation error code, when translation failed.
	ErrorCode string `json:"error_code,omitempty"`

	// Failure explains a mismatch. Empty if Pass is true.
	Failure string `json:"failure,omitempty"`
}

// NewResult creates a new passing result.
func NewResult(suite, dialect string) *Result {
	return &Result{
		Suite:   suite,
		Dialect: dialect,
		Pass:    true,
		Samples: []SampleResult{},
	}
}

// Add records a sample outcome and marks the result failed if it failed.
func (r *Result) Add(s SampleResult) {
	r.Samples = append(r.Samples, s)
	if !s.Pass {
		r.Pass = false
	}
}

// Failed returns the samples that did not pass.
func (r *Result) Failed() []SampleResult {
	var failed []SampleResult
	for _, s := range r.Samples {
		if !s.Pass {
			failed = append(failed, s)
		}
	}
	return failed
}

// Snapshot renders the result as stable text, one sample per line. SQL is
// quoted so trailing spaces stay visible.
func (r *Result) Snapshot() []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "suite: %s\ndialect: %s\npass: %t\n", r.Suite, r.Dialect, r.Pass)
	for _, s := range r.Samples {
		status := "ok"
		if !s.Pass {
			status = "FAIL"
		}
		b.WriteString(s.Name + " " + status)
		if s.ErrorCode != "" {
			b.WriteString(" error=" + s.ErrorCode)
		} else {
			b.WriteString(" " + strconv.Quote(s.SQL))
		}
		if s.Failure != "" {
			b.WriteString(" # " + s.Failure)
		}
		b.WriteString("\n")
	}
	return []byte(b.String())
}
