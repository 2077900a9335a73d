package samples

import (
	"fmt"
	"io"
	"log/slog"
	"path"

	"github.com/anumalla/azure-documentdb-odata-sql/internal/dialect"
	"github.com/anumalla/azure-documentdb-odata-sql/internal/odata"
	"github.com/anumalla/azure-documentdb-odata-sql/internal/odatasql"
	"github.com/anumalla/azure-documentdb-odata-sql/internal/querydoc"
)

// Runner executes suites.
type Runner struct {
	logger *slog.Logger
	filter string
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger passed to the translator.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithFilter restricts the run to samples whose name matches the glob
// pattern (path.Match syntax).
func WithFilter(pattern string) Option {
	return func(r *Runner) {
		r.filter = pattern
	}
}

// NewRunner creates a Runner.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes suite with the default options.
func Run(suite *Suite) (*Result, error) {
	return NewRunner().Run(suite)
}

// Run translates every selected sample and compares it with its
// expectation. Sample failures are reported in the Result; the error is
// reserved for problems with the suite itself (unknown dialect, bad filter
// pattern).
func (r *Runner) Run(suite *Suite) (*Result, error) {
	formatter, err := dialect.Lookup(suite.Dialect)
	if err != nil {
		return nil, fmt.Errorf("suite %q: %w", suite.Name, err)
	}
	if r.filter != "" {
		if _, err := path.Match(r.filter, ""); err != nil {
			return nil, fmt.Errorf("invalid filter %q: %w", r.filter, err)
		}
	}

	dialectName := suite.Dialect
	if dialectName == "" {
		dialectName = dialect.Default
	}
	translator := odatasql.New(formatter, odatasql.WithLogger(r.logger))
	result := NewResult(suite.Name, dialectName)

	for _, sample := range suite.Samples {
		if r.filter != "" {
			if ok, _ := path.Match(r.filter, sample.Name); !ok {
				continue
			}
		}
		r.logger.Debug("running sample", "suite", suite.Name, "sample", sample.Name)
		result.Add(runSample(translator, sample))
	}
	return result, nil
}

func runSample(translator *odatasql.Translator, sample Sample) SampleResult {
	res := SampleResult{Name: sample.Name}

	q := &odata.Query{}
	if sample.Query.Kind != 0 {
		var err error
		q, err = querydoc.Decode(&sample.Query)
		if err != nil {
			res.Failure = fmt.Sprintf("query: %v", err)
			return res
		}
	}

	clauses, err := odatasql.ParseClauses(sample.clauseNames())
	if err != nil {
		res.Failure = err.Error()
		return res
	}

	sql, err := translator.Translate(q, clauses, sample.Where)
	if err != nil {
		res.ErrorCode = string(odatasql.CodeOf(err))
		switch {
		case sample.Error == "":
			res.Failure = fmt.Sprintf("unexpected error: %v", err)
		case res.ErrorCode != sample.Error:
			res.Failure = fmt.Sprintf("expected error %s, got: %v", sample.Error, err)
		default:
			res.Pass = true
		}
		return res
	}

	res.SQL = sql
	switch {
	case sample.Expect == nil:
		res.Failure = fmt.Sprintf("expected error %s, got SQL", sample.Error)
	case *sample.Expect != sql:
		res.Failure = fmt.Sprintf("expected %q", *sample.Expect)
	default:
		res.Pass = true
	}
	return res
}
