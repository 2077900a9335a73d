package samples

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuites_Golden(t *testing.T) {
	for _, name := range []string{"documentdb", "sqlite"} {
		t.Run(name, func(t *testing.T) {
			suite, err := LoadSuite(filepath.Join("testdata", name+".yaml"))
			require.NoError(t, err)

			result, err := Run(suite)
			require.NoError(t, err)
			for _, failed := range result.Failed() {
				t.Errorf("sample %s: %s (got %q)", failed.Name, failed.Failure, failed.SQL)
			}
			assert.True(t, result.Pass)
			assert.Len(t, result.Samples, len(suite.Samples))

			AssertGolden(t, name, result)
		})
	}
}

func TestRunner_Filter(t *testing.T) {
	suite, err := LoadSuite(filepath.Join("testdata", "documentdb.yaml"))
	require.NoError(t, err)

	result, err := NewRunner(WithFilter("select_*")).Run(suite)
	require.NoError(t, err)
	require.NotEmpty(t, result.Samples)
	for _, s := range result.Samples {
		assert.Regexp(t, `^select_`, s.Name)
	}

	_, err = NewRunner(WithFilter("[")).Run(suite)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid filter")
}

func TestRunner_Logger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	suite, err := ParseSuite([]byte(`
name: logged
samples:
  - name: one
    clauses: [select]
    expect: "SELECT * FROM c "
`))
	require.NoError(t, err)

	result, err := NewRunner(WithLogger(logger)).Run(suite)
	require.NoError(t, err)
	assert.True(t, result.Pass)
	assert.Equal(t, "documentdb", result.Dialect)
	assert.Contains(t, buf.String(), "sample=one")
	assert.Contains(t, buf.String(), "clause=select")
}

func TestRun_ReportsMismatches(t *testing.T) {
	suite, err := ParseSuite([]byte(`
name: mismatches
dialect: documentdb
samples:
  - name: wrong_sql
    clauses: [select]
    expect: "SELECT * FROM c"
  - name: expected_error_got_sql
    clauses: [select]
    error: UNSUPPORTED_FUNCTION
  - name: wrong_error_code
    query:
      filter: {fn: year, args: [d]}
    error: MALFORMED_ARGUMENT_COUNT
  - name: unexpected_error
    query:
      filter: {fn: year, args: [d]}
    expect: ""
  - name: bad_query
    query:
      filter: {has: [a, b]}
    expect: ""
  - name: empty_output
    clauses: [where]
    expect: ""
`))
	require.NoError(t, err)

	result, err := Run(suite)
	require.NoError(t, err)
	assert.False(t, result.Pass)

	byName := make(map[string]SampleResult)
	for _, s := range result.Samples {
		byName[s.Name] = s
	}

	assert.Contains(t, byName["wrong_sql"].Failure, `expected "SELECT * FROM c"`)
	assert.Equal(t, "SELECT * FROM c ", byName["wrong_sql"].SQL)
	assert.Contains(t, byName["expected_error_got_sql"].Failure, "expected error UNSUPPORTED_FUNCTION")
	assert.Contains(t, byName["wrong_error_code"].Failure, "expected error MALFORMED_ARGUMENT_COUNT")
	assert.Equal(t, "UNSUPPORTED_FUNCTION", byName["wrong_error_code"].ErrorCode)
	assert.Contains(t, byName["unexpected_error"].Failure, "unexpected error")
	assert.Contains(t, byName["bad_query"].Failure, `unknown expression "has"`)
	assert.True(t, byName["empty_output"].Pass)

	assert.Len(t, result.Failed(), 5)
	assert.Contains(t, string(result.Snapshot()), "wrong_sql FAIL \"SELECT * FROM c \" # expected")
}

func TestRun_UnknownDialect(t *testing.T) {
	suite, err := ParseSuite([]byte(`
name: bad
dialect: oracle
samples:
  - name: one
    expect: ""
`))
	require.NoError(t, err)

	_, err = Run(suite)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown dialect "oracle"`)
}

func TestParseSuite_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		doc     string
		message string
	}{
		{"unknown field", "name: x\nsamples:\n  - name: a\n    expected: ''\n", "failed to parse YAML"},
		{"missing name", "samples:\n  - name: a\n    expect: ''\n", "name is required"},
		{"no samples", "name: x\n", "samples list is required"},
		{"unnamed sample", "name: x\nsamples:\n  - expect: ''\n", "samples[0]: name is required"},
		{"duplicate sample", "name: x\nsamples:\n  - {name: a, expect: ''}\n  - {name: a, expect: ''}\n", `duplicate name "a"`},
		{"both expectations", "name: x\nsamples:\n  - {name: a, expect: '', error: INVALID_TOP}\n", "exactly one of expect and error"},
		{"no expectation", "name: x\nsamples:\n  - {name: a}\n", "exactly one of expect and error"},
		{"bad clause", "name: x\nsamples:\n  - {name: a, clauses: [having], expect: ''}\n", `unknown clause "having"`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseSuite([]byte(tc.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.message)
		})
	}
}

func TestLoadSuite_MissingFile(t *testing.T) {
	_, err := LoadSuite(filepath.Join("testdata", "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read suite file")
}
