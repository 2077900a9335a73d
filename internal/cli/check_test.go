package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck_PassingDirectory(t *testing.T) {
	out, err := executeCommand(t, "check", "testdata/suites")
	require.NoError(t, err)
	assert.Contains(t, out, "passing (documentdb)")
	assert.Contains(t, out, "✓ select_all")
	assert.Contains(t, out, "3 passed, 0 failed, 3 total")
}

func TestCheck_Filter(t *testing.T) {
	out, err := executeCommand(t, "check", "testdata/suites", "--filter", "where_*")
	require.NoError(t, err)
	assert.Contains(t, out, "where_nested")
	assert.NotContains(t, out, "select_all")
	assert.Contains(t, out, "1 passed, 0 failed, 1 total")
}

func TestCheck_Failing(t *testing.T) {
	out, err := executeCommand(t, "check", "testdata/suites/passing.yaml", "testdata/failing.yaml")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "✗ missing_trailing_space")
	assert.Contains(t, out, `got "SELECT * FROM c "`)
	assert.Contains(t, out, "3 passed, 1 failed, 4 total")
}

func TestCheck_JSON(t *testing.T) {
	out, err := executeCommand(t, "check", "testdata/failing.yaml", "--format", "json")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	var resp struct {
		Status  string      `json:"status"`
		Data    CheckResult `json:"data"`
		TraceID string      `json:"trace_id"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "trace-fixed", resp.TraceID)
	assert.Equal(t, 1, resp.Data.Total)
	assert.Equal(t, 1, resp.Data.Failed)
	require.Len(t, resp.Data.Suites, 1)
	require.NotNil(t, resp.Data.Suites[0].Result)
	assert.False(t, resp.Data.Suites[0].Result.Pass)
}

func TestCheck_InvalidSuite(t *testing.T) {
	out, err := executeCommand(t, "check", "testdata/invalid_suite.yaml")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "Load error")
}

func TestCheck_MissingPath(t *testing.T) {
	out, err := executeCommand(t, "check", "testdata/missing")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "Error [E005]")
}
