package cli

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuery_Text(t *testing.T) {
	out, err := executeCommand(t, "query", "testdata/where.yaml", "--import", "testdata/documents.json")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 1)
	assert.JSONEq(t, `{"id":"1","englishName":"Microsoft","intField":3,"active":true}`, lines[0])
}

func TestQuery_JSON(t *testing.T) {
	out, err := executeCommand(t, "query", "testdata/where.yaml", "--import", "testdata/documents.json", "--format", "json")
	require.NoError(t, err)

	var resp struct {
		Status  string      `json:"status"`
		Data    QueryResult `json:"data"`
		TraceID string      `json:"trace_id"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "trace-fixed", resp.TraceID)
	assert.Equal(t, 1, resp.Data.Count)
	require.Len(t, resp.Data.Documents, 1)
	assert.Equal(t, "1", resp.Data.Documents[0]["id"])
}

func TestQuery_WherePredicate(t *testing.T) {
	out, err := executeCommand(t, "query", "testdata/where.yaml", "--import", "testdata/documents.json",
		"--where", "json_extract(c.doc, '$.id') <> '1'")
	require.NoError(t, err)
	assert.Empty(t, strings.TrimSpace(out))
}

func TestQuery_PersistentDatabase(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "docs.db")

	_, err := executeCommand(t, "query", "testdata/where.yaml", "--db", dbPath, "--import", "testdata/documents.json")
	require.NoError(t, err)

	// second run sees the documents imported by the first
	out, err := executeCommand(t, "query", "testdata/where.yaml", "--db", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, `"id":"1"`)
}

func TestQuery_Errors(t *testing.T) {
	testCases := []struct {
		name     string
		args     []string
		wantExit int
		wantCode string
	}{
		{"missing query file", []string{"query", "testdata/missing.yaml"}, ExitCommandError, ErrCodeNotFound},
		{"malformed query", []string{"query", "testdata/malformed.yaml"}, ExitCommandError, ErrCodeInvalidQuery},
		{"missing documents", []string{"query", "testdata/where.yaml", "--import", "testdata/missing.json"}, ExitCommandError, ErrCodeNotFound},
		{"broken documents", []string{"query", "testdata/where.yaml", "--import", "testdata/broken.jsonl"}, ExitCommandError, ErrCodeStoreFailed},
		{"unsupported function", []string{"query", "testdata/unsupported.yaml"}, ExitFailure, ErrCodeTranslateFailed},
		{"bad predicate", []string{"query", "testdata/where.yaml", "--where", "no_such_function(c.doc)"}, ExitCommandError, ErrCodeStoreFailed},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := executeCommand(t, tc.args...)
			require.Error(t, err)
			assert.Equal(t, tc.wantExit, GetExitCode(err))
			assert.Contains(t, out, tc.wantCode)
		})
	}
}
