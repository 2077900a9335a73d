package store

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
)

var seedDocuments = []json.RawMessage{
	json.RawMessage(`{"id":"1","englishName":"Microsoft","intField":3,"active":true,"parent":{"child":"childValue"}}`),
	json.RawMessage(`{"id":"2","englishName":"Microsoft Canada","intField":7,"active":false}`),
	json.RawMessage(`{"id":"3","englishName":"  Contoso ","intField":5}`),
}

// createTestStore creates a fresh store in a temp directory.
func createTestStore(t *testing.T) *Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// createSeededStore creates a store holding seedDocuments.
func createSeededStore(t *testing.T) *Store {
	t.Helper()

	s := createTestStore(t)
	if _, err := s.Insert(context.Background(), seedDocuments...); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	return s
}

// ids returns the "id" field of each document.
func ids(docs []Document) []string {
	out := make([]string, 0, len(docs))
	for _, doc := range docs {
		id, _ := doc["id"].(string)
		out = append(out, id)
	}
	return out
}
