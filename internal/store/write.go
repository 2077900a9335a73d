package store

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Insert adds documents in a single transaction and returns how many were
// written. Each document must be a JSON object; nothing is written if any
// document is invalid.
func (s *Store) Insert(ctx context.Context, docs ...json.RawMessage) (int, error) {
	for i, doc := range docs {
		if !isObject(doc) {
			return 0, fmt.Errorf("document %d: not a JSON object", i)
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO documents (doc) VALUES (?)`)
	if err != nil {
		return 0, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, doc := range docs {
		if _, err := stmt.ExecContext(ctx, string(doc)); err != nil {
			return 0, fmt.Errorf("insert document %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return len(docs), nil
}

// Import reads documents from r and inserts them. r holds either one JSON
// array of objects or a stream of objects (JSON Lines).
func (s *Store) Import(ctx context.Context, r io.Reader) (int, error) {
	docs, err := decodeDocuments(r)
	if err != nil {
		return 0, err
	}
	return s.Insert(ctx, docs...)
}

func decodeDocuments(r io.Reader) ([]json.RawMessage, error) {
	br := bufio.NewReader(r)
	first, err := peekNonSpace(br)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("read documents: %w", err)
	}

	dec := json.NewDecoder(br)
	if first == '[' {
		var docs []json.RawMessage
		if err := dec.Decode(&docs); err != nil {
			return nil, fmt.Errorf("decode document array: %w", err)
		}
		return docs, nil
	}

	var docs []json.RawMessage
	for {
		var doc json.RawMessage
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			return docs, nil
		}
		if err != nil {
			return nil, fmt.Errorf("decode document %d: %w", len(docs), err)
		}
		docs = append(docs, doc)
	}
}

func peekNonSpace(br *bufio.Reader) (byte, error) {
	for {
		b, err := br.ReadByte()
		if err != nil {
			return 0, err
		}
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		}
		return b, br.UnreadByte()
	}
}

func isObject(doc json.RawMessage) bool {
	trimmed := bytes.TrimSpace(doc)
	return len(trimmed) > 0 && trimmed[0] == '{' && json.Valid(trimmed)
}
