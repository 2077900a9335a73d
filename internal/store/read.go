package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/anumalla/azure-documentdb-odata-sql/internal/dialect/sqlite"
	"github.com/anumalla/azure-documentdb-odata-sql/internal/odata"
	"github.com/anumalla/azure-documentdb-odata-sql/internal/odatasql"
)

// Document is one result row. For select-all queries it is the stored
// document; for projections it maps each selected path ("parent.child") to
// its value.
type Document map[string]any

// Count returns the number of stored documents.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM documents`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count documents: %w", err)
	}
	return n, nil
}

// Find translates q with the sqlite dialect and runs it. additionalPredicate
// is SQLite SQL prepended to the WHERE clause, as in Translator.Translate.
//
// Returns an empty slice (not nil) when nothing matches.
func (s *Store) Find(ctx context.Context, q *odata.Query, additionalPredicate string) ([]Document, error) {
	query, err := s.translator.Translate(q, odatasql.ClauseAll, additionalPredicate)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("executing query", "sql", query)

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query documents: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read columns: %w", err)
	}
	selectAll := q == nil || q.SelectsAll()

	docs := []Document{}
	for rows.Next() {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}

		if selectAll {
			doc, err := decodeDocument(values[0])
			if err != nil {
				return nil, err
			}
			docs = append(docs, doc)
			continue
		}

		doc := make(Document, len(columns))
		for i, col := range columns {
			doc[col] = columnValue(values[i])
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate documents: %w", err)
	}
	return docs, nil
}

func decodeDocument(v any) (Document, error) {
	var raw []byte
	switch text := v.(type) {
	case string:
		raw = []byte(text)
	case []byte:
		raw = text
	default:
		return nil, fmt.Errorf("%s column holds %T, want JSON text", sqlite.DocColumn, v)
	}
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return doc, nil
}

// columnValue converts a scanned json_extract result. SQLite returns text
// as string or []byte depending on the driver path; both become string.
func columnValue(v any) any {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v
}
