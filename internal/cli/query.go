package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/anumalla/azure-documentdb-odata-sql/internal/odatasql"
	"github.com/anumalla/azure-documentdb-odata-sql/internal/querydoc"
	"github.com/anumalla/azure-documentdb-odata-sql/internal/store"
)

// QueryOptions holds flags for the query command.
type QueryOptions struct {
	*RootOptions
	DB      string   // database path
	Imports []string // document files loaded before querying
	Where   string   // additional predicate, SQLite SQL
}

// QueryResult is the JSON payload of a query.
type QueryResult struct {
	Documents []store.Document `json:"documents"`
	Count     int              `json:"count"`
}

// NewQueryCommand creates the query command.
func NewQueryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &QueryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "query <query-file>",
		Short: "Run a query document against a SQLite document store",
		Long: `Translate a query document with the sqlite dialect and run it against a
SQLite document store.

Documents are imported from JSON files holding either an array of objects or
one object per line. Without --db the store is in memory and lasts for this
command only.

Text output prints one JSON document per line.

Exit codes:
  0 - Query ran
  1 - Query uses an unsupported function or operator
  2 - Command error (unreadable files, store or SQL error)

Examples:
  odatasql query query.yaml --import docs.json
  odatasql query query.yaml --db docs.db --import more.jsonl
  odatasql query query.yaml --db docs.db --where "json_extract(c.doc, '$.tenant') = 'a'"`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd.Context(), opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.DB, "db", ":memory:", "SQLite database path")
	cmd.Flags().StringSliceVar(&opts.Imports, "import", nil, "JSON document files to import before querying")
	cmd.Flags().StringVar(&opts.Where, "where", "", "additional SQLite predicate prepended to WHERE")

	return cmd
}

func runQuery(ctx context.Context, opts *QueryOptions, queryFile string, cmd *cobra.Command) error {
	if ctx == nil {
		ctx = context.Background()
	}
	formatter := newOutputFormatter(opts.RootOptions, cmd)

	q, err := querydoc.Load(queryFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return formatter.Fail(ExitCommandError, ErrCodeNotFound, fmt.Sprintf("query file not found: %s", queryFile), nil)
		}
		if querydoc.IsDocumentError(err) {
			return formatter.Fail(ExitCommandError, ErrCodeInvalidQuery, err.Error(), nil)
		}
		return formatter.Fail(ExitCommandError, ErrCodeGeneric, err.Error(), nil)
	}

	s, err := store.Open(opts.DB, store.WithLogger(newLogger(opts.RootOptions, formatter.GetErrWriter())))
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeStoreFailed, err.Error(), nil)
	}
	defer s.Close()

	for _, path := range opts.Imports {
		n, err := importFile(ctx, s, path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return formatter.Fail(ExitCommandError, ErrCodeNotFound, fmt.Sprintf("document file not found: %s", path), nil)
			}
			return formatter.Fail(ExitCommandError, ErrCodeStoreFailed, fmt.Sprintf("importing %s: %v", path, err), nil)
		}
		formatter.VerboseLog("Imported %d documents from %s", n, path)
	}

	docs, err := s.Find(ctx, q, opts.Where)
	if err != nil {
		var translateErr *odatasql.TranslateError
		if errors.As(err, &translateErr) {
			details := map[string]string{"translate_code": string(translateErr.Code)}
			return formatter.Fail(ExitFailure, ErrCodeTranslateFailed, err.Error(), details)
		}
		return formatter.Fail(ExitCommandError, ErrCodeStoreFailed, err.Error(), nil)
	}

	if formatter.Format == "json" {
		return formatter.Success(QueryResult{Documents: docs, Count: len(docs)})
	}

	enc := json.NewEncoder(formatter.Writer)
	for _, doc := range docs {
		if err := enc.Encode(doc); err != nil {
			return formatter.Fail(ExitCommandError, ErrCodeWriteFailed, err.Error(), nil)
		}
	}
	return nil
}

func importFile(ctx context.Context, s *store.Store, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return s.Import(ctx, f)
}
