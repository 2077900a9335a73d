package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/anumalla/azure-documentdb-odata-sql/internal/dialect"
	"github.com/anumalla/azure-documentdb-odata-sql/internal/odatasql"
	"github.com/anumalla/azure-documentdb-odata-sql/internal/querydoc"
)

// TranslateOptions holds flags for the translate command.
type TranslateOptions struct {
	*RootOptions
	Dialect string   // dialect name
	Clauses []string // clause names, see odatasql.ParseClauses
	Where   string   // additional predicate
	Output  string   // output file path
}

// TranslateResult is the JSON payload of a successful translation.
type TranslateResult struct {
	SQL     string `json:"sql"`
	Dialect string `json:"dialect"`
	Clauses string `json:"clauses"`
}

// NewTranslateCommand creates the translate command.
func NewTranslateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TranslateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "translate <query-file>",
		Short: "Translate a query document to SQL",
		Long: `Translate an OData query document (.yaml, .yml, .json or .cue) to SQL.

The text output is the SQL exactly as produced, trailing space included,
followed by a newline.

Exit codes:
  0 - Query translated
  1 - Query uses an unsupported function or operator
  2 - Command error (invalid flags, unreadable or malformed query file)

Examples:
  odatasql translate query.yaml
  odatasql translate query.cue --clauses all,-top --where "c._t = 'doc'"
  odatasql translate query.yaml --dialect sqlite -o query.sql`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors - we handle our own error output
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranslate(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Dialect, "dialect", dialect.Default, fmt.Sprintf("SQL dialect %v", dialect.Names()))
	cmd.Flags().StringSliceVar(&opts.Clauses, "clauses", []string{"all"}, "clauses to emit (select,where,orderby,top,all; prefix - to remove)")
	cmd.Flags().StringVar(&opts.Where, "where", "", "additional predicate prepended to WHERE")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file path")

	return cmd
}

func runTranslate(opts *TranslateOptions, queryFile string, cmd *cobra.Command) error {
	formatter := newOutputFormatter(opts.RootOptions, cmd)

	f, err := dialect.Lookup(opts.Dialect)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeInvalidArgs, err.Error(), nil)
	}
	clauses, err := odatasql.ParseClauses(opts.Clauses)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeInvalidArgs, err.Error(), nil)
	}

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
	formatter.VerboseLog("Loaded query from %s", queryFile)

	translator := odatasql.New(f, odatasql.WithLogger(newLogger(opts.RootOptions, formatter.GetErrWriter())))
	sql, err := translator.Translate(q, clauses, opts.Where)
	if err != nil {
		details := map[string]string{"translate_code": string(odatasql.CodeOf(err))}
		return formatter.Fail(ExitFailure, ErrCodeTranslateFailed, err.Error(), details)
	}

	if opts.Output != "" {
		if err := os.WriteFile(opts.Output, []byte(sql), 0644); err != nil {
			return formatter.Fail(ExitCommandError, ErrCodeWriteFailed, fmt.Sprintf("writing output file: %v", err), nil)
		}
	}

	if formatter.Format == "json" {
		dialectName := opts.Dialect
		if dialectName == "" {
			dialectName = dialect.Default
		}
		return formatter.Success(TranslateResult{
			SQL:     sql,
			Dialect: dialectName,
			Clauses: clauses.String(),
		})
	}

	if opts.Output != "" {
		fmt.Fprintf(formatter.Writer, "%s Wrote SQL to %s\n", successMark, opts.Output)
		return nil
	}
	fmt.Fprintln(formatter.Writer, sql)
	return nil
}
