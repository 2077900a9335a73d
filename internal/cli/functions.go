package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/anumalla/azure-documentdb-odata-sql/internal/dialect"
	"github.com/anumalla/azure-documentdb-odata-sql/internal/odatasql"
)

// FunctionsOptions holds flags for the functions command.
type FunctionsOptions struct {
	*RootOptions
	Dialect string
}

// FunctionInfo describes one supported function and its rendering.
type FunctionInfo struct {
	Name    string `json:"name"`
	MinArgs int    `json:"min_args"`
	MaxArgs int    `json:"max_args"`
	SQL     string `json:"sql"`
}

// NewFunctionsCommand creates the functions command.
func NewFunctionsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &FunctionsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:           "functions",
		Short:         "List supported OData functions",
		Long:          `List the supported OData canonical functions and how each renders in a dialect.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFunctions(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Dialect, "dialect", dialect.Default, fmt.Sprintf("SQL dialect %v", dialect.Names()))

	return cmd
}

func runFunctions(opts *FunctionsOptions, cmd *cobra.Command) error {
	formatter := newOutputFormatter(opts.RootOptions, cmd)

	f, err := dialect.Lookup(opts.Dialect)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeInvalidArgs, err.Error(), nil)
	}

	specs := odatasql.SupportedFunctions()
	infos := make([]FunctionInfo, len(specs))
	for i, spec := range specs {
		args := make([]string, spec.MaxArgs)
		for j := range args {
			args[j] = fmt.Sprintf("arg%d", j+1)
		}
		infos[i] = FunctionInfo{
			Name:    string(spec.Function),
			MinArgs: spec.MinArgs,
			MaxArgs: spec.MaxArgs,
			SQL:     f.FunctionCall(spec.Function, args),
		}
	}

	if formatter.Format == "json" {
		return formatter.Success(infos)
	}

	tw := tabwriter.NewWriter(formatter.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FUNCTION\tARGS\tSQL")
	for _, info := range infos {
		arity := fmt.Sprint(info.MinArgs)
		if info.MaxArgs != info.MinArgs {
			arity = fmt.Sprintf("%d-%d", info.MinArgs, info.MaxArgs)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", info.Name, arity, strings.TrimSpace(info.SQL))
	}
	return tw.Flush()
}
