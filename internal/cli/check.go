package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/anumalla/azure-documentdb-odata-sql/internal/samples"
)

// CheckOptions holds flags for the check command.
type CheckOptions struct {
	*RootOptions
	Filter string // sample filter (glob pattern)
}

// SuiteResult holds the result of a single suite file.
type SuiteResult struct {
	File   string          `json:"file"`
	Result *samples.Result `json:"result,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// CheckResult holds the overall check result.
type CheckResult struct {
	Suites []SuiteResult `json:"suites"`
	Passed int           `json:"passed"`
	Failed int           `json:"failed"`
	Total  int           `json:"total"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "check <suite-file-or-dir>...",
		Short: "Run translation sample suites",
		Long: `Run sample suites and compare each translation with its expected SQL
or expected error code. Directories are searched for .yaml and .yml files.

Exit codes:
  0 - All samples passed
  1 - One or more samples failed
  2 - Command error (missing or malformed suite, etc.)

Examples:
  odatasql check ./samples
  odatasql check documentdb.yaml --filter "where_*"
  odatasql check ./samples --format json`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Filter, "filter", "", "filter samples by glob pattern")

	return cmd
}

func runCheck(opts *CheckOptions, paths []string, cmd *cobra.Command) error {
	formatter := newOutputFormatter(opts.RootOptions, cmd)

	var suiteFiles []string
	for _, p := range paths {
		files, err := findSuiteFiles(p)
		if err != nil {
			if os.IsNotExist(err) {
				return formatter.Fail(ExitCommandError, ErrCodeNotFound, fmt.Sprintf("suite path not found: %s", p), nil)
			}
			return formatter.Fail(ExitCommandError, ErrCodeGeneric, err.Error(), nil)
		}
		suiteFiles = append(suiteFiles, files...)
	}
	if len(suiteFiles) == 0 {
		return formatter.Fail(ExitCommandError, ErrCodeNotFound, "no suite files found", nil)
	}

	runner := samples.NewRunner(
		samples.WithFilter(opts.Filter),
		samples.WithLogger(newLogger(opts.RootOptions, formatter.GetErrWriter())),
	)

	result := CheckResult{Suites: make([]SuiteResult, 0, len(suiteFiles))}
	commandError := false
	for _, file := range suiteFiles {
		formatter.VerboseLog("Running suite %s", file)
		suiteResult := runSuite(runner, file)
		if suiteResult.Error != "" {
			commandError = true
		}
		if suiteResult.Result != nil {
			for _, s := range suiteResult.Result.Samples {
				result.Total++
				if s.Pass {
					result.Passed++
				} else {
					result.Failed++
				}
			}
		}
		result.Suites = append(result.Suites, suiteResult)
	}

	if formatter.Format == "json" {
		if err := formatter.Success(result); err != nil {
			return err
		}
	} else {
		outputCheckText(formatter, result)
	}

	if commandError {
		return NewExitError(ExitCommandError, "one or more suites could not be run")
	}
	if result.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d sample(s) failed", result.Failed))
	}
	return nil
}

func runSuite(runner *samples.Runner, file string) SuiteResult {
	suite, err := samples.LoadSuite(file)
	if err != nil {
		return SuiteResult{File: file, Error: err.Error()}
	}
	res, err := runner.Run(suite)
	if err != nil {
		return SuiteResult{File: file, Error: err.Error()}
	}
	return SuiteResult{File: file, Result: res}
}

// findSuiteFiles returns p itself for a file, or every YAML file below a
// directory.
func findSuiteFiles(p string) ([]string, error) {
	info, err := os.Stat(p)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{p}, nil
	}

	var files []string
	err = filepath.Walk(p, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		// Only process .yaml and .yml files
		ext := filepath.Ext(path)
		if ext == ".yaml" || ext == ".yml" {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

func outputCheckText(formatter *OutputFormatter, result CheckResult) {
	w := formatter.Writer
	for _, suite := range result.Suites {
		if suite.Error != "" {
			fmt.Fprintf(w, "%s %s\n", failureMark, suite.File)
			fmt.Fprintf(w, "  Load error: %s\n", suite.Error)
			continue
		}
		fmt.Fprintf(w, "%s (%s)\n", suite.Result.Suite, suite.Result.Dialect)
		for _, s := range suite.Result.Samples {
			if s.Pass {
				fmt.Fprintf(w, "  %s %s\n", successMark, s.Name)
				continue
			}
			fmt.Fprintf(w, "  %s %s\n", failureMark, s.Name)
			fmt.Fprintf(w, "    %s\n", s.Failure)
			if s.SQL != "" {
				fmt.Fprintf(w, "    got %q\n", s.SQL)
			}
		}
	}
	fmt.Fprintf(w, "\n%d passed, %d failed, %d total\n", result.Passed, result.Failed, result.Total)
}
