package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/anumalla/azure-documentdb-odata-sql/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		// Commands report their own failures as ExitError; anything else is
		// a flag or argument error from cobra.
		var exitErr *cli.ExitError
		if !errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(cli.ExitCommandError)
		}
		os.Exit(cli.GetExitCode(err))
	}
}
