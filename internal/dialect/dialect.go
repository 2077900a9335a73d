// Package dialect is the registry of SQL dialect formatters.
package dialect

import (
	"fmt"
	"sort"
	"strings"

	"github.com/anumalla/azure-documentdb-odata-sql/internal/dialect/documentdb"
	"github.com/anumalla/azure-documentdb-odata-sql/internal/dialect/sqlite"
	"github.com/anumalla/azure-documentdb-odata-sql/internal/odatasql"
)

// Default is the dialect used when none is configured.
const Default = "documentdb"

var registry = map[string]func() odatasql.Formatter{
	"documentdb": func() odatasql.Formatter { return documentdb.New() },
	"sqlite":     func() odatasql.Formatter { return sqlite.New() },
}

// Lookup returns the formatter registered under name (case-insensitive).
// An empty name selects Default.
func Lookup(name string) (odatasql.Formatter, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = Default
	}
	newFormatter, ok := registry[key]
	if !ok {
		return nil, fmt.Errorf("unknown dialect %q: must be one of %v", name, Names())
	}
	return newFormatter(), nil
}

// Names returns the registered dialect names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
