package samples

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/anumalla/azure-documentdb-odata-sql/internal/odatasql"
)

// Suite is a named list of samples translated with one dialect.
type Suite struct {
	// Name uniquely identifies this suite.
	Name string `yaml:"name"`

	// Description explains what this suite covers.
	Description string `yaml:"description"`

	// Dialect selects the formatter (see package dialect). Empty means the
	// default dialect.
	Dialect string `yaml:"dialect,omitempty"`

	// Samples are run in file order.
	Samples []Sample `yaml:"samples"`
}

// Sample is a single translation with its expected outcome.
type Sample struct {
	Name string `yaml:"name"`

	// Clauses names the clauses to emit (see odatasql.ParseClauses).
	// Defaults to all.
	Clauses []string `yaml:"clauses,omitempty"`

	// Where is the additional predicate prepended to WHERE.
	Where string `yaml:"where,omitempty"`

	// Query is the query document. A missing query is the empty query.
	Query yaml.Node `yaml:"query,omitempty"`

	// Expect is the exact SQL text. Exactly one of Expect and Error is set.
	Expect *string `yaml:"expect,omitempty"`

	// Error is the expected odatasql.ErrorCode.
	Error string `yaml:"error,omitempty"`
}

// LoadSuite reads and parses a suite YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadSuite(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read suite file: %w", err)
	}
	return ParseSuite(data)
}

// ParseSuite parses suite YAML.
func ParseSuite(data []byte) (*Suite, error) {
	// Reject unknown fields (catches typos like "expected:" vs "expect:")
	var suite Suite
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&suite); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateSuite(&suite); err != nil {
		return nil, fmt.Errorf("invalid suite: %w", err)
	}
	return &suite, nil
}

// validateSuite checks that required fields are present and valid.
func validateSuite(s *Suite) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if len(s.Samples) == 0 {
		return fmt.Errorf("samples list is required and must be non-empty")
	}

	seen := make(map[string]bool, len(s.Samples))
	for i, sample := range s.Samples {
		if sample.Name == "" {
			return fmt.Errorf("samples[%d]: name is required", i)
		}
		if seen[sample.Name] {
			return fmt.Errorf("samples[%d]: duplicate name %q", i, sample.Name)
		}
		seen[sample.Name] = true

		if (sample.Expect == nil) == (sample.Error == "") {
			return fmt.Errorf("sample %q: exactly one of expect and error is required", sample.Name)
		}
		if _, err := odatasql.ParseClauses(sample.clauseNames()); err != nil {
			return fmt.Errorf("sample %q: %w", sample.Name, err)
		}
	}
	return nil
}

func (s Sample) clauseNames() []string {
	if len(s.Clauses) == 0 {
		return []string{"all"}
	}
	return s.Clauses
}
