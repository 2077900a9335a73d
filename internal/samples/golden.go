package samples

import (
	"testing"

	"github.com/sebdah/goldie/v2"
)

// AssertGolden compares the result snapshot against
// testdata/golden/{name}.golden.
//
// To regenerate golden files, run the calling test with -update.
func AssertGolden(t *testing.T, name string, result *Result) {
	t.Helper()

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, result.Snapshot())
}
