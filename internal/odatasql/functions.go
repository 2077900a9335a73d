package odatasql

import (
	"golang.org/x/text/cases"

	"github.com/anumalla/azure-documentdb-odata-sql/internal/odata"
)

// FunctionSpec describes how a canonical function may be called.
type FunctionSpec struct {
	Function odata.Function
	MinArgs  int
	MaxArgs  int
}

// functionTable is the whitelist of supported functions, keyed by the
// case-folded OData name.
var functionTable = map[string]FunctionSpec{
	"contains":   {odata.FuncContains, 2, 2},
	"startswith": {odata.FuncStartsWith, 2, 2},
	"endswith":   {odata.FuncEndsWith, 2, 2},
	"toupper":    {odata.FuncToUpper, 1, 1},
	"tolower":    {odata.FuncToLower, 1, 1},
	"length":     {odata.FuncLength, 1, 1},
	"indexof":    {odata.FuncIndexOf, 2, 2},
	"substring":  {odata.FuncSubstring, 2, 3},
	"trim":       {odata.FuncTrim, 1, 1},
	"concat":     {odata.FuncConcat, 2, 2},
}

// LookupFunction resolves a function name as written in a query.
// Matching uses Unicode case folding, so "ToUpper" and "TOUPPER" resolve to
// toupper.
func LookupFunction(name string) (FunctionSpec, bool) {
	spec, ok := functionTable[cases.Fold().String(name)]
	return spec, ok
}

// SupportedFunctions returns the function table in documentation order.
func SupportedFunctions() []FunctionSpec {
	specs := make([]FunctionSpec, 0, len(odata.Functions))
	for _, fn := range odata.Functions {
		specs = append(specs, functionTable[string(fn)])
	}
	return specs
}
