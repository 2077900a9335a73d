package odata

// Function is a canonical OData string function supported by the SQL
// translator. Values are the lowercase OData names.
type Function string

const (
	FuncContains   Function = "contains"
	FuncStartsWith Function = "startswith"
	FuncEndsWith   Function = "endswith"
	FuncToUpper    Function = "toupper"
	FuncToLower    Function = "tolower"
	FuncLength     Function = "length"
	FuncIndexOf    Function = "indexof"
	FuncSubstring  Function = "substring"
	FuncTrim       Function = "trim"
	FuncConcat     Function = "concat"
)

// Functions lists the canonical functions in documentation order.
var Functions = []Function{
	FuncContains,
	FuncStartsWith,
	FuncEndsWith,
	FuncToUpper,
	FuncToLower,
	FuncLength,
	FuncIndexOf,
	FuncSubstring,
	FuncTrim,
	FuncConcat,
}
