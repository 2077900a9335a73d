// Package querydoc loads bound OData queries from YAML, JSON and CUE files.
//
// A query document has four optional top-level keys:
//
//	select:  [id, englishName]            # or "id, englishName"
//	filter:
//	  and:
//	    - eq: [englishName, {str: Microsoft}]
//	    - le: [intField, 5]
//	orderby: [companyId desc, id]          # or {property: id, direction: asc}
//	top: 15
//
// Filter expressions are written as nodes:
//
//   - comparisons: {eq: [l, r]}, likewise ne, lt, le, gt, ge
//   - logical: {and: [a, b, ...]}, {or: [...]}, folded left-deep
//   - negation: {not: x}
//   - functions: {fn: contains, args: [englishName, {str: soft}]}
//   - property paths: a bare string, or {prop: parent/child}
//   - literals: bare numbers and booleans, null, {str: x}, {num: 1.5e3},
//     {bool: true}, {null: ~}, {enum: "Ns.MockEnum'ONE'"} or
//     {enum: {type: Ns.MockEnum, member: ONE}}
//
// Unknown keys are rejected with their position. Loaded queries are checked
// with odata.Validate.
package querydoc
