// Package odata defines the bound OData query tree consumed by the SQL
// translator.
//
// The tree is what an OData parser produces after binding a request's
// $select, $filter, $orderby and $top options against an entity model.
// Parsing itself happens upstream; this package only models the result and
// offers structural checks and a diagnostic printer.
//
// SEALED INTERFACES:
//
// Expression is a sealed interface using the marker method pattern. Only
// types in this package implement it, which lets the translator use
// exhaustive type switches:
//
//	switch e := expr.(type) {
//	case Comparison:
//	case Logical:
//	case Negation:
//	case FunctionCall:
//	case PropertyPath:
//	case Literal:
//	}
//
// Every node is a plain value. Marker methods use value receivers, so both
// T and *T satisfy Expression; consumers accept either form.
//
// GROUPING:
//
// There is no parenthesis node. Grouping is carried by tree shape alone:
//
//	a and (b or c)   =>  Logical{And, a, Logical{Or, b, c}}
//	a and b or c     =>  Logical{Or, Logical{And, a, b}, c}
//
// Printers (Format here, the SQL translator elsewhere) add the minimum
// parentheses needed to reproduce that shape.
//
// IMMUTABILITY:
//
// Trees are built once per request and never mutated by consumers. The
// constructors in build.go copy their slice arguments.
package odata
