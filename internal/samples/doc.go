// Package samples runs suites of translation samples.
//
// A suite is a YAML file naming a dialect and a list of samples. Each sample
// carries a query document (see package querydoc), the clauses to emit, an
// optional additional predicate, and either the exact expected SQL or the
// expected error code:
//
//	name: documentdb
//	description: DocumentDB translation samples
//	dialect: documentdb
//	samples:
//	  - name: where_enum
//	    clauses: [where]
//	    query:
//	      filter:
//	        eq: [enumNumber, {enum: "Ns.MockEnum'ONE'"}]
//	    expect: "WHERE c.enumNumber = 'ONE' "
//	  - name: unsupported_function
//	    query:
//	      filter: {eq: [{fn: year, args: [createdDateTime]}, 2020]}
//	    error: UNSUPPORTED_FUNCTION
//
// Expected SQL is compared byte for byte, trailing space included.
package samples
