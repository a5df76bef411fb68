// Package cql builds Confluence Query Language expressions.
//
// Clauses are started from Where, narrowed by a field-typed builder and
// finalized by one of the builder's predicate methods:
//
//	q := cql.And(
//		cql.Where.Space().Is("DEV"),
//		cql.Where.Type().IsPage(),
//	).OrderByAscending(cql.FieldTitle)
//
//	q.String() // (space = "DEV" and type = page) order by title asc
//
// A finalized *Clause only exposes ordering and rendering. Misuse such as
// ordering by label is recorded on the clause and reported by Render and Err.
package cql
