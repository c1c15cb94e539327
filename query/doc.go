// Package query provides typed read access to the per-project MySQL
// replica databases of Wikimedia wikis.
//
// A Registry caches one database engine per (project, extension)
// identity. Statements, either raw SQL strings or squirrel builders,
// are executed within a single read-only transaction and the results
// are materialized into a TypedTable using the replica's wire-level
// column type codes.
package query
