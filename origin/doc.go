// Package origin resolves the call site that issued a database query and
// rewrites the query with a trailing comment identifying that call site.
//
// # Features
//
//   - Caller capture that skips this library, the standard library, and
//     third-party dependency code
//   - Source-map resolution for generated files (a sidecar at <file>.map
//     translates positions back to the authored source)
//   - Per-file source-map cache for the lifetime of the process
//   - Safe comment injection that preserves statement termination and never
//     duplicates an existing annotation
//   - Explicit origin override via ContextWithPosition for callers that
//     already know where a query comes from
//
// # Quick Start
//
//	annotator := origin.New()
//
//	query := annotator.AnnotateQuery(ctx, "SELECT NOW();")
//	// "SELECT NOW() /* file=billing.go:42:1 */;"
//
// Most applications should not use this package directly; the sql and sqlx
// packages wrap a connection pool so every query is annotated automatically.
//
// # Degradation
//
// Every failure inside the pipeline degrades instead of surfacing:
//
//   - no source map, unreadable map, unparsable map: the compiled position
//     (base file name) is used
//   - map loads but has no entry for the position: compiled position
//   - no qualifying caller frame: the comment reads "file=unknown"
//
// A query is always issued, annotated or not.
package origin
