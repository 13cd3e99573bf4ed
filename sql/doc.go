// Package sql provides a database/sql driver wrapper that annotates every
// outgoing query with a comment identifying the call site that issued it.
//
// # Features
//
//   - Trailing "/* file=<source>:<line>:<column> */" comment on every query
//   - Source-map resolution for generated calling files (sidecar at <file>.map)
//   - Caller capture that skips this library, the standard library, and
//     third-party dependency code
//   - Full compatibility with the database/sql interface; results and errors
//     from the wrapped driver pass through unchanged
//
// # Quick Start
//
// Open a database connection with annotation:
//
//	import originsql "github.com/origin-labs/queryorigin-go/sql"
//
//	db, err := originsql.Open("postgres", dsn)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer db.Close()
//
//	// Use like standard *sql.DB
//	rows, err := db.QueryContext(ctx, "SELECT * FROM users;")
//	// the driver receives "SELECT * FROM users /* file=report.go:17:1 */;"
//
// # Driver Registration
//
// For more control, register a wrapped driver:
//
//	driver := originsql.WrapDriver(pq.Driver{})
//	sql.Register("postgres-annotated", driver)
//
//	db, _ := sql.Open("postgres-annotated", dsn)
//
// # Configuration Options
//
// Options are forwarded to the origin annotator owned by the driver:
//
//	db, _ := originsql.Open("postgres", dsn,
//	    originsql.WithName("primary"),            // registration identifier
//	    originsql.WithLogger(logger),             // degraded-path diagnostics
//	    originsql.WithSkipPackages("github.com/acme/app/internal/store."),
//	    originsql.WithMapLoadTimeout(time.Second),
//	)
//
// # Failure Model
//
// Annotation failures never prevent a query from being issued: a missing or
// broken source map degrades to the compiled position, and a missing caller
// frame degrades to "file=unknown". Execution failures from the wrapped
// driver are indistinguishable from calling the driver directly.
package sql
