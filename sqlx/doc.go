// Package sqlx wraps jmoiron/sqlx with call-site query annotation.
//
// Every query issued through the wrapper gains a trailing
// "/* file=<source>:<line>:<column> */" comment identifying the call site,
// resolved through source maps when the calling file is generated output.
// Results and errors from sqlx pass through unchanged.
//
// # Quick Start
//
//	import originsqlx "github.com/origin-labs/queryorigin-go/sqlx"
//
//	db, err := originsqlx.Connect(ctx, "postgres", dsn)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer db.Close()
//
//	var users []User
//	err = db.SelectContext(ctx, &users, "SELECT * FROM users;")
//	// the driver receives "SELECT * FROM users /* file=report.go:17:1 */;"
//
// Prepared and named statements are annotated once, at preparation time;
// executing them adds nothing further.
package sqlx
