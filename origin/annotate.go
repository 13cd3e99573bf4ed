package origin

import "strings"

// terminator is the statement terminator preserved by annotation.
const terminator = ";"

// unknownPosition is rendered when no caller position could be resolved.
const unknownPosition = "unknown"

// Statement is a structured query payload: the SQL text plus opaque
// parameter values. Annotation rewrites Text in place and leaves Values
// untouched.
type Statement struct {
	Text   string
	Values []any
}

// Comment builds the annotation comment for a resolved position.
// An empty position yields the "unknown" form.
//
//	Comment("app.ts:5:10") // "/* file=app.ts:5:10 */"
//	Comment("")            // "/* file=unknown */"
func Comment(position string) string {
	if position == "" {
		position = unknownPosition
	}
	return "/* file=" + position + " */"
}

// AnnotateString appends the annotation comment to a SQL string and ensures
// the statement stays terminated: trailing whitespace is trimmed, a trailing
// terminator is lifted over the comment, and a terminator is appended when
// none was present. If the text already contains the exact comment the input
// is returned unchanged, so re-annotating (for example on a retried query)
// is idempotent.
//
//	AnnotateString("SELECT NOW();", "app.js:7:3")
//	// "SELECT NOW() /* file=app.js:7:3 */;"
func AnnotateString(query, position string) string {
	comment := Comment(position)
	if strings.Contains(query, comment) {
		return query
	}

	trimmed := strings.TrimRight(query, " \t\r\n")
	trimmed = strings.TrimSuffix(trimmed, terminator)
	return trimmed + " " + comment + terminator
}

// Annotate rewrites a query payload with the annotation comment. Plain
// strings are returned annotated; a *Statement has its Text rewritten in
// place and is returned as-is. Any other payload shape passes through
// unmodified: annotation is best-effort and never rejects an input it does
// not recognize.
func Annotate(query any, position string) any {
	switch q := query.(type) {
	case string:
		return AnnotateString(q, position)
	case *Statement:
		if q == nil {
			return q
		}
		q.Text = AnnotateString(q.Text, position)
		return q
	default:
		return query
	}
}
