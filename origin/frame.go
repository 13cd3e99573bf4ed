package origin

import (
	"runtime"
	"strings"
)

// modulePath is the import path prefix of this library. Frames originating
// here are never reported as the query's call site.
const modulePath = "github.com/origin-labs/queryorigin-go"

// Frame is one captured call site. The Go runtime reports no column, so
// frames produced by CallerFrame carry Column 1; positions resolved through
// a source map may carry any column.
type Frame struct {
	File   string
	Line   int
	Column int
}

// instrumentationPrefixes lists the function-name prefixes of this library's
// own packages. The trailing dot keeps sibling packages (and external test
// packages such as origin_test) from matching.
var instrumentationPrefixes = []string{
	modulePath + "/origin.",
	modulePath + "/sql.",
	modulePath + "/sqlx.",
}

// stdlibPrefixes covers the standard-library frames that sit between the
// caller and this library when queries flow through database/sql.
var stdlibPrefixes = []string{
	"database/sql.",
	"runtime.",
	"reflect.",
	"testing.",
}

// vendorFragments mark files that live in third-party dependency code.
var vendorFragments = []string{
	"/go/pkg/mod/",
	"/vendor/",
}

const maxStackDepth = 32

// CallerFrame captures the current stack and returns the innermost frame
// that belongs to application code: not this library, not the standard
// library, not third-party dependencies, and not any package configured via
// WithSkipPackages. It returns nil when no qualifying frame exists; callers
// treat nil as "position unknown", never as an error.
func (a *Annotator) CallerFrame() *Frame {
	pcs := make([]uintptr, maxStackDepth)
	n := runtime.Callers(2, pcs)
	if n == 0 {
		return nil
	}

	frames := runtime.CallersFrames(pcs[:n])
	for {
		fr, more := frames.Next()
		if a.qualifies(fr) {
			return &Frame{File: fr.File, Line: fr.Line, Column: 1}
		}
		if !more {
			return nil
		}
	}
}

// qualifies reports whether fr may be reported as the query's origin.
func (a *Annotator) qualifies(fr runtime.Frame) bool {
	if fr.File == "" || fr.Line <= 0 {
		return false
	}
	for _, p := range instrumentationPrefixes {
		if strings.HasPrefix(fr.Function, p) {
			return false
		}
	}
	for _, p := range stdlibPrefixes {
		if strings.HasPrefix(fr.Function, p) {
			return false
		}
	}
	for _, p := range a.cfg.SkipPackages {
		if strings.HasPrefix(fr.Function, p) {
			return false
		}
	}
	for _, frag := range vendorFragments {
		if strings.Contains(fr.File, frag) {
			return false
		}
	}
	return true
}
