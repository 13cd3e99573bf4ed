package origin

import (
	"context"
	"fmt"
	"path/filepath"
)

// Resolve translates a captured frame into a "<source>:<line>:<column>"
// position string. When the frame's file has a usable source map and the map
// contains an entry for the position, the original source name and position
// are returned. In every other case (no frame, no map, unparsable map, no
// mapping for the position) the compiled position is returned, using only
// the file's base name so absolute filesystem structure does not leak into
// query logs.
//
// Resolve returns "" for a nil or incomplete frame and never fails.
func (a *Annotator) Resolve(ctx context.Context, frame *Frame) string {
	if frame == nil || frame.File == "" || frame.Line < 1 || frame.Column < 1 {
		return ""
	}

	if consumer := a.cache.lookup(ctx, frame.File); consumer != nil {
		// go-sourcemap takes a 1-based line and a 0-based column, and
		// returns a 1-based line and a 0-based column.
		source, _, line, col, ok := consumer.Source(frame.Line, frame.Column-1)
		if ok && source != "" && line > 0 {
			return fmt.Sprintf("%s:%d:%d", source, line, col+1)
		}
		a.cfg.Logger.Debug().
			Str("file", frame.File).
			Int("line", frame.Line).
			Int("column", frame.Column).
			Msg("source map has no entry for position")
	}

	return fmt.Sprintf("%s:%d:%d", filepath.Base(frame.File), frame.Line, frame.Column)
}
