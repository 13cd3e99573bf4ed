package origin_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/origin-labs/queryorigin-go/origin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureDepth3 -> captureDepth2 -> captureDepth1 -> CallerFrame gives the
// resolver three application frames to choose from; the innermost one
// (captureDepth1's call site) must win.
func captureDepth1(a *origin.Annotator) *origin.Frame { return a.CallerFrame() }
func captureDepth2(a *origin.Annotator) *origin.Frame { return captureDepth1(a) }
func captureDepth3(a *origin.Annotator) *origin.Frame { return captureDepth2(a) }

func TestCallerFrame(t *testing.T) {
	t.Run("given direct call, then reports this file", func(t *testing.T) {
		a := origin.New()

		frame := a.CallerFrame()

		require.NotNil(t, frame)
		assert.Equal(t, "frame_test.go", filepath.Base(frame.File))
		assert.Positive(t, frame.Line)
		assert.Equal(t, 1, frame.Column)
	})

	t.Run("given nested callers, then innermost application frame wins", func(t *testing.T) {
		a := origin.New()

		frame := captureDepth3(a)

		require.NotNil(t, frame)
		assert.Equal(t, "frame_test.go", filepath.Base(frame.File))
	})

	t.Run("given any depth, then never reports library or dependency code", func(t *testing.T) {
		a := origin.New()

		for _, frame := range []*origin.Frame{
			captureDepth1(a),
			captureDepth2(a),
			captureDepth3(a),
		} {
			require.NotNil(t, frame)
			assert.NotContains(t, frame.File, "/go/pkg/mod/")
			assert.NotContains(t, frame.File, "/vendor/")
			assert.Equal(t, "frame_test.go", filepath.Base(frame.File))
		}
	})

	t.Run("given every frame excluded, then returns nil", func(t *testing.T) {
		// Skipping this test package leaves only testing and runtime frames
		// on the stack, none of which qualify.
		a := origin.New(
			origin.WithSkipPackages("github.com/origin-labs/queryorigin-go/origin_test."),
		)

		assert.Nil(t, captureDepth3(a))
	})
}

func TestAnnotateQuery_UnknownWhenNoFrame(t *testing.T) {
	t.Run("given no qualifying frame, then annotates with unknown", func(t *testing.T) {
		a := origin.New(
			origin.WithSkipPackages("github.com/origin-labs/queryorigin-go/origin_test."),
		)

		got := a.AnnotateQuery(context.Background(), "SELECT 1")

		assert.Equal(t, "SELECT 1 /* file=unknown */;", got)
	})
}

func TestAnnotateQuery_EndToEnd(t *testing.T) {
	t.Run("given uninstrumented caller, then embeds this file and line", func(t *testing.T) {
		a := origin.New()

		got := a.AnnotateQuery(context.Background(), "SELECT NOW();")

		assert.True(t, strings.HasPrefix(got, "SELECT NOW() /* file=frame_test.go:"), got)
		assert.True(t, strings.HasSuffix(got, " */;"), got)
	})

	t.Run("given statement payload, then text is rewritten and values kept", func(t *testing.T) {
		a := origin.New()
		stmt := &origin.Statement{Text: "SELECT $1", Values: []any{int64(1)}}

		got := a.AnnotateStatement(context.Background(), stmt)

		require.Same(t, stmt, got)
		assert.Contains(t, stmt.Text, "/* file=frame_test.go:")
		assert.Equal(t, []any{int64(1)}, stmt.Values)
	})

	t.Run("given nil statement, then returns nil", func(t *testing.T) {
		a := origin.New()

		assert.Nil(t, a.AnnotateStatement(context.Background(), nil))
	})
}
