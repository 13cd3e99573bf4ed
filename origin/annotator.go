package origin

import (
	"context"
	"time"
)

// Annotator runs the full annotation pipeline: capture the caller frame,
// resolve it through the source-map cache, and rewrite the query text.
// It owns the cache; construct one per pool (the sql and sqlx packages do
// this) and share it across all queries issued through that pool.
type Annotator struct {
	cfg   *config
	cache *mapCache
}

// New creates an Annotator.
func New(opts ...Option) *Annotator {
	cfg := newConfig(opts...)
	return &Annotator{
		cfg:   cfg,
		cache: newMapCache(cfg),
	}
}

// AnnotateQuery annotates one query invocation. An explicit position
// carried by ctx (see ContextWithPosition) takes precedence over stack
// capture. The caller frame is read synchronously before any suspension,
// so concurrent invocations never see one another's frame data.
func (a *Annotator) AnnotateQuery(ctx context.Context, query string) string {
	start := time.Now()

	position, ok := PositionFromContext(ctx)
	if !ok {
		frame := a.CallerFrame()
		position = a.Resolve(ctx, frame)
	}
	annotated := AnnotateString(query, position)

	a.cfg.Metrics.recordAnnotation(ctx, time.Since(start), position != "")
	return annotated
}

// AnnotateStatement is AnnotateQuery for a structured payload. The
// statement's Text is rewritten in place; Values pass through untouched.
func (a *Annotator) AnnotateStatement(ctx context.Context, stmt *Statement) *Statement {
	if stmt == nil {
		return nil
	}
	stmt.Text = a.AnnotateQuery(ctx, stmt.Text)
	return stmt
}
