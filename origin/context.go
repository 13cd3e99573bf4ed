package origin

import "context"

type positionKey struct{}

// ContextWithPosition returns a context carrying an explicit origin
// position. Annotation uses it verbatim and skips stack capture and map
// resolution entirely, so callers that already know where a query comes
// from (request routers, job runners, code generators) can say so instead
// of relying on stack inspection.
//
//	ctx = origin.ContextWithPosition(ctx, "billing/invoice.go:42:1")
//	db.ExecContext(ctx, "UPDATE invoices SET paid = true WHERE id = $1;", id)
func ContextWithPosition(ctx context.Context, position string) context.Context {
	return context.WithValue(ctx, positionKey{}, position)
}

// PositionFromContext reports the explicit origin position carried by ctx,
// if any.
func PositionFromContext(ctx context.Context) (string, bool) {
	position, ok := ctx.Value(positionKey{}).(string)
	return position, ok
}
