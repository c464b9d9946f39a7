package httpapi

import "context"

// serverBaseCtx is canceled by serve on shutdown so in-flight translations
// are abandoned along with their requests.
var serverBaseCtx = context.Background()

// SetBaseContext installs the process-level context; nil resets it.
func SetBaseContext(ctx context.Context) {
	if ctx == nil {
		ctx = context.Background()
	}
	serverBaseCtx = ctx
}

// joinContexts derives from req and additionally ends when base ends.
// Request-scoped values (request id) stay reachable through the result.
func joinContexts(base, req context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancelCause(req)
	stop := context.AfterFunc(base, func() { cancel(context.Cause(base)) })
	return ctx, func() {
		stop()
		cancel(context.Canceled)
	}
}
