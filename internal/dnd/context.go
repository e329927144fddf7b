package dnd

import "context"

type coordinatorKey struct{}

// WithCoordinator returns a copy of ctx carrying c, for handing a
// coordinator down to the code that mounts zones.
func WithCoordinator(ctx context.Context, c *Coordinator) context.Context {
	return context.WithValue(ctx, coordinatorKey{}, c)
}

// FromContext returns the coordinator stored in ctx. It panics with
// ErrNoCoordinator when there is none.
func FromContext(ctx context.Context) *Coordinator {
	c, _ := ctx.Value(coordinatorKey{}).(*Coordinator)
	if c == nil {
		panic(ErrNoCoordinator)
	}
	return c
}
