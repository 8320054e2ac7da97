package chartstyle

import "context"

type configContextKey struct{}

// NewContext returns a context that carries cfg for descendant renderers.
// Container derives one of these for its children; renderers read it back
// with FromContext.
func NewContext(ctx context.Context, cfg StyleConfig) context.Context {
	return context.WithValue(ctx, configContextKey{}, cfg)
}

// FromContext returns the StyleConfig published by the nearest enclosing
// Container. Calling it outside a container scope is an integration bug, not
// a runtime condition, so it panics immediately instead of defaulting.
func FromContext(ctx context.Context) StyleConfig {
	cfg, ok := ctx.Value(configContextKey{}).(StyleConfig)
	if !ok {
		panic("chartstyle: FromContext used outside a Container scope")
	}
	return cfg
}
