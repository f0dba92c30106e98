package scope

import (
	"context"

	"shareit/internal/model"
)

type scopeKey struct{}

// SetScopeToContext attaches the authenticated actor.
func SetScopeToContext(ctx context.Context, sc model.Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, sc)
}

// GetScopeFromContext returns the actor set by the auth middleware.
func GetScopeFromContext(ctx context.Context) (model.Scope, bool) {
	sc, ok := ctx.Value(scopeKey{}).(model.Scope)
	return sc, ok && sc.UserID > 0
}
