package booking

import (
	"context"

	"shareit/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateInput) (Booking, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (Booking, error)
	Detail(ctx context.Context, sc model.Scope, id int64) (Booking, error)

	// Faceted views, ordered by end descending.
	ListForBooker(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	ListForOwner(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
}
