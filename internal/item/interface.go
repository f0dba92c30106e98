package item

import (
	"context"

	"shareit/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateInput) (model.Item, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (model.Item, error)
	Detail(ctx context.Context, sc model.Scope, id int64) (View, error)
	ListByOwner(ctx context.Context, sc model.Scope, input ListInput) ([]View, error)
	Search(ctx context.Context, input SearchInput) ([]model.Item, error)
	AddComment(ctx context.Context, sc model.Scope, input CommentInput) (model.Comment, error)

	// Collaborator lookups used by bookings and item requests.
	FindItem(ctx context.Context, id int64) (model.Item, error)
	FindItemIDsByOwner(ctx context.Context, ownerID int64) ([]int64, error)
	FindItemsForRequests(ctx context.Context, requestIDs []int64) (map[int64][]model.Item, error)
	IsAvailable(ctx context.Context, id int64) (bool, error)
}
