package request

import (
	"context"

	"shareit/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateInput) (View, error)
	ListOwn(ctx context.Context, sc model.Scope) ([]View, error)
	ListOthers(ctx context.Context, sc model.Scope, input ListInput) ([]View, error)
	Detail(ctx context.Context, sc model.Scope, id int64) (View, error)
}
