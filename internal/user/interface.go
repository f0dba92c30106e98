package user

import (
	"context"

	"shareit/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, input CreateInput) (model.User, error)
	Update(ctx context.Context, input UpdateInput) (model.User, error)
	Detail(ctx context.Context, id int64) (model.User, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) (ListOutput, error)

	// FindUser resolves a user for other domains. Returns ErrUserNotFound when absent.
	FindUser(ctx context.Context, id int64) (model.User, error)
}
