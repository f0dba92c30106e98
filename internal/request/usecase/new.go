package usecase

import (
	"context"
	"time"

	"shareit/internal/model"
	"shareit/internal/request"
	"shareit/internal/request/repository"
	"shareit/pkg/log"
)

// Directory resolves users. FindUser returns a NotFound error when absent.
type Directory interface {
	FindUser(ctx context.Context, id int64) (model.User, error)
}

// ItemFinder groups catalog items by the request they answer.
type ItemFinder interface {
	FindItemsForRequests(ctx context.Context, requestIDs []int64) (map[int64][]model.Item, error)
}

type implUseCase struct {
	repo      repository.Repository
	directory Directory
	items     ItemFinder
	now       func() time.Time
	l         log.Logger
}

// New creates the item request UseCase.
func New(repo repository.Repository, directory Directory, items ItemFinder, now func() time.Time, l log.Logger) request.UseCase {
	return &implUseCase{
		repo:      repo,
		directory: directory,
		items:     items,
		now:       now,
		l:         l,
	}
}
