package usecase

import (
	"context"
	"time"

	"shareit/internal/booking"
	"shareit/internal/booking/repository"
	"shareit/internal/model"
	"shareit/pkg/log"
)

// Directory resolves users. FindUser returns a NotFound error when absent.
type Directory interface {
	FindUser(ctx context.Context, id int64) (model.User, error)
}

// Catalog resolves items, availability and ownership. FindItem and IsAvailable
// return a NotFound error when the item is absent.
type Catalog interface {
	FindItem(ctx context.Context, id int64) (model.Item, error)
	IsAvailable(ctx context.Context, id int64) (bool, error)
	FindItemIDsByOwner(ctx context.Context, ownerID int64) ([]int64, error)
}

type implUseCase struct {
	repo      repository.Repository
	directory Directory
	catalog   Catalog
	now       func() time.Time
	l         log.Logger
}

// New creates the booking UseCase. now is sampled once per operation.
func New(repo repository.Repository, directory Directory, catalog Catalog, now func() time.Time, l log.Logger) booking.UseCase {
	return &implUseCase{
		repo:      repo,
		directory: directory,
		catalog:   catalog,
		now:       now,
		l:         l,
	}
}
