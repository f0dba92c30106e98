package usecase

import (
	"context"
	"time"

	"shareit/internal/item"
	"shareit/internal/item/repository"
	"shareit/internal/model"
	"shareit/pkg/log"
)

// Directory resolves users. FindUser returns a NotFound error when absent.
type Directory interface {
	FindUser(ctx context.Context, id int64) (model.User, error)
}

// BookingReader answers booking questions about an item.
type BookingReader interface {
	LastBooking(ctx context.Context, itemID int64, now time.Time) (*model.BookingShort, error)
	NextBooking(ctx context.Context, itemID int64, now time.Time) (*model.BookingShort, error)
	HasFinishedBooking(ctx context.Context, bookerID, itemID int64, now time.Time) (bool, error)
}

type implUseCase struct {
	repo      repository.Repository
	directory Directory
	bookings  BookingReader
	now       func() time.Time
	l         log.Logger
}

// New creates the catalog UseCase.
func New(repo repository.Repository, directory Directory, bookings BookingReader, now func() time.Time, l log.Logger) item.UseCase {
	return &implUseCase{
		repo:      repo,
		directory: directory,
		bookings:  bookings,
		now:       now,
		l:         l,
	}
}
