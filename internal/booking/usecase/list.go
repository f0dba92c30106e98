package usecase

import (
	"context"

	"shareit/internal/booking"
	repo "shareit/internal/booking/repository"
	"shareit/internal/model"
	"shareit/pkg/paginator"
)

// ListForBooker returns the caller's own bookings.
func (uc *implUseCase) ListForBooker(ctx context.Context, sc model.Scope, input booking.ListInput) (booking.ListOutput, error) {
	if _, err := uc.directory.FindUser(ctx, sc.UserID); err != nil {
		return booking.ListOutput{}, err
	}

	opt, err := uc.buildListOptions(input)
	if err != nil {
		return booking.ListOutput{}, err
	}
	opt.BookerID = sc.UserID

	return uc.list(ctx, "ListForBooker", opt)
}

// ListForOwner returns bookings on the caller's items. Owned item ids are
// resolved before the state and page are checked, and passed to the query as a set.
func (uc *implUseCase) ListForOwner(ctx context.Context, sc model.Scope, input booking.ListInput) (booking.ListOutput, error) {
	if _, err := uc.directory.FindUser(ctx, sc.UserID); err != nil {
		return booking.ListOutput{}, err
	}

	itemIDs, err := uc.catalog.FindItemIDsByOwner(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "booking.usecase.ListForOwner FindItemIDsByOwner: %v", err)
		return booking.ListOutput{}, err
	}
	if len(itemIDs) == 0 {
		return booking.ListOutput{}, booking.ErrNoItems.WithDetailf("user %d owns no items", sc.UserID)
	}

	opt, err := uc.buildListOptions(input)
	if err != nil {
		return booking.ListOutput{}, err
	}
	opt.ItemIDs = itemIDs

	return uc.list(ctx, "ListForOwner", opt)
}

func (uc *implUseCase) buildListOptions(input booking.ListInput) (repo.ListBookingsOptions, error) {
	state, err := booking.ParseSearchState(input.State)
	if err != nil {
		return repo.ListBookingsOptions{}, err
	}
	page, err := paginator.New(input.From, input.Size)
	if err != nil {
		return repo.ListBookingsOptions{}, err
	}
	return repo.ListBookingsOptions{
		State: state,
		Now:   uc.now(),
		Page:  page,
	}, nil
}

func (uc *implUseCase) list(ctx context.Context, method string, opt repo.ListBookingsOptions) (booking.ListOutput, error) {
	bookings, err := uc.repo.ListBookings(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "booking.usecase.%s ListBookings: %v", method, err)
		return booking.ListOutput{}, err
	}
	return booking.ListOutput{Bookings: bookings}, nil
}
