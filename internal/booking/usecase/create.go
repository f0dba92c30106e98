package usecase

import (
	"context"
	"time"

	"shareit/internal/booking"
	repo "shareit/internal/booking/repository"
	"shareit/internal/model"
	"shareit/pkg/metrics"
)

// Create books an item for the requester. Checks run in a fixed order and the
// first failure wins: required fields, requester and item lookup, period,
// availability, ownership.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input booking.CreateInput) (booking.Booking, error) {
	if err := uc.validateCreateInput(input); err != nil {
		return booking.Booking{}, err
	}

	booker, err := uc.directory.FindUser(ctx, sc.UserID)
	if err != nil {
		return booking.Booking{}, err
	}
	item, err := uc.catalog.FindItem(ctx, *input.ItemID)
	if err != nil {
		return booking.Booking{}, err
	}

	if err := uc.validatePeriod(*input.Start, *input.End, uc.now()); err != nil {
		return booking.Booking{}, err
	}
	available, err := uc.catalog.IsAvailable(ctx, item.ID)
	if err != nil {
		return booking.Booking{}, err
	}
	if !available {
		return booking.Booking{}, booking.ErrItemUnavailable.WithDetailf("item %d is not available", item.ID)
	}
	if item.OwnerID == booker.ID {
		return booking.Booking{}, booking.ErrForbidden.WithDetail("owner cannot book own item")
	}

	b, err := uc.repo.CreateBooking(ctx, repo.CreateBookingOptions{
		Start:  *input.Start,
		End:    *input.End,
		Item:   item,
		Booker: booker,
		Status: booking.StatusWaiting,
	})
	if err != nil {
		uc.l.Errorf(ctx, "booking.usecase.Create CreateBooking: %v", err)
		return booking.Booking{}, err
	}

	metrics.BookingsCreated.Inc()
	return b, nil
}

func (uc *implUseCase) validateCreateInput(input booking.CreateInput) error {
	switch {
	case input.ItemID == nil:
		return booking.ErrMissingField.WithDetail("itemId is required")
	case input.Start == nil:
		return booking.ErrMissingField.WithDetail("start is required")
	case input.End == nil:
		return booking.ErrMissingField.WithDetail("end is required")
	}
	return nil
}

func (uc *implUseCase) validatePeriod(start, end, now time.Time) error {
	switch {
	case start.Equal(end):
		return booking.ErrInvalidRange.WithDetail("start and end must differ")
	case start.After(end):
		return booking.ErrInvalidRange.WithDetail("start must be before end")
	case end.Before(now):
		return booking.ErrInvalidRange.WithDetail("end is in the past")
	case start.Before(now):
		return booking.ErrInvalidRange.WithDetail("start is in the past")
	}
	return nil
}
