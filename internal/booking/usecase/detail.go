package usecase

import (
	"context"

	"shareit/internal/booking"
	"shareit/internal/model"
)

// Detail is visible to the booker and the item owner only.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id int64) (booking.Booking, error) {
	b, err := uc.getBooking(ctx, id)
	if err != nil {
		return booking.Booking{}, err
	}
	if b.Booker.ID != sc.UserID && b.Item.OwnerID != sc.UserID {
		return booking.Booking{}, booking.ErrForbidden.WithDetailf("booking %d is not visible to user %d", id, sc.UserID)
	}
	return b, nil
}

func (uc *implUseCase) getBooking(ctx context.Context, id int64) (booking.Booking, error) {
	b, err := uc.repo.GetOneBooking(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "booking.usecase.getBooking GetOneBooking: %v", err)
		return booking.Booking{}, err
	}
	if b.ID == 0 {
		return booking.Booking{}, booking.ErrBookingNotFound.WithDetailf("booking %d not found", id)
	}
	return b, nil
}
