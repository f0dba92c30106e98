package usecase

import (
	"context"

	"shareit/internal/booking"
	repo "shareit/internal/booking/repository"
	"shareit/internal/model"
	"shareit/pkg/metrics"
)

// Update records the owner's decision on a waiting booking.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input booking.UpdateInput) (booking.Booking, error) {
	b, err := uc.getBooking(ctx, input.BookingID)
	if err != nil {
		return booking.Booking{}, err
	}
	if b.Item.OwnerID != sc.UserID {
		return booking.Booking{}, booking.ErrForbidden.WithDetailf("user %d does not own item %d", sc.UserID, b.Item.ID)
	}
	if b.Status != booking.StatusWaiting {
		return booking.Booking{}, booking.ErrInvalidState.WithDetailf("booking %d is already %s", b.ID, b.Status)
	}

	to := booking.StatusRejected
	if input.Approved {
		to = booking.StatusApproved
	}

	updated, err := uc.repo.UpdateBookingStatus(ctx, repo.UpdateBookingStatusOptions{
		ID:   b.ID,
		From: booking.StatusWaiting,
		To:   to,
	})
	if err != nil {
		uc.l.Errorf(ctx, "booking.usecase.Update UpdateBookingStatus: %v", err)
		return booking.Booking{}, err
	}
	if !updated {
		return booking.Booking{}, booking.ErrInvalidState.WithDetailf("booking %d is already processed", b.ID)
	}

	metrics.BookingDecisions.WithLabelValues(string(to)).Inc()
	b.Status = to
	return b, nil
}
