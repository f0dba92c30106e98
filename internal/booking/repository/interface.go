package repository

import (
	"context"
	"time"

	"shareit/internal/booking"
	"shareit/internal/model"
)

// Repository is the composed interface for the booking data store.
type Repository interface {
	BookingRepository
	SummaryRepository
}

type BookingRepository interface {
	CreateBooking(ctx context.Context, opt CreateBookingOptions) (booking.Booking, error)
	// GetOneBooking returns a zero-value Booking (ID == 0) when absent.
	GetOneBooking(ctx context.Context, id int64) (booking.Booking, error)
	// UpdateBookingStatus reports whether a row changed.
	UpdateBookingStatus(ctx context.Context, opt UpdateBookingStatusOptions) (bool, error)
	ListBookings(ctx context.Context, opt ListBookingsOptions) ([]booking.Booking, error)
}

// SummaryRepository answers the item catalog's booking questions.
type SummaryRepository interface {
	LastBooking(ctx context.Context, itemID int64, now time.Time) (*model.BookingShort, error)
	NextBooking(ctx context.Context, itemID int64, now time.Time) (*model.BookingShort, error)
	HasFinishedBooking(ctx context.Context, bookerID, itemID int64, now time.Time) (bool, error)
}
