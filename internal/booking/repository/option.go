package repository

import (
	"time"

	"shareit/internal/booking"
	"shareit/internal/model"
	"shareit/pkg/paginator"
)

// CreateBookingOptions carries the resolved item and booker so the stored row
// can be returned fully populated.
type CreateBookingOptions struct {
	Start  time.Time
	End    time.Time
	Item   model.Item
	Booker model.User
	Status booking.Status
}

// UpdateBookingStatusOptions moves a booking from From to To.
// Rows not in From are left untouched.
type UpdateBookingStatusOptions struct {
	ID   int64
	From booking.Status
	To   booking.Status
}

// ListBookingsOptions filters a booking list. Exactly one of BookerID or
// ItemIDs scopes the query.
type ListBookingsOptions struct {
	BookerID int64
	ItemIDs  []int64
	State    booking.SearchState
	Now      time.Time
	Page     *paginator.Page
}
