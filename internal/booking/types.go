package booking

import (
	"time"

	"shareit/internal/model"
)

// Status is the lifecycle position of a booking.
type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// Booking is a reservation of an item by a booker for [Start, End).
// It starts WAITING and moves once to APPROVED or REJECTED.
type Booking struct {
	ID     int64
	Start  time.Time
	End    time.Time
	Item   model.Item
	Booker model.User
	Status Status
}

// --- UseCase Inputs ---

// CreateInput holds the raw request fields. Nil means the field was absent.
type CreateInput struct {
	ItemID *int64
	Start  *time.Time
	End    *time.Time
}

type UpdateInput struct {
	BookingID int64
	Approved  bool
}

// ListInput selects a faceted view. From and Size are both set or both nil.
type ListInput struct {
	State string
	From  *int
	Size  *int
}

// --- UseCase Outputs ---

type ListOutput struct {
	Bookings []Booking
}
