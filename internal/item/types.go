package item

import "shareit/internal/model"

// View is an item as presented to a reader. Bookings are filled for the owner only.
type View struct {
	Item        model.Item
	LastBooking *model.BookingShort
	NextBooking *model.BookingShort
	Comments    []model.Comment
}

// --- UseCase Inputs ---

// CreateInput holds raw fields. Nil means absent.
type CreateInput struct {
	Name        *string
	Description *string
	Available   *bool
	RequestID   *int64
}

// UpdateInput is a partial update. Nil fields keep their stored value.
type UpdateInput struct {
	ID          int64
	Name        *string
	Description *string
	Available   *bool
}

type ListInput struct {
	From *int
	Size *int
}

type SearchInput struct {
	Text string
	From *int
	Size *int
}

type CommentInput struct {
	ItemID int64
	Text   string
}
