package model

import "time"

// Item is a thing an owner lists for others to book.
type Item struct {
	ID          int64
	Name        string
	Description string
	Available   bool
	OwnerID     int64
	RequestID   *int64
}

// Comment is feedback left by a past booker.
type Comment struct {
	ID         int64
	Text       string
	ItemID     int64
	AuthorID   int64
	AuthorName string
	Created    time.Time
}

// ItemRequest is a wish published by a user for an item nobody lists yet.
type ItemRequest struct {
	ID          int64
	Description string
	RequestorID int64
	Created     time.Time
}

// BookingShort is the compact booking view shown next to an item.
type BookingShort struct {
	ID       int64
	BookerID int64
	Start    time.Time
	End      time.Time
}
