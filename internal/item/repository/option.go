package repository

import (
	"time"

	"shareit/pkg/paginator"
)

type CreateItemOptions struct {
	Name        string
	Description string
	Available   bool
	OwnerID     int64
	RequestID   *int64
}

type UpdateItemOptions struct {
	ID          int64
	Name        string
	Description string
	Available   bool
}

// ListItemsOptions filters items. Zero fields are ignored; results are ordered by id.
type ListItemsOptions struct {
	OwnerID       int64
	RequestIDs    []int64
	Text          string
	AvailableOnly bool
	Page          *paginator.Page
}

type CreateCommentOptions struct {
	Text     string
	ItemID   int64
	AuthorID int64
	Created  time.Time
}
