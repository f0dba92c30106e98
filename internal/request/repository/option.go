package repository

import (
	"time"

	"shareit/pkg/paginator"
)

type CreateRequestOptions struct {
	Description string
	RequestorID int64
	Created     time.Time
}

// ListRequestsOptions selects requests newest first. Exactly one of
// RequestorID or ExcludeRequestorID is expected to be set.
type ListRequestsOptions struct {
	RequestorID        int64
	ExcludeRequestorID int64
	Page               *paginator.Page
}
