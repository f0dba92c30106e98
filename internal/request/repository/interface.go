package repository

import (
	"context"

	"shareit/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	CreateRequest(ctx context.Context, opt CreateRequestOptions) (model.ItemRequest, error)
	// GetOneRequest returns a zero-value ItemRequest (ID == 0) when absent.
	GetOneRequest(ctx context.Context, id int64) (model.ItemRequest, error)
	ListRequests(ctx context.Context, opt ListRequestsOptions) ([]model.ItemRequest, error)
}
