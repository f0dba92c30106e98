package repository

import (
	"context"

	"shareit/internal/model"
)

// Repository is the composed interface for the catalog data store.
type Repository interface {
	ItemRepository
	CommentRepository
}

type ItemRepository interface {
	CreateItem(ctx context.Context, opt CreateItemOptions) (model.Item, error)
	// GetOneItem returns a zero-value Item (ID == 0) when absent.
	GetOneItem(ctx context.Context, id int64) (model.Item, error)
	UpdateItem(ctx context.Context, opt UpdateItemOptions) (model.Item, error)
	ListItems(ctx context.Context, opt ListItemsOptions) ([]model.Item, error)
	ListItemIDsByOwner(ctx context.Context, ownerID int64) ([]int64, error)
	RequestExists(ctx context.Context, requestID int64) (bool, error)
}

type CommentRepository interface {
	CreateComment(ctx context.Context, opt CreateCommentOptions) (model.Comment, error)
	ListComments(ctx context.Context, itemIDs []int64) ([]model.Comment, error)
}
