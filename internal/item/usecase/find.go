package usecase

import (
	"context"

	"shareit/internal/item"
	repo "shareit/internal/item/repository"
	"shareit/internal/model"
)

func (uc *implUseCase) FindItem(ctx context.Context, id int64) (model.Item, error) {
	it, err := uc.repo.GetOneItem(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "item.usecase.FindItem GetOneItem: %v", err)
		return model.Item{}, err
	}
	if it.ID == 0 {
		return model.Item{}, item.ErrItemNotFound.WithDetailf("item %d not found", id)
	}
	return it, nil
}

func (uc *implUseCase) FindItemIDsByOwner(ctx context.Context, ownerID int64) ([]int64, error) {
	ids, err := uc.repo.ListItemIDsByOwner(ctx, ownerID)
	if err != nil {
		uc.l.Errorf(ctx, "item.usecase.FindItemIDsByOwner ListItemIDsByOwner: %v", err)
		return nil, err
	}
	return ids, nil
}

// FindItemsForRequests groups the items answering each request id.
func (uc *implUseCase) FindItemsForRequests(ctx context.Context, requestIDs []int64) (map[int64][]model.Item, error) {
	out := make(map[int64][]model.Item, len(requestIDs))
	if len(requestIDs) == 0 {
		return out, nil
	}
	items, err := uc.repo.ListItems(ctx, repo.ListItemsOptions{RequestIDs: requestIDs})
	if err != nil {
		uc.l.Errorf(ctx, "item.usecase.FindItemsForRequests ListItems: %v", err)
		return nil, err
	}
	for _, it := range items {
		if it.RequestID != nil {
			out[*it.RequestID] = append(out[*it.RequestID], it)
		}
	}
	return out, nil
}

func (uc *implUseCase) IsAvailable(ctx context.Context, id int64) (bool, error) {
	it, err := uc.FindItem(ctx, id)
	if err != nil {
		return false, err
	}
	return it.Available, nil
}
