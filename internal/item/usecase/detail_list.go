package usecase

import (
	"context"
	"strings"
	"time"

	"shareit/internal/item"
	repo "shareit/internal/item/repository"
	"shareit/internal/model"
	"shareit/pkg/paginator"
)

// Detail shows an item with its comments. The owner also sees the last and next bookings.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id int64) (item.View, error) {
	if _, err := uc.directory.FindUser(ctx, sc.UserID); err != nil {
		return item.View{}, err
	}
	it, err := uc.FindItem(ctx, id)
	if err != nil {
		return item.View{}, err
	}

	views, err := uc.buildViews(ctx, []model.Item{it}, it.OwnerID == sc.UserID, uc.now())
	if err != nil {
		return item.View{}, err
	}
	return views[0], nil
}

// ListByOwner returns the caller's items by id, each with bookings and comments.
func (uc *implUseCase) ListByOwner(ctx context.Context, sc model.Scope, input item.ListInput) ([]item.View, error) {
	if _, err := uc.directory.FindUser(ctx, sc.UserID); err != nil {
		return nil, err
	}
	page, err := paginator.New(input.From, input.Size)
	if err != nil {
		return nil, err
	}

	items, err := uc.repo.ListItems(ctx, repo.ListItemsOptions{OwnerID: sc.UserID, Page: page})
	if err != nil {
		uc.l.Errorf(ctx, "item.usecase.ListByOwner ListItems: %v", err)
		return nil, err
	}
	return uc.buildViews(ctx, items, true, uc.now())
}

// Search matches available items by name or description. Blank text finds nothing.
func (uc *implUseCase) Search(ctx context.Context, input item.SearchInput) ([]model.Item, error) {
	page, err := paginator.New(input.From, input.Size)
	if err != nil {
		return nil, err
	}
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return []model.Item{}, nil
	}

	items, err := uc.repo.ListItems(ctx, repo.ListItemsOptions{Text: text, AvailableOnly: true, Page: page})
	if err != nil {
		uc.l.Errorf(ctx, "item.usecase.Search ListItems: %v", err)
		return nil, err
	}
	return items, nil
}

func (uc *implUseCase) buildViews(ctx context.Context, items []model.Item, withBookings bool, now time.Time) ([]item.View, error) {
	views := make([]item.View, len(items))
	if len(items) == 0 {
		return views, nil
	}

	ids := make([]int64, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	comments, err := uc.repo.ListComments(ctx, ids)
	if err != nil {
		uc.l.Errorf(ctx, "item.usecase.buildViews ListComments: %v", err)
		return nil, err
	}
	byItem := make(map[int64][]model.Comment, len(items))
	for _, c := range comments {
		byItem[c.ItemID] = append(byItem[c.ItemID], c)
	}

	for i, it := range items {
		views[i] = item.View{Item: it, Comments: byItem[it.ID]}
		if views[i].Comments == nil {
			views[i].Comments = []model.Comment{}
		}
		if !withBookings {
			continue
		}
		if views[i].LastBooking, err = uc.bookings.LastBooking(ctx, it.ID, now); err != nil {
			uc.l.Errorf(ctx, "item.usecase.buildViews LastBooking: %v", err)
			return nil, err
		}
		if views[i].NextBooking, err = uc.bookings.NextBooking(ctx, it.ID, now); err != nil {
			uc.l.Errorf(ctx, "item.usecase.buildViews NextBooking: %v", err)
			return nil, err
		}
	}
	return views, nil
}
