package usecase

import (
	"context"

	"shareit/internal/model"
	"shareit/internal/request"
	repo "shareit/internal/request/repository"
	"shareit/pkg/paginator"
)

// ListOwn returns the caller's requests, newest first, with the items answering them.
func (uc *implUseCase) ListOwn(ctx context.Context, sc model.Scope) ([]request.View, error) {
	if _, err := uc.directory.FindUser(ctx, sc.UserID); err != nil {
		return nil, err
	}

	reqs, err := uc.repo.ListRequests(ctx, repo.ListRequestsOptions{RequestorID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "request.usecase.ListOwn ListRequests: %v", err)
		return nil, err
	}
	return uc.attachItems(ctx, reqs)
}

// ListOthers pages through requests published by everyone except the caller.
func (uc *implUseCase) ListOthers(ctx context.Context, sc model.Scope, input request.ListInput) ([]request.View, error) {
	if _, err := uc.directory.FindUser(ctx, sc.UserID); err != nil {
		return nil, err
	}
	page, err := paginator.New(input.From, input.Size)
	if err != nil {
		return nil, err
	}

	reqs, err := uc.repo.ListRequests(ctx, repo.ListRequestsOptions{ExcludeRequestorID: sc.UserID, Page: page})
	if err != nil {
		uc.l.Errorf(ctx, "request.usecase.ListOthers ListRequests: %v", err)
		return nil, err
	}
	return uc.attachItems(ctx, reqs)
}

// Detail shows any request to any registered user.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id int64) (request.View, error) {
	if _, err := uc.directory.FindUser(ctx, sc.UserID); err != nil {
		return request.View{}, err
	}

	req, err := uc.repo.GetOneRequest(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "request.usecase.Detail GetOneRequest: %v", err)
		return request.View{}, err
	}
	if req.ID == 0 {
		return request.View{}, request.ErrRequestNotFound.WithDetailf("item request %d not found", id)
	}

	views, err := uc.attachItems(ctx, []model.ItemRequest{req})
	if err != nil {
		return request.View{}, err
	}
	return views[0], nil
}

func (uc *implUseCase) attachItems(ctx context.Context, reqs []model.ItemRequest) ([]request.View, error) {
	views := make([]request.View, len(reqs))
	if len(reqs) == 0 {
		return views, nil
	}

	ids := make([]int64, len(reqs))
	for i, req := range reqs {
		ids[i] = req.ID
	}
	byRequest, err := uc.items.FindItemsForRequests(ctx, ids)
	if err != nil {
		uc.l.Errorf(ctx, "request.usecase.attachItems FindItemsForRequests: %v", err)
		return nil, err
	}

	for i, req := range reqs {
		items := byRequest[req.ID]
		if items == nil {
			items = []model.Item{}
		}
		views[i] = request.View{Request: req, Items: items}
	}
	return views, nil
}
