package usecase

import (
	"context"
	"strings"

	"shareit/internal/model"
	"shareit/internal/request"
	repo "shareit/internal/request/repository"
)

// Create publishes a request for an item on behalf of the caller.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input request.CreateInput) (request.View, error) {
	if strings.TrimSpace(input.Description) == "" {
		return request.View{}, request.ErrBlankDescription
	}
	if _, err := uc.directory.FindUser(ctx, sc.UserID); err != nil {
		return request.View{}, err
	}

	req, err := uc.repo.CreateRequest(ctx, repo.CreateRequestOptions{
		Description: input.Description,
		RequestorID: sc.UserID,
		Created:     uc.now(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "request.usecase.Create CreateRequest: %v", err)
		return request.View{}, err
	}
	return request.View{Request: req, Items: []model.Item{}}, nil
}
