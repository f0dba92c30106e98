package usecase

import (
	"context"
	"strings"

	"shareit/internal/item"
	repo "shareit/internal/item/repository"
	"shareit/internal/model"
)

// Create lists a new item for the caller, optionally answering an item request.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input item.CreateInput) (model.Item, error) {
	if _, err := uc.directory.FindUser(ctx, sc.UserID); err != nil {
		return model.Item{}, err
	}

	switch {
	case input.Name == nil:
		return model.Item{}, item.ErrMissingField.WithDetail("name is required")
	case input.Description == nil:
		return model.Item{}, item.ErrMissingField.WithDetail("description is required")
	case input.Available == nil:
		return model.Item{}, item.ErrMissingField.WithDetail("available is required")
	}
	if err := uc.validateText("name", *input.Name); err != nil {
		return model.Item{}, err
	}
	if err := uc.validateText("description", *input.Description); err != nil {
		return model.Item{}, err
	}

	if input.RequestID != nil {
		exists, err := uc.repo.RequestExists(ctx, *input.RequestID)
		if err != nil {
			uc.l.Errorf(ctx, "item.usecase.Create RequestExists: %v", err)
			return model.Item{}, err
		}
		if !exists {
			return model.Item{}, item.ErrRequestNotFound.WithDetailf("item request %d not found", *input.RequestID)
		}
	}

	it, err := uc.repo.CreateItem(ctx, repo.CreateItemOptions{
		Name:        *input.Name,
		Description: *input.Description,
		Available:   *input.Available,
		OwnerID:     sc.UserID,
		RequestID:   input.RequestID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "item.usecase.Create CreateItem: %v", err)
		return model.Item{}, err
	}
	return it, nil
}

// Update patches an item. Only the owner may change it.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input item.UpdateInput) (model.Item, error) {
	existing, err := uc.FindItem(ctx, input.ID)
	if err != nil {
		return model.Item{}, err
	}
	if existing.OwnerID != sc.UserID {
		return model.Item{}, item.ErrNotOwner.WithDetailf("user %d does not own item %d", sc.UserID, input.ID)
	}

	opt := repo.UpdateItemOptions{
		ID:          existing.ID,
		Name:        existing.Name,
		Description: existing.Description,
		Available:   existing.Available,
	}
	if input.Name != nil {
		if err := uc.validateText("name", *input.Name); err != nil {
			return model.Item{}, err
		}
		opt.Name = *input.Name
	}
	if input.Description != nil {
		if err := uc.validateText("description", *input.Description); err != nil {
			return model.Item{}, err
		}
		opt.Description = *input.Description
	}
	if input.Available != nil {
		opt.Available = *input.Available
	}

	it, err := uc.repo.UpdateItem(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "item.usecase.Update UpdateItem: %v", err)
		return model.Item{}, err
	}
	if it.ID == 0 {
		return model.Item{}, item.ErrItemNotFound.WithDetailf("item %d not found", input.ID)
	}
	return it, nil
}

func (uc *implUseCase) validateText(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return item.ErrBlankField.WithDetailf("%s must not be blank", field)
	}
	return nil
}
