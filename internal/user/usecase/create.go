package usecase

import (
	"context"

	"shareit/internal/model"
	"shareit/internal/user"
	repo "shareit/internal/user/repository"
)

// Create registers a user. Email must be unique.
func (uc *implUseCase) Create(ctx context.Context, input user.CreateInput) (model.User, error) {
	if input.Name == "" {
		return model.User{}, user.ErrMissingName
	}
	if input.Email == "" {
		return model.User{}, user.ErrMissingEmail
	}
	if err := uc.validateName(input.Name); err != nil {
		return model.User{}, err
	}
	if err := uc.validateEmail(input.Email); err != nil {
		return model.User{}, err
	}

	existing, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Email: input.Email})
	if err != nil {
		uc.l.Errorf(ctx, "user.usecase.Create GetOneUser: %v", err)
		return model.User{}, err
	}
	if existing.ID != 0 {
		return model.User{}, user.ErrDuplicateEmail
	}

	u, err := uc.repo.CreateUser(ctx, repo.CreateUserOptions{Name: input.Name, Email: input.Email})
	if err == repo.ErrDuplicateEmail {
		return model.User{}, user.ErrDuplicateEmail
	}
	if err != nil {
		uc.l.Errorf(ctx, "user.usecase.Create CreateUser: %v", err)
		return model.User{}, err
	}
	return u, nil
}
