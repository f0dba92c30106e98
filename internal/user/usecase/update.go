package usecase

import (
	"context"

	"shareit/internal/model"
	"shareit/internal/user"
	repo "shareit/internal/user/repository"
)

// Update applies a partial update. Nil fields keep their stored value.
func (uc *implUseCase) Update(ctx context.Context, input user.UpdateInput) (model.User, error) {
	existing, err := uc.FindUser(ctx, input.ID)
	if err != nil {
		return model.User{}, err
	}

	name, email := existing.Name, existing.Email
	if input.Name != nil {
		if err := uc.validateName(*input.Name); err != nil {
			return model.User{}, err
		}
		name = *input.Name
	}
	if input.Email != nil && *input.Email != existing.Email {
		if err := uc.validateEmail(*input.Email); err != nil {
			return model.User{}, err
		}
		other, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Email: *input.Email})
		if err != nil {
			uc.l.Errorf(ctx, "user.usecase.Update GetOneUser: %v", err)
			return model.User{}, err
		}
		if other.ID != 0 && other.ID != existing.ID {
			return model.User{}, user.ErrDuplicateEmail
		}
		email = *input.Email
	}

	u, err := uc.repo.UpdateUser(ctx, repo.UpdateUserOptions{ID: existing.ID, Name: name, Email: email})
	if err == repo.ErrDuplicateEmail {
		return model.User{}, user.ErrDuplicateEmail
	}
	if err != nil {
		uc.l.Errorf(ctx, "user.usecase.Update UpdateUser: %v", err)
		return model.User{}, err
	}
	if u.ID == 0 {
		return model.User{}, user.ErrUserNotFound
	}
	return u, nil
}
