package usecase

import (
	"context"

	"shareit/internal/model"
	"shareit/internal/user"
	repo "shareit/internal/user/repository"
)

func (uc *implUseCase) FindUser(ctx context.Context, id int64) (model.User, error) {
	u, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "user.usecase.FindUser GetOneUser: %v", err)
		return model.User{}, err
	}
	if u.ID == 0 {
		return model.User{}, user.ErrUserNotFound.WithDetailf("user %d not found", id)
	}
	return u, nil
}

func (uc *implUseCase) Detail(ctx context.Context, id int64) (model.User, error) {
	return uc.FindUser(ctx, id)
}

func (uc *implUseCase) Delete(ctx context.Context, id int64) error {
	if _, err := uc.FindUser(ctx, id); err != nil {
		return err
	}
	if err := uc.repo.DeleteUser(ctx, id); err != nil {
		uc.l.Errorf(ctx, "user.usecase.Delete DeleteUser: %v", err)
		return err
	}
	return nil
}

func (uc *implUseCase) List(ctx context.Context) (user.ListOutput, error) {
	users, err := uc.repo.ListUsers(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "user.usecase.List ListUsers: %v", err)
		return user.ListOutput{}, err
	}
	return user.ListOutput{Users: users}, nil
}
