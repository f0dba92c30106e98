package repository

import (
	"context"

	"shareit/internal/model"
)

// Repository is the composed interface for the user data store.
type Repository interface {
	UserRepository
}

// UserRepository defines all data access methods for users.
type UserRepository interface {
	CreateUser(ctx context.Context, opt CreateUserOptions) (model.User, error)
	GetOneUser(ctx context.Context, opt GetOneUserOptions) (model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	UpdateUser(ctx context.Context, opt UpdateUserOptions) (model.User, error)
	DeleteUser(ctx context.Context, id int64) error
}
