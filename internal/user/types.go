package user

import "shareit/internal/model"

// --- UseCase Inputs ---

type CreateInput struct {
	Name  string
	Email string
}

// UpdateInput is a partial update. Nil fields keep their stored value.
type UpdateInput struct {
	ID    int64
	Name  *string
	Email *string
}

// --- UseCase Outputs ---

type ListOutput struct {
	Users []model.User
}
