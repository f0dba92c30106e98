package usecase

import (
	"shareit/internal/user"
	"shareit/internal/user/repository"
	"shareit/pkg/log"
)

type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a user UseCase implementation.
func New(repo repository.Repository, l log.Logger) user.UseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
