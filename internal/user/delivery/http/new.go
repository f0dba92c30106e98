package http

import (
	"shareit/internal/user"
	"shareit/pkg/log"
)

type handler struct {
	l  log.Logger
	uc user.UseCase
}

// New creates the HTTP handler for the user directory.
func New(l log.Logger, uc user.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
