package http

import (
	"shareit/internal/item"
	"shareit/pkg/datemath"
	"shareit/pkg/log"
)

type handler struct {
	l     log.Logger
	uc    item.UseCase
	clock *datemath.Clock
}

// New creates the HTTP handler for the item catalog.
func New(l log.Logger, uc item.UseCase, clock *datemath.Clock) *handler {
	return &handler{
		l:     l,
		uc:    uc,
		clock: clock,
	}
}
