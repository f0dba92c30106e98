package http

import (
	"shareit/internal/request"
	"shareit/pkg/datemath"
	"shareit/pkg/log"
)

type handler struct {
	l     log.Logger
	uc    request.UseCase
	clock *datemath.Clock
}

// New creates the HTTP handler for item requests.
func New(l log.Logger, uc request.UseCase, clock *datemath.Clock) *handler {
	return &handler{
		l:     l,
		uc:    uc,
		clock: clock,
	}
}
