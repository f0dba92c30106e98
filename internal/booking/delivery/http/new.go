package http

import (
	"shareit/internal/booking"
	"shareit/pkg/datemath"
	"shareit/pkg/log"
)

type handler struct {
	l     log.Logger
	uc    booking.UseCase
	clock *datemath.Clock
}

// New creates the HTTP handler for bookings. clock parses and renders wire timestamps.
func New(l log.Logger, uc booking.UseCase, clock *datemath.Clock) *handler {
	return &handler{
		l:     l,
		uc:    uc,
		clock: clock,
	}
}
