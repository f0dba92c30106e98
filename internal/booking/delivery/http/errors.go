package http

import (
	"errors"

	pkgErrors "shareit/pkg/errors"
)

var (
	errInvalidBookingID = errors.New("bookingId must be a positive integer")
	errInvalidApproved  = errors.New("approved must be true or false")
)

// mapError keeps domain errors and hides storage failures behind a 500.
func (h *handler) mapError(err error) error {
	if _, ok := pkgErrors.KindOf(err); ok {
		return err
	}
	return pkgErrors.ErrInternalServerError
}
