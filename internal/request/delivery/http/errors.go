package http

import (
	"errors"

	pkgErrors "shareit/pkg/errors"
)

var errInvalidRequestID = errors.New("requestId must be a positive integer")

func (h *handler) mapError(err error) error {
	if _, ok := pkgErrors.KindOf(err); ok {
		return err
	}
	return pkgErrors.ErrInternalServerError
}
