package http

import (
	"errors"

	pkgErrors "shareit/pkg/errors"
)

var errInvalidItemID = errors.New("itemId must be a positive integer")

func (h *handler) mapError(err error) error {
	if _, ok := pkgErrors.KindOf(err); ok {
		return err
	}
	return pkgErrors.ErrInternalServerError
}
