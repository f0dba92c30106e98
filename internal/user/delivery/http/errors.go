package http

import (
	pkgErrors "shareit/pkg/errors"
)

// mapError keeps domain errors and hides storage failures behind a 500.
func (h *handler) mapError(err error) error {
	if _, ok := pkgErrors.KindOf(err); ok {
		return err
	}
	return pkgErrors.ErrInternalServerError
}
