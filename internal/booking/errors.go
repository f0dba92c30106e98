package booking

import (
	pkgErrors "shareit/pkg/errors"
	"shareit/pkg/paginator"
)

var (
	ErrMissingField    = pkgErrors.New(pkgErrors.KindMissingField, "required field is missing")
	ErrInvalidRange    = pkgErrors.New(pkgErrors.KindInvalidRange, "invalid booking period")
	ErrItemUnavailable = pkgErrors.New(pkgErrors.KindItemUnavailable, "item is not available")
	ErrForbidden       = pkgErrors.New(pkgErrors.KindForbidden, "access denied")
	ErrInvalidState    = pkgErrors.New(pkgErrors.KindInvalidState, "booking already processed")
	ErrInvalidPage     = paginator.ErrInvalidPage
	ErrUnknownState    = pkgErrors.New(pkgErrors.KindUnknownState, "unknown state")
	ErrNoItems         = pkgErrors.New(pkgErrors.KindNoItems, "user owns no items")
	ErrBookingNotFound = pkgErrors.New(pkgErrors.KindNotFound, "booking not found")
)
