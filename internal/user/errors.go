package user

import pkgErrors "shareit/pkg/errors"

var (
	ErrUserNotFound   = pkgErrors.New(pkgErrors.KindNotFound, "user not found")
	ErrMissingName    = pkgErrors.New(pkgErrors.KindMissingField, "name is required")
	ErrMissingEmail   = pkgErrors.New(pkgErrors.KindMissingField, "email is required")
	ErrInvalidEmail   = pkgErrors.New(pkgErrors.KindValidation, "email is invalid")
	ErrBlankName      = pkgErrors.New(pkgErrors.KindValidation, "name must not be blank")
	ErrDuplicateEmail = pkgErrors.New(pkgErrors.KindConflict, "email already registered")
)
