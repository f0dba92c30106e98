package item

import pkgErrors "shareit/pkg/errors"

var (
	ErrItemNotFound    = pkgErrors.New(pkgErrors.KindNotFound, "item not found")
	ErrRequestNotFound = pkgErrors.New(pkgErrors.KindNotFound, "item request not found")
	ErrMissingField    = pkgErrors.New(pkgErrors.KindMissingField, "required field is missing")
	ErrBlankField      = pkgErrors.New(pkgErrors.KindValidation, "field must not be blank")
	ErrNotOwner        = pkgErrors.New(pkgErrors.KindForbidden, "only the owner can change an item")
	ErrBlankComment    = pkgErrors.New(pkgErrors.KindValidation, "comment text must not be blank")
	ErrNotBooker       = pkgErrors.New(pkgErrors.KindValidation, "only past bookers can comment")
)
