package request

import (
	pkgErrors "shareit/pkg/errors"
	"shareit/pkg/paginator"
)

var (
	ErrRequestNotFound  = pkgErrors.New(pkgErrors.KindNotFound, "item request not found")
	ErrBlankDescription = pkgErrors.New(pkgErrors.KindValidation, "description must not be blank")
	ErrInvalidPage      = paginator.ErrInvalidPage
)
