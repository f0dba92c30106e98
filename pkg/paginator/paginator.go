package paginator

import (
	pkgErrors "shareit/pkg/errors"
)

var ErrInvalidPage = pkgErrors.New(pkgErrors.KindInvalidPage, "invalid page window")

// Page is a resolved LIMIT/OFFSET window.
type Page struct {
	Offset int
	Limit  int
}

// New turns a from/size pair into a window aligned to whole pages:
// index = from / size, offset = index * size. Both nil means no window.
func New(from, size *int) (*Page, error) {
	if from == nil && size == nil {
		return nil, nil
	}
	if from == nil || size == nil {
		return nil, ErrInvalidPage.WithDetail("from and size must be given together")
	}
	if *from < 0 {
		return nil, ErrInvalidPage.WithDetailf("from must be >= 0, got %d", *from)
	}
	if *size <= 0 {
		return nil, ErrInvalidPage.WithDetailf("size must be > 0, got %d", *size)
	}
	index := *from / *size
	return &Page{Offset: index * *size, Limit: *size}, nil
}
