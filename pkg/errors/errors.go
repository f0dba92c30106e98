package errors

import (
	stderrors "errors"
	"fmt"
)

// DomainError carries a Kind and a human-readable detail.
// Two DomainErrors match under errors.Is when their kinds are equal.
type DomainError struct {
	Kind   Kind
	Detail string
}

// New returns a DomainError of the given kind.
func New(kind Kind, detail string) *DomainError {
	return &DomainError{Kind: kind, Detail: detail}
}

// Newf is New with a format string.
func Newf(kind Kind, format string, args ...any) *DomainError {
	return &DomainError{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

func (e *DomainError) Error() string {
	if e.Detail == "" {
		return string(e.Kind)
	}
	return e.Detail
}

// Is matches by kind only.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// WithDetail returns a copy of e with a new detail.
func (e *DomainError) WithDetail(detail string) *DomainError {
	return &DomainError{Kind: e.Kind, Detail: detail}
}

// WithDetailf is WithDetail with a format string.
func (e *DomainError) WithDetailf(format string, args ...any) *DomainError {
	return e.WithDetail(fmt.Sprintf(format, args...))
}

// KindOf returns the kind of the first DomainError in err's chain.
func KindOf(err error) (Kind, bool) {
	var de *DomainError
	if stderrors.As(err, &de) {
		return de.Kind, true
	}
	return "", false
}
