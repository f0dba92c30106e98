package errors

import "net/http"

// HTTPError is an error that already knows its transport status.
type HTTPError struct {
	StatusCode int
	Message    string
}

// NewHTTPError creates an HTTPError.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

func (e *HTTPError) Error() string { return e.Message }

var (
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "internal server error")
	ErrUnauthorized        = NewHTTPError(http.StatusUnauthorized, "unauthorized")
)

// StatusFor maps a Kind to its HTTP status.
// Forbidden answers 404 so foreign bookings and items are indistinguishable from absent ones.
func StatusFor(kind Kind) int {
	switch kind {
	case KindMissingField, KindInvalidRange, KindInvalidState, KindInvalidPage,
		KindUnknownState, KindItemUnavailable, KindNoItems, KindValidation:
		return http.StatusBadRequest
	case KindNotFound, KindForbidden:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// ToHTTP converts any error into an HTTPError. Errors without a Kind become 500.
func ToHTTP(err error) *HTTPError {
	if err == nil {
		return nil
	}
	var he *HTTPError
	if As(err, &he) {
		return he
	}
	kind, ok := KindOf(err)
	if !ok {
		return ErrInternalServerError
	}
	return NewHTTPError(StatusFor(kind), err.Error())
}
