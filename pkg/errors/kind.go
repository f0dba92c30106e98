package errors

// Kind classifies a domain failure so the transport layer can map it to a status.
type Kind string

const (
	KindMissingField    Kind = "MISSING_FIELD"
	KindInvalidRange    Kind = "INVALID_RANGE"
	KindInvalidState    Kind = "INVALID_STATE"
	KindInvalidPage     Kind = "INVALID_PAGE"
	KindUnknownState    Kind = "UNKNOWN_STATE"
	KindItemUnavailable Kind = "ITEM_UNAVAILABLE"
	KindNotFound        Kind = "NOT_FOUND"
	KindForbidden       Kind = "FORBIDDEN"
	KindNoItems         Kind = "NO_ITEMS"
	KindValidation      Kind = "VALIDATION"
	KindConflict        Kind = "CONFLICT"
)
