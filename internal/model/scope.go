package model

// Scope is the authenticated actor of a request.
type Scope struct {
	UserID int64
}
