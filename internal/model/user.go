package model

// User is a registered participant. Email is unique across users.
type User struct {
	ID    int64
	Name  string
	Email string
}
