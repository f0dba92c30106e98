package repository

type CreateUserOptions struct {
	Name  string
	Email string
}

// GetOneUserOptions filters a single user. Non-zero fields are ANDed.
type GetOneUserOptions struct {
	ID    int64
	Email string
}

type UpdateUserOptions struct {
	ID    int64
	Name  string
	Email string
}
