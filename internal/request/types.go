package request

import "shareit/internal/model"

// View is an item request together with the items listed against it.
type View struct {
	Request model.ItemRequest
	Items   []model.Item
}

// --- UseCase Inputs ---

type CreateInput struct {
	Description string
}

type ListInput struct {
	From *int
	Size *int
}
