package usecase

import (
	"context"
	"strings"

	"shareit/internal/item"
	repo "shareit/internal/item/repository"
	"shareit/internal/model"
)

// AddComment stores feedback from a user whose booking of the item has ended.
func (uc *implUseCase) AddComment(ctx context.Context, sc model.Scope, input item.CommentInput) (model.Comment, error) {
	if strings.TrimSpace(input.Text) == "" {
		return model.Comment{}, item.ErrBlankComment
	}
	author, err := uc.directory.FindUser(ctx, sc.UserID)
	if err != nil {
		return model.Comment{}, err
	}
	if _, err := uc.FindItem(ctx, input.ItemID); err != nil {
		return model.Comment{}, err
	}

	now := uc.now()
	finished, err := uc.bookings.HasFinishedBooking(ctx, author.ID, input.ItemID, now)
	if err != nil {
		uc.l.Errorf(ctx, "item.usecase.AddComment HasFinishedBooking: %v", err)
		return model.Comment{}, err
	}
	if !finished {
		return model.Comment{}, item.ErrNotBooker.WithDetailf("user %d has no finished booking of item %d", author.ID, input.ItemID)
	}

	c, err := uc.repo.CreateComment(ctx, repo.CreateCommentOptions{
		Text:     input.Text,
		ItemID:   input.ItemID,
		AuthorID: author.ID,
		Created:  now,
	})
	if err != nil {
		uc.l.Errorf(ctx, "item.usecase.AddComment CreateComment: %v", err)
		return model.Comment{}, err
	}
	c.AuthorName = author.Name
	return c, nil
}
