package postgre

import (
	"context"

	"github.com/lib/pq"

	repo "shareit/internal/item/repository"
	"shareit/internal/model"
)

func (r *implRepository) CreateComment(ctx context.Context, opt repo.CreateCommentOptions) (model.Comment, error) {
	const query = `
		INSERT INTO comments (text, item_id, author_id, created)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id int64
	if err := r.db.QueryRowContext(ctx, query, opt.Text, opt.ItemID, opt.AuthorID, opt.Created).Scan(&id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateComment"), err)
		return model.Comment{}, repo.ErrFailedToInsert
	}
	return model.Comment{
		ID:       id,
		Text:     opt.Text,
		ItemID:   opt.ItemID,
		AuthorID: opt.AuthorID,
		Created:  opt.Created,
	}, nil
}

// ListComments returns comments of the given items, oldest first.
func (r *implRepository) ListComments(ctx context.Context, itemIDs []int64) ([]model.Comment, error) {
	const query = `
		SELECT c.id, c.text, c.item_id, c.author_id, u.name, c.created
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.item_id = ANY($1)
		ORDER BY c.created, c.id`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(itemIDs))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListComments"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	comments := []model.Comment{}
	for rows.Next() {
		var c model.Comment
		if err := rows.Scan(&c.ID, &c.Text, &c.ItemID, &c.AuthorID, &c.AuthorName, &c.Created); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListComments"), err)
			return nil, repo.ErrFailedToList
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListComments"), err)
		return nil, repo.ErrFailedToList
	}
	return comments, nil
}
