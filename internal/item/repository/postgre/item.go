package postgre

import (
	"context"
	"database/sql"
	"fmt"

	repo "shareit/internal/item/repository"
	"shareit/internal/model"
)

func (r *implRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (model.Item, error) {
	const query = `
		INSERT INTO items (name, description, is_available, owner_id, request_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, description, is_available, owner_id, request_id`

	it, err := scanItem(r.db.QueryRowContext(ctx, query,
		opt.Name, opt.Description, opt.Available, opt.OwnerID, nullInt64(opt.RequestID)))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateItem"), err)
		return model.Item{}, repo.ErrFailedToInsert
	}
	return it, nil
}

func (r *implRepository) GetOneItem(ctx context.Context, id int64) (model.Item, error) {
	it, err := scanItem(r.db.QueryRowContext(ctx, selectItem+` WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return model.Item{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneItem"), err)
		return model.Item{}, repo.ErrFailedToGet
	}
	return it, nil
}

func (r *implRepository) UpdateItem(ctx context.Context, opt repo.UpdateItemOptions) (model.Item, error) {
	const query = `
		UPDATE items
		SET name = $1, description = $2, is_available = $3
		WHERE id = $4
		RETURNING id, name, description, is_available, owner_id, request_id`

	it, err := scanItem(r.db.QueryRowContext(ctx, query, opt.Name, opt.Description, opt.Available, opt.ID))
	if err == sql.ErrNoRows {
		return model.Item{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateItem"), err)
		return model.Item{}, repo.ErrFailedToUpdate
	}
	return it, nil
}

func (r *implRepository) ListItems(ctx context.Context, opt repo.ListItemsOptions) ([]model.Item, error) {
	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf("%s %s", selectItem, mods)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListItems"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	items := []model.Item{}
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListItems"), err)
			return nil, repo.ErrFailedToList
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListItems"), err)
		return nil, repo.ErrFailedToList
	}
	return items, nil
}

func (r *implRepository) ListItemIDsByOwner(ctx context.Context, ownerID int64) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id FROM items WHERE owner_id = $1 ORDER BY id`, ownerID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListItemIDsByOwner"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, repo.ErrFailedToList
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListItemIDsByOwner"), err)
		return nil, repo.ErrFailedToList
	}
	return ids, nil
}

func (r *implRepository) RequestExists(ctx context.Context, requestID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM requests WHERE id = $1)`, requestID).Scan(&exists)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("RequestExists"), err)
		return false, repo.ErrFailedToGet
	}
	return exists, nil
}
