package postgre

import (
	"context"
	"database/sql"
	"errors"

	"shareit/internal/model"
	repo "shareit/internal/request/repository"
)

func (r *implRepository) CreateRequest(ctx context.Context, opt repo.CreateRequestOptions) (model.ItemRequest, error) {
	const query = `
		INSERT INTO requests (description, requestor_id, created)
		VALUES ($1, $2, $3)
		RETURNING id`

	var id int64
	if err := r.db.QueryRowContext(ctx, query, opt.Description, opt.RequestorID, opt.Created).Scan(&id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateRequest"), err)
		return model.ItemRequest{}, repo.ErrFailedToInsert
	}
	return model.ItemRequest{
		ID:          id,
		Description: opt.Description,
		RequestorID: opt.RequestorID,
		Created:     opt.Created,
	}, nil
}

func (r *implRepository) GetOneRequest(ctx context.Context, id int64) (model.ItemRequest, error) {
	var req model.ItemRequest
	err := r.db.QueryRowContext(ctx, selectRequest+" WHERE id = $1", id).
		Scan(&req.ID, &req.Description, &req.RequestorID, &req.Created)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.ItemRequest{}, nil
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneRequest"), err)
		return model.ItemRequest{}, repo.ErrFailedToGet
	}
	return req, nil
}

func (r *implRepository) ListRequests(ctx context.Context, opt repo.ListRequestsOptions) ([]model.ItemRequest, error) {
	tail, args := r.buildListQuery(opt)
	rows, err := r.db.QueryContext(ctx, selectRequest+" "+tail, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListRequests"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	requests := []model.ItemRequest{}
	for rows.Next() {
		var req model.ItemRequest
		if err := rows.Scan(&req.ID, &req.Description, &req.RequestorID, &req.Created); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListRequests"), err)
			return nil, repo.ErrFailedToList
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListRequests"), err)
		return nil, repo.ErrFailedToList
	}
	return requests, nil
}
