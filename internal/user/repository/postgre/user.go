package postgre

import (
	"context"
	"database/sql"
	"fmt"

	"shareit/internal/model"
	repo "shareit/internal/user/repository"
)

func (r *implRepository) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (model.User, error) {
	const query = `
		INSERT INTO users (name, email)
		VALUES ($1, $2)
		RETURNING id, name, email`

	var u model.User
	err := r.db.QueryRowContext(ctx, query, opt.Name, opt.Email).Scan(&u.ID, &u.Name, &u.Email)
	if err != nil {
		if isUniqueViolation(err) {
			return model.User{}, repo.ErrDuplicateEmail
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateUser"), err)
		return model.User{}, repo.ErrFailedToInsert
	}
	return u, nil
}

// GetOneUser returns a zero-value User (ID == 0) when nothing matches.
func (r *implRepository) GetOneUser(ctx context.Context, opt repo.GetOneUserOptions) (model.User, error) {
	mods, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf("SELECT id, name, email FROM users WHERE %s LIMIT 1", mods)

	var u model.User
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&u.ID, &u.Name, &u.Email)
	if err == sql.ErrNoRows {
		return model.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneUser"), err)
		return model.User{}, repo.ErrFailedToGet
	}
	return u, nil
}

func (r *implRepository) ListUsers(ctx context.Context) ([]model.User, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, email FROM users ORDER BY id`)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListUsers"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email); err != nil {
			return nil, repo.ErrFailedToList
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListUsers"), err)
		return nil, repo.ErrFailedToList
	}
	return users, nil
}

// UpdateUser returns a zero-value User when the row is gone.
func (r *implRepository) UpdateUser(ctx context.Context, opt repo.UpdateUserOptions) (model.User, error) {
	const query = `
		UPDATE users
		SET name = $1, email = $2
		WHERE id = $3
		RETURNING id, name, email`

	var u model.User
	err := r.db.QueryRowContext(ctx, query, opt.Name, opt.Email, opt.ID).Scan(&u.ID, &u.Name, &u.Email)
	if err == sql.ErrNoRows {
		return model.User{}, nil
	}
	if err != nil {
		if isUniqueViolation(err) {
			return model.User{}, repo.ErrDuplicateEmail
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateUser"), err)
		return model.User{}, repo.ErrFailedToUpdate
	}
	return u, nil
}

func (r *implRepository) DeleteUser(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteUser"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
