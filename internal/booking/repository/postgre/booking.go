package postgre

import (
	"context"
	"database/sql"
	"fmt"

	"shareit/internal/booking"
	repo "shareit/internal/booking/repository"
)

func (r *implRepository) CreateBooking(ctx context.Context, opt repo.CreateBookingOptions) (booking.Booking, error) {
	const query = `
		INSERT INTO bookings (start_date, end_date, item_id, booker_id, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id int64
	err := r.db.QueryRowContext(ctx, query, opt.Start, opt.End, opt.Item.ID, opt.Booker.ID, string(opt.Status)).Scan(&id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateBooking"), err)
		return booking.Booking{}, repo.ErrFailedToInsert
	}

	return booking.Booking{
		ID:     id,
		Start:  opt.Start,
		End:    opt.End,
		Item:   opt.Item,
		Booker: opt.Booker,
		Status: opt.Status,
	}, nil
}

func (r *implRepository) GetOneBooking(ctx context.Context, id int64) (booking.Booking, error) {
	query := selectBooking + ` WHERE b.id = $1`

	b, err := scanBooking(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return booking.Booking{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneBooking"), err)
		return booking.Booking{}, repo.ErrFailedToGet
	}
	return b, nil
}

// UpdateBookingStatus is a compare-and-set on status so a decision is applied once.
func (r *implRepository) UpdateBookingStatus(ctx context.Context, opt repo.UpdateBookingStatusOptions) (bool, error) {
	const query = `UPDATE bookings SET status = $1 WHERE id = $2 AND status = $3`

	res, err := r.db.ExecContext(ctx, query, string(opt.To), opt.ID, string(opt.From))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateBookingStatus"), err)
		return false, repo.ErrFailedToUpdate
	}
	n, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("UpdateBookingStatus"), err)
		return false, repo.ErrFailedToUpdate
	}
	return n > 0, nil
}

func (r *implRepository) ListBookings(ctx context.Context, opt repo.ListBookingsOptions) ([]booking.Booking, error) {
	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf("%s %s", selectBooking, mods)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListBookings"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	bookings := []booking.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListBookings"), err)
			return nil, repo.ErrFailedToList
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListBookings"), err)
		return nil, repo.ErrFailedToList
	}
	return bookings, nil
}
