package postgre

import (
	"context"
	"database/sql"
	"time"

	"shareit/internal/booking"
	repo "shareit/internal/booking/repository"
	"shareit/internal/model"
)

// LastBooking returns the latest approved booking that has started, or nil.
func (r *implRepository) LastBooking(ctx context.Context, itemID int64, now time.Time) (*model.BookingShort, error) {
	const query = `
		SELECT id, booker_id, start_date, end_date
		FROM bookings
		WHERE item_id = $1 AND status = $2 AND start_date < $3
		ORDER BY start_date DESC
		LIMIT 1`
	return r.getShort(ctx, "LastBooking", query, itemID, string(booking.StatusApproved), now)
}

// NextBooking returns the earliest approved booking still to start, or nil.
func (r *implRepository) NextBooking(ctx context.Context, itemID int64, now time.Time) (*model.BookingShort, error) {
	const query = `
		SELECT id, booker_id, start_date, end_date
		FROM bookings
		WHERE item_id = $1 AND status = $2 AND start_date > $3
		ORDER BY start_date ASC
		LIMIT 1`
	return r.getShort(ctx, "NextBooking", query, itemID, string(booking.StatusApproved), now)
}

// HasFinishedBooking reports whether bookerID has a booking of itemID that ended before now.
func (r *implRepository) HasFinishedBooking(ctx context.Context, bookerID, itemID int64, now time.Time) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE booker_id = $1 AND item_id = $2 AND end_date < $3
		)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, bookerID, itemID, now).Scan(&exists); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("HasFinishedBooking"), err)
		return false, repo.ErrFailedToGet
	}
	return exists, nil
}

func (r *implRepository) getShort(ctx context.Context, method, query string, args ...any) (*model.BookingShort, error) {
	var s model.BookingShort
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&s.ID, &s.BookerID, &s.Start, &s.End)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn(method), err)
		return nil, repo.ErrFailedToGet
	}
	return &s, nil
}
