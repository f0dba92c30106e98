package postgre

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"shareit/internal/booking"
	repo "shareit/internal/booking/repository"
)

const selectBooking = `
	SELECT b.id, b.start_date, b.end_date, b.status,
	       i.id, i.name, i.description, i.is_available, i.owner_id, i.request_id,
	       u.id, u.name, u.email
	FROM bookings b
	JOIN items i ON i.id = b.item_id
	JOIN users u ON u.id = b.booker_id`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(s rowScanner) (booking.Booking, error) {
	var (
		b         booking.Booking
		status    string
		requestID sql.NullInt64
	)
	err := s.Scan(
		&b.ID, &b.Start, &b.End, &status,
		&b.Item.ID, &b.Item.Name, &b.Item.Description, &b.Item.Available, &b.Item.OwnerID, &requestID,
		&b.Booker.ID, &b.Booker.Name, &b.Booker.Email,
	)
	if err != nil {
		return booking.Booking{}, err
	}
	b.Status = booking.Status(status)
	if requestID.Valid {
		id := requestID.Int64
		b.Item.RequestID = &id
	}
	return b, nil
}

// buildListQuery builds WHERE + ORDER + LIMIT + OFFSET for ListBookings.
// The owner view passes the owned item ids as one array parameter.
func (r *implRepository) buildListQuery(opt repo.ListBookingsOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.BookerID != 0 {
		conditions = append(conditions, fmt.Sprintf("b.booker_id = $%d", idx))
		args = append(args, opt.BookerID)
		idx++
	}
	if opt.ItemIDs != nil {
		conditions = append(conditions, fmt.Sprintf("b.item_id = ANY($%d)", idx))
		args = append(args, pq.Array(opt.ItemIDs))
		idx++
	}

	switch opt.State {
	case booking.StateCurrent:
		conditions = append(conditions, fmt.Sprintf("b.start_date < $%d AND b.end_date > $%d", idx, idx))
		args = append(args, opt.Now)
		idx++
	case booking.StatePast:
		conditions = append(conditions, fmt.Sprintf("b.end_date < $%d", idx))
		args = append(args, opt.Now)
		idx++
	case booking.StateFuture:
		conditions = append(conditions, fmt.Sprintf("b.start_date > $%d", idx))
		args = append(args, opt.Now)
		idx++
	case booking.StateWaiting:
		conditions = append(conditions, fmt.Sprintf("b.status = $%d", idx))
		args = append(args, string(booking.StatusWaiting))
		idx++
	case booking.StateRejected:
		conditions = append(conditions, fmt.Sprintf("b.status = $%d", idx))
		args = append(args, string(booking.StatusRejected))
		idx++
	}

	var parts []string
	if len(conditions) > 0 {
		parts = append(parts, "WHERE "+strings.Join(conditions, " AND "))
	}
	parts = append(parts, "ORDER BY b.end_date DESC, b.id DESC")

	if opt.Page != nil {
		parts = append(parts, fmt.Sprintf("LIMIT $%d OFFSET $%d", idx, idx+1))
		args = append(args, opt.Page.Limit, opt.Page.Offset)
	}

	return strings.Join(parts, " "), args
}
