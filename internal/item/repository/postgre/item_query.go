package postgre

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"

	repo "shareit/internal/item/repository"
	"shareit/internal/model"
)

const selectItem = `SELECT id, name, description, is_available, owner_id, request_id FROM items`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(s rowScanner) (model.Item, error) {
	var (
		it        model.Item
		requestID sql.NullInt64
	)
	if err := s.Scan(&it.ID, &it.Name, &it.Description, &it.Available, &it.OwnerID, &requestID); err != nil {
		return model.Item{}, err
	}
	if requestID.Valid {
		id := requestID.Int64
		it.RequestID = &id
	}
	return it, nil
}

func nullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

// buildListQuery builds WHERE + ORDER + LIMIT + OFFSET for ListItems.
// Text matches name or description case-insensitively.
func (r *implRepository) buildListQuery(opt repo.ListItemsOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.OwnerID != 0 {
		conditions = append(conditions, fmt.Sprintf("owner_id = $%d", idx))
		args = append(args, opt.OwnerID)
		idx++
	}
	if opt.RequestIDs != nil {
		conditions = append(conditions, fmt.Sprintf("request_id = ANY($%d)", idx))
		args = append(args, pq.Array(opt.RequestIDs))
		idx++
	}
	if opt.Text != "" {
		conditions = append(conditions, fmt.Sprintf("(name ILIKE $%d OR description ILIKE $%d)", idx, idx))
		args = append(args, "%"+escapeLike(opt.Text)+"%")
		idx++
	}
	if opt.AvailableOnly {
		conditions = append(conditions, "is_available = TRUE")
	}

	var parts []string
	if len(conditions) > 0 {
		parts = append(parts, "WHERE "+strings.Join(conditions, " AND "))
	}
	parts = append(parts, "ORDER BY id")

	if opt.Page != nil {
		parts = append(parts, fmt.Sprintf("LIMIT $%d OFFSET $%d", idx, idx+1))
		args = append(args, opt.Page.Limit, opt.Page.Offset)
	}

	return strings.Join(parts, " "), args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
