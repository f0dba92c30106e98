package postgre

import (
	"fmt"
	"strings"

	repo "shareit/internal/request/repository"
)

const selectRequest = `SELECT id, description, requestor_id, created FROM requests`

// buildListQuery returns the WHERE/ORDER/LIMIT tail and its args.
func (r *implRepository) buildListQuery(opt repo.ListRequestsOptions) (string, []any) {
	var (
		conds []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if opt.RequestorID != 0 {
		conds = append(conds, "requestor_id = "+arg(opt.RequestorID))
	}
	if opt.ExcludeRequestorID != 0 {
		conds = append(conds, "requestor_id <> "+arg(opt.ExcludeRequestorID))
	}

	var b strings.Builder
	if len(conds) > 0 {
		b.WriteString("WHERE " + strings.Join(conds, " AND ") + " ")
	}
	b.WriteString("ORDER BY created DESC, id DESC")
	if opt.Page != nil {
		b.WriteString(" LIMIT " + arg(opt.Page.Limit))
		b.WriteString(" OFFSET " + arg(opt.Page.Offset))
	}
	return b.String(), args
}
