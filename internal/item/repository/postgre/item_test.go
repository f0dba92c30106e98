package postgre

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	repo "shareit/internal/item/repository"
	"shareit/pkg/log"
	"shareit/pkg/paginator"
)

var itemColumns = []string{"id", "name", "description", "is_available", "owner_id", "request_id"}

func newMockRepo(t *testing.T) (*implRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return &implRepository{db: db, l: log.NewNop()}, mock
}

func TestBuildListQuery(t *testing.T) {
	r := &implRepository{}

	tests := []struct {
		name     string
		opt      repo.ListItemsOptions
		wantSQL  string
		wantArgs []any
	}{
		{
			name:     "owner",
			opt:      repo.ListItemsOptions{OwnerID: 3},
			wantSQL:  "WHERE owner_id = $1 ORDER BY id",
			wantArgs: []any{int64(3)},
		},
		{
			name:     "search available paged",
			opt:      repo.ListItemsOptions{Text: "DrIlL", AvailableOnly: true, Page: &paginator.Page{Offset: 10, Limit: 5}},
			wantSQL:  "WHERE (name ILIKE $1 OR description ILIKE $1) AND is_available = TRUE ORDER BY id LIMIT $2 OFFSET $3",
			wantArgs: []any{"%DrIlL%", 5, 10},
		},
		{
			name:     "wildcards are literal",
			opt:      repo.ListItemsOptions{Text: "50%_off"},
			wantSQL:  "WHERE (name ILIKE $1 OR description ILIKE $1) ORDER BY id",
			wantArgs: []any{`%50\%\_off%`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args := r.buildListQuery(tt.opt)
			if sql != tt.wantSQL {
				t.Errorf("unexpected SQL:\n got %s\nwant %s", sql, tt.wantSQL)
			}
			if len(args) != len(tt.wantArgs) {
				t.Fatalf("expected %d args, got %d", len(tt.wantArgs), len(args))
			}
			for i := range args {
				if args[i] != tt.wantArgs[i] {
					t.Errorf("arg %d: expected %v, got %v", i, tt.wantArgs[i], args[i])
				}
			}
		})
	}
}

func TestCreateAndGetItem(t *testing.T) {
	ctx := context.Background()
	r, mock := newMockRepo(t)
	reqID := int64(4)

	mock.ExpectQuery("INSERT INTO items").
		WithArgs("Drill", "Cordless", true, int64(1), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(itemColumns).AddRow(10, "Drill", "Cordless", true, 1, 4))
	mock.ExpectQuery(regexp.QuoteMeta("FROM items WHERE id = $1")).
		WithArgs(int64(11)).
		WillReturnRows(sqlmock.NewRows(itemColumns))

	it, err := r.CreateItem(ctx, repo.CreateItemOptions{Name: "Drill", Description: "Cordless", Available: true, OwnerID: 1, RequestID: &reqID})
	if err != nil {
		t.Fatalf("CreateItem error: %v", err)
	}
	if it.ID != 10 || it.RequestID == nil || *it.RequestID != 4 {
		t.Errorf("unexpected item %+v", it)
	}

	missing, err := r.GetOneItem(ctx, 11)
	if err != nil || missing.ID != 0 {
		t.Fatalf("expected zero item, got %+v, %v", missing, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestListItemIDsByOwner(t *testing.T) {
	r, mock := newMockRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM items WHERE owner_id = $1 ORDER BY id")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10).AddRow(12))

	ids, err := r.ListItemIDsByOwner(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ids) != 2 || ids[0] != 10 || ids[1] != 12 {
		t.Errorf("unexpected ids %v", ids)
	}
}

func TestComments(t *testing.T) {
	ctx := context.Background()
	r, mock := newMockRepo(t)
	created := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery("INSERT INTO comments").
		WithArgs("Great", int64(10), int64(2), created).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery("FROM comments c\\s+JOIN users u").
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "text", "item_id", "author_id", "name", "created"}).
			AddRow(1, "Great", 10, 2, "Bob", created))

	c, err := r.CreateComment(ctx, repo.CreateCommentOptions{Text: "Great", ItemID: 10, AuthorID: 2, Created: created})
	if err != nil || c.ID != 1 {
		t.Fatalf("CreateComment: %+v, %v", c, err)
	}

	comments, err := r.ListComments(ctx, []int64{10})
	if err != nil {
		t.Fatalf("ListComments error: %v", err)
	}
	if len(comments) != 1 || comments[0].AuthorName != "Bob" {
		t.Errorf("unexpected comments %+v", comments)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRequestExists(t *testing.T) {
	r, mock := newMockRepo(t)
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	ok, err := r.RequestExists(context.Background(), 4)
	if err != nil || ok {
		t.Fatalf("expected false, got %v, %v", ok, err)
	}
}
