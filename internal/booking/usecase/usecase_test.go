package usecase

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"shareit/internal/booking"
	repo "shareit/internal/booking/repository"
	"shareit/internal/model"
	pkgErrors "shareit/pkg/errors"
	"shareit/pkg/paginator"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

var errUserNotFound = pkgErrors.New(pkgErrors.KindNotFound, "user not found")
var errItemNotFound = pkgErrors.New(pkgErrors.KindNotFound, "item not found")

// fakeRepo keeps bookings in memory and applies the same filters as the SQL store.
type fakeRepo struct {
	bookings map[int64]booking.Booking
	nextID   int64
	writes   int
	lastOpt  repo.ListBookingsOptions
}

func newFakeRepo(bookings ...booking.Booking) *fakeRepo {
	r := &fakeRepo{bookings: map[int64]booking.Booking{}}
	for _, b := range bookings {
		r.bookings[b.ID] = b
		if b.ID > r.nextID {
			r.nextID = b.ID
		}
	}
	return r
}

func (r *fakeRepo) CreateBooking(ctx context.Context, opt repo.CreateBookingOptions) (booking.Booking, error) {
	r.nextID++
	r.writes++
	b := booking.Booking{ID: r.nextID, Start: opt.Start, End: opt.End, Item: opt.Item, Booker: opt.Booker, Status: opt.Status}
	r.bookings[b.ID] = b
	return b, nil
}

func (r *fakeRepo) GetOneBooking(ctx context.Context, id int64) (booking.Booking, error) {
	return r.bookings[id], nil
}

func (r *fakeRepo) UpdateBookingStatus(ctx context.Context, opt repo.UpdateBookingStatusOptions) (bool, error) {
	b, ok := r.bookings[opt.ID]
	if !ok || b.Status != opt.From {
		return false, nil
	}
	r.writes++
	b.Status = opt.To
	r.bookings[opt.ID] = b
	return true, nil
}

func (r *fakeRepo) ListBookings(ctx context.Context, opt repo.ListBookingsOptions) ([]booking.Booking, error) {
	r.lastOpt = opt
	items := map[int64]bool{}
	for _, id := range opt.ItemIDs {
		items[id] = true
	}

	out := []booking.Booking{}
	for _, b := range r.bookings {
		if opt.BookerID != 0 && b.Booker.ID != opt.BookerID {
			continue
		}
		if opt.ItemIDs != nil && !items[b.Item.ID] {
			continue
		}
		if !opt.State.Matches(b, opt.Now) {
			continue
		}
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].End.Equal(out[j].End) {
			return out[i].ID > out[j].ID
		}
		return out[i].End.After(out[j].End)
	})

	out = applyPage(out, opt.Page)
	return out, nil
}

func (r *fakeRepo) LastBooking(ctx context.Context, itemID int64, now time.Time) (*model.BookingShort, error) {
	return nil, nil
}

func (r *fakeRepo) NextBooking(ctx context.Context, itemID int64, now time.Time) (*model.BookingShort, error) {
	return nil, nil
}

func (r *fakeRepo) HasFinishedBooking(ctx context.Context, bookerID, itemID int64, now time.Time) (bool, error) {
	return false, nil
}

type fakeDirectory map[int64]model.User

func (d fakeDirectory) FindUser(ctx context.Context, id int64) (model.User, error) {
	u, ok := d[id]
	if !ok {
		return model.User{}, errUserNotFound
	}
	return u, nil
}

type fakeCatalog map[int64]model.Item

func (c fakeCatalog) FindItem(ctx context.Context, id int64) (model.Item, error) {
	it, ok := c[id]
	if !ok {
		return model.Item{}, errItemNotFound
	}
	return it, nil
}

func (c fakeCatalog) IsAvailable(ctx context.Context, id int64) (bool, error) {
	it, err := c.FindItem(ctx, id)
	if err != nil {
		return false, err
	}
	return it.Available, nil
}

// withdrawnCatalog serves item details but reports every item as unavailable.
type withdrawnCatalog struct {
	fakeCatalog
	asked []int64
}

func (c *withdrawnCatalog) IsAvailable(ctx context.Context, id int64) (bool, error) {
	c.asked = append(c.asked, id)
	return false, nil
}

func (c fakeCatalog) FindItemIDsByOwner(ctx context.Context, ownerID int64) ([]int64, error) {
	ids := []int64{}
	for _, it := range c {
		if it.OwnerID == ownerID {
			ids = append(ids, it.ID)
		}
	}
	return ids, nil
}

var (
	now = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	owner    = model.User{ID: 1, Name: "Owner", Email: "owner@mail.com"}
	booker   = model.User{ID: 2, Name: "Booker", Email: "booker@mail.com"}
	stranger = model.User{ID: 3, Name: "Stranger", Email: "stranger@mail.com"}
	lonely   = model.User{ID: 4, Name: "Lonely", Email: "lonely@mail.com"}

	drill  = model.Item{ID: 10, Name: "Drill", Available: true, OwnerID: owner.ID}
	saw    = model.Item{ID: 11, Name: "Saw", Available: false, OwnerID: owner.ID}
	ladder = model.Item{ID: 12, Name: "Ladder", Available: true, OwnerID: stranger.ID}
)

func newTestUseCase(r *fakeRepo) *implUseCase {
	return &implUseCase{
		repo:      r,
		directory: fakeDirectory{owner.ID: owner, booker.ID: booker, stranger.ID: stranger, lonely.ID: lonely},
		catalog:   fakeCatalog{drill.ID: drill, saw.ID: saw, ladder.ID: ladder},
		now:       func() time.Time { return now },
		l:         &mockLogger{},
	}
}

func TestCreateAsksCatalogForAvailability(t *testing.T) {
	ctx := context.Background()
	r := newFakeRepo()
	uc := newTestUseCase(r)
	catalog := &withdrawnCatalog{fakeCatalog: fakeCatalog{drill.ID: drill}}
	uc.catalog = catalog

	_, err := uc.Create(ctx, model.Scope{UserID: booker.ID}, booking.CreateInput{ItemID: int64Ptr(drill.ID), Start: at(1), End: at(2)})
	if !errors.Is(err, booking.ErrItemUnavailable) {
		t.Fatalf("expected ErrItemUnavailable, got %v", err)
	}
	if len(catalog.asked) != 1 || catalog.asked[0] != drill.ID {
		t.Errorf("expected availability lookup for item %d, got %v", drill.ID, catalog.asked)
	}
	if len(r.bookings) != 0 {
		t.Errorf("unavailable item must not be booked")
	}
}

func int64Ptr(v int64) *int64        { return &v }
func intPtr(v int) *int              { return &v }
func timePtr(t time.Time) *time.Time { return &t }
func at(hours int) *time.Time        { return timePtr(now.Add(time.Duration(hours) * time.Hour)) }

func TestCreate(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		actor   int64
		input   booking.CreateInput
		wantErr error
	}{
		{"missing item", booker.ID, booking.CreateInput{Start: at(1), End: at(2)}, booking.ErrMissingField},
		{"missing start", booker.ID, booking.CreateInput{ItemID: int64Ptr(drill.ID), End: at(2)}, booking.ErrMissingField},
		{"missing end", booker.ID, booking.CreateInput{ItemID: int64Ptr(drill.ID), Start: at(1)}, booking.ErrMissingField},
		{"missing field wins over unknown user", 99, booking.CreateInput{Start: at(1), End: at(2)}, booking.ErrMissingField},
		{"unknown requester", 99, booking.CreateInput{ItemID: int64Ptr(drill.ID), Start: at(1), End: at(2)}, errUserNotFound},
		{"unknown item", booker.ID, booking.CreateInput{ItemID: int64Ptr(404), Start: at(1), End: at(2)}, errItemNotFound},
		{"start equals end", booker.ID, booking.CreateInput{ItemID: int64Ptr(drill.ID), Start: at(1), End: at(1)}, booking.ErrInvalidRange},
		{"start after end", booker.ID, booking.CreateInput{ItemID: int64Ptr(drill.ID), Start: at(3), End: at(2)}, booking.ErrInvalidRange},
		{"end in past", booker.ID, booking.CreateInput{ItemID: int64Ptr(drill.ID), Start: at(-3), End: at(-2)}, booking.ErrInvalidRange},
		{"start in past", booker.ID, booking.CreateInput{ItemID: int64Ptr(drill.ID), Start: at(-1), End: at(2)}, booking.ErrInvalidRange},
		{"range checked before availability", booker.ID, booking.CreateInput{ItemID: int64Ptr(saw.ID), Start: at(-1), End: at(2)}, booking.ErrInvalidRange},
		{"unavailable", booker.ID, booking.CreateInput{ItemID: int64Ptr(saw.ID), Start: at(1), End: at(2)}, booking.ErrItemUnavailable},
		{"owner books own item", owner.ID, booking.CreateInput{ItemID: int64Ptr(drill.ID), Start: at(1), End: at(2)}, booking.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newFakeRepo()
			uc := newTestUseCase(r)
			_, err := uc.Create(ctx, model.Scope{UserID: tt.actor}, tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if r.writes != 0 {
				t.Errorf("failed create must not write, got %d writes", r.writes)
			}
		})
	}

	t.Run("success", func(t *testing.T) {
		r := newFakeRepo()
		uc := newTestUseCase(r)
		b, err := uc.Create(ctx, model.Scope{UserID: booker.ID}, booking.CreateInput{
			ItemID: int64Ptr(drill.ID), Start: at(1), End: at(26),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.ID == 0 || b.Status != booking.StatusWaiting {
			t.Errorf("expected persisted WAITING booking, got %+v", b)
		}
		if b.Item.ID != drill.ID || b.Booker.ID != booker.ID || b.Booker.Name != booker.Name {
			t.Errorf("unexpected item or booker in %+v", b)
		}
		if !b.Start.Equal(*at(1)) || !b.End.Equal(*at(26)) {
			t.Errorf("period not preserved: %v..%v", b.Start, b.End)
		}
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	waiting := booking.Booking{ID: 1, Start: *at(1), End: *at(2), Item: drill, Booker: booker, Status: booking.StatusWaiting}
	approved := booking.Booking{ID: 2, Start: *at(1), End: *at(2), Item: drill, Booker: booker, Status: booking.StatusApproved}

	t.Run("approve", func(t *testing.T) {
		r := newFakeRepo(waiting)
		b, err := newTestUseCase(r).Update(ctx, model.Scope{UserID: owner.ID}, booking.UpdateInput{BookingID: 1, Approved: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.Status != booking.StatusApproved || r.bookings[1].Status != booking.StatusApproved {
			t.Errorf("expected APPROVED, got %s / stored %s", b.Status, r.bookings[1].Status)
		}
	})

	t.Run("reject", func(t *testing.T) {
		r := newFakeRepo(waiting)
		b, err := newTestUseCase(r).Update(ctx, model.Scope{UserID: owner.ID}, booking.UpdateInput{BookingID: 1, Approved: false})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.Status != booking.StatusRejected {
			t.Errorf("expected REJECTED, got %s", b.Status)
		}
	})

	failures := []struct {
		name    string
		actor   int64
		id      int64
		wantErr error
	}{
		{"absent", owner.ID, 99, booking.ErrBookingNotFound},
		{"booker cannot decide", booker.ID, 1, booking.ErrForbidden},
		{"stranger cannot decide", stranger.ID, 1, booking.ErrForbidden},
		{"already processed", owner.ID, 2, booking.ErrInvalidState},
	}
	for _, tt := range failures {
		t.Run(tt.name, func(t *testing.T) {
			r := newFakeRepo(waiting, approved)
			_, err := newTestUseCase(r).Update(ctx, model.Scope{UserID: tt.actor}, booking.UpdateInput{BookingID: tt.id, Approved: true})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if r.writes != 0 {
				t.Errorf("failed update must not write")
			}
			if r.bookings[1].Status != booking.StatusWaiting || r.bookings[2].Status != booking.StatusApproved {
				t.Errorf("stored statuses changed")
			}
		})
	}

	t.Run("second decision fails", func(t *testing.T) {
		r := newFakeRepo(waiting)
		uc := newTestUseCase(r)
		if _, err := uc.Update(ctx, model.Scope{UserID: owner.ID}, booking.UpdateInput{BookingID: 1, Approved: false}); err != nil {
			t.Fatalf("first decision: %v", err)
		}
		_, err := uc.Update(ctx, model.Scope{UserID: owner.ID}, booking.UpdateInput{BookingID: 1, Approved: true})
		if !errors.Is(err, booking.ErrInvalidState) {
			t.Fatalf("expected ErrInvalidState, got %v", err)
		}
		if r.bookings[1].Status != booking.StatusRejected {
			t.Errorf("status must stay REJECTED, got %s", r.bookings[1].Status)
		}
	})
}

func TestDetail(t *testing.T) {
	ctx := context.Background()
	b := booking.Booking{ID: 1, Start: *at(1), End: *at(2), Item: drill, Booker: booker, Status: booking.StatusWaiting}
	uc := newTestUseCase(newFakeRepo(b))

	for _, actor := range []int64{owner.ID, booker.ID} {
		got, err := uc.Detail(ctx, model.Scope{UserID: actor}, 1)
		if err != nil || got.ID != 1 {
			t.Errorf("actor %d: expected booking, got %+v, %v", actor, got, err)
		}
	}
	if _, err := uc.Detail(ctx, model.Scope{UserID: stranger.ID}, 1); !errors.Is(err, booking.ErrForbidden) {
		t.Errorf("stranger: expected ErrForbidden, got %v", err)
	}
	if _, err := uc.Detail(ctx, model.Scope{UserID: owner.ID}, 2); !errors.Is(err, booking.ErrBookingNotFound) {
		t.Errorf("absent: expected ErrBookingNotFound, got %v", err)
	}
}

func seedBookings() []booking.Booking {
	return []booking.Booking{
		{ID: 1, Start: *at(-72), End: *at(-48), Item: drill, Booker: booker, Status: booking.StatusApproved},
		{ID: 2, Start: *at(-2), End: *at(2), Item: drill, Booker: booker, Status: booking.StatusApproved},
		{ID: 3, Start: *at(24), End: *at(48), Item: saw, Booker: booker, Status: booking.StatusWaiting},
		{ID: 4, Start: *at(72), End: *at(96), Item: drill, Booker: stranger, Status: booking.StatusRejected},
		{ID: 5, Start: *at(10), End: *at(12), Item: ladder, Booker: booker, Status: booking.StatusRejected},
	}
}

func ids(bs []booking.Booking) []int64 {
	out := make([]int64, len(bs))
	for i, b := range bs {
		out[i] = b.ID
	}
	return out
}

func equalIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestListForBooker(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(newFakeRepo(seedBookings()...))

	tests := []struct {
		state string
		want  []int64
	}{
		{"ALL", []int64{3, 5, 2, 1}},
		{"CURRENT", []int64{2}},
		{"PAST", []int64{1}},
		{"FUTURE", []int64{3, 5}},
		{"WAITING", []int64{3}},
		{"REJECTED", []int64{5}},
	}
	for _, tt := range tests {
		t.Run(tt.state, func(t *testing.T) {
			out, err := uc.ListForBooker(ctx, model.Scope{UserID: booker.ID}, booking.ListInput{State: tt.state})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := ids(out.Bookings); !equalIDs(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}

	t.Run("paged", func(t *testing.T) {
		out, err := uc.ListForBooker(ctx, model.Scope{UserID: booker.ID}, booking.ListInput{State: "ALL", From: intPtr(3), Size: intPtr(2)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := ids(out.Bookings); !equalIDs(got, []int64{2, 1}) {
			t.Errorf("expected second page [2 1], got %v", got)
		}
	})

	t.Run("unknown state", func(t *testing.T) {
		_, err := uc.ListForBooker(ctx, model.Scope{UserID: booker.ID}, booking.ListInput{State: "current"})
		if !errors.Is(err, booking.ErrUnknownState) {
			t.Fatalf("expected ErrUnknownState, got %v", err)
		}
		if err.Error() != "Unknown state: current" {
			t.Errorf("unexpected message %q", err.Error())
		}
	})

	t.Run("invalid page", func(t *testing.T) {
		_, err := uc.ListForBooker(ctx, model.Scope{UserID: booker.ID}, booking.ListInput{State: "ALL", From: intPtr(-1), Size: intPtr(2)})
		if !errors.Is(err, booking.ErrInvalidPage) {
			t.Fatalf("expected ErrInvalidPage, got %v", err)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := uc.ListForBooker(ctx, model.Scope{UserID: 99}, booking.ListInput{State: "ALL"})
		if !errors.Is(err, errUserNotFound) {
			t.Fatalf("expected user not found, got %v", err)
		}
	})

	t.Run("now is sampled into the query", func(t *testing.T) {
		r := newFakeRepo()
		uc := newTestUseCase(r)
		if _, err := uc.ListForBooker(ctx, model.Scope{UserID: booker.ID}, booking.ListInput{State: "CURRENT"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !r.lastOpt.Now.Equal(now) || r.lastOpt.BookerID != booker.ID || r.lastOpt.Page != nil {
			t.Errorf("unexpected options %+v", r.lastOpt)
		}
	})
}

func TestListForOwner(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(newFakeRepo(seedBookings()...))

	tests := []struct {
		state string
		want  []int64
	}{
		{"ALL", []int64{4, 3, 2, 1}},
		{"CURRENT", []int64{2}},
		{"PAST", []int64{1}},
		{"FUTURE", []int64{4, 3}},
		{"WAITING", []int64{3}},
		{"REJECTED", []int64{4}},
	}
	for _, tt := range tests {
		t.Run(tt.state, func(t *testing.T) {
			out, err := uc.ListForOwner(ctx, model.Scope{UserID: owner.ID}, booking.ListInput{State: tt.state})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := ids(out.Bookings); !equalIDs(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}

	t.Run("scoped to own items", func(t *testing.T) {
		out, err := uc.ListForOwner(ctx, model.Scope{UserID: stranger.ID}, booking.ListInput{State: "ALL"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := ids(out.Bookings); !equalIDs(got, []int64{5}) {
			t.Errorf("expected [5], got %v", got)
		}
	})

	noItems := []struct {
		name  string
		input booking.ListInput
	}{
		{"no items", booking.ListInput{State: "ALL"}},
		{"no items with BOGUS state", booking.ListInput{State: "BOGUS"}},
		{"no items with invalid page", booking.ListInput{State: "ALL", From: intPtr(-1), Size: intPtr(10)}},
	}
	for _, tt := range noItems {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.ListForOwner(ctx, model.Scope{UserID: lonely.ID}, tt.input)
			if !errors.Is(err, booking.ErrNoItems) {
				t.Fatalf("expected ErrNoItems, got %v", err)
			}
		})
	}

	t.Run("page with one bound", func(t *testing.T) {
		_, err := uc.ListForOwner(ctx, model.Scope{UserID: owner.ID}, booking.ListInput{State: "ALL", Size: intPtr(2)})
		if !errors.Is(err, booking.ErrInvalidPage) {
			t.Fatalf("expected ErrInvalidPage, got %v", err)
		}
	})
}

// applyPage cuts the fake's rows to the page window.
func applyPage[T any](rows []T, p *paginator.Page) []T {
	if p == nil {
		return rows
	}
	if p.Offset >= len(rows) {
		return rows[:0]
	}
	return rows[p.Offset:min(p.Offset+p.Limit, len(rows))]
}
