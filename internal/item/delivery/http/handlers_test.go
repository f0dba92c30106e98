package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"shareit/internal/item"
	"shareit/internal/middleware"
	"shareit/internal/model"
	"shareit/pkg/datemath"
	"shareit/pkg/log"
)

type fakeUseCase struct {
	err         error
	lastScope   model.Scope
	lastCreate  item.CreateInput
	lastUpdate  item.UpdateInput
	lastSearch  item.SearchInput
	lastComment item.CommentInput
	view        item.View
}

var drill = model.Item{ID: 3, Name: "Drill", Description: "Cordless", Available: true, OwnerID: 1}

func (f *fakeUseCase) Create(ctx context.Context, sc model.Scope, in item.CreateInput) (model.Item, error) {
	f.lastScope, f.lastCreate = sc, in
	return drill, f.err
}

func (f *fakeUseCase) Update(ctx context.Context, sc model.Scope, in item.UpdateInput) (model.Item, error) {
	f.lastScope, f.lastUpdate = sc, in
	return drill, f.err
}

func (f *fakeUseCase) Detail(ctx context.Context, sc model.Scope, id int64) (item.View, error) {
	f.lastScope = sc
	return f.view, f.err
}

func (f *fakeUseCase) ListByOwner(ctx context.Context, sc model.Scope, in item.ListInput) ([]item.View, error) {
	f.lastScope = sc
	return []item.View{f.view}, f.err
}

func (f *fakeUseCase) Search(ctx context.Context, in item.SearchInput) ([]model.Item, error) {
	f.lastSearch = in
	return []model.Item{drill}, f.err
}

func (f *fakeUseCase) AddComment(ctx context.Context, sc model.Scope, in item.CommentInput) (model.Comment, error) {
	f.lastScope, f.lastComment = sc, in
	return model.Comment{ID: 1, Text: in.Text, ItemID: in.ItemID, AuthorName: "Bob", Created: time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)}, f.err
}

func (f *fakeUseCase) FindItem(ctx context.Context, id int64) (model.Item, error) { return drill, f.err }

func (f *fakeUseCase) FindItemIDsByOwner(ctx context.Context, ownerID int64) ([]int64, error) {
	return nil, f.err
}

func (f *fakeUseCase) FindItemsForRequests(ctx context.Context, ids []int64) (map[int64][]model.Item, error) {
	return nil, f.err
}

func (f *fakeUseCase) IsAvailable(ctx context.Context, id int64) (bool, error) { return true, f.err }

func newTestEngine(uc item.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	clock := datemath.NewFixedClock(time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC))
	mw := middleware.New(log.NewNop(), nil, middleware.Config{})
	RegisterRoutes(r.Group(""), New(log.NewNop(), uc, clock), mw)
	return r
}

func do(r *gin.Engine, method, path, body, userID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set(middleware.UserIDHeader, userID)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("invalid body %q: %v", w.Body.String(), err)
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		t.Fatalf("invalid data %q: %v", env.Data, err)
	}
}

func TestCreateItem(t *testing.T) {
	uc := &fakeUseCase{}
	r := newTestEngine(uc)

	w := do(r, http.MethodPost, "/items", `{"name":"Drill","description":"Cordless","available":true,"requestId":5}`, "1")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if uc.lastScope.UserID != 1 || *uc.lastCreate.Name != "Drill" || !*uc.lastCreate.Available || *uc.lastCreate.RequestID != 5 {
		t.Errorf("unexpected input %+v", uc.lastCreate)
	}

	var got map[string]any
	decodeData(t, w, &got)
	if got["id"] != float64(3) || got["available"] != true || got["requestId"] != nil {
		t.Errorf("unexpected item %v", got)
	}
}

func TestCreateItemKeepsAbsentFieldsNil(t *testing.T) {
	uc := &fakeUseCase{}
	do(newTestEngine(uc), http.MethodPost, "/items", `{"name":"Drill"}`, "1")
	if uc.lastCreate.Description != nil || uc.lastCreate.Available != nil {
		t.Errorf("absent fields must stay nil: %+v", uc.lastCreate)
	}
}

func TestUpdateItem(t *testing.T) {
	uc := &fakeUseCase{}
	w := do(newTestEngine(uc), http.MethodPatch, "/items/3", `{"available":false}`, "1")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if uc.lastUpdate.ID != 3 || uc.lastUpdate.Name != nil || uc.lastUpdate.Available == nil || *uc.lastUpdate.Available {
		t.Errorf("unexpected input %+v", uc.lastUpdate)
	}
}

func TestDetailItem(t *testing.T) {
	at := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	uc := &fakeUseCase{view: item.View{
		Item:        drill,
		LastBooking: &model.BookingShort{ID: 4, BookerID: 2, Start: at, End: at.Add(time.Hour)},
		Comments:    []model.Comment{{ID: 1, Text: "Great", AuthorName: "Bob", Created: at}},
	}}
	w := do(newTestEngine(uc), http.MethodGet, "/items/3", "", "1")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var got map[string]any
	decodeData(t, w, &got)
	if got["name"] != "Drill" || got["nextBooking"] != nil {
		t.Errorf("unexpected view %v", got)
	}
	last, _ := got["lastBooking"].(map[string]any)
	if last["bookerId"] != float64(2) || last["start"] != "2024-05-01T09:30:00" {
		t.Errorf("unexpected last booking %v", got["lastBooking"])
	}
	comments, _ := got["comments"].([]any)
	if len(comments) != 1 || comments[0].(map[string]any)["authorName"] != "Bob" {
		t.Errorf("unexpected comments %v", got["comments"])
	}
}

func TestSearchItems(t *testing.T) {
	uc := &fakeUseCase{}
	w := do(newTestEngine(uc), http.MethodGet, "/items/search?text=dri&from=0&size=10", "", "2")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if uc.lastSearch.Text != "dri" || *uc.lastSearch.From != 0 || *uc.lastSearch.Size != 10 {
		t.Errorf("unexpected input %+v", uc.lastSearch)
	}
}

func TestAddComment(t *testing.T) {
	uc := &fakeUseCase{}
	w := do(newTestEngine(uc), http.MethodPost, "/items/3/comment", `{"text":"Great"}`, "2")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if uc.lastComment.ItemID != 3 || uc.lastComment.Text != "Great" || uc.lastScope.UserID != 2 {
		t.Errorf("unexpected input %+v", uc.lastComment)
	}

	var got map[string]any
	decodeData(t, w, &got)
	if got["created"] != "2024-05-10T12:00:00" || got["authorName"] != "Bob" {
		t.Errorf("unexpected comment %v", got)
	}
}

func TestItemRoutesErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		method   string
		path     string
		body     string
		user     string
		wantCode int
	}{
		{"missing identity", nil, http.MethodGet, "/items", "", "", http.StatusBadRequest},
		{"bad id", nil, http.MethodGet, "/items/zero", "", "1", http.StatusBadRequest},
		{"bad size", nil, http.MethodGet, "/items?from=0&size=x", "", "1", http.StatusBadRequest},
		{"not owner reads as not found", item.ErrNotOwner, http.MethodPatch, "/items/3", `{"name":"x"}`, "2", http.StatusNotFound},
		{"not found", item.ErrItemNotFound, http.MethodGet, "/items/3", "", "1", http.StatusNotFound},
		{"missing field", item.ErrMissingField, http.MethodPost, "/items", `{}`, "1", http.StatusBadRequest},
		{"not a booker", item.ErrNotBooker, http.MethodPost, "/items/3/comment", `{"text":"hi"}`, "1", http.StatusBadRequest},
		{"storage failure", errors.New("db down"), http.MethodGet, "/items/search?text=a", "", "1", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(newTestEngine(&fakeUseCase{err: tt.err}), tt.method, tt.path, tt.body, tt.user)
			if w.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d: %s", tt.wantCode, w.Code, w.Body.String())
			}
		})
	}
}
