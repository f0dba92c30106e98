package http

import (
	"shareit/internal/item"
	"shareit/internal/model"
	"shareit/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
	RequestID   *int64  `json:"requestId"`
}

type updateReq struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
}

type commentReq struct {
	Text string `json:"text"`
}

// --- Response DTOs ---

type itemResp struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	RequestID   *int64 `json:"requestId"`
}

type bookingShortResp struct {
	ID       int64             `json:"id"`
	BookerID int64             `json:"bookerId"`
	Start    response.DateTime `json:"start"`
	End      response.DateTime `json:"end"`
}

type commentResp struct {
	ID         int64             `json:"id"`
	Text       string            `json:"text"`
	AuthorName string            `json:"authorName"`
	Created    response.DateTime `json:"created"`
}

type itemViewResp struct {
	itemResp
	LastBooking *bookingShortResp `json:"lastBooking"`
	NextBooking *bookingShortResp `json:"nextBooking"`
	Comments    []commentResp     `json:"comments"`
}

func newItemResp(it model.Item) itemResp {
	return itemResp{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Available:   it.Available,
		RequestID:   it.RequestID,
	}
}

func (h *handler) newBookingShortResp(b *model.BookingShort) *bookingShortResp {
	if b == nil {
		return nil
	}
	return &bookingShortResp{
		ID:       b.ID,
		BookerID: b.BookerID,
		Start:    response.DateTime(b.Start.In(h.clock.Location())),
		End:      response.DateTime(b.End.In(h.clock.Location())),
	}
}

func (h *handler) newCommentResp(c model.Comment) commentResp {
	return commentResp{
		ID:         c.ID,
		Text:       c.Text,
		AuthorName: c.AuthorName,
		Created:    response.DateTime(c.Created.In(h.clock.Location())),
	}
}

func (h *handler) newViewResp(v item.View) itemViewResp {
	comments := make([]commentResp, len(v.Comments))
	for i, c := range v.Comments {
		comments[i] = h.newCommentResp(c)
	}
	return itemViewResp{
		itemResp:    newItemResp(v.Item),
		LastBooking: h.newBookingShortResp(v.LastBooking),
		NextBooking: h.newBookingShortResp(v.NextBooking),
		Comments:    comments,
	}
}

func (h *handler) newViewListResp(views []item.View) []itemViewResp {
	resp := make([]itemViewResp, len(views))
	for i, v := range views {
		resp[i] = h.newViewResp(v)
	}
	return resp
}

func newItemListResp(items []model.Item) []itemResp {
	resp := make([]itemResp, len(items))
	for i, it := range items {
		resp[i] = newItemResp(it)
	}
	return resp
}
