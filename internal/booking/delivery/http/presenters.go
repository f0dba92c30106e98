package http

import (
	"time"

	"shareit/internal/booking"
	"shareit/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	ItemID *int64  `json:"itemId"`
	Start  *string `json:"start"`
	End    *string `json:"end"`
}

// --- Response DTOs ---

type bookerResp struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type itemResp struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type bookingResp struct {
	ID     int64             `json:"id"`
	Start  response.DateTime `json:"start"`
	End    response.DateTime `json:"end"`
	Status string            `json:"status"`
	Booker bookerResp        `json:"booker"`
	Item   itemResp          `json:"item"`
}

func (h *handler) toWire(t time.Time) response.DateTime {
	return response.DateTime(t.In(h.clock.Location()))
}

func (h *handler) newBookingResp(b booking.Booking) bookingResp {
	return bookingResp{
		ID:     b.ID,
		Start:  h.toWire(b.Start),
		End:    h.toWire(b.End),
		Status: string(b.Status),
		Booker: bookerResp{ID: b.Booker.ID, Name: b.Booker.Name},
		Item:   itemResp{ID: b.Item.ID, Name: b.Item.Name},
	}
}

func (h *handler) newListResp(out booking.ListOutput) []bookingResp {
	resp := make([]bookingResp, len(out.Bookings))
	for i, b := range out.Bookings {
		resp[i] = h.newBookingResp(b)
	}
	return resp
}
