package http

import (
	"shareit/internal/request"
	"shareit/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Description string `json:"description"`
}

// --- Response DTOs ---

type itemResp struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	RequestID   int64  `json:"requestId"`
	OwnerID     int64  `json:"ownerId"`
}

type requestResp struct {
	ID          int64             `json:"id"`
	Description string            `json:"description"`
	Created     response.DateTime `json:"created"`
	Items       []itemResp        `json:"items"`
}

func (h *handler) newRequestResp(v request.View) requestResp {
	items := make([]itemResp, len(v.Items))
	for i, it := range v.Items {
		items[i] = itemResp{
			ID:          it.ID,
			Name:        it.Name,
			Description: it.Description,
			Available:   it.Available,
			RequestID:   v.Request.ID,
			OwnerID:     it.OwnerID,
		}
	}
	return requestResp{
		ID:          v.Request.ID,
		Description: v.Request.Description,
		Created:     response.DateTime(v.Request.Created.In(h.clock.Location())),
		Items:       items,
	}
}

func (h *handler) newListResp(views []request.View) []requestResp {
	resp := make([]requestResp, len(views))
	for i, v := range views {
		resp[i] = h.newRequestResp(v)
	}
	return resp
}
