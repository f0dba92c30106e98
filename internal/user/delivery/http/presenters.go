package http

import (
	"shareit/internal/model"
	"shareit/internal/user"
)

// --- Request DTOs ---

type createReq struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (r createReq) toInput() user.CreateInput {
	return user.CreateInput{Name: r.Name, Email: r.Email}
}

type updateReq struct {
	ID    int64   `json:"-"`
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

func (r updateReq) toInput() user.UpdateInput {
	return user.UpdateInput{ID: r.ID, Name: r.Name, Email: r.Email}
}

// --- Response DTOs ---

type userResp struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (h *handler) newUserResp(u model.User) userResp {
	return userResp{ID: u.ID, Name: u.Name, Email: u.Email}
}

func (h *handler) newListResp(out user.ListOutput) []userResp {
	resp := make([]userResp, len(out.Users))
	for i, u := range out.Users {
		resp[i] = h.newUserResp(u)
	}
	return resp
}
