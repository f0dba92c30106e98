package http

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"shareit/internal/item"
	"shareit/internal/model"
	pkgErrors "shareit/pkg/errors"
	"shareit/pkg/scope"
)

func (h *handler) processScope(c *gin.Context) (model.Scope, error) {
	sc, ok := scope.GetScopeFromContext(c.Request.Context())
	if !ok {
		return model.Scope{}, pkgErrors.ErrUnauthorized
	}
	return sc, nil
}

func (h *handler) processItemID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("itemId"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidItemID
	}
	return id, nil
}

func (h *handler) processCreateReq(c *gin.Context) (item.CreateInput, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return item.CreateInput{}, err
	}
	return item.CreateInput{
		Name:        req.Name,
		Description: req.Description,
		Available:   req.Available,
		RequestID:   req.RequestID,
	}, nil
}

func (h *handler) processUpdateReq(c *gin.Context) (item.UpdateInput, error) {
	id, err := h.processItemID(c)
	if err != nil {
		return item.UpdateInput{}, err
	}
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return item.UpdateInput{}, err
	}
	return item.UpdateInput{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Available:   req.Available,
	}, nil
}

func (h *handler) processCommentReq(c *gin.Context) (item.CommentInput, error) {
	id, err := h.processItemID(c)
	if err != nil {
		return item.CommentInput{}, err
	}
	var req commentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return item.CommentInput{}, err
	}
	return item.CommentInput{ItemID: id, Text: req.Text}, nil
}

func (h *handler) processListReq(c *gin.Context) (item.ListInput, error) {
	from, size, err := processWindow(c)
	if err != nil {
		return item.ListInput{}, err
	}
	return item.ListInput{From: from, Size: size}, nil
}

func (h *handler) processSearchReq(c *gin.Context) (item.SearchInput, error) {
	from, size, err := processWindow(c)
	if err != nil {
		return item.SearchInput{}, err
	}
	return item.SearchInput{Text: c.Query("text"), From: from, Size: size}, nil
}

func processWindow(c *gin.Context) (from, size *int, err error) {
	if from, err = parseOptionalInt(c, "from"); err != nil {
		return nil, nil, err
	}
	if size, err = parseOptionalInt(c, "size"); err != nil {
		return nil, nil, err
	}
	return from, size, nil
}

func parseOptionalInt(c *gin.Context, name string) (*int, error) {
	raw, ok := c.GetQuery(name)
	if !ok {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%s must be an integer", name)
	}
	return &v, nil
}
