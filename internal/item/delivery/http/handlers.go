package http

import (
	"github.com/gin-gonic/gin"

	"shareit/pkg/response"
)

// Create godoc
// @Summary     List an item
// @Description Adds an item owned by the caller, optionally answering an item request.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       X-Sharer-User-Id header int       true "Owner"
// @Param       body             body   createReq true "Item"
// @Success     200 {object} itemResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /items [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	input, err := h.processCreateReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	it, err := h.uc.Create(ctx, sc, input)
	if err != nil {
		h.l.Warnf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newItemResp(it))
}

// Update godoc
// @Summary     Update an item
// @Description Partial update. Only the owner may change an item.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       X-Sharer-User-Id header int       true "Owner"
// @Param       itemId           path   int       true "Item ID"
// @Param       body             body   updateReq true "Changed fields"
// @Success     200 {object} itemResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /items/{itemId} [PATCH]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	input, err := h.processUpdateReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	it, err := h.uc.Update(ctx, sc, input)
	if err != nil {
		h.l.Warnf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newItemResp(it))
}

// Detail godoc
// @Summary     Get an item
// @Description Comments are always shown. Last and next bookings are shown to the owner only.
// @Tags        Items
// @Produce     json
// @Param       X-Sharer-User-Id header int true "Acting user"
// @Param       itemId           path   int true "Item ID"
// @Success     200 {object} itemViewResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /items/{itemId} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	id, err := h.processItemID(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	v, err := h.uc.Detail(ctx, sc, id)
	if err != nil {
		h.l.Warnf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newViewResp(v))
}

// ListByOwner godoc
// @Summary     List the caller's items
// @Tags        Items
// @Produce     json
// @Param       X-Sharer-User-Id header int true  "Owner"
// @Param       from             query  int false "First row index"
// @Param       size             query  int false "Page size"
// @Success     200 {array}  itemViewResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /items [GET]
func (h *handler) ListByOwner(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	input, err := h.processListReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	views, err := h.uc.ListByOwner(ctx, sc, input)
	if err != nil {
		h.l.Warnf(ctx, "uc.ListByOwner: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newViewListResp(views))
}

// Search godoc
// @Summary     Search available items
// @Tags        Items
// @Produce     json
// @Param       X-Sharer-User-Id header int    true  "Acting user"
// @Param       text             query  string false "Text in name or description"
// @Param       from             query  int    false "First row index"
// @Param       size             query  int    false "Page size"
// @Success     200 {array}  itemResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /items/search [GET]
func (h *handler) Search(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processSearchReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	items, err := h.uc.Search(ctx, input)
	if err != nil {
		h.l.Warnf(ctx, "uc.Search: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newItemListResp(items))
}

// AddComment godoc
// @Summary     Comment on an item
// @Description Only users whose booking of the item has ended may comment.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       X-Sharer-User-Id header int        true "Author"
// @Param       itemId           path   int        true "Item ID"
// @Param       body             body   commentReq true "Comment"
// @Success     200 {object} commentResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /items/{itemId}/comment [POST]
func (h *handler) AddComment(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	input, err := h.processCommentReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	cm, err := h.uc.AddComment(ctx, sc, input)
	if err != nil {
		h.l.Warnf(ctx, "uc.AddComment: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCommentResp(cm))
}
