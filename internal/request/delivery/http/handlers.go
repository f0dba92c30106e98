package http

import (
	"github.com/gin-gonic/gin"

	"shareit/pkg/response"
)

// Create godoc
// @Summary     Publish an item request
// @Tags        Requests
// @Accept      json
// @Produce     json
// @Param       X-Sharer-User-Id header int       true "Requestor"
// @Param       body             body   createReq true "What is needed"
// @Success     200 {object} requestResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /requests [POST]
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

	v, err := h.uc.Create(ctx, sc, input)
	if err != nil {
		h.l.Warnf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newRequestResp(v))
}

// ListOwn godoc
// @Summary     List the caller's item requests
// @Tags        Requests
// @Produce     json
// @Param       X-Sharer-User-Id header int true "Requestor"
// @Success     200 {array}  requestResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /requests [GET]
func (h *handler) ListOwn(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	views, err := h.uc.ListOwn(ctx, sc)
	if err != nil {
		h.l.Warnf(ctx, "uc.ListOwn: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(views))
}

// ListOthers godoc
// @Summary     List other users' item requests
// @Tags        Requests
// @Produce     json
// @Param       X-Sharer-User-Id header int true  "Acting user"
// @Param       from             query  int false "First row index"
// @Param       size             query  int false "Page size"
// @Success     200 {array}  requestResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /requests/all [GET]
func (h *handler) ListOthers(c *gin.Context) {
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

	views, err := h.uc.ListOthers(ctx, sc, input)
	if err != nil {
		h.l.Warnf(ctx, "uc.ListOthers: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(views))
}

// Detail godoc
// @Summary     Get an item request
// @Tags        Requests
// @Produce     json
// @Param       X-Sharer-User-Id header int true "Acting user"
// @Param       requestId        path   int true "Request ID"
// @Success     200 {object} requestResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /requests/{requestId} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	id, err := h.processRequestID(c)
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

	response.OK(c, h.newRequestResp(v))
}
