package http

import (
	"github.com/gin-gonic/gin"

	"shareit/pkg/response"
)

// Create godoc
// @Summary     Request a booking
// @Description Creates a WAITING booking of an item for the caller.
// @Tags        Bookings
// @Accept      json
// @Produce     json
// @Param       X-Sharer-User-Id header int       true "Acting user"
// @Param       body             body   createReq true "Item and period"
// @Success     200 {object} bookingResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /bookings [POST]
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

	b, err := h.uc.Create(ctx, sc, input)
	if err != nil {
		h.l.Warnf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newBookingResp(b))
}

// Update godoc
// @Summary     Approve or reject a booking
// @Tags        Bookings
// @Produce     json
// @Param       X-Sharer-User-Id header int  true "Item owner"
// @Param       bookingId        path   int  true "Booking ID"
// @Param       approved         query  bool true "Decision"
// @Success     200 {object} bookingResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /bookings/{bookingId} [PATCH]
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

	b, err := h.uc.Update(ctx, sc, input)
	if err != nil {
		h.l.Warnf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newBookingResp(b))
}

// Detail godoc
// @Summary     Get a booking
// @Description Visible to the booker and the item owner.
// @Tags        Bookings
// @Produce     json
// @Param       X-Sharer-User-Id header int true "Acting user"
// @Param       bookingId        path   int true "Booking ID"
// @Success     200 {object} bookingResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /bookings/{bookingId} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	id, err := h.processBookingID(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	b, err := h.uc.Detail(ctx, sc, id)
	if err != nil {
		h.l.Warnf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newBookingResp(b))
}

// ListForBooker godoc
// @Summary     List the caller's bookings
// @Tags        Bookings
// @Produce     json
// @Param       X-Sharer-User-Id header int    true  "Acting user"
// @Param       state            query  string false "ALL, CURRENT, PAST, FUTURE, WAITING, REJECTED" default(ALL)
// @Param       from             query  int    false "First row index"
// @Param       size             query  int    false "Page size"
// @Success     200 {array}  bookingResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /bookings [GET]
func (h *handler) ListForBooker(c *gin.Context) {
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

	out, err := h.uc.ListForBooker(ctx, sc, input)
	if err != nil {
		h.l.Warnf(ctx, "uc.ListForBooker: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(out))
}

// ListForOwner godoc
// @Summary     List bookings of the caller's items
// @Tags        Bookings
// @Produce     json
// @Param       X-Sharer-User-Id header int    true  "Item owner"
// @Param       state            query  string false "ALL, CURRENT, PAST, FUTURE, WAITING, REJECTED" default(ALL)
// @Param       from             query  int    false "First row index"
// @Param       size             query  int    false "Page size"
// @Success     200 {array}  bookingResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /bookings/owner [GET]
func (h *handler) ListForOwner(c *gin.Context) {
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

	out, err := h.uc.ListForOwner(ctx, sc, input)
	if err != nil {
		h.l.Warnf(ctx, "uc.ListForOwner: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(out))
}
