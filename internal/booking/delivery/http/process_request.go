package http

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"shareit/internal/booking"
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

func (h *handler) processBookingID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("bookingId"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidBookingID
	}
	return id, nil
}

// processCreateReq keeps absent fields nil so the use case can report them.
func (h *handler) processCreateReq(c *gin.Context) (booking.CreateInput, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return booking.CreateInput{}, err
	}

	input := booking.CreateInput{ItemID: req.ItemID}
	var err error
	if input.Start, err = h.parseTime("start", req.Start); err != nil {
		return booking.CreateInput{}, err
	}
	if input.End, err = h.parseTime("end", req.End); err != nil {
		return booking.CreateInput{}, err
	}
	return input, nil
}

func (h *handler) parseTime(field string, raw *string) (*time.Time, error) {
	if raw == nil {
		return nil, nil
	}
	t, err := h.clock.Parse(*raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", field, err)
	}
	return &t, nil
}

func (h *handler) processUpdateReq(c *gin.Context) (booking.UpdateInput, error) {
	id, err := h.processBookingID(c)
	if err != nil {
		return booking.UpdateInput{}, err
	}
	approved, err := strconv.ParseBool(c.Query("approved"))
	if err != nil {
		return booking.UpdateInput{}, errInvalidApproved
	}
	return booking.UpdateInput{BookingID: id, Approved: approved}, nil
}

// processListReq defaults state to ALL. from and size stay nil when absent.
func (h *handler) processListReq(c *gin.Context) (booking.ListInput, error) {
	input := booking.ListInput{State: c.DefaultQuery("state", string(booking.StateAll))}

	var err error
	if input.From, err = parseOptionalInt(c, "from"); err != nil {
		return booking.ListInput{}, err
	}
	if input.Size, err = parseOptionalInt(c, "size"); err != nil {
		return booking.ListInput{}, err
	}
	return input, nil
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
