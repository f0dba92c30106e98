package http

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"shareit/internal/model"
	"shareit/internal/request"
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

func (h *handler) processRequestID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("requestId"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidRequestID
	}
	return id, nil
}

func (h *handler) processCreateReq(c *gin.Context) (request.CreateInput, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return request.CreateInput{}, err
	}
	return request.CreateInput{Description: req.Description}, nil
}

func (h *handler) processListReq(c *gin.Context) (request.ListInput, error) {
	var (
		input request.ListInput
		err   error
	)
	if input.From, err = parseOptionalInt(c, "from"); err != nil {
		return request.ListInput{}, err
	}
	if input.Size, err = parseOptionalInt(c, "size"); err != nil {
		return request.ListInput{}, err
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
