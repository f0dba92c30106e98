package middleware

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"shareit/internal/model"
	"shareit/pkg/log"
	"shareit/pkg/response"
	"shareit/pkg/scope"
)

// UserIDHeader identifies the acting user on every authenticated request.
const UserIDHeader = "X-Sharer-User-Id"

var (
	errMissingIdentity = errors.New(UserIDHeader + " header is required")
	errInvalidIdentity = errors.New(UserIDHeader + " header must be a positive integer")
)

// Auth resolves the acting user from the identity header, or from a bearer
// token when a token manager is configured, and stores it in the request context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		sc, err := m.resolveScope(c)
		if err != nil {
			if errors.Is(err, scope.ErrInvalidToken) {
				response.Unauthorized(c)
			} else {
				response.BadRequest(c, err)
			}
			c.Abort()
			return
		}

		ctx := scope.SetScopeToContext(c.Request.Context(), sc)
		ctx = log.WithUserID(ctx, sc.UserID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func (m Middleware) resolveScope(c *gin.Context) (model.Scope, error) {
	if raw := strings.TrimSpace(c.GetHeader(UserIDHeader)); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return model.Scope{}, errInvalidIdentity
		}
		return model.Scope{UserID: id}, nil
	}

	if m.jwtManager != nil {
		if token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer "); ok {
			return m.jwtManager.Verify(strings.TrimSpace(token))
		}
	}
	return model.Scope{}, errMissingIdentity
}
