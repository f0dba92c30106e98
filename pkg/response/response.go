package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "shareit/pkg/errors"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Error maps err to its HTTP status and writes the error body.
// Errors without a domain kind are reported as 500 with a generic message.
func Error(c *gin.Context, err error) {
	he := pkgErrors.ToHTTP(err)
	if he.StatusCode >= http.StatusInternalServerError {
		InternalError(c, err)
		return
	}
	c.JSON(he.StatusCode, Resp{
		ErrorCode: he.StatusCode,
		Message:   http.StatusText(he.StatusCode),
		Error:     he.Message,
	})
}

// BadRequest sends 400 for malformed input that never reached a use case.
func BadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, Resp{
		ErrorCode: http.StatusBadRequest,
		Message:   http.StatusText(http.StatusBadRequest),
		Error:     err.Error(),
	})
}

// InternalError sends 500 internal server error.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	})
}

// Unauthorized sends 401 response.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Resp{
		ErrorCode: 401,
		Message:   "Unauthorized",
	})
}

// TooManyRequests sends 429 response.
func TooManyRequests(c *gin.Context) {
	c.JSON(http.StatusTooManyRequests, Resp{
		ErrorCode: 429,
		Message:   "Too Many Requests",
	})
}
