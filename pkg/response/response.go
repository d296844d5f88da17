package response

import (
	"errors"
	"net/http"
	"time"

	"wallet-settings/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ctxRequestID is the gin context key the request-id middleware writes.
const ctxRequestID = "request_id"

// Meta is carried by every envelope so clients can correlate a reply with
// the server log line of the same request.
type Meta struct {
	RequestID string `json:"request_id"`
	Timestamp string `json:"timestamp"`
}

// SuccessResponse wraps settings, rates and notifications returned by the API.
type SuccessResponse struct {
	Data interface{} `json:"data"`
	Meta
}

// ErrorResponse carries the AppError code, e.g. SET_001 for an unknown unit.
type ErrorResponse struct {
	ErrorCode string `json:"error_code"`
	Message   string `json:"message"`
	Meta
}

// OK sends a 200 response with data.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, SuccessResponse{Data: data, Meta: meta(c)})
}

// Error sends the error envelope for err. An *apperror.AppError anywhere in
// the chain decides status and code; anything else is a SYS_000 500. The full
// error is attached to the gin context for the request logger and is never
// written to the client.
func Error(c *gin.Context, err error) {
	if err != nil {
		_ = c.Error(err)
	}

	status, body := http.StatusInternalServerError, ErrorResponse{
		ErrorCode: "SYS_000",
		Message:   "Internal server error",
	}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		status = appErr.HTTPStatus
		body.ErrorCode = appErr.Code
		body.Message = appErr.Message
	}

	body.Meta = meta(c)
	c.JSON(status, body)
}

func meta(c *gin.Context) Meta {
	return Meta{
		RequestID: requestID(c),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// requestID returns the id set by the middleware, or a fresh one when the
// handler runs without it (tests, recovery before the middleware ran).
func requestID(c *gin.Context) string {
	if id := c.GetString(ctxRequestID); id != "" {
		return id
	}
	return uuid.New().String()
}
