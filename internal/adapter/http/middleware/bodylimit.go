package middleware

import (
	"net/http"

	"wallet-settings/pkg/apperror"
	"wallet-settings/pkg/response"

	"github.com/gin-gonic/gin"
)

// MaxBodySize limits the request body. Requests that announce a larger body
// are rejected up front with 413; others get a reader that fails once the
// limit is crossed.
func MaxBodySize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			response.Error(c, apperror.ErrBodyTooLarge())
			c.Abort()
			return
		}
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}
