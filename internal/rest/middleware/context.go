package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/netserve/catalog/internal/types"
)

// RequestIDMiddleware attaches a request ID to the request context, reusing
// the X-Request-ID header when the caller supplies one.
func RequestIDMiddleware(c *gin.Context) {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = types.GenerateRequestID()
	}

	ctx := types.WithRequestID(c.Request.Context(), requestID)
	c.Request = c.Request.WithContext(ctx)
	c.Header("X-Request-ID", requestID)

	c.Next()
}
