package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/campushire/platform/utils"
)

const (
	// RequestIDHeader carries the request id in both directions
	RequestIDHeader = utils.RequestIDHeader

	requestIDKey = "request_id"
)

// RequestIDMiddleware keeps the caller's X-Request-ID or assigns a new one.
// The id is also put on the request context so upstream calls forward it.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Request = c.Request.WithContext(utils.WithRequestID(c.Request.Context(), id))
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// RequestID returns the id assigned by RequestIDMiddleware
func RequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
