package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ContextRequestID = "requestID"
	requestIDHeader  = "X-Request-ID"
	// caps client-supplied ids so they cannot flood the logs
	requestIDMaxLen = 64
)

// RequestID reuses the caller's X-Request-ID or generates a UUID
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(requestIDHeader)
		if rid == "" || len(rid) > requestIDMaxLen {
			rid = uuid.New().String()
		}

		c.Set(ContextRequestID, rid)
		c.Header(requestIDHeader, rid)
		c.Next()
	}
}
