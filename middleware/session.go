package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	SessionHeader = "X-Session-ID"
	ctxSessionID  = "sessionId"
)

// SessionMiddleware issues a browser session id when the client has none.
// It keys the remembered search filters.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(SessionHeader)
		if sessionID == "" {
			sessionID = uuid.NewString()
		}

		c.Set(ctxSessionID, sessionID)
		c.Writer.Header().Set(SessionHeader, sessionID)

		c.Next()
	}
}

// SessionID returns the id set by SessionMiddleware
func SessionID(c *gin.Context) string {
	return c.GetString(ctxSessionID)
}
