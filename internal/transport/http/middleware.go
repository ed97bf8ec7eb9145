package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionHeader carries the anonymous cart session between requests.
// Clients that omit it get a fresh session minted and echoed back.
const SessionHeader = "X-Session-ID"

const sessionKey = "session_id"

// SessionMiddleware resolves the request's session ID, minting one when
// the client sends none, and always echoes it in the response.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(SessionHeader)
		if sessionID == "" {
			sessionID = uuid.New().String()
		}
		c.Set(sessionKey, sessionID)
		c.Header(SessionHeader, sessionID)
		c.Next()
	}
}

// sessionID returns the session resolved by SessionMiddleware.
func sessionID(c *gin.Context) string {
	return c.GetString(sessionKey)
}

// RequestLogger logs every request with its latency and status.
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("session_id", sessionID(c)),
		)
	}
}
