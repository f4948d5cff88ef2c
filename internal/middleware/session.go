package middleware

import (
	"context"
	"strings"

	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/contextutil"
	"go-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
)

const SessionHeader = "X-Session-ID"

// SessionResolver maps a session id to the username that owns it.
type SessionResolver func(ctx context.Context, sessionID string) (username string, err error)

// RequireSession rejects requests without a live session.
func RequireSession(resolve SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := strings.TrimSpace(c.GetHeader(SessionHeader))
		if sid == "" {
			response.FromError(c, apperror.ErrUnauthorized)
			c.Abort()
			return
		}

		username, err := resolve(c.Request.Context(), sid)
		if err != nil {
			response.FromError(c, err)
			c.Abort()
			return
		}

		c.Set("session_id", sid)
		c.Set("username", username)
		c.Request = c.Request.WithContext(
			contextutil.WithSession(c.Request.Context(), sid, username),
		)
		c.Next()
	}
}
