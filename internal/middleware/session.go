package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-frontend/internal/session"
)

// Sessions loads the browser's session into the context.
// A cookie that no longer resolves is cleared.
func Sessions(m *session.Manager, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, err := c.Cookie(session.CookieName)
		if err != nil || value == "" {
			c.Next()
			return
		}

		s, err := m.Load(c.Request.Context(), value)
		switch {
		case err == nil:
			c.Set(ContextSession, s)
		case errors.Is(err, session.ErrNotFound), errors.Is(err, session.ErrInvalidCookie):
			http.SetCookie(c.Writer, m.ExpiredCookie())
		default:
			// store down: treat as anonymous but keep the cookie
			log.Warn("session load failed", zap.Error(err), zap.String("request_id", RequestIDFrom(c)))
		}

		c.Next()
	}
}
