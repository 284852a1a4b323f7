package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-frontend/internal/models"
	"github.com/BruksfildServices01/barber-frontend/internal/session"
)

const (
	ContextSession   = "session"
	ContextUser      = "user"
	ContextToken     = "token"
	ContextRequestID = "requestID"
)

// SessionFrom returns the loaded session, or nil for anonymous visitors.
func SessionFrom(c *gin.Context) *session.Session {
	if v, ok := c.Get(ContextSession); ok {
		if s, ok := v.(*session.Session); ok {
			return s
		}
	}
	return nil
}

// UserFrom returns the identity verified by the guard, falling back to the session user.
func UserFrom(c *gin.Context) *models.User {
	if v, ok := c.Get(ContextUser); ok {
		if u, ok := v.(*models.User); ok {
			return u
		}
	}
	if s := SessionFrom(c); s != nil {
		return s.User
	}
	return nil
}

func TokenFrom(c *gin.Context) string {
	return c.GetString(ContextToken)
}

func RequestIDFrom(c *gin.Context) string {
	return c.GetString(ContextRequestID)
}

func SessionIDFrom(c *gin.Context) string {
	if s := SessionFrom(c); s != nil {
		return s.ID
	}
	return ""
}
