package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-frontend/internal/audit"
	"github.com/BruksfildServices01/barber-frontend/internal/httperr"
	"github.com/BruksfildServices01/barber-frontend/internal/models"
	"github.com/BruksfildServices01/barber-frontend/internal/upstream"
)

type AuthMode string

const (
	AuthRequired AuthMode = "required"
	AuthOptional AuthMode = "optional"
)

// Verifier checks a token against the auth service.
type Verifier interface {
	Verify(ctx context.Context, token string) (*models.User, error)
}

type Guard struct {
	verifier Verifier
	audit    *audit.Dispatcher
	log      *zap.Logger
}

func NewGuard(verifier Verifier, dispatcher *audit.Dispatcher, log *zap.Logger) *Guard {
	return &Guard{verifier: verifier, audit: dispatcher, log: log}
}

// tokenFor prefers the session token and falls back to a bearer header.
func tokenFor(c *gin.Context) string {
	if s := SessionFrom(c); s.Authenticated() {
		return s.Token
	}

	header := c.GetHeader("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// check verifies the request's token. An unreachable auth service counts as a rejection.
func (g *Guard) check(c *gin.Context) (user *models.User, token string, reason string) {
	token = tokenFor(c)
	if token == "" {
		return nil, "", "no_token"
	}

	user, err := g.verifier.Verify(c.Request.Context(), token)
	if err != nil {
		fields := []zap.Field{zap.Error(err), zap.String("request_id", RequestIDFrom(c))}
		if ue, ok := upstream.AsError(err); ok && ue.Unreachable() {
			g.log.Warn("auth service unreachable, denying request", fields...)
		} else {
			g.log.Info("token rejected", fields...)
		}
		return nil, "", "invalid_token"
	}
	return user, token, ""
}

func (g *Guard) deny(c *gin.Context, reason string) {
	g.audit.Dispatch(audit.Event{
		SessionID: SessionIDFrom(c),
		Action:    audit.ActionAccessDenied,
		Entity:    "route",
		RequestID: RequestIDFrom(c),
		Metadata:  map[string]string{"path": c.FullPath(), "reason": reason},
	})
}

// Require is the JSON guard. Without a token it answers 401 and never calls the auth service.
func (g *Guard) Require(mode AuthMode) gin.HandlerFunc {
	return func(c *gin.Context) {
		if mode == AuthOptional && tokenFor(c) == "" {
			c.Next()
			return
		}

		user, token, reason := g.check(c)
		switch reason {
		case "no_token":
			g.deny(c, reason)
			httperr.Unauthorized(c, "token_missing", httperr.MsgTokenMissing)
			return
		case "invalid_token":
			g.deny(c, reason)
			httperr.Unauthorized(c, "token_invalid", httperr.MsgTokenInvalid)
			return
		}

		c.Set(ContextUser, user)
		c.Set(ContextToken, token)
		c.Next()
	}
}

// RequirePage is the guard for HTML routes: rejections redirect to loginPath.
func (g *Guard) RequirePage(mode AuthMode, loginPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if mode == AuthOptional && tokenFor(c) == "" {
			c.Next()
			return
		}

		user, token, reason := g.check(c)
		if reason != "" {
			g.deny(c, reason)
			c.Redirect(http.StatusSeeOther, loginPath)
			c.Abort()
			return
		}

		c.Set(ContextUser, user)
		c.Set(ContextToken, token)
		c.Next()
	}
}

// RequireAdmin only looks at the session role. Non admins go to redirect.
func RequireAdmin(redirect string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !SessionFrom(c).IsAdmin() {
			c.Redirect(http.StatusFound, redirect)
			c.Abort()
			return
		}
		c.Next()
	}
}
