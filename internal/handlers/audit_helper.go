package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-frontend/internal/audit"
	"github.com/BruksfildServices01/barber-frontend/internal/middleware"
)

func writeAudit(
	d *audit.Dispatcher,
	c *gin.Context,
	sessionID string,
	userID *uint,
	action string,
	meta any,
) {
	d.Dispatch(audit.Event{
		SessionID: sessionID,
		UserID:    userID,
		Action:    action,
		Entity:    "session",
		RequestID: middleware.RequestIDFrom(c),
		Metadata:  meta,
	})
}
