package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-frontend/internal/httperr"
	"github.com/BruksfildServices01/barber-frontend/internal/httpresp"
	"github.com/BruksfildServices01/barber-frontend/internal/middleware"
)

type MeHandler struct{}

func NewMeHandler() *MeHandler {
	return &MeHandler{}
}

// GetMe returns the identity the guard verified for this request.
func (h *MeHandler) GetMe(c *gin.Context) {
	user := middleware.UserFrom(c)
	if user == nil {
		httperr.Unauthorized(c, "token_missing", httperr.MsgTokenMissing)
		return
	}
	httpresp.OK(c, gin.H{"user": user})
}
