package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	MsgInternal         = "Error interno del servidor"
	MsgTokenMissing     = "Token no proporcionado"
	MsgTokenInvalid     = "Token inválido"
	MsgNotFound         = "Página no encontrada"
	MsgTooManyRequests  = "Demasiadas solicitudes, intenta más tarde"
	MsgServiceDown      = "Servicio no disponible"
	MsgServiceTimeout   = "El servicio tardó demasiado en responder"
	MsgValidationFailed = "Datos inválidos"
)

// HTTPError is the body of every error the frontend generates itself.
// Backend error bodies are relayed as they come.
type HTTPError struct {
	Message string            `json:"error"`
	Code    string            `json:"error_code"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func Abort(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Abort(c, http.StatusUnauthorized, code, message)
}

func Validation(c *gin.Context, status int, message string, fields map[string]string) {
	c.JSON(status, HTTPError{
		Code:    "validation_failed",
		Message: message,
		Fields:  fields,
	})
}
