package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-frontend/internal/upstream"
)

// Upstream maps a failed backend call to the client response.
//
// A backend that answered keeps its status; a JSON body is relayed unchanged,
// anything else becomes the generic body. An unreachable backend yields 502,
// a timeout 504.
func Upstream(c *gin.Context, err error) {
	ue, ok := upstream.AsError(err)
	if !ok {
		Internal(c, "internal_error", MsgInternal)
		return
	}

	switch {
	case ue.Timeout:
		Write(c, http.StatusGatewayTimeout, "upstream_timeout", MsgServiceTimeout)
	case ue.Unreachable():
		Write(c, http.StatusBadGateway, "upstream_unavailable", MsgServiceDown)
	case upstream.IsJSON(ue.Body) && ue.Status >= 400:
		c.Data(ue.Status, "application/json; charset=utf-8", ue.Body)
	default:
		Write(c, statusOrInternal(ue.Status), "upstream_error", MsgInternal)
	}
}

// UpstreamMessage is Upstream with a fixed message in place of the generic one.
// A JSON error body from the backend still wins.
func UpstreamMessage(c *gin.Context, err error, code, message string) {
	ue, ok := upstream.AsError(err)
	switch {
	case !ok:
		Internal(c, code, message)
	case ue.Timeout:
		Write(c, http.StatusGatewayTimeout, code, message)
	case ue.Unreachable():
		Write(c, http.StatusBadGateway, code, message)
	case upstream.IsJSON(ue.Body) && ue.Status >= 400:
		c.Data(ue.Status, "application/json; charset=utf-8", ue.Body)
	default:
		Write(c, statusOrInternal(ue.Status), code, message)
	}
}

// Response relays a completed non-2xx backend response.
func Response(c *gin.Context, service string, resp *upstream.Response) {
	Upstream(c, &upstream.Error{Service: service, Status: resp.Status, Body: resp.Body})
}

func statusOrInternal(status int) int {
	if status < 400 || status > 599 {
		return http.StatusInternalServerError
	}
	return status
}
