package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-frontend/internal/httperr"
	"github.com/BruksfildServices01/barber-frontend/internal/httpresp"
	"github.com/BruksfildServices01/barber-frontend/internal/middleware"
	"github.com/BruksfildServices01/barber-frontend/internal/upstream"
)

const (
	msgBarbersFailed  = "Error al obtener barberos"
	msgScheduleFailed = "Error al obtener horario"
	msgProductsFailed = "Error al obtener productos"
)

// PublicHandler relays the catalog endpoints that need no login.
type PublicHandler struct {
	barbers  *upstream.Client
	products *upstream.Client
}

func NewPublicHandler(barbers, products *upstream.Client) *PublicHandler {
	return &PublicHandler{barbers: barbers, products: products}
}

func (h *PublicHandler) ListBarbers(c *gin.Context) {
	h.relay(c, h.barbers, "", "barbers_error", msgBarbersFailed)
}

func (h *PublicHandler) BarberSchedule(c *gin.Context) {
	h.relay(c, h.barbers, "/"+c.Param("id")+"/schedule", "schedule_error", msgScheduleFailed)
}

func (h *PublicHandler) ListProducts(c *gin.Context) {
	h.relay(c, h.products, "", "products_error", msgProductsFailed)
}

// relay passes a 2xx body through. Failures keep the backend status and JSON body;
// the fixed message covers bodies that are not JSON.
func (h *PublicHandler) relay(c *gin.Context, client *upstream.Client, path, code, message string) {
	resp, err := client.Fetch(c.Request.Context(), upstream.Request{
		Method:    http.MethodGet,
		Path:      path,
		RequestID: middleware.RequestIDFrom(c),
	}, nil)
	if err != nil {
		httperr.UpstreamMessage(c, err, code, message)
		return
	}
	httpresp.Raw(c, resp.Status, resp.Body)
}
