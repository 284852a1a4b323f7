package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AppWebHandler renders the pages behind a login.
type AppWebHandler struct {
	catalog Catalog
	log     *zap.Logger
}

func NewAppWebHandler(catalog Catalog, log *zap.Logger) *AppWebHandler {
	return &AppWebHandler{catalog: catalog, log: log}
}

func (h *AppWebHandler) AdminManager(c *gin.Context) {
	data := pageData(c, "Panel")

	barbers, err := h.catalog.Barbers(c.Request.Context())
	if err != nil {
		h.log.Warn("barbers failed", zap.Error(err))
		data["Error"] = msgLoadFailed
	}
	data["Barberos"] = nonNil(barbers)
	c.HTML(http.StatusOK, "admin_manager.html", data)
}

func (h *AppWebHandler) BarberPage(c *gin.Context) {
	c.HTML(http.StatusOK, "barber.html", pageData(c, "Barbero"))
}

func (h *AppWebHandler) SalePage(c *gin.Context) {
	data := pageData(c, "Venta")

	products, err := h.catalog.Products(c.Request.Context())
	if err != nil {
		h.log.Warn("products failed", zap.Error(err))
		data["Error"] = msgLoadFailed
	}
	data["Productos"] = nonNil(products)
	c.HTML(http.StatusOK, "venta.html", data)
}
