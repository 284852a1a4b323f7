package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	domain "github.com/BruksfildServices01/barber-frontend/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-frontend/internal/httperr"
	"github.com/BruksfildServices01/barber-frontend/internal/middleware"
	"github.com/BruksfildServices01/barber-frontend/internal/models"
	"github.com/BruksfildServices01/barber-frontend/internal/upstream"
	ucAppointment "github.com/BruksfildServices01/barber-frontend/internal/usecase/appointment"
)

const msgLoadFailed = "Error al cargar los datos"

// Catalog is what the pages need from the barbers and products services.
type Catalog interface {
	Barbers(ctx context.Context) ([]models.Barber, error)
	Products(ctx context.Context) ([]models.Product, error)
}

type PublicWebHandler struct {
	catalog      Catalog
	availability *ucAppointment.GetAvailability
	create       *ucAppointment.CreateBooking
	timezone     string
	log          *zap.Logger
}

func NewPublicWebHandler(
	catalog Catalog,
	availability *ucAppointment.GetAvailability,
	create *ucAppointment.CreateBooking,
	timezone string,
	log *zap.Logger,
) *PublicWebHandler {
	return &PublicWebHandler{
		catalog:      catalog,
		availability: availability,
		create:       create,
		timezone:     timezone,
		log:          log,
	}
}

func pageData(c *gin.Context, title string) gin.H {
	return gin.H{
		"Title": title,
		"User":  middleware.UserFrom(c),
		"Error": "",
	}
}

// ======================================================
// LANDING
// ======================================================

func (h *PublicWebHandler) Index(c *gin.Context) {
	data := pageData(c, "")

	var barbers []models.Barber
	var products []models.Product

	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		var err error
		barbers, err = h.catalog.Barbers(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		products, err = h.catalog.Products(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		h.log.Warn("landing data failed", zap.Error(err), zap.String("request_id", middleware.RequestIDFrom(c)))
		barbers, products = nil, nil
		data["Error"] = msgLoadFailed
	}

	data["Barberos"] = nonNil(barbers)
	data["Productos"] = nonNil(products)
	c.HTML(http.StatusOK, "index.html", data)
}

func (h *PublicWebHandler) NotFound(c *gin.Context) {
	data := pageData(c, "")
	data["Barberos"] = []models.Barber{}
	data["Productos"] = []models.Product{}
	data["Error"] = httperr.MsgNotFound
	c.HTML(http.StatusNotFound, "index.html", data)
}

// ======================================================
// LOGIN PAGES
// ======================================================

func (h *PublicWebHandler) LoginPage(c *gin.Context) {
	if middleware.SessionFrom(c).Authenticated() {
		c.Redirect(http.StatusFound, "/")
		return
	}
	c.HTML(http.StatusOK, "login_user.html", pageData(c, "Iniciar sesión"))
}

func (h *PublicWebHandler) AdminLoginPage(c *gin.Context) {
	if middleware.SessionFrom(c).IsAdmin() {
		c.Redirect(http.StatusFound, "/adminManager")
		return
	}
	c.HTML(http.StatusOK, "login_admin.html", pageData(c, "Administrador"))
}

func (h *PublicWebHandler) ProductsPage(c *gin.Context) {
	data := pageData(c, "Productos")

	products, err := h.catalog.Products(c.Request.Context())
	if err != nil {
		h.log.Warn("products failed", zap.Error(err))
		data["Error"] = msgLoadFailed
	}
	data["Productos"] = nonNil(products)
	c.HTML(http.StatusOK, "productos.html", data)
}

// ======================================================
// BOOKING
// ======================================================

func (h *PublicWebHandler) BookingPage(c *gin.Context) {
	form := domain.NewBookingForm(today(h.timezone))

	var q domain.AvailabilityQuery
	_ = c.ShouldBindQuery(&q)
	form.Values.Date = q.Date
	form.Values.BarberID = q.BarberID

	h.loadSlots(c, form)
	h.renderBooking(c, http.StatusOK, form)
}

func (h *PublicWebHandler) BookingSubmit(c *gin.Context) {
	form := domain.NewBookingForm(today(h.timezone))

	var req domain.AppointmentRequest
	_ = c.ShouldBind(&req)
	form.Values = req

	s := middleware.SessionFrom(c)
	_, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateBookingInput{
		Request:   req,
		Token:     middleware.TokenFrom(c),
		SessionID: middleware.SessionIDFrom(c),
		UserID:    s.UserID(),
		RequestID: middleware.RequestIDFrom(c),
	})

	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		form.Invalid(verr)
		h.loadSlots(c, form)
		h.renderBooking(c, http.StatusUnprocessableEntity, form)

	case err != nil:
		status := http.StatusBadGateway
		msg := ""
		if ue, ok := upstream.AsError(err); ok && !ue.Unreachable() {
			status = ue.Status
			msg = ue.Message()
		}
		h.log.Info("booking rejected", zap.Error(err), zap.String("request_id", middleware.RequestIDFrom(c)))
		form.Failed(msg)
		h.loadSlots(c, form)
		h.renderBooking(c, status, form)

	default:
		form.Succeeded()
		h.renderBooking(c, http.StatusOK, form)
	}
}

// loadSlots fills the slot list for the form's date and barber.
// A failure leaves no slots and flags the form instead of offering the full grid.
func (h *PublicWebHandler) loadSlots(c *gin.Context, form *domain.BookingForm) {
	slots, err := h.availability.Execute(c.Request.Context(), form.Values.Query())
	if err != nil {
		h.log.Warn("availability failed", zap.Error(err), zap.String("request_id", middleware.RequestIDFrom(c)))
		form.SlotsUnavailable()
		return
	}
	form.Slots = slots
}

func (h *PublicWebHandler) renderBooking(c *gin.Context, status int, form *domain.BookingForm) {
	data := pageData(c, "Reservar")
	data["Form"] = form

	barbers, err := h.catalog.Barbers(c.Request.Context())
	if err != nil {
		h.log.Warn("barbers failed", zap.Error(err))
		data["Error"] = msgLoadFailed
	}
	data["Barberos"] = nonNil(barbers)

	c.HTML(status, "booking.html", data)
}

func nonNil[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return in
}
