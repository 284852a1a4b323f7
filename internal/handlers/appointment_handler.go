package handlers

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/barber-frontend/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-frontend/internal/dto"
	"github.com/BruksfildServices01/barber-frontend/internal/httperr"
	"github.com/BruksfildServices01/barber-frontend/internal/httpresp"
	"github.com/BruksfildServices01/barber-frontend/internal/middleware"
	"github.com/BruksfildServices01/barber-frontend/internal/upstream"
	ucAppointment "github.com/BruksfildServices01/barber-frontend/internal/usecase/appointment"
	"github.com/BruksfildServices01/barber-frontend/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	appointments *upstream.Client
	availability *ucAppointment.GetAvailability
	create       *ucAppointment.CreateBooking
	log          *zap.Logger
}

func NewAppointmentHandler(
	appointments *upstream.Client,
	availability *ucAppointment.GetAvailability,
	create *ucAppointment.CreateBooking,
	log *zap.Logger,
) *AppointmentHandler {
	return &AppointmentHandler{
		appointments: appointments,
		availability: availability,
		create:       create,
		log:          log,
	}
}

// ======================================================
// AVAILABLE (booked times passthrough)
// ======================================================

func (h *AppointmentHandler) Available(c *gin.Context) {
	resp, err := h.appointments.Fetch(c.Request.Context(), upstream.Request{
		Method:    http.MethodGet,
		Path:      "/appointments/available",
		Query:     url.Values{"date": {c.Query("date")}, "barber": {c.Query("barber")}},
		RequestID: middleware.RequestIDFrom(c),
	}, nil)
	if err != nil {
		httperr.Upstream(c, err)
		return
	}
	httpresp.Raw(c, resp.Status, resp.Body)
}

// ======================================================
// SLOTS (availability engine)
// ======================================================

func (h *AppointmentHandler) Slots(c *gin.Context) {
	var q domain.AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BadRequest(c, "invalid_query", validators.MsgInvalidRequest)
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), q)
	if err != nil {
		h.log.Warn("availability failed", zap.Error(err), zap.String("request_id", middleware.RequestIDFrom(c)))
		httperr.Write(c, http.StatusBadGateway, "availability_unavailable", domain.MsgSlotsFailed)
		return
	}

	httpresp.List(c, dto.NewSlotDTOs(slots))
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req domain.AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil && !validators.IsValidation(err) {
		httperr.BadRequest(c, "invalid_request", validators.MsgInvalidRequest)
		return
	}

	s := middleware.SessionFrom(c)
	body, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateBookingInput{
		Request:   req,
		Token:     middleware.TokenFrom(c),
		SessionID: middleware.SessionIDFrom(c),
		UserID:    s.UserID(),
		RequestID: middleware.RequestIDFrom(c),
	})

	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		httperr.Validation(c, http.StatusUnprocessableEntity, httperr.MsgValidationFailed, verr.Fields)
	case err != nil:
		httperr.Upstream(c, err)
	default:
		httpresp.Raw(c, http.StatusOK, body)
	}
}
