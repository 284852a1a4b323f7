package appointment

import (
	"context"

	"github.com/BruksfildServices01/barber-frontend/internal/audit"
	domain "github.com/BruksfildServices01/barber-frontend/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-frontend/internal/upstream"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	Request   domain.AppointmentRequest
	Token     string
	SessionID string
	UserID    *uint
	RequestID string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	submitter domain.BookingSubmitter
	audit     *audit.Dispatcher
}

func NewCreateBooking(
	submitter domain.BookingSubmitter,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		submitter: submitter,
		audit:     audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute submits exactly once. The returned body is the appointments service answer.
// Validation failures come back as *domain.ValidationError without any backend call.
func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) ([]byte, error) {

	if err := in.Request.Validate(); err != nil {
		return nil, err
	}

	body, err := uc.submitter.Submit(ctx, in.Token, in.Request)
	if err != nil {
		meta := map[string]any{"barbero": in.Request.BarberID, "fecha": in.Request.Date, "hora": in.Request.Time}
		if ue, ok := upstream.AsError(err); ok {
			meta["status"] = ue.Status
		}
		uc.audit.Dispatch(audit.Event{
			SessionID: in.SessionID,
			UserID:    in.UserID,
			Action:    audit.ActionAppointmentRejected,
			Entity:    "appointment",
			RequestID: in.RequestID,
			Metadata:  meta,
		})
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SessionID: in.SessionID,
		UserID:    in.UserID,
		Action:    audit.ActionAppointmentSubmitted,
		Entity:    "appointment",
		RequestID: in.RequestID,
		Metadata: map[string]any{
			"barbero":  in.Request.BarberID,
			"fecha":    in.Request.Date,
			"hora":     in.Request.Time,
			"servicio": in.Request.ServiceType,
		},
	})

	return body, nil
}
