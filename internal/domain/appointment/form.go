package appointment

// ===============================
// Booking form state
// ===============================

const (
	SlotPlaceholder   = "Selecciona un horario"
	MsgBookingSuccess = "¡Cita reservada exitosamente!"
	MsgBookingFailed  = "Error al reservar la cita"
	MsgSlotsFailed    = "No se pudo cargar la disponibilidad"
)

// BookingForm is what the booking page renders between requests.
type BookingForm struct {
	Values      AppointmentRequest
	Slots       []string
	Placeholder string
	Success     string
	Error       string
	SlotsError  string
	FieldErrors map[string]string
	MinDate     string
}

func NewBookingForm(minDate string) *BookingForm {
	return &BookingForm{
		Placeholder: SlotPlaceholder,
		Slots:       []string{},
		MinDate:     minDate,
	}
}

// Succeeded clears every value and returns the slot selector to its placeholder.
func (f *BookingForm) Succeeded() {
	f.Values = AppointmentRequest{}
	f.Slots = []string{}
	f.Placeholder = SlotPlaceholder
	f.Success = MsgBookingSuccess
	f.Error = ""
	f.FieldErrors = nil
}

// Failed keeps the entered values and shows msg, or the generic message when empty.
func (f *BookingForm) Failed(msg string) {
	if msg == "" {
		msg = MsgBookingFailed
	}
	f.Success = ""
	f.Error = msg
}

func (f *BookingForm) Invalid(err *ValidationError) {
	f.Success = ""
	f.FieldErrors = err.Fields
	f.Error = ""
}

// SlotsUnavailable drops any stale slots and flags the terminal load error.
func (f *BookingForm) SlotsUnavailable() {
	f.Slots = []string{}
	f.SlotsError = MsgSlotsFailed
}

// Selected reports whether slot is the one currently chosen.
func (f *BookingForm) Selected(slot string) bool {
	return f.Values.Time == slot
}
