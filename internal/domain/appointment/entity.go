package appointment

import (
	"sort"
	"strings"

	"github.com/BruksfildServices01/barber-frontend/internal/validators"
)

// AppointmentRequest is what the booking form submits.
// Keys match the appointments service payload.
type AppointmentRequest struct {
	CustomerName string `json:"nombre" form:"nombre" binding:"required,notblank"`
	Phone        string `json:"telefono" form:"telefono" binding:"required,notblank"`
	Date         string `json:"fecha" form:"fecha" binding:"required,notblank"`
	Time         string `json:"hora" form:"hora" binding:"required,notblank"`
	BarberID     string `json:"barbero" form:"barbero" binding:"required,notblank"`
	ServiceType  string `json:"servicio" form:"servicio" binding:"required,notblank"`
}

type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		names = append(names, k)
	}
	sort.Strings(names)
	return "missing required fields: " + strings.Join(names, ", ")
}

const msgRequired = "Campo obligatorio"

// Validate checks presence only. Format checks belong to the appointments service.
func (r AppointmentRequest) Validate() error {
	if fields := validators.Translate(validators.Struct(r), nil, msgRequired); len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func (r AppointmentRequest) Query() AvailabilityQuery {
	return AvailabilityQuery{Date: r.Date, BarberID: r.BarberID}
}
