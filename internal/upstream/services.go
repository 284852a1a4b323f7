package upstream

import (
	"time"

	"github.com/BruksfildServices01/barber-frontend/internal/config"
)

const (
	ServiceAuth         = "auth"
	ServiceBarbers      = "barbers"
	ServiceAppointments = "appointments"
	ServiceProducts     = "products"
)

// Services holds one client per backend capability, built once at startup.
type Services struct {
	Auth         *AuthAPI
	Barbers      *Client
	Appointments *Client
	Products     *Client
}

func NewServices(cfg *config.Config) *Services {
	return NewServicesFromURLs(URLs{
		Auth:         cfg.AuthServiceURL,
		Barbers:      cfg.BarbersServiceURL,
		Appointments: cfg.AppointmentsURL,
		Products:     cfg.ProductsServiceURL,
	}, cfg.UpstreamTimeout)
}

type URLs struct {
	Auth         string
	Barbers      string
	Appointments string
	Products     string
}

func NewServicesFromURLs(u URLs, timeout time.Duration) *Services {
	return &Services{
		Auth:         NewAuthAPI(NewClient(ServiceAuth, u.Auth, timeout)),
		Barbers:      NewClient(ServiceBarbers, u.Barbers, timeout),
		Appointments: NewClient(ServiceAppointments, u.Appointments, timeout),
		Products:     NewClient(ServiceProducts, u.Products, timeout),
	}
}
