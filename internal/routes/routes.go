package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-frontend/internal/audit"
	"github.com/BruksfildServices01/barber-frontend/internal/config"
	domain "github.com/BruksfildServices01/barber-frontend/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-frontend/internal/handlers"
	infraRepo "github.com/BruksfildServices01/barber-frontend/internal/infra/repository"
	"github.com/BruksfildServices01/barber-frontend/internal/middleware"
	"github.com/BruksfildServices01/barber-frontend/internal/session"
	"github.com/BruksfildServices01/barber-frontend/internal/upstream"
	ucAppointment "github.com/BruksfildServices01/barber-frontend/internal/usecase/appointment"
	"github.com/BruksfildServices01/barber-frontend/internal/web"
)

// Infra holds the singletons built in main.
type Infra struct {
	Sessions *session.Manager
	Services *upstream.Services
	Audit    *audit.Dispatcher
	Logger   *zap.Logger
}

func RegisterRoutes(r *gin.Engine, cfg *config.Config, infra Infra) error {

	// ======================================================
	// TEMPLATES
	// ======================================================
	tmpl, err := web.Templates()
	if err != nil {
		return err
	}
	r.SetHTMLTemplate(tmpl)

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.Recovery(infra.Logger),
		middleware.RequestLogger(infra.Logger),
		middleware.CORS(cfg.Origins()),
		middleware.Sessions(infra.Sessions, infra.Logger),
	)

	// ======================================================
	// INFRA
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentHTTPRepository(infra.Services.Appointments)
	catalogRepo := infraRepo.NewCatalogHTTPRepository(infra.Services.Barbers, infra.Services.Products)

	guard := middleware.NewGuard(infra.Services.Auth, infra.Audit, infra.Logger)
	bookingMode := middleware.AuthMode(cfg.BookingAuth)
	loginLimiter := middleware.NewIPRateLimiter(cfg.LoginRatePerMinute, 0)

	// ======================================================
	// USE CASES
	// ======================================================
	availabilityUC := ucAppointment.NewGetAvailability(
		appointmentRepo,
		domain.WorkingHours{Opening: cfg.OpeningHour, Closing: cfg.ClosingHour},
	)
	createBookingUC := ucAppointment.NewCreateBooking(appointmentRepo, infra.Audit)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(infra.Services.Auth, infra.Sessions, infra.Audit, infra.Logger)
	meHandler := handlers.NewMeHandler()
	publicHandler := handlers.NewPublicHandler(infra.Services.Barbers, infra.Services.Products)
	appointmentHandler := handlers.NewAppointmentHandler(
		infra.Services.Appointments,
		availabilityUC,
		createBookingUC,
		infra.Logger,
	)
	publicWebHandler := handlers.NewPublicWebHandler(
		catalogRepo,
		availabilityUC,
		createBookingUC,
		cfg.Timezone,
		infra.Logger,
	)
	appWebHandler := handlers.NewAppWebHandler(catalogRepo, infra.Logger)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ======================================================
	// WEB
	// ======================================================
	r.GET("/", publicWebHandler.Index)
	r.GET("/login", publicWebHandler.LoginPage)
	r.GET("/admin", publicWebHandler.AdminLoginPage)
	r.GET("/productos", publicWebHandler.ProductsPage)
	r.GET("/reservar", publicWebHandler.BookingPage)
	r.POST("/reservar", guard.RequirePage(bookingMode, "/login"), publicWebHandler.BookingSubmit)

	r.GET("/adminManager", middleware.RequireAdmin("/admin"), appWebHandler.AdminManager)
	r.GET("/barber", guard.Require(middleware.AuthRequired), appWebHandler.BarberPage)
	r.GET("/venta", guard.Require(middleware.AuthRequired), appWebHandler.SalePage)

	// ======================================================
	// API
	// ======================================================
	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/login", middleware.RateLimit(loginLimiter), authHandler.Login)
		auth.POST("/register", middleware.RateLimit(loginLimiter), authHandler.Register)
		auth.GET("/logout", authHandler.Logout)
		auth.GET("/me", guard.Require(middleware.AuthRequired), meHandler.GetMe)
	}

	api.GET("/barbers", publicHandler.ListBarbers)
	api.GET("/barbers/:id/schedule", publicHandler.BarberSchedule)
	api.GET("/products", publicHandler.ListProducts)

	appointments := api.Group("/appointments")
	{
		appointments.GET("/available", appointmentHandler.Available)
		appointments.GET("/slots", appointmentHandler.Slots)
		appointments.POST("", guard.Require(bookingMode), appointmentHandler.Create)
	}

	r.NoRoute(publicWebHandler.NotFound)
	return nil
}
