package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvProduction  = "production"
	EnvDevelopment = "development"

	BookingAuthRequired = "required"
	BookingAuthOptional = "optional"

	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)

type Config struct {
	Env      string `mapstructure:"APP_ENV"`
	Port     string `mapstructure:"PORT"`
	LogLevel string `mapstructure:"LOG_LEVEL"`
	Timezone string `mapstructure:"TIMEZONE"`

	// Backend services
	APIURL             string        `mapstructure:"API_URL"`
	AuthServiceURL     string        `mapstructure:"AUTH_SERVICE_URL"`
	BarbersServiceURL  string        `mapstructure:"BARBERS_SERVICE_URL"`
	AppointmentsURL    string        `mapstructure:"APPOINTMENTS_SERVICE_URL"`
	ProductsServiceURL string        `mapstructure:"PRODUCTS_SERVICE_URL"`
	UpstreamTimeout    time.Duration `mapstructure:"UPSTREAM_TIMEOUT"`

	// Sessions
	SessionSecret string        `mapstructure:"SESSION_SECRET"`
	SessionTTL    time.Duration `mapstructure:"SESSION_TTL"`
	SessionStore  string        `mapstructure:"SESSION_STORE"`
	RedisAddr     string        `mapstructure:"REDIS_ADDR"`
	RedisPassword string        `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int           `mapstructure:"REDIS_DB"`

	// Booking
	OpeningHour int    `mapstructure:"OPENING_HOUR"`
	ClosingHour int    `mapstructure:"CLOSING_HOUR"`
	BookingAuth string `mapstructure:"BOOKING_AUTH"`

	AuditDatabaseURL   string `mapstructure:"AUDIT_DATABASE_URL"`
	CORSOrigins        string `mapstructure:"CORS_ORIGINS"`
	LoginRatePerMinute int    `mapstructure:"LOGIN_RATE_PER_MINUTE"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", EnvDevelopment)
	v.SetDefault("PORT", "5005")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("TIMEZONE", "America/Bogota")

	v.SetDefault("API_URL", "http://api-gateway:5000")
	v.SetDefault("AUTH_SERVICE_URL", "")
	v.SetDefault("BARBERS_SERVICE_URL", "")
	v.SetDefault("APPOINTMENTS_SERVICE_URL", "")
	v.SetDefault("PRODUCTS_SERVICE_URL", "")
	v.SetDefault("UPSTREAM_TIMEOUT", "10s")

	v.SetDefault("SESSION_SECRET", "")
	v.SetDefault("SESSION_TTL", "24h")
	v.SetDefault("SESSION_STORE", SessionStoreMemory)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("OPENING_HOUR", 9)
	v.SetDefault("CLOSING_HOUR", 18)
	v.SetDefault("BOOKING_AUTH", BookingAuthRequired)

	v.SetDefault("AUDIT_DATABASE_URL", "")
	v.SetDefault("CORS_ORIGINS", "http://localhost:5000,http://localhost:5005")
	v.SetDefault("LOGIN_RATE_PER_MINUTE", 20)
}

// Load reads .env (when present) and the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	cfg.applyServiceDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyServiceDefaults() {
	base := strings.TrimRight(c.APIURL, "/")

	if c.AuthServiceURL == "" {
		c.AuthServiceURL = base + "/api/auth"
	}
	if c.BarbersServiceURL == "" {
		c.BarbersServiceURL = base + "/api/barbers"
	}
	if c.AppointmentsURL == "" {
		c.AppointmentsURL = base + "/api/appointments"
	}
	if c.ProductsServiceURL == "" {
		c.ProductsServiceURL = base + "/api/products"
	}
	if c.SessionSecret == "" && !c.IsProduction() {
		c.SessionSecret = "dev-session-secret"
	}
}

func (c *Config) Validate() error {
	var errs []error

	if c.OpeningHour < 0 || c.OpeningHour > 23 || c.ClosingHour < 0 || c.ClosingHour > 23 {
		errs = append(errs, errors.New("OPENING_HOUR and CLOSING_HOUR must be between 0 and 23"))
	}
	if c.OpeningHour > c.ClosingHour {
		errs = append(errs, errors.New("OPENING_HOUR must not be after CLOSING_HOUR"))
	}

	switch c.BookingAuth {
	case BookingAuthRequired, BookingAuthOptional:
	default:
		errs = append(errs, fmt.Errorf("unknown BOOKING_AUTH %q", c.BookingAuth))
	}

	switch c.SessionStore {
	case SessionStoreMemory, SessionStoreRedis:
	default:
		errs = append(errs, fmt.Errorf("unknown SESSION_STORE %q", c.SessionStore))
	}

	if c.SessionSecret == "" {
		errs = append(errs, errors.New("SESSION_SECRET is required in production"))
	}
	if c.SessionTTL <= 0 {
		errs = append(errs, errors.New("SESSION_TTL must be positive"))
	}
	if c.UpstreamTimeout <= 0 {
		errs = append(errs, errors.New("UPSTREAM_TIMEOUT must be positive"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.Port)
}

// Origins splits CORS_ORIGINS into a clean list.
func (c *Config) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
