package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-frontend/internal/models"
)

const (
	CookieName = "barber_session"
	DefaultTTL = 24 * time.Hour
)

var ErrInvalidCookie = errors.New("invalid session cookie")

type Options struct {
	Secret string
	TTL    time.Duration
	Secure bool
}

// Manager issues sessions and the signed cookie that points to them.
// The cookie only carries the session id; user and token stay in the store.
type Manager struct {
	store  Store
	secret []byte
	ttl    time.Duration
	secure bool
	now    func() time.Time
}

func NewManager(store Store, opts Options) *Manager {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{
		store:  store,
		secret: []byte(opts.Secret),
		ttl:    ttl,
		secure: opts.Secure,
		now:    time.Now,
	}
}

func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Start creates a fresh session for a successful login.
// A new id is always issued so a pre-login cookie is never reused.
func (m *Manager) Start(ctx context.Context, user *models.User, token string) (*Session, string, error) {
	now := m.now()
	s := &Session{
		ID:        uuid.NewString(),
		User:      user,
		Token:     token,
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}

	if err := m.store.Save(ctx, s); err != nil {
		return nil, "", err
	}

	signed, err := m.sign(s)
	if err != nil {
		_ = m.store.Destroy(ctx, s.ID)
		return nil, "", err
	}
	return s, signed, nil
}

// Load resolves a cookie value to its session.
func (m *Manager) Load(ctx context.Context, cookie string) (*Session, error) {
	id, err := m.verify(cookie)
	if err != nil {
		return nil, err
	}
	return m.store.Get(ctx, id)
}

func (m *Manager) Destroy(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	return m.store.Destroy(ctx, id)
}

func (m *Manager) sign(s *Session) (string, error) {
	claims := jwt.RegisteredClaims{
		ID:        s.ID,
		IssuedAt:  jwt.NewNumericDate(s.CreatedAt),
		ExpiresAt: jwt.NewNumericDate(s.ExpiresAt),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("session: sign: %w", err)
	}
	return signed, nil
}

func (m *Manager) verify(value string) (string, error) {
	if value == "" {
		return "", ErrInvalidCookie
	}

	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(value, &claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil || claims.ID == "" {
		return "", ErrInvalidCookie
	}
	return claims.ID, nil
}

// Cookie wraps a signed value with the session cookie attributes.
func (m *Manager) Cookie(value string) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func (m *Manager) ExpiredCookie() *http.Cookie {
	c := m.Cookie("")
	c.MaxAge = -1
	return c
}
