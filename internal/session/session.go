package session

import (
	"time"

	"github.com/BruksfildServices01/barber-frontend/internal/models"
)

// Session is the per-browser record. It is always replaced whole, never merged.
type Session struct {
	ID        string       `json:"id"`
	User      *models.User `json:"user,omitempty"`
	Token     string       `json:"token,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
	ExpiresAt time.Time    `json:"expires_at"`
}

func (s *Session) Authenticated() bool {
	return s != nil && s.Token != ""
}

func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

func (s *Session) IsAdmin() bool {
	return s != nil && s.User.IsAdmin()
}

func (s *Session) Role() string {
	if s == nil || s.User == nil {
		return ""
	}
	return s.User.Role
}

func (s *Session) UserID() *uint {
	if s == nil || s.User == nil {
		return nil
	}
	id := s.User.ID
	return &id
}

func (s *Session) clone() *Session {
	cp := *s
	if s.User != nil {
		u := *s.User
		cp.User = &u
	}
	return &cp
}
