package session

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/barber-frontend/internal/models"
)

func testUser() *models.User {
	return &models.User{ID: 7, Name: "Ana", Email: "ana@mail.com", Role: "client"}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	s := &Session{ID: "abc", User: testUser(), Token: "tok", ExpiresAt: time.Now().Add(time.Hour)}
	if err := store.Save(ctx, s); err != nil {
		t.Fatalf("save: %v", err)
	}

	s.User.Name = "changed after save"

	got, err := store.Get(ctx, "abc")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.User.Name != "Ana" || got.Token != "tok" {
		t.Fatalf("expected stored copy, got %+v", got.User)
	}

	if err := store.Destroy(ctx, "abc"); err != nil {
		t.Fatalf("destroy: %v", err)
	}
	if _, err := store.Get(ctx, "abc"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	now := time.Now()
	store.now = func() time.Time { return now }

	_ = store.Save(ctx, &Session{ID: "old", ExpiresAt: now.Add(-time.Second)})
	_ = store.Save(ctx, &Session{ID: "new", ExpiresAt: now.Add(time.Hour)})

	if _, err := store.Get(ctx, "old"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected expired session to be gone, got %v", err)
	}

	_ = store.Save(ctx, &Session{ID: "old2", ExpiresAt: now})
	if n := store.Sweep(); n != 1 {
		t.Fatalf("expected 1 swept, got %d", n)
	}
	if _, err := store.Get(ctx, "new"); err != nil {
		t.Fatalf("expected live session, got %v", err)
	}
}

func TestRedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	ctx := context.Background()
	store := NewRedisStore(client)

	s := &Session{ID: "r1", User: testUser(), Token: "tok", ExpiresAt: time.Now().Add(time.Hour)}
	if err := store.Save(ctx, s); err != nil {
		t.Fatalf("save: %v", err)
	}

	if ttl := mr.TTL("session:r1"); ttl <= 0 || ttl > time.Hour {
		t.Fatalf("expected ttl within an hour, got %s", ttl)
	}

	got, err := store.Get(ctx, "r1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.User == nil || got.User.ID != 7 || got.Token != "tok" {
		t.Fatalf("unexpected session %+v", got)
	}

	if err := store.Destroy(ctx, "r1"); err != nil {
		t.Fatalf("destroy: %v", err)
	}
	if _, err := store.Get(ctx, "r1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestManagerStartAndLoad(t *testing.T) {
	ctx := context.Background()
	m := NewManager(NewMemoryStore(), Options{Secret: "secret", Secure: true})

	s, signed, err := m.Start(ctx, testUser(), "tok")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if s.ExpiresAt.Sub(s.CreatedAt) != DefaultTTL {
		t.Fatalf("expected fixed 24h lifetime, got %s", s.ExpiresAt.Sub(s.CreatedAt))
	}

	loaded, err := m.Load(ctx, signed)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.ID != s.ID || !loaded.Authenticated() {
		t.Fatalf("unexpected session %+v", loaded)
	}

	other, _, _ := m.Start(ctx, testUser(), "tok")
	if other.ID == s.ID {
		t.Fatal("expected a new id per login")
	}

	c := m.Cookie(signed)
	if !c.HttpOnly || !c.Secure || c.SameSite != http.SameSiteLaxMode || c.MaxAge != 86400 {
		t.Fatalf("unexpected cookie attributes %+v", c)
	}
}

func TestManagerRejectsTamperedCookie(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	m := NewManager(store, Options{Secret: "secret"})
	forger := NewManager(store, Options{Secret: "other"})

	_, signed, err := forger.Start(ctx, testUser(), "tok")
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	if _, err := m.Load(ctx, signed); !errors.Is(err, ErrInvalidCookie) {
		t.Fatalf("expected ErrInvalidCookie, got %v", err)
	}
	if _, err := m.Load(ctx, "garbage"); !errors.Is(err, ErrInvalidCookie) {
		t.Fatalf("expected ErrInvalidCookie, got %v", err)
	}
}

func TestManagerRejectsExpiredCookie(t *testing.T) {
	ctx := context.Background()
	m := NewManager(NewMemoryStore(), Options{Secret: "secret", TTL: time.Minute})

	_, signed, err := m.Start(ctx, testUser(), "tok")
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	m.now = func() time.Time { return time.Now().Add(2 * time.Minute) }
	if _, err := m.Load(ctx, signed); err == nil {
		t.Fatal("expected expired cookie to be rejected")
	}
}

func TestSessionHelpers(t *testing.T) {
	var nilSession *Session
	if nilSession.Authenticated() || nilSession.IsAdmin() || nilSession.UserID() != nil {
		t.Fatal("nil session must be anonymous")
	}

	s := &Session{User: &models.User{ID: 3, Role: models.RoleAdmin}, Token: "t"}
	if !s.IsAdmin() || *s.UserID() != 3 || s.Role() != "admin" {
		t.Fatalf("unexpected helpers for %+v", s)
	}
}
