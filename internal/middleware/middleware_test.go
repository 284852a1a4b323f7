package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-frontend/internal/httperr"
	"github.com/BruksfildServices01/barber-frontend/internal/models"
	"github.com/BruksfildServices01/barber-frontend/internal/session"
	"github.com/BruksfildServices01/barber-frontend/internal/upstream"
)

type fakeVerifier struct {
	calls int
	err   error
}

func (f *fakeVerifier) Verify(_ context.Context, token string) (*models.User, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &models.User{ID: 1, Name: "Ana", Role: "client"}, nil
}

func newEngine(t *testing.T, v Verifier, mode AuthMode) (*gin.Engine, *session.Manager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	m := session.NewManager(session.NewMemoryStore(), session.Options{Secret: "s"})
	g := NewGuard(v, nil, zap.NewNop())

	r := gin.New()
	r.Use(RequestID(), Sessions(m, zap.NewNop()))
	r.POST("/api/appointments", g.Require(mode), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"token": TokenFrom(c), "user": UserFrom(c)})
	})
	r.GET("/adminManager", RequireAdmin("/admin"), func(c *gin.Context) {
		c.String(http.StatusOK, "panel")
	})
	return r, m
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) httperr.HTTPError {
	t.Helper()
	var body httperr.HTTPError
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v (%s)", err, w.Body.String())
	}
	return body
}

func loggedInCookie(t *testing.T, m *session.Manager, user *models.User) *http.Cookie {
	t.Helper()
	_, signed, err := m.Start(context.Background(), user, "session-token")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	return m.Cookie(signed)
}

func TestGuardNoTokenSkipsAuthService(t *testing.T) {
	v := &fakeVerifier{}
	r, _ := newEngine(t, v, AuthRequired)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/appointments", nil))

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if body := decodeError(t, w); body.Message != httperr.MsgTokenMissing {
		t.Fatalf("expected %q, got %q", httperr.MsgTokenMissing, body.Message)
	}
	if v.calls != 0 {
		t.Fatalf("expected no auth call, got %d", v.calls)
	}
}

func TestGuardRejectedAndUnreachableShareShape(t *testing.T) {
	for name, verr := range map[string]error{
		"rejected":    &upstream.Error{Service: "auth", Status: 401, Body: []byte(`{"error":"bad"}`)},
		"unreachable": &upstream.Error{Service: "auth", Err: errors.New("connection refused")},
	} {
		t.Run(name, func(t *testing.T) {
			v := &fakeVerifier{err: verr}
			r, m := newEngine(t, v, AuthRequired)

			req := httptest.NewRequest(http.MethodPost, "/api/appointments", nil)
			req.AddCookie(loggedInCookie(t, m, &models.User{ID: 1}))
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", w.Code)
			}
			body := decodeError(t, w)
			if body.Message != httperr.MsgTokenInvalid || body.Code != "token_invalid" {
				t.Fatalf("unexpected body %+v", body)
			}
			if v.calls != 1 {
				t.Fatalf("expected one verify call, got %d", v.calls)
			}
		})
	}
}

func TestGuardAttachesVerifiedIdentity(t *testing.T) {
	v := &fakeVerifier{}
	r, m := newEngine(t, v, AuthRequired)

	req := httptest.NewRequest(http.MethodPost, "/api/appointments", nil)
	req.AddCookie(loggedInCookie(t, m, &models.User{ID: 1}))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var body struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body.Token != "session-token" || body.User.Name != "Ana" {
		t.Fatalf("unexpected context values %+v", body)
	}
}

func TestGuardBearerHeaderFallback(t *testing.T) {
	v := &fakeVerifier{}
	r, _ := newEngine(t, v, AuthRequired)

	req := httptest.NewRequest(http.MethodPost, "/api/appointments", nil)
	req.Header.Set("Authorization", "Bearer header-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK || v.calls != 1 {
		t.Fatalf("expected verified header token, got %d calls=%d", w.Code, v.calls)
	}
}

func TestGuardOptionalLetsAnonymousThrough(t *testing.T) {
	v := &fakeVerifier{}
	r, _ := newEngine(t, v, AuthOptional)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/appointments", nil))

	if w.Code != http.StatusOK || v.calls != 0 {
		t.Fatalf("expected anonymous pass, got %d calls=%d", w.Code, v.calls)
	}
}

func TestRequireAdmin(t *testing.T) {
	r, m := newEngine(t, &fakeVerifier{}, AuthRequired)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/adminManager", nil))
	if w.Code != http.StatusFound || w.Header().Get("Location") != "/admin" {
		t.Fatalf("expected redirect to /admin, got %d %s", w.Code, w.Header().Get("Location"))
	}

	req := httptest.NewRequest(http.MethodGet, "/adminManager", nil)
	req.AddCookie(loggedInCookie(t, m, &models.User{ID: 2, Role: models.RoleAdmin}))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected admin access, got %d", w.Code)
	}
}

func TestSessionsClearsUnknownCookie(t *testing.T) {
	r, _ := newEngine(t, &fakeVerifier{}, AuthRequired)

	req := httptest.NewRequest(http.MethodGet, "/adminManager", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "forged"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	found := false
	for _, c := range w.Result().Cookies() {
		if c.Name == session.CookieName && c.MaxAge < 0 {
			found = true
		}
	}
	if !found {
		t.Fatal("expected session cookie to be cleared")
	}
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/login", RateLimit(NewIPRateLimiter(60, 2)), func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
		codes = append(codes, w.Code)
	}
	if codes[0] != 200 || codes[1] != 200 || codes[2] != http.StatusTooManyRequests {
		t.Fatalf("unexpected codes %v", codes)
	}
}

func TestRateLimiterSweepsIdleVisitorsPeriodically(t *testing.T) {
	clock := time.Date(2030, 1, 10, 9, 0, 0, 0, time.UTC)
	l := NewIPRateLimiter(60, 5)
	l.idle = time.Second
	l.now = func() time.Time { return clock }

	l.Allow("10.0.0.1")
	clock = clock.Add(2 * time.Second)
	l.Allow("10.0.0.2")
	if len(l.visitors) != 2 {
		t.Fatalf("expected no sweep within the interval, got %d visitors", len(l.visitors))
	}

	clock = clock.Add(sweepEvery)
	l.Allow("10.0.0.3")
	if len(l.visitors) != 1 {
		t.Fatalf("expected idle visitors dropped, got %d", len(l.visitors))
	}
	if _, ok := l.visitors["10.0.0.3"]; !ok {
		t.Fatal("expected the current visitor to stay")
	}
}

func TestRequestIDPropagates(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, RequestIDFrom(c)) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(upstream.HeaderRequestID, "abc")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Body.String() != "abc" || w.Header().Get(upstream.HeaderRequestID) != "abc" {
		t.Fatalf("expected request id to be reused, got %q", w.Body.String())
	}
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Recovery(zap.NewNop()))
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}

func TestRequirePageRedirects(t *testing.T) {
	gin.SetMode(gin.TestMode)
	v := &fakeVerifier{}
	m := session.NewManager(session.NewMemoryStore(), session.Options{Secret: "s"})
	g := NewGuard(v, nil, zap.NewNop())

	r := gin.New()
	r.Use(Sessions(m, zap.NewNop()))
	r.POST("/reservar", g.RequirePage(AuthRequired, "/login"), func(c *gin.Context) { c.String(http.StatusOK, TokenFrom(c)) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/reservar", nil))
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/login" || v.calls != 0 {
		t.Fatalf("expected redirect without auth call, got %d calls=%d", w.Code, v.calls)
	}

	req := httptest.NewRequest(http.MethodPost, "/reservar", nil)
	req.AddCookie(loggedInCookie(t, m, &models.User{ID: 1}))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK || w.Body.String() != "session-token" {
		t.Fatalf("expected verified pass, got %d %s", w.Code, w.Body.String())
	}
}
