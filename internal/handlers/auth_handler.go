package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-frontend/internal/audit"
	"github.com/BruksfildServices01/barber-frontend/internal/httperr"
	"github.com/BruksfildServices01/barber-frontend/internal/httpresp"
	"github.com/BruksfildServices01/barber-frontend/internal/middleware"
	"github.com/BruksfildServices01/barber-frontend/internal/session"
	"github.com/BruksfildServices01/barber-frontend/internal/upstream"
	"github.com/BruksfildServices01/barber-frontend/internal/validators"
)

const (
	msgLoginFailed  = "Error al iniciar sesión"
	msgLoggedOut    = "Sesión cerrada exitosamente"
	errSessionStore = "session_store_failed"
)

type AuthHandler struct {
	auth     *upstream.AuthAPI
	sessions *session.Manager
	audit    *audit.Dispatcher
	log      *zap.Logger
}

func NewAuthHandler(
	auth *upstream.AuthAPI,
	sessions *session.Manager,
	dispatcher *audit.Dispatcher,
	log *zap.Logger,
) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions, audit: dispatcher, log: log}
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var in validators.LoginInput
	if err := c.ShouldBindBodyWith(&in, binding.JSON); err != nil {
		rejectInput(c, in.Errors(err), "email", "password")
		return
	}

	resp, err := h.auth.Login(c.Request.Context(), rawBody(c), middleware.RequestIDFrom(c))
	h.finish(c, resp, err)
}

func (h *AuthHandler) Register(c *gin.Context) {
	var in validators.RegisterInput
	if err := c.ShouldBindBodyWith(&in, binding.JSON); err != nil {
		rejectInput(c, in.Errors(err), "name", "phone", "email", "password")
		return
	}

	resp, err := h.auth.Register(c.Request.Context(), rawBody(c), middleware.RequestIDFrom(c))
	h.finish(c, resp, err)
}

// rejectInput answers 400 with the first field message, or the generic one for unreadable bodies.
func rejectInput(c *gin.Context, errs validators.FieldErrors, order ...string) {
	if len(errs) == 0 {
		httperr.BadRequest(c, "invalid_request", validators.MsgInvalidRequest)
		return
	}
	httperr.Validation(c, http.StatusBadRequest, errs.First(order...), errs)
}

// rawBody is the request body cached by ShouldBindBodyWith, forwarded as received.
func rawBody(c *gin.Context) []byte {
	if v, ok := c.Get(gin.BodyBytesKey); ok {
		if b, ok := v.([]byte); ok {
			return b
		}
	}
	return nil
}

// finish turns an auth service answer into a session and relays the body unchanged.
func (h *AuthHandler) finish(c *gin.Context, resp *upstream.Response, err error) {
	if err != nil {
		h.log.Warn("auth service call failed", zap.Error(err), zap.String("request_id", middleware.RequestIDFrom(c)))
		httperr.Upstream(c, err)
		return
	}
	if !resp.OK() {
		httperr.Response(c, upstream.ServiceAuth, resp)
		return
	}

	if err := h.startSession(c, resp.Body); err != nil {
		if httperr.IsBusiness(err, errSessionStore) {
			httperr.Business(c, err, msgLoginFailed)
			return
		}
		h.log.Error("unexpected auth response", zap.Error(err))
		httperr.Business(c, httperr.ErrBusinessStatus("upstream_error", http.StatusBadGateway), httperr.MsgInternal)
		return
	}

	httpresp.Raw(c, resp.Status, resp.Body)
}

// startSession replaces any current session with a fresh one.
func (h *AuthHandler) startSession(c *gin.Context, body []byte) error {
	res, err := upstream.ParseLoginResult(body)
	if err != nil {
		return err
	}

	ctx := c.Request.Context()
	if old := middleware.SessionFrom(c); old != nil {
		_ = h.sessions.Destroy(ctx, old.ID)
	}

	s, signed, err := h.sessions.Start(ctx, res.User, res.AccessToken)
	if err != nil {
		h.log.Error("session save failed", zap.Error(err))
		return httperr.ErrBusiness(errSessionStore)
	}

	http.SetCookie(c.Writer, h.sessions.Cookie(signed))
	c.Set(middleware.ContextSession, s)

	writeAudit(h.audit, c, s.ID, s.UserID(), audit.ActionSessionCreated, map[string]string{"role": s.Role()})
	return nil
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if s := middleware.SessionFrom(c); s != nil {
		if err := h.sessions.Destroy(c.Request.Context(), s.ID); err != nil {
			h.log.Warn("session destroy failed", zap.Error(err))
		}
		writeAudit(h.audit, c, s.ID, s.UserID(), audit.ActionSessionDestroyed, nil)
	}

	http.SetCookie(c.Writer, h.sessions.ExpiredCookie())
	httpresp.OK(c, gin.H{"message": msgLoggedOut})
}
