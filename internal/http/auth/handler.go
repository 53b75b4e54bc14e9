package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/budgeter/internal/auth"
	"github.com/MrJamesThe3rd/budgeter/internal/http/respond"
	"github.com/MrJamesThe3rd/budgeter/internal/metrics"
)

const CookieName = "budgeter_session"

type Handler struct {
	svc    *auth.Service
	secure bool
}

// NewHandler builds the auth endpoints. secure marks the session cookie
// Secure, which production deployments behind TLS need.
func NewHandler(svc *auth.Service, secure bool) *Handler {
	return &Handler{svc: svc, secure: secure}
}

// PublicRoutes are reachable without a session.
func (h *Handler) PublicRoutes(r chi.Router) {
	r.Get("/status", h.status)
	r.Post("/setup", h.setup)
	r.Post("/login", h.login)
	r.Post("/logout", h.logout)
}

// Routes require a session.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/me", h.me)
	r.Post("/2fa/setup", h.setupTwoFactor)
	r.Post("/2fa/verify", h.verifyTwoFactor)
	r.Post("/2fa/disable", h.disableTwoFactor)
}

func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	done, err := h.svc.SetupComplete(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, r, http.StatusOK, statusResponse{SetupComplete: done})
}

type setupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

func (h *Handler) setup(w http.ResponseWriter, r *http.Request) {
	var req setupRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	session, err := h.svc.Setup(r.Context(), auth.SetupParams{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	h.setCookie(w, session.Token)
	respond.JSON(w, r, http.StatusCreated, toUserResponse(session.User))
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	OTP      string `json:"otp"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	session, err := h.svc.Login(r.Context(), auth.LoginParams{
		Email:    req.Email,
		Password: req.Password,
		OTP:      req.OTP,
	})
	metrics.LoginAttempt(loginResult(err))

	if err != nil {
		respond.Error(w, r, err)
		return
	}

	h.setCookie(w, session.Token)
	respond.JSON(w, r, http.StatusOK, toUserResponse(session.User))
}

func loginResult(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, auth.ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, auth.ErrOTPRequired):
		return "otp_required"
	case errors.Is(err, auth.ErrInvalidOTP):
		return "invalid_otp"
	default:
		return "error"
	}
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   h.secure,
		MaxAge:   -1,
	})

	respond.JSON(w, r, http.StatusOK, statusOK{Status: "ok"})
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		respond.Error(w, r, auth.ErrInvalidSession)
		return
	}

	respond.JSON(w, r, http.StatusOK, meResponse{ID: claims.UserID.String(), Email: claims.Email})
}

func (h *Handler) setupTwoFactor(w http.ResponseWriter, r *http.Request) {
	enrollment, err := h.svc.SetupTwoFactor(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, r, http.StatusOK, enrollmentResponse{
		OTPAuthURL: enrollment.URL,
		QRCode:     enrollment.QRCode,
		Secret:     enrollment.Secret,
	})
}

type otpRequest struct {
	OTP string `json:"otp"`
}

func (h *Handler) verifyTwoFactor(w http.ResponseWriter, r *http.Request) {
	var req otpRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	if err := h.svc.VerifyTwoFactor(r.Context(), req.OTP); err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, r, http.StatusOK, statusOK{Status: "enabled"})
}

func (h *Handler) disableTwoFactor(w http.ResponseWriter, r *http.Request) {
	var req otpRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	if err := h.svc.DisableTwoFactor(r.Context(), req.OTP); err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, r, http.StatusOK, statusOK{Status: "disabled"})
}

func (h *Handler) setCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   h.secure,
		MaxAge:   int(auth.SessionTTL / time.Second),
	})
}
