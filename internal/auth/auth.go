// Package auth gates the application behind its single owner: first-run
// setup, password login with optional TOTP, and signed session tokens.
package auth

import (
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/budgeter/internal/apperr"
)

var (
	ErrSetupComplete      = apperr.New(apperr.ErrConflict, "setup already completed")
	ErrNoUser             = apperr.New(apperr.ErrNotFound, "no user found")
	ErrInvalidCredentials = apperr.New(apperr.ErrUnauthorized, "invalid credentials")
	ErrOTPRequired        = apperr.New(apperr.ErrUnauthorized, "otp_required")
	ErrInvalidOTP         = apperr.New(apperr.ErrUnauthorized, "invalid_otp")
	ErrInvalidSession     = apperr.New(apperr.ErrUnauthorized, "unauthorized")

	ErrTwoFactorEnabled        = apperr.New(apperr.ErrValidation, "2fa already enabled")
	ErrTwoFactorNotInitialized = apperr.New(apperr.ErrValidation, "2fa not initialized")
	ErrTwoFactorNotEnabled     = apperr.New(apperr.ErrValidation, "2fa not enabled")
)

// User is the owner. There is at most one.
type User struct {
	ID               uuid.UUID
	Email            string
	Name             *string
	PasswordHash     string
	TwoFactorSecret  *string
	TwoFactorEnabled bool
	CreatedAt        time.Time
}

// Claims identify the owner inside a session token.
type Claims struct {
	UserID uuid.UUID
	Email  string
}

// Session is the outcome of a successful setup or login.
type Session struct {
	User  *User
	Token string
}

// Enrollment is a freshly generated TOTP secret awaiting verification.
type Enrollment struct {
	Secret string
	URL    string
	// QRCode is a PNG data URL of URL.
	QRCode string
}
