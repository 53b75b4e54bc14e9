package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MrJamesThe3rd/budgeter/internal/apperr"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=auth
type Repository interface {
	// FirstUser returns the owner, or ErrNoUser before setup.
	FirstUser(ctx context.Context) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	// CreateOwner inserts u only if no user exists yet, otherwise ErrSetupComplete.
	CreateOwner(ctx context.Context, u *User) error
	SetTwoFactor(ctx context.Context, u *User) error
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(encoded, password string) (bool, error)
}

type OTPProvider interface {
	Generate(accountName string) (*Enrollment, error)
	Validate(code, secret string) bool
}

type TokenSigner interface {
	Issue(c Claims) (string, error)
	Parse(token string) (*Claims, error)
}

type Service struct {
	repo   Repository
	hasher PasswordHasher
	otp    OTPProvider
	tokens TokenSigner
}

func NewService(repo Repository, hasher PasswordHasher, otp OTPProvider, tokens TokenSigner) *Service {
	return &Service{repo: repo, hasher: hasher, otp: otp, tokens: tokens}
}

// SetupComplete reports whether the owner has been created.
func (s *Service) SetupComplete(ctx context.Context) (bool, error) {
	_, err := s.repo.FirstUser(ctx)
	if err != nil {
		if errors.Is(err, ErrNoUser) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

type SetupParams struct {
	Email    string
	Password string
	Name     string
}

func (s *Service) Setup(ctx context.Context, params SetupParams) (*Session, error) {
	email := strings.TrimSpace(params.Email)
	if email == "" || params.Password == "" {
		return nil, apperr.Invalid("email", "and password are required")
	}

	hash, err := s.hasher.Hash(params.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	u := &User{
		Email:        email,
		PasswordHash: hash,
	}

	if name := strings.TrimSpace(params.Name); name != "" {
		u.Name = &name
	}

	if err := s.repo.CreateOwner(ctx, u); err != nil {
		return nil, err
	}

	return s.session(u)
}

type LoginParams struct {
	Email    string
	Password string
	OTP      string
}

func (s *Service) Login(ctx context.Context, params LoginParams) (*Session, error) {
	if params.Email == "" || params.Password == "" {
		return nil, apperr.Invalid("email", "and password are required")
	}

	u, err := s.repo.GetUserByEmail(ctx, strings.TrimSpace(params.Email))
	if err != nil {
		if errors.Is(err, ErrNoUser) {
			return nil, ErrInvalidCredentials
		}

		return nil, err
	}

	ok, err := s.hasher.Verify(u.PasswordHash, params.Password)
	if err != nil {
		return nil, fmt.Errorf("verifying password: %w", err)
	}

	if !ok {
		return nil, ErrInvalidCredentials
	}

	if u.TwoFactorEnabled {
		if params.OTP == "" {
			return nil, ErrOTPRequired
		}

		if u.TwoFactorSecret == nil || !s.otp.Validate(params.OTP, *u.TwoFactorSecret) {
			return nil, ErrInvalidOTP
		}
	}

	return s.session(u)
}

func (s *Service) session(u *User) (*Session, error) {
	token, err := s.tokens.Issue(Claims{UserID: u.ID, Email: u.Email})
	if err != nil {
		return nil, fmt.Errorf("issuing session token: %w", err)
	}

	return &Session{User: u, Token: token}, nil
}

// Authenticate validates a session token.
func (s *Service) Authenticate(token string) (*Claims, error) {
	if token == "" {
		return nil, ErrInvalidSession
	}

	return s.tokens.Parse(token)
}

// SetupTwoFactor stores a new, not yet enabled, TOTP secret for the owner.
func (s *Service) SetupTwoFactor(ctx context.Context) (*Enrollment, error) {
	u, err := s.repo.FirstUser(ctx)
	if err != nil {
		return nil, err
	}

	if u.TwoFactorEnabled {
		return nil, ErrTwoFactorEnabled
	}

	enrollment, err := s.otp.Generate(u.Email)
	if err != nil {
		return nil, fmt.Errorf("generating totp secret: %w", err)
	}

	u.TwoFactorSecret = &enrollment.Secret
	if err := s.repo.SetTwoFactor(ctx, u); err != nil {
		return nil, err
	}

	return enrollment, nil
}

// VerifyTwoFactor enables two-factor login once code matches the pending secret.
func (s *Service) VerifyTwoFactor(ctx context.Context, code string) error {
	if code == "" {
		return apperr.Invalid("otp", "is required")
	}

	u, err := s.repo.FirstUser(ctx)
	if err != nil {
		return err
	}

	if u.TwoFactorSecret == nil {
		return ErrTwoFactorNotInitialized
	}

	if !s.otp.Validate(code, *u.TwoFactorSecret) {
		return ErrInvalidOTP
	}

	u.TwoFactorEnabled = true

	return s.repo.SetTwoFactor(ctx, u)
}

// DisableTwoFactor turns two-factor login off and forgets the secret.
func (s *Service) DisableTwoFactor(ctx context.Context, code string) error {
	if code == "" {
		return apperr.Invalid("otp", "is required")
	}

	u, err := s.repo.FirstUser(ctx)
	if err != nil {
		return err
	}

	if u.TwoFactorSecret == nil || !u.TwoFactorEnabled {
		return ErrTwoFactorNotEnabled
	}

	if !s.otp.Validate(code, *u.TwoFactorSecret) {
		return ErrInvalidOTP
	}

	u.TwoFactorEnabled = false
	u.TwoFactorSecret = nil

	return s.repo.SetTwoFactor(ctx, u)
}
