package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionTTL is how long a session token and its cookie stay valid.
const SessionTTL = 7 * 24 * time.Hour

type sessionClaims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// TokenIssuer signs session tokens with HS256.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenIssuer(secret string) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: SessionTTL, now: time.Now}
}

func (t *TokenIssuer) Issue(c Claims) (string, error) {
	now := t.now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		UserID: c.UserID.String(),
		Email:  c.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   c.UserID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	})

	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

func (t *TokenIssuer) Parse(token string) (*Claims, error) {
	var sc sessionClaims

	_, err := jwt.ParseWithClaims(token, &sc, func(*jwt.Token) (any, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(t.now))
	if err != nil {
		return nil, ErrInvalidSession
	}

	id, err := uuid.Parse(sc.UserID)
	if err != nil {
		return nil, ErrInvalidSession
	}

	return &Claims{UserID: id, Email: sc.Email}, nil
}
