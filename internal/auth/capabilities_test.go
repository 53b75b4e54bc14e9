package auth_test

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/budgeter/internal/auth"
)

func TestArgon2Hasher(t *testing.T) {
	h := &auth.Argon2Hasher{Time: 1, Memory: 8 * 1024, Threads: 1, KeyLen: 32, SaltLen: 16}

	encoded, err := h.Hash("correct horse")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(encoded, "$argon2id$v=19$m=8192,t=1,p=1$"))

	ok, err := h.Verify(encoded, "correct horse")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Verify(encoded, "battery staple")
	require.NoError(t, err)
	assert.False(t, ok)

	other, err := h.Hash("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, encoded, other, "salt must differ per hash")

	_, err = h.Verify("not-a-hash", "x")
	assert.Error(t, err)
}

func TestTokenIssuer(t *testing.T) {
	issuer := auth.NewTokenIssuer("test-secret")
	claims := auth.Claims{UserID: uuid.New(), Email: "owner@example.com"}

	token, err := issuer.Issue(claims)
	require.NoError(t, err)

	got, err := issuer.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, claims, *got)

	_, err = auth.NewTokenIssuer("other-secret").Parse(token)
	assert.ErrorIs(t, err, auth.ErrInvalidSession)

	_, err = issuer.Parse(token + "x")
	assert.ErrorIs(t, err, auth.ErrInvalidSession)
}

func TestTOTP(t *testing.T) {
	p := auth.NewTOTP("Budgeter")

	enrollment, err := p.Generate("owner@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, enrollment.Secret)
	assert.True(t, strings.HasPrefix(enrollment.URL, "otpauth://totp/"))
	assert.True(t, strings.HasPrefix(enrollment.QRCode, "data:image/png;base64,"))

	code, err := totp.GenerateCode(enrollment.Secret, time.Now().UTC())
	require.NoError(t, err)
	assert.True(t, p.Validate(code, enrollment.Secret))

	previous, err := totp.GenerateCode(enrollment.Secret, time.Now().UTC().Add(-30*time.Second))
	require.NoError(t, err)
	assert.True(t, p.Validate(previous, enrollment.Secret), "one step of skew is accepted")

	assert.False(t, p.Validate("abcdef", enrollment.Secret))
}
