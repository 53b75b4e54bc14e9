package auth_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/budgeter/internal/apperr"
	"github.com/MrJamesThe3rd/budgeter/internal/auth"
)

type mocks struct {
	repo   *auth.MockRepository
	hasher *auth.MockPasswordHasher
	otp    *auth.MockOTPProvider
	tokens *auth.MockTokenSigner
}

func newService(ctrl *gomock.Controller) (*auth.Service, mocks) {
	m := mocks{
		repo:   auth.NewMockRepository(ctrl),
		hasher: auth.NewMockPasswordHasher(ctrl),
		otp:    auth.NewMockOTPProvider(ctrl),
		tokens: auth.NewMockTokenSigner(ctrl),
	}

	return auth.NewService(m.repo, m.hasher, m.otp, m.tokens), m
}

func TestService_Login(t *testing.T) {
	secret := "JBSWY3DPEHPK3PXP"

	plain := &auth.User{ID: uuid.New(), Email: "owner@example.com", PasswordHash: "hash"}
	twoFactor := &auth.User{ID: uuid.New(), Email: "owner@example.com", PasswordHash: "hash", TwoFactorEnabled: true, TwoFactorSecret: &secret}

	type args struct {
		params auth.LoginParams
	}

	type testCase struct {
		name      string
		args      args
		setupMock func(m mocks)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "Success",
			args: args{params: auth.LoginParams{Email: "owner@example.com", Password: "pw"}},
			setupMock: func(m mocks) {
				m.repo.EXPECT().GetUserByEmail(gomock.Any(), "owner@example.com").Return(plain, nil)
				m.hasher.EXPECT().Verify("hash", "pw").Return(true, nil)
				m.tokens.EXPECT().Issue(auth.Claims{UserID: plain.ID, Email: plain.Email}).Return("token", nil)
			},
		},
		{
			name: "UnknownEmail",
			args: args{params: auth.LoginParams{Email: "who@example.com", Password: "pw"}},
			setupMock: func(m mocks) {
				m.repo.EXPECT().GetUserByEmail(gomock.Any(), "who@example.com").Return(nil, auth.ErrNoUser)
			},
			wantErr: auth.ErrInvalidCredentials,
		},
		{
			name: "WrongPassword",
			args: args{params: auth.LoginParams{Email: "owner@example.com", Password: "nope"}},
			setupMock: func(m mocks) {
				m.repo.EXPECT().GetUserByEmail(gomock.Any(), gomock.Any()).Return(plain, nil)
				m.hasher.EXPECT().Verify("hash", "nope").Return(false, nil)
			},
			wantErr: auth.ErrInvalidCredentials,
		},
		{
			name: "OTPRequired",
			args: args{params: auth.LoginParams{Email: "owner@example.com", Password: "pw"}},
			setupMock: func(m mocks) {
				m.repo.EXPECT().GetUserByEmail(gomock.Any(), gomock.Any()).Return(twoFactor, nil)
				m.hasher.EXPECT().Verify("hash", "pw").Return(true, nil)
			},
			wantErr: auth.ErrOTPRequired,
		},
		{
			name: "InvalidOTP",
			args: args{params: auth.LoginParams{Email: "owner@example.com", Password: "pw", OTP: "000000"}},
			setupMock: func(m mocks) {
				m.repo.EXPECT().GetUserByEmail(gomock.Any(), gomock.Any()).Return(twoFactor, nil)
				m.hasher.EXPECT().Verify("hash", "pw").Return(true, nil)
				m.otp.EXPECT().Validate("000000", secret).Return(false)
			},
			wantErr: auth.ErrInvalidOTP,
		},
		{
			name: "ValidOTP",
			args: args{params: auth.LoginParams{Email: "owner@example.com", Password: "pw", OTP: "123456"}},
			setupMock: func(m mocks) {
				m.repo.EXPECT().GetUserByEmail(gomock.Any(), gomock.Any()).Return(twoFactor, nil)
				m.hasher.EXPECT().Verify("hash", "pw").Return(true, nil)
				m.otp.EXPECT().Validate("123456", secret).Return(true)
				m.tokens.EXPECT().Issue(gomock.Any()).Return("token", nil)
			},
		},
		{
			name:    "MissingPassword",
			args:    args{params: auth.LoginParams{Email: "owner@example.com"}},
			wantErr: apperr.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newService(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(m)
			}

			got, err := svc.Login(context.Background(), tt.args.params)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "token", got.Token)
		})
	}
}

func TestService_LoginErrorsAreUnauthorized(t *testing.T) {
	for _, err := range []error{auth.ErrInvalidCredentials, auth.ErrOTPRequired, auth.ErrInvalidOTP} {
		assert.ErrorIs(t, err, apperr.ErrUnauthorized)
	}

	assert.Equal(t, "otp_required", auth.ErrOTPRequired.Error())
	assert.Equal(t, "invalid_otp", auth.ErrInvalidOTP.Error())
}

func TestService_Setup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newService(ctrl)

	m.hasher.EXPECT().Hash("s3cret").Return("$argon2id$...", nil)
	m.repo.EXPECT().
		CreateOwner(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *auth.User) error {
			assert.Equal(t, "owner@example.com", u.Email)
			assert.Equal(t, "$argon2id$...", u.PasswordHash)
			u.ID = uuid.New()
			return nil
		})
	m.tokens.EXPECT().Issue(gomock.Any()).Return("token", nil)

	got, err := svc.Setup(context.Background(), auth.SetupParams{Email: " owner@example.com ", Password: "s3cret", Name: "Owner"})
	require.NoError(t, err)
	require.NotNil(t, got.User.Name)
	assert.Equal(t, "Owner", *got.User.Name)
	assert.Equal(t, "token", got.Token)
}

func TestService_Setup_AlreadyDone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newService(ctrl)

	m.hasher.EXPECT().Hash(gomock.Any()).Return("hash", nil)
	m.repo.EXPECT().CreateOwner(gomock.Any(), gomock.Any()).Return(auth.ErrSetupComplete)

	_, err := svc.Setup(context.Background(), auth.SetupParams{Email: "a@b.c", Password: "pw"})
	assert.ErrorIs(t, err, apperr.ErrConflict)
}

func TestService_SetupComplete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newService(ctrl)

	m.repo.EXPECT().FirstUser(gomock.Any()).Return(nil, auth.ErrNoUser)
	m.repo.EXPECT().FirstUser(gomock.Any()).Return(&auth.User{}, nil)

	done, err := svc.SetupComplete(context.Background())
	require.NoError(t, err)
	assert.False(t, done)

	done, err = svc.SetupComplete(context.Background())
	require.NoError(t, err)
	assert.True(t, done)
}

func TestService_TwoFactorLifecycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newService(ctrl)
	ctx := context.Background()

	owner := &auth.User{ID: uuid.New(), Email: "owner@example.com"}

	m.repo.EXPECT().FirstUser(gomock.Any()).Return(owner, nil).AnyTimes()
	m.repo.EXPECT().SetTwoFactor(gomock.Any(), owner).Return(nil).Times(3)

	m.otp.EXPECT().Generate("owner@example.com").Return(&auth.Enrollment{Secret: "SECRET", URL: "otpauth://totp/x"}, nil)
	enrollment, err := svc.SetupTwoFactor(ctx)
	require.NoError(t, err)
	assert.Equal(t, "SECRET", enrollment.Secret)
	require.NotNil(t, owner.TwoFactorSecret)
	assert.False(t, owner.TwoFactorEnabled)

	m.otp.EXPECT().Validate("111111", "SECRET").Return(false)
	assert.ErrorIs(t, svc.VerifyTwoFactor(ctx, "111111"), auth.ErrInvalidOTP)

	m.otp.EXPECT().Validate("222222", "SECRET").Return(true)
	require.NoError(t, svc.VerifyTwoFactor(ctx, "222222"))
	assert.True(t, owner.TwoFactorEnabled)

	_, err = svc.SetupTwoFactor(ctx)
	assert.ErrorIs(t, err, auth.ErrTwoFactorEnabled)

	m.otp.EXPECT().Validate("333333", "SECRET").Return(true)
	require.NoError(t, svc.DisableTwoFactor(ctx, "333333"))
	assert.False(t, owner.TwoFactorEnabled)
	assert.Nil(t, owner.TwoFactorSecret)

	assert.ErrorIs(t, svc.DisableTwoFactor(ctx, "444444"), auth.ErrTwoFactorNotEnabled)
	assert.ErrorIs(t, svc.VerifyTwoFactor(ctx, ""), apperr.ErrValidation)
}
