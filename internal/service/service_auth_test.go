package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jdcruz/rbi-registry/internal/config"
	"github.com/jdcruz/rbi-registry/internal/logger"
	"github.com/jdcruz/rbi-registry/internal/mock"
	"github.com/jdcruz/rbi-registry/internal/store"
	"github.com/jdcruz/rbi-registry/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (AuthService, *mock.MockEncoderRepository) {
	t.Helper()
	repo := mock.NewMockEncoderRepository(ctrl)
	cfg := config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "rbi-registry-test",
		TokenDuration: time.Hour,
	}
	return NewAuthService(repo, cfg, logger.Nop()), repo
}

// ── RegisterEncoder ──────────────────────────────────────────────────────────

func TestRegisterEncoder_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().CreateEncoder(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, e models.Encoder) (models.Encoder, error) {
			assert.Empty(t, e.Password, "plain-text password must be cleared before persistence")
			assert.True(t, strings.HasPrefix(e.PasswordHash, "$argon2id$"), "password must be argon2id-hashed")
			assert.Equal(t, "encoder", e.Role, "role defaults to encoder")
			e.EncoderID = 1
			return e, nil
		},
	)

	registered, err := svc.RegisterEncoder(ctx, models.Encoder{Login: "mdelacruz", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), registered.EncoderID)
}

func TestRegisterEncoder_InvalidData(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	_, err := svc.RegisterEncoder(ctx, models.Encoder{Login: "", Password: "s3cret"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.RegisterEncoder(ctx, models.Encoder{Login: "mdelacruz", Password: ""})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestRegisterEncoder_LoginTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().CreateEncoder(ctx, gomock.Any()).Return(models.Encoder{}, store.ErrLoginAlreadyExists)

	_, err := svc.RegisterEncoder(ctx, models.Encoder{Login: "mdelacruz", Password: "s3cret"})
	assert.ErrorIs(t, err, store.ErrLoginAlreadyExists)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	hash, err := hashPassword("s3cret")
	require.NoError(t, err)

	repo.EXPECT().FindEncoderByLogin(ctx, "mdelacruz").Return(models.Encoder{
		EncoderID:    7,
		Login:        "mdelacruz",
		PasswordHash: hash,
		Role:         "admin",
	}, nil)

	found, err := svc.Login(ctx, models.Encoder{Login: "mdelacruz", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), found.EncoderID)
	assert.Equal(t, "admin", found.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	hash, err := hashPassword("s3cret")
	require.NoError(t, err)

	repo.EXPECT().FindEncoderByLogin(ctx, "mdelacruz").Return(models.Encoder{
		Login:        "mdelacruz",
		PasswordHash: hash,
	}, nil)

	_, err = svc.Login(ctx, models.Encoder{Login: "mdelacruz", Password: "wrong"})
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestLogin_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().FindEncoderByLogin(ctx, "ghost").Return(models.Encoder{}, store.ErrNoEncoderWasFound)

	_, err := svc.Login(ctx, models.Encoder{Login: "ghost", Password: "s3cret"})
	assert.ErrorIs(t, err, store.ErrNoEncoderWasFound)
}

// ── Tokens ───────────────────────────────────────────────────────────────────

func TestCreateAndParseToken_RoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.Encoder{EncoderID: 42, Role: "encoder"})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.EncoderID)
	assert.Equal(t, "encoder", parsed.Role)
}

func TestParseToken_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.ParseToken(context.Background(), "not.a.token")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

// ── password hashing ─────────────────────────────────────────────────────────

func TestHashPassword_VerifyRoundTrip(t *testing.T) {
	hash, err := hashPassword("kalayaan-1898")
	require.NoError(t, err)

	ok, err := verifyPassword("kalayaan-1898", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = verifyPassword("different", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashPassword_SaltsDiffer(t *testing.T) {
	first, err := hashPassword("same-password")
	require.NoError(t, err)
	second, err := hashPassword("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	_, err := verifyPassword("pw", "not-a-phc-string")
	assert.ErrorIs(t, err, errMalformedHash)

	_, err = verifyPassword("pw", "$bcrypt$v=19$m=1,t=1,p=1$c2FsdA$aGFzaA")
	assert.Error(t, err)
}

func TestVerifyPassword_UnsupportedVersion(t *testing.T) {
	_, err := verifyPassword("pw", "$argon2id$v=18$m=1,t=1,p=1$c2FsdA$aGFzaA")
	require.Error(t, err)
	assert.False(t, errors.Is(err, errMalformedHash))
}
