package auth

import (
	"testing"
	"time"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

func newTestJWTService(t *testing.T, now func() time.Time) service.TokenService {
	t.Helper()

	svc, err := NewJWTServiceWithClock(testSecret, now)
	require.NoError(t, err)

	return svc
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	cfg := &config.Config{}

	_, err := NewJWTService(cfg)
	require.Error(t, err)

	cfg.SecretKey.Access = "too-short"
	_, err = NewJWTService(cfg)
	require.Error(t, err)

	cfg.SecretKey.Access = testSecret
	svc, err := NewJWTService(cfg)
	require.NoError(t, err)
	assert.NotNil(t, svc)
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestJWTService(t, func() time.Time { return now })
	accountID := uuid.New()

	issued, err := svc.Issue(accountID)
	require.NoError(t, err)
	assert.NotEmpty(t, issued.Token)
	assert.True(t, issued.ExpiresAt.Equal(now.Add(24*time.Hour)))

	claims, err := svc.Verify(issued.Token)
	require.NoError(t, err)
	assert.Equal(t, accountID, claims.AccountID)
	assert.Equal(t, accountID.String(), claims.Subject)
	assert.Equal(t, now.Unix(), claims.IssuedAt.Unix())
	assert.Equal(t, now.Add(24*time.Hour).Unix(), claims.ExpiresAt.Unix())
}

func TestJWTService_ExpiredToken(t *testing.T) {
	issuedAt := time.Now().Add(-25 * time.Hour)
	issuer := newTestJWTService(t, func() time.Time { return issuedAt })
	verifier := newTestJWTService(t, time.Now)

	issued, err := issuer.Issue(uuid.New())
	require.NoError(t, err)

	_, err = verifier.Verify(issued.Token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrExpiredToken))
	assert.False(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestJWTService_StillValidJustBeforeExpiry(t *testing.T) {
	issuedAt := time.Now().Add(-23 * time.Hour)
	issuer := newTestJWTService(t, func() time.Time { return issuedAt })
	verifier := newTestJWTService(t, time.Now)

	issued, err := issuer.Issue(uuid.New())
	require.NoError(t, err)

	_, err = verifier.Verify(issued.Token)
	assert.NoError(t, err)
}

func TestJWTService_SingleCharacterMutation(t *testing.T) {
	svc := newTestJWTService(t, time.Now)

	issued, err := svc.Issue(uuid.New())
	require.NoError(t, err)

	token := []byte(issued.Token)
	for i := range token {
		mutated := make([]byte, len(token))
		copy(mutated, token)
		if mutated[i] == 'A' {
			mutated[i] = 'B'
		} else {
			mutated[i] = 'A'
		}

		_, err := svc.Verify(string(mutated))
		require.Error(t, err, "mutation at %d accepted", i)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken), "mutation at %d: %v", i, err)
	}
}

func TestJWTService_ExpiredAndTamperedIsInvalid(t *testing.T) {
	issuedAt := time.Now().Add(-48 * time.Hour)
	issuer := newTestJWTService(t, func() time.Time { return issuedAt })

	issued, err := issuer.Issue(uuid.New())
	require.NoError(t, err)

	tampered := issued.Token[:len(issued.Token)-2] + "xx"

	_, err = newTestJWTService(t, time.Now).Verify(tampered)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestJWTService_WrongSecret(t *testing.T) {
	other, err := NewJWTServiceWithClock("another_secret_key_that_is_long_enough", time.Now)
	require.NoError(t, err)

	issued, err := other.Issue(uuid.New())
	require.NoError(t, err)

	_, err = newTestJWTService(t, time.Now).Verify(issued.Token)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestJWTService_RejectsOtherAlgorithms(t *testing.T) {
	svc := newTestJWTService(t, time.Now)

	claims := jwt.RegisteredClaims{
		Subject:   uuid.New().String(),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	_, err = svc.Verify(hs512)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = svc.Verify(none)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestJWTService_RejectsMissingExpiryAndBadSubject(t *testing.T) {
	svc := newTestJWTService(t, time.Now)

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject: uuid.New().String(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	_, err = svc.Verify(noExp)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))

	badSub, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "not-a-uuid",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	_, err = svc.Verify(badSub)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestJWTService_Garbage(t *testing.T) {
	svc := newTestJWTService(t, time.Now)

	for _, token := range []string{"", "abc", "a.b.c", "Bearer x.y.z"} {
		_, err := svc.Verify(token)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken), "token %q", token)
	}
}
