package service

import (
	"net/http"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/picardie-nature/GeoNature-citizen/config"
	"github.com/picardie-nature/GeoNature-citizen/kv"
	"github.com/picardie-nature/GeoNature-citizen/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTConfig() config.JWT {
	return config.JWT{
		AccessSecret:  "test-access-secret",
		RefreshSecret: "test-refresh-secret",
		AccessTTL:     time.Minute,
		RefreshTTL:    time.Hour,
	}
}

func TestIssueAndVerify_RoundTrip(t *testing.T) {
	s := NewAuthService(kv.NewMemory(), testJWTConfig())

	raw, claims, err := s.IssueToken("alice", models.TokenAccess)
	require.NoError(t, err)
	require.NotEmpty(t, raw)
	assert.Equal(t, "alice", claims.Subject)
	assert.NotEmpty(t, claims.ID)

	got, err := s.VerifyToken(raw, models.TokenAccess)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Subject)
	assert.Equal(t, claims.ID, got.ID)
}

func TestIssuePair_TokensAreIndependent(t *testing.T) {
	s := NewAuthService(kv.NewMemory(), testJWTConfig())

	pair, err := s.IssuePair("alice")
	require.NoError(t, err)

	access, err := s.VerifyToken(pair.AccessToken, models.TokenAccess)
	require.NoError(t, err)
	refresh, err := s.VerifyToken(pair.RefreshToken, models.TokenRefresh)
	require.NoError(t, err)

	assert.NotEqual(t, access.ID, refresh.ID)
}

func TestVerifyToken_Expired(t *testing.T) {
	cfg := testJWTConfig()
	cfg.AccessTTL = -time.Second
	s := NewAuthService(kv.NewMemory(), cfg)

	raw, _, err := s.IssueToken("alice", models.TokenAccess)
	require.NoError(t, err)

	_, err = s.VerifyToken(raw, models.TokenAccess)
	assert.ErrorIs(t, err, models.ErrTokenExpired)
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	s := NewAuthService(kv.NewMemory(), testJWTConfig())

	other := testJWTConfig()
	other.AccessSecret = "another-secret"
	tampered := NewAuthService(kv.NewMemory(), other)

	raw, _, err := tampered.IssueToken("alice", models.TokenAccess)
	require.NoError(t, err)

	_, err = s.VerifyToken(raw, models.TokenAccess)
	assert.ErrorIs(t, err, models.ErrTokenSignatureInvalid)
}

func TestVerifyToken_Malformed(t *testing.T) {
	s := NewAuthService(kv.NewMemory(), testJWTConfig())

	_, err := s.VerifyToken("not.a.token", models.TokenAccess)
	assert.ErrorIs(t, err, models.ErrTokenMalformed)
}

func TestVerifyToken_RefreshNotValidAsAccess(t *testing.T) {
	s := NewAuthService(kv.NewMemory(), testJWTConfig())

	raw, _, err := s.IssueToken("alice", models.TokenRefresh)
	require.NoError(t, err)

	// refresh tokens are signed with a different secret
	_, err = s.VerifyToken(raw, models.TokenAccess)
	assert.ErrorIs(t, err, models.ErrTokenSignatureInvalid)
}

func TestVerifyToken_MissingExpiry(t *testing.T) {
	cfg := testJWTConfig()
	s := NewAuthService(kv.NewMemory(), cfg)

	// a well-signed token without exp must not reach Revoke
	claims := &models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  "alice",
			ID:       uuid.New().String(),
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
		Kind: models.TokenAccess,
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.AccessSecret))
	require.NoError(t, err)

	_, err = s.VerifyToken(raw, models.TokenAccess)
	assert.ErrorIs(t, err, models.ErrTokenMalformed)

	_, err = s.VerifyStructure(raw, models.TokenAccess)
	assert.ErrorIs(t, err, models.ErrTokenMalformed)
}

func TestVerifyToken_KindTagChecked(t *testing.T) {
	cfg := testJWTConfig()
	cfg.RefreshSecret = cfg.AccessSecret
	s := NewAuthService(kv.NewMemory(), cfg)

	raw, _, err := s.IssueToken("alice", models.TokenRefresh)
	require.NoError(t, err)

	// same secret, so the kind claim is the only thing rejecting it
	_, err = s.VerifyToken(raw, models.TokenAccess)
	assert.ErrorIs(t, err, models.ErrTokenMalformed)
}

func TestRevoke_BlocksVerification(t *testing.T) {
	s := NewAuthService(kv.NewMemory(), testJWTConfig())

	raw, claims, err := s.IssueToken("alice", models.TokenRefresh)
	require.NoError(t, err)

	require.NoError(t, s.Revoke(claims))

	_, err = s.VerifyToken(raw, models.TokenRefresh)
	assert.ErrorIs(t, err, models.ErrTokenRevoked)

	// structural check still passes for logout
	got, err := s.VerifyStructure(raw, models.TokenRefresh)
	require.NoError(t, err)
	assert.Equal(t, claims.ID, got.ID)
}

func TestRevoke_Idempotent(t *testing.T) {
	s := NewAuthService(kv.NewMemory(), testJWTConfig())

	_, claims, err := s.IssueToken("alice", models.TokenRefresh)
	require.NoError(t, err)

	require.NoError(t, s.Revoke(claims))
	require.NoError(t, s.Revoke(claims))
}

func TestRevoke_ExpiredTokenIsNoop(t *testing.T) {
	cfg := testJWTConfig()
	cfg.RefreshTTL = -time.Second
	mem := kv.NewMemory()
	s := NewAuthService(mem, cfg)

	_, claims, err := s.IssueToken("alice", models.TokenRefresh)
	require.NoError(t, err)

	require.NoError(t, s.Revoke(claims))

	has, err := mem.Has(claims.ID)
	require.NoError(t, err)
	assert.False(t, has)
}

func TestExtractToken(t *testing.T) {
	s := NewAuthService(kv.NewMemory(), testJWTConfig())

	r, err := http.NewRequest(http.MethodGet, "/allusers", nil)
	require.NoError(t, err)

	r.Header.Set("Authorization", "Bearer some-token")
	assert.Equal(t, "some-token", s.ExtractToken(r))

	r.Header.Set("Authorization", "bare-token")
	assert.Equal(t, "bare-token", s.ExtractToken(r))
}
