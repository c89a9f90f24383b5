package service

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/picardie-nature/GeoNature-citizen/config"
	"github.com/picardie-nature/GeoNature-citizen/kv"
	"github.com/picardie-nature/GeoNature-citizen/models"
)

// AuthService issues and verifies signed tokens and keeps the revocation
// set in a key-value store. Tokens are stateless; only revoked jtis are
// persisted, each with a TTL matching the token's remaining lifetime.
type AuthService struct {
	kv  kv.KeyValueStore
	cfg config.JWT
}

// NewAuthService creates a new AuthService backed by the provided
// key-value store.
func NewAuthService(kv kv.KeyValueStore, cfg config.JWT) *AuthService {
	return &AuthService{kv: kv, cfg: cfg}
}

func (s *AuthService) secret(kind models.TokenKind) []byte {
	if kind == models.TokenRefresh {
		return []byte(s.cfg.RefreshSecret)
	}
	return []byte(s.cfg.AccessSecret)
}

func (s *AuthService) ttl(kind models.TokenKind) time.Duration {
	if kind == models.TokenRefresh {
		return s.cfg.RefreshTTL
	}
	return s.cfg.AccessTTL
}

// IssueToken signs a fresh token of the given kind for username. Every
// token carries a unique jti used as the revocation key.
func (s *AuthService) IssueToken(username string, kind models.TokenKind) (string, *models.TokenClaims, error) {
	now := time.Now()
	claims := &models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl(kind))),
		},
		Kind: kind,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret(kind))
	if err != nil {
		slog.Error("failed to sign token", "error", err, "username", username, "kind", kind)
		return "", nil, err
	}

	return signed, claims, nil
}

// IssuePair issues an access and a refresh token for username.
func (s *AuthService) IssuePair(username string) (models.TokenPair, error) {
	access, _, err := s.IssueToken(username, models.TokenAccess)
	if err != nil {
		return models.TokenPair{}, err
	}

	refresh, _, err := s.IssueToken(username, models.TokenRefresh)
	if err != nil {
		return models.TokenPair{}, err
	}

	return models.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// parse checks the signature, expiry and kind tag of a raw token and
// returns its claims. Parse failures are translated into the token error
// taxonomy.
func (s *AuthService) parse(raw string, kind models.TokenKind) (*models.TokenClaims, error) {
	claims := &models.TokenClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		// Make sure that the token method conforms to "SigningMethodHMAC"
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret(kind), nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, models.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, models.ErrTokenSignatureInvalid
		default:
			return nil, models.ErrTokenMalformed
		}
	}

	// every token this service issues carries jti, sub and exp; Revoke
	// relies on exp being present
	if !token.Valid || claims.Kind != kind || claims.ID == "" || claims.Subject == "" || claims.ExpiresAt == nil {
		return nil, models.ErrTokenMalformed
	}

	return claims, nil
}

// VerifyStructure checks signature, expiry and kind but skips the
// revocation lookup. Logout relies on this so an already-revoked refresh
// token can still be logged out.
func (s *AuthService) VerifyStructure(raw string, kind models.TokenKind) (*models.TokenClaims, error) {
	return s.parse(raw, kind)
}

// VerifyToken fully validates a raw token: signature, expiry, kind and
// revocation. A non-taxonomy error means the revocation store failed.
func (s *AuthService) VerifyToken(raw string, kind models.TokenKind) (*models.TokenClaims, error) {
	claims, err := s.parse(raw, kind)
	if err != nil {
		return nil, err
	}

	revoked, err := s.kv.Has(claims.ID)
	if err != nil {
		slog.Error("failed to check token revocation", "error", err, "jti", claims.ID)
		return nil, err
	}
	if revoked {
		return nil, models.ErrTokenRevoked
	}

	return claims, nil
}

// Revoke records the token's jti in the revocation set until the token's
// natural expiry. Revoking an already-revoked or expired token is a no-op.
func (s *AuthService) Revoke(claims *models.TokenClaims) error {
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}

	if err := s.kv.Set(claims.ID, claims.Subject, ttl); err != nil {
		slog.Error("failed to revoke token", "error", err, "jti", claims.ID)
		return err
	}

	return nil
}

// ExtractToken extracts the bearer token from the Authorization header of
// an HTTP request.
func (s *AuthService) ExtractToken(r *http.Request) string {
	bearToken := r.Header.Get("Authorization")
	strArr := strings.Split(bearToken, " ")
	if len(strArr) == 2 {
		return strArr[1]
	}

	return strArr[0]
}
