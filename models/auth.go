package models

import (
	jwt "github.com/golang-jwt/jwt/v4"
)

// TokenKind tags a token as either an access or a refresh credential.
// Access tokens authorize protected routes; refresh tokens are only good
// for obtaining a new access token.
type TokenKind string

const (
	TokenAccess  TokenKind = "access"
	TokenRefresh TokenKind = "refresh"
)

// TokenClaims is the claim set embedded in every issued token. The
// registered claims carry the subject (username), jti, issue time and
// expiry; Kind distinguishes access from refresh tokens.
type TokenClaims struct {
	jwt.RegisteredClaims
	Kind TokenKind `json:"type"`
}

// TokenPair is the access/refresh token pair returned on registration and
// login.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
