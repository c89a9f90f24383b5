package models

import "errors"

// Failure taxonomy surfaced by the storage and token layers. Controllers
// map these onto HTTP statuses and never expose the distinction beyond
// that.
var (
	ErrTokenExpired          = errors.New("token expired")
	ErrTokenMalformed        = errors.New("token malformed")
	ErrTokenSignatureInvalid = errors.New("token signature invalid")
	ErrTokenRevoked          = errors.New("token revoked")

	ErrDuplicateUser      = errors.New("username already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("wrong credentials")
)

// IsTokenError reports whether err belongs to the token failure taxonomy,
// as opposed to a storage or internal failure.
func IsTokenError(err error) bool {
	return errors.Is(err, ErrTokenExpired) ||
		errors.Is(err, ErrTokenMalformed) ||
		errors.Is(err, ErrTokenSignatureInvalid) ||
		errors.Is(err, ErrTokenRevoked)
}
