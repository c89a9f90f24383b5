package kv

import "time"

// KeyValueStore is the storage backing the token revocation set. Revoked
// token identifiers are written with a TTL equal to the remaining token
// lifetime, so entries expire together with the tokens they invalidate.
type KeyValueStore interface {
	// Set stores a key-value pair that expires after exp.
	Set(key, value string, exp time.Duration) error
	// Has reports whether a non-expired entry exists for key.
	Has(key string) (bool, error)
}
