package core

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Hash represents a cryptographic hash
type Hash string

// NewHash creates a new hash from data
func NewHash(data []byte) Hash {
	sum := sha256.Sum256(data)
	return Hash(hex.EncodeToString(sum[:]))
}

// String returns the string representation
func (h Hash) String() string {
	return string(h)
}

// IsEmpty checks if the hash is empty
func (h Hash) IsEmpty() bool {
	return h == ""
}

// Short returns the first 12 hex characters, enough for report headers
func (h Hash) Short() string {
	if len(h) <= 12 {
		return string(h)
	}
	return string(h[:12])
}

// Fingerprint digests any JSON-encodable value. encoding/json sorts map
// keys and walks struct fields in declaration order, so equal inputs give
// equal fingerprints. Reports carry the fingerprint of the configuration
// that produced them so two runs can be compared for comparability.
func Fingerprint(v interface{}) (Hash, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("fingerprint: %w", err)
	}
	return NewHash(data), nil
}

// MustFingerprint panics on marshal failure. For values known to be
// JSON-encodable (plain config structs).
func MustFingerprint(v interface{}) Hash {
	h, err := Fingerprint(v)
	if err != nil {
		panic(err)
	}
	return h
}
