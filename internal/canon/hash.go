package canon

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Domain prefixes for content-addressed IDs. The version suffix leaves room
// to change the hashed shape later.
const (
	DomainStep     = "ucc/step/v1"
	DomainScenario = "ucc/scenario/v1"
)

// Hash returns hex SHA256(domain + 0x00 + Marshal(v)).
func Hash(domain string, v any) (string, error) {
	data, err := Marshal(v)
	if err != nil {
		return "", fmt.Errorf("hash %s: %w", domain, err)
	}
	return hashWithDomain(domain, data), nil
}

// MustHash is like Hash but panics on error.
func MustHash(domain string, v any) string {
	id, err := Hash(domain, v)
	if err != nil {
		panic(err)
	}
	return id
}

// hashWithDomain separates domain and data with a null byte so that no
// domain/data split is ambiguous.
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}
