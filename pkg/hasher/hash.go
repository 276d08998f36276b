package hasher

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Hash returns the hex encoded SHA-256 of s.
func Hash(s string) string {
	h := sha256.Sum256([]byte(s))
	return hex.EncodeToString(h[:])
}

// Key builds a bounded cache key: prefix followed by the hash of the joined parts.
func Key(prefix string, parts ...string) string {
	return prefix + Hash(strings.Join(parts, "\x1f"))
}
