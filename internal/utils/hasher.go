package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Hash generates a SHA-256 hash of the input string
func Hash(input string) string {
	hasher := sha256.New()
	hasher.Write([]byte(input))
	return hex.EncodeToString(hasher.Sum(nil))
}

// Key builds a cache key from parts. Parts that are not plain ASCII slugs,
// such as Hindi names, are replaced by a short hash so keys stay printable.
func Key(parts ...string) string {
	out := make([]string, len(parts))
	for i, p := range parts {
		if isPlain(p) {
			out[i] = p
			continue
		}
		out[i] = Hash(p)[:16]
	}
	return strings.Join(out, ":")
}

func isPlain(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
		default:
			return false
		}
	}
	return true
}
