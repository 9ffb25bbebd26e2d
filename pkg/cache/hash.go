package cache

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hash computes the SHA-256 of data as a 64-character hex string. Full
// length is kept to rule out collisions between cached artifacts.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
