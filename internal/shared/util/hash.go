package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashShopKey returns a filesystem-safe identifier for a shop ID.
func HashShopKey(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
