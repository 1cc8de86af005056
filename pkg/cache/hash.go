package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// hashKey builds a "prefix:digest" cache key from arbitrary components
// (config hashes, generation flags, render options). The full SHA-256
// digest keeps distinct configurations from ever colliding.
func hashKey(prefix string, parts ...interface{}) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// Hash returns the SHA-256 digest of data as a 64-character hex string.
// Configurations and serialized layouts are addressed by this hash, so
// identical inputs share cache entries across the CLI and the server.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
