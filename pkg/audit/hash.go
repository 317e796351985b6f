package audit

import (
	"crypto/sha256"
	"encoding/hex"
)

// TokenDigest computes the SHA-256 digest of a bot token and returns it
// as a hex-encoded string. The digest identifies a bot across audit
// records without storing the credential itself.
//
// Returns an empty string for an empty token.
func TokenDigest(token string) string {
	if token == "" {
		return ""
	}

	hash := sha256.Sum256([]byte(token))
	return hex.EncodeToString(hash[:])
}
