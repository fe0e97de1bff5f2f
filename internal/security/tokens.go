// Package security provides password hashing and opaque bearer-token generation.
//
// Session tokens here are deliberately unstructured: a high-entropy random
// string whose only meaning is the session-cache entry it points at. Revoking
// the cache entry revokes the token.
package security

import (
	"crypto/rand"
	"encoding/hex"
)

// sessionTokenBytes is the entropy of a session token; 48 bytes hex-encode to 96 characters.
const sessionTokenBytes = 48

// GenerateSessionToken returns a cryptographically random opaque bearer token,
// hex-encoded. Returns an error only if the system randomness source fails.
func GenerateSessionToken() (string, error) {
	buf := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
