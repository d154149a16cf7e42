package pkg

import (
	"crypto/rand"
	"encoding/base64"
)

// GenerateSessionID - generates a unique identifier for a session.
func GenerateSessionID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "error-generating-session-id"
	}

	return base64.RawURLEncoding.EncodeToString(b)
}
