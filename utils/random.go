// utils/random.go
package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateRandomString returns n hex characters from a CSPRNG. Used for
// stored upload names.
func GenerateRandomString(n int) string {
	bytes := make([]byte, (n+1)/2)
	if _, err := rand.Read(bytes); err != nil {
		panic("failed to read random bytes")
	}
	return hex.EncodeToString(bytes)[:n]
}
