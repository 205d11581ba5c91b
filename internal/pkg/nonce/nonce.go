package nonce

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// Size is the number of random bytes behind a withdrawal identifier.
const Size = 32

// New returns size random bytes from the system CSPRNG, hex encoded.
func New(size int) (string, error) {
	if size <= 0 {
		return "", fmt.Errorf("nonce size must be positive, got %d", size)
	}
	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
