package security

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/hkdf"
)

// DeriveKey expands secret into a size-byte key bound to purpose.
// Distinct purposes yield independent keys from the same secret.
func DeriveKey(secret []byte, purpose string, size int) ([]byte, error) {
	if len(secret) == 0 {
		return nil, errors.New("secret must not be empty")
	}
	if strings.TrimSpace(purpose) == "" {
		return nil, errors.New("key purpose is required")
	}
	if size <= 0 {
		return nil, errors.New("key size must be positive")
	}

	key := make([]byte, size)
	if _, err := io.ReadFull(hkdf.New(sha256.New, secret, nil, []byte(purpose)), key); err != nil {
		return nil, fmt.Errorf("derive %s key: %w", purpose, err)
	}
	return key, nil
}
