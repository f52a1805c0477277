package security

import (
	"crypto/rand"
	"errors"
	"math/big"
)

const (
	MinSecretLength = 32
	secretAlphabet  = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// RandomString draws length characters uniformly from alphabet using crypto/rand.
func RandomString(length int, alphabet string) (string, error) {
	switch {
	case length < 0:
		return "", errors.New("length must be non-negative")
	case length == 0:
		return "", nil
	case alphabet == "":
		return "", errors.New("alphabet must not be empty")
	}

	limit := big.NewInt(int64(len(alphabet)))
	value := make([]byte, length)
	for index := range value {
		position, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		value[index] = alphabet[position.Int64()]
	}
	return string(value), nil
}

// GenerateSecret returns a random alphanumeric value suitable for SECRET_KEY.
func GenerateSecret(length int) (string, error) {
	if length < MinSecretLength {
		length = MinSecretLength
	}
	return RandomString(length, secretAlphabet)
}
