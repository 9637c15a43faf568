package utils

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
)

const (
	// CardTokenBytes is the entropy of a card token before encoding
	CardTokenBytes = 16 // 128 bits

	// PinLength is the number of digits in a generated PIN
	PinLength = 6

	// OTPLength is the number of digits in a one-time code
	OTPLength = 6
)

// GenerateCardToken produces an unguessable, URL-safe card token.
// Uniqueness is enforced by the store; the entropy here makes accidental
// collisions negligible.
func GenerateCardToken() (string, error) {
	b := make([]byte, CardTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// GeneratePIN produces a fixed-length numeric PIN from a cryptographically
// secure source
func GeneratePIN() (string, error) {
	return RandomDigits(PinLength)
}

// GenerateOTPCode produces a fixed-length numeric one-time code, independent
// of the PIN
func GenerateOTPCode() (string, error) {
	return RandomDigits(OTPLength)
}

// RandomDigits returns n cryptographically random decimal digits
func RandomDigits(n int) (string, error) {
	if n <= 0 {
		return "", errors.New("invalid length")
	}
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	for i := range b {
		b[i] = '0' + (b[i] % 10)
	}
	return string(b), nil
}
