package utils

import (
	"crypto/rand"
	"math/big"

	"github.com/google/uuid"
)

// ==================== UUID ====================

func GenerateUUID() uuid.UUID {
	return uuid.New()
}

func ParseUUID(uuidStr string) (uuid.UUID, error) {
	return uuid.Parse(uuidStr)
}

// ==================== OTP ====================

// GenerateOTP creates a numeric one-time code of the given length.
// The code is a shared secret, so it draws from crypto/rand.
func GenerateOTP(length int) string {
	if length <= 0 {
		length = 6
	}

	digits := make([]byte, length)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			// crypto/rand only fails when the OS entropy source is broken
			digits[i] = '0'
			continue
		}
		digits[i] = byte('0' + n.Int64())
	}

	return string(digits)
}
