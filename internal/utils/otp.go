package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

// GenerateOTPCode generates a cryptographically secure numeric OTP of the
// given length.
func GenerateOTPCode(length int) (string, error) {
	if length < 4 {
		length = 4
	}

	var sb strings.Builder
	ten := big.NewInt(10)
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, ten)
		if err != nil {
			return "", fmt.Errorf("failed to generate random digit: %w", err)
		}
		sb.WriteString(n.String())
	}

	return sb.String(), nil
}
