package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// OTPTTL is how long a password-reset code stays valid.
const OTPTTL = 5 * time.Minute

// GenerateOTP returns a four-digit reset code.
func GenerateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(9000))
	if err != nil {
		return "", fmt.Errorf("generate reset code: %w", err)
	}
	return fmt.Sprintf("%04d", n.Int64()+1000), nil
}
