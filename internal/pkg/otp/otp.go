package otp

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// Digits is the fixed length of a generated code.
const Digits = 6

// span covers [100000, 999999]: 900000 possible codes, never shorter than 6 digits.
var span = big.NewInt(900000)

// New draws a uniformly random 6-digit code and computes its expiry instant.
// The source is crypto/rand; a seeded or predictable generator must never be
// substituted here.
func New(ttl time.Duration) (code string, expiresAt time.Time, err error) {
	n, err := rand.Int(rand.Reader, span)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("generate code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), time.Now().Add(ttl), nil
}
