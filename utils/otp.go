package utils

import (
	"fmt"
	"math/rand"
	"time"
)

// GenerateOTP returns a 6-digit one-time code.
func GenerateOTP() string {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	otp := r.Intn(1000000)
	return fmt.Sprintf("%06d", otp)
}
