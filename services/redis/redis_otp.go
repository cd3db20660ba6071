package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	otpTTL         = 10 * time.Minute
	otpMaxAttempts = 5

	// A passed verification stays usable for registration this long.
	otpVerifiedTTL = 15 * time.Minute
)

func otpKey(phone string) string {
	return fmt.Sprintf("otp:%s", phone)
}

func otpAttemptsKey(phone string) string {
	return fmt.Sprintf("otp_attempts:%s", phone)
}

func otpVerifiedKey(phone string) string {
	return fmt.Sprintf("otp_verified:%s", phone)
}

// StoreOTP saves a fresh code for the phone number, resetting the attempt
// counter. Re-requesting a code replaces the previous one.
func (r *RedisService) StoreOTP(ctx context.Context, phone, code string) error {
	if err := r.client.Set(ctx, otpKey(phone), code, otpTTL).Err(); err != nil {
		return fmt.Errorf("failed to store otp: %w", err)
	}
	return r.client.Del(ctx, otpAttemptsKey(phone)).Err()
}

// CheckOTP validates and consumes the code. A valid code is single-use;
// an invalid one burns an attempt until the counter runs out. A missing,
// expired, or exhausted code reports false with no error, errors are
// reserved for Redis failures.
func (r *RedisService) CheckOTP(ctx context.Context, phone, code string) (bool, error) {
	stored, err := r.client.Get(ctx, otpKey(phone)).Result()
	if err == redis.Nil {
		return false, nil
	} else if err != nil {
		return false, err
	}

	attempts, err := r.client.Incr(ctx, otpAttemptsKey(phone)).Result()
	if err != nil {
		return false, err
	}
	if err := r.client.Expire(ctx, otpAttemptsKey(phone), otpTTL).Err(); err != nil {
		return false, err
	}
	if attempts > otpMaxAttempts {
		return false, nil
	}

	if stored != code {
		return false, nil
	}

	// Consume the code.
	if err := r.client.Del(ctx, otpKey(phone), otpAttemptsKey(phone)).Err(); err != nil {
		return false, err
	}
	return true, nil
}

// MarkPhoneVerified records that the phone passed OTP verification, so
// registration can follow without a second code.
func (r *RedisService) MarkPhoneVerified(ctx context.Context, phone string) error {
	if err := r.client.Set(ctx, otpVerifiedKey(phone), "1", otpVerifiedTTL).Err(); err != nil {
		return fmt.Errorf("failed to mark phone verified: %w", err)
	}
	return nil
}

// ConsumePhoneVerified reports whether the phone recently passed OTP
// verification and clears the marker. Single-use, like the code itself.
func (r *RedisService) ConsumePhoneVerified(ctx context.Context, phone string) (bool, error) {
	_, err := r.client.GetDel(ctx, otpVerifiedKey(phone)).Result()
	if err == redis.Nil {
		return false, nil
	} else if err != nil {
		return false, err
	}
	return true, nil
}
