package redis

/// This file is for tracking a user's total transfer volume per calendar day.

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

func dailyTransferKey(userID int64) string {
	return fmt.Sprintf("daily_transfers:%d:%s", userID, time.Now().Format("2006-01-02"))
}

// nextMidnight is the start of the next calendar day in now's location.
func nextMidnight(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location())
}

// TrackDailyTransfer adds amount to today's running total for the user.
// The increment is a single INCRBYFLOAT, so concurrent transfers cannot
// lose each other's updates. The key expires at midnight.
func (r *RedisService) TrackDailyTransfer(ctx context.Context, userID int64, amount decimal.Decimal) error {
	key := dailyTransferKey(userID)

	if err := r.client.IncrByFloat(ctx, key, amount.InexactFloat64()).Err(); err != nil {
		return fmt.Errorf("failed to add to daily transfer total: %w", err)
	}

	if err := r.client.ExpireAt(ctx, key, nextMidnight(time.Now())).Err(); err != nil {
		return fmt.Errorf("failed to set expiration: %w", err)
	}

	return nil
}

// GetDailyTransferTotal returns today's running total, zero when unset.
func (r *RedisService) GetDailyTransferTotal(ctx context.Context, userID int64) (decimal.Decimal, error) {
	val, err := r.client.Get(ctx, dailyTransferKey(userID)).Result()
	if err == redis.Nil {
		// Missing key means no transfers today.
		return decimal.Zero, nil
	} else if err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromString(val)
}
