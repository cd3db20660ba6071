package security

import (
	"fmt"

	"time"

	"github.com/patrickmn/go-cache"
)

const (
	// Failed PIN attempts allowed inside the lockout window.
	MaxPINAttempts = 5

	lockoutWindow = 15 * time.Minute
)

// Cache tracks short-lived security counters, currently failed PIN attempts
// per user. Counters expire with the lockout window.
type Cache struct {
	c *cache.Cache
}

func NewCache() *Cache {
	return &Cache{
		c: cache.New(lockoutWindow, 10*time.Minute),
	}
}

func attemptKey(userID int64) string {
	return fmt.Sprintf("pin_attempts:%d", userID)
}

// RecordFailedPIN increments the failure counter and returns the new count.
func (cm *Cache) RecordFailedPIN(userID int64) int {
	key := attemptKey(userID)
	count, err := cm.c.IncrementInt(key, 1)
	if err != nil {
		cm.c.Set(key, 1, cache.DefaultExpiration)
		return 1
	}
	return count
}

// PINLocked reports whether the user has exhausted their attempts.
func (cm *Cache) PINLocked(userID int64) bool {
	val, found := cm.c.Get(attemptKey(userID))
	if !found {
		return false
	}
	count, ok := val.(int)
	return ok && count >= MaxPINAttempts
}

// ResetPINAttempts clears the counter after a successful check.
func (cm *Cache) ResetPINAttempts(userID int64) {
	cm.c.Delete(attemptKey(userID))
}
