package middleware

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

var blCtx = context.Background()

// TokenBlacklist invalidates JWTs on logout for the remainder of their
// lifetime. With no Redis client configured every operation is a no-op, so
// logout degrades to a client-side token discard.
type TokenBlacklist struct {
	rdb *redis.Client
}

func NewTokenBlacklist(rdb *redis.Client) *TokenBlacklist {
	return &TokenBlacklist{rdb: rdb}
}

func (b *TokenBlacklist) key(token string) string {
	return fmt.Sprintf("kb:black:%s", token)
}

// Add blacklists a token until its expiry.
func (b *TokenBlacklist) Add(token string, ttl time.Duration) error {
	if b == nil || b.rdb == nil || ttl <= 0 {
		return nil
	}
	return b.rdb.Set(blCtx, b.key(token), "1", ttl).Err()
}

// Contains reports whether a token has been invalidated previously.
func (b *TokenBlacklist) Contains(token string) (bool, error) {
	if b == nil || b.rdb == nil {
		return false, nil
	}
	res, err := b.rdb.Exists(blCtx, b.key(token)).Result()
	return res == 1, err
}
