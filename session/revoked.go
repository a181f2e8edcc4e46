package session

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// opaqueTokenTTL bounds how long a logged-out token without an exp claim is remembered.
const opaqueTokenTTL = 24 * time.Hour

// RevocationList remembers tokens that were logged out from this front end until they
// would have expired anyway. Redis is used when available, memory otherwise.
type RevocationList struct {
	rdb *redis.Client
	now func() time.Time

	mu      sync.RWMutex
	revoked map[string]time.Time
}

// NewRevocationList builds a list backed by rdb; a nil client keeps entries in memory.
func NewRevocationList(rdb *redis.Client) *RevocationList {
	return &RevocationList{
		rdb:     rdb,
		now:     time.Now,
		revoked: map[string]time.Time{},
	}
}

func revocationKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "session:revoked:" + hex.EncodeToString(sum[:])
}

func (l *RevocationList) expiry(token string) time.Time {
	if c, ok := ParseClaims(token); ok && !c.ExpiresAt.IsZero() {
		return c.ExpiresAt
	}
	return l.now().Add(opaqueTokenTTL)
}

// Revoke stores token until its expiry. Already expired tokens are ignored.
func (l *RevocationList) Revoke(ctx context.Context, token string) {
	if token == "" {
		return
	}
	expiresAt := l.expiry(token)
	ttl := expiresAt.Sub(l.now())
	if ttl <= 0 {
		return
	}

	if l.rdb != nil {
		ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		if err := l.rdb.Set(ctx, revocationKey(token), "1", ttl).Err(); err == nil {
			return
		}
	}

	l.mu.Lock()
	l.purgeLocked()
	l.revoked[revocationKey(token)] = expiresAt
	l.mu.Unlock()
}

// IsRevoked reports whether token was logged out and has not expired yet.
// A Redis failure falls back to the in-memory entries.
func (l *RevocationList) IsRevoked(ctx context.Context, token string) bool {
	if token == "" {
		return false
	}
	key := revocationKey(token)

	if l.rdb != nil {
		ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		if n, err := l.rdb.Exists(ctx, key).Result(); err == nil && n > 0 {
			return true
		}
	}

	l.mu.RLock()
	expiresAt, ok := l.revoked[key]
	l.mu.RUnlock()
	return ok && l.now().Before(expiresAt)
}

func (l *RevocationList) purgeLocked() {
	now := l.now()
	for key, expiresAt := range l.revoked {
		if !now.Before(expiresAt) {
			delete(l.revoked, key)
		}
	}
}
