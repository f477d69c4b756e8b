package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// checkoutTTL bounds the window in which an identical re-submit counts as a
// duplicate. Long enough to swallow a double click, short enough that a
// genuine repeat order an hour later goes through.
const checkoutTTL = 2 * time.Minute

// DedupChecker provides checkout double-submit protection backed by Redis.
// Key format: checkout:<fingerprint>
type DedupChecker struct {
	client *redis.Client
}

// NewDedupChecker creates a DedupChecker wrapping the given Redis client.
func NewDedupChecker(client *redis.Client) *DedupChecker {
	return &DedupChecker{client: client}
}

// Claim atomically records the fingerprint via SET NX. It returns false when
// an identical checkout already holds the claim within the TTL, so two
// concurrent submits can never both win.
func (d *DedupChecker) Claim(ctx context.Context, fingerprint string) (bool, error) {
	won, err := d.client.SetNX(ctx, d.key(fingerprint), "1", checkoutTTL).Result()
	if err != nil {
		return false, fmt.Errorf("dedup claim: %w", err)
	}
	return won, nil
}

// Release drops a claimed fingerprint after a failed order insert, so the
// client's retry is not rejected as a duplicate.
func (d *DedupChecker) Release(ctx context.Context, fingerprint string) error {
	return d.client.Del(ctx, d.key(fingerprint)).Err()
}

func (d *DedupChecker) key(fingerprint string) string {
	return "checkout:" + fingerprint
}
