package redis

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dedupTTL = 24 * time.Hour

// DedupChecker provides webhook idempotency checks backed by Redis.
// Key format: dedup:webhook:<resource_type>:<sha1(resource_url, data)>
//
// Tracking updates for one package share a resource URL, so the payload is
// part of the key: only a redelivery of the same update is a duplicate.
type DedupChecker struct {
	client *redis.Client
}

// NewDedupChecker creates a DedupChecker wrapping the given Redis client.
func NewDedupChecker(client *redis.Client) *DedupChecker {
	return &DedupChecker{client: client}
}

// IsDuplicate reports whether this notification has already been processed.
func (d *DedupChecker) IsDuplicate(ctx context.Context, resourceType, resourceURL string, data map[string]any) (bool, error) {
	key, err := dedupKey(resourceType, resourceURL, data)
	if err != nil {
		return false, err
	}
	n, err := d.client.Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this notification has been processed (expires after dedupTTL).
func (d *DedupChecker) Mark(ctx context.Context, resourceType, resourceURL string, data map[string]any) error {
	key, err := dedupKey(resourceType, resourceURL, data)
	if err != nil {
		return err
	}
	return d.client.Set(ctx, key, "1", dedupTTL).Err()
}

// dedupKey hashes the URL together with the payload. encoding/json writes map
// keys in sorted order, so equal payloads always hash the same.
func dedupKey(resourceType, resourceURL string, data map[string]any) (string, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("dedup key: %w", err)
	}
	h := sha1.New()
	h.Write([]byte(resourceURL))
	h.Write([]byte{0})
	h.Write(payload)
	return fmt.Sprintf("dedup:webhook:%s:%s", resourceType, hex.EncodeToString(h.Sum(nil))), nil
}
