// Package session stores authenticated sessions in Redis.
//
// Keys are "auth:<userGuid>:<token>": guid-first so every session a user owns
// can be found (and revoked) with one prefix scan, at the cost of a pattern
// scan when only the bearer token is known. Entries carry no TTL; they live
// until overwritten, revoked, or evicted by the cache's own policy.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const authKeyPrefix = "auth"

var (
	// ErrNotFound is returned when no session exists for the given token.
	ErrNotFound = errors.New("session not found")
	// ErrMalformedPayload is returned when a stored session cannot be decoded.
	// Distinct from ErrNotFound so callers can surface it as an internal failure.
	ErrMalformedPayload = errors.New("malformed session payload")
)

// Payload is the session value stored in the cache.
type Payload struct {
	UserGUID string `json:"userGuid"`
	Role     string `json:"role"`
}

// Cache reads and writes sessions on an injected Redis client. The client's
// lifecycle (connect/close) belongs to the process entry point, not this package.
type Cache struct {
	client *redis.Client
}

// New returns a Cache over the given client.
func New(client *redis.Client) *Cache {
	return &Cache{client: client}
}

// NewClient creates and pings a Redis client for the session cache.
// Caller must Close the client when shutting down.
func NewClient(ctx context.Context, addr, username, password string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("session: ping: %w", err)
	}
	return client, nil
}

func authKey(userGuid, token string) string {
	return fmt.Sprintf("%s:%s:%s", authKeyPrefix, userGuid, token)
}

func authPattern(token string) string {
	return fmt.Sprintf("%s:*:%s", authKeyPrefix, token)
}

// SaveAuth stores the session payload at (userGuid, token), overwriting any
// prior value at that exact key. No merge semantics and no expiry.
func (c *Cache) SaveAuth(ctx context.Context, userGuid, token string, p Payload) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, authKey(userGuid, token), raw, 0).Err()
}

// LookupAuth finds the session for a bearer token when the owning guid is
// unknown, scanning all guid partitions for the exact token suffix.
// Returns ErrNotFound when no key matches and ErrMalformedPayload when the
// stored value cannot be decoded.
func (c *Cache) LookupAuth(ctx context.Context, token string) (*Payload, error) {
	iter := c.client.Scan(ctx, 0, authPattern(token), 0).Iterator()
	for iter.Next(ctx) {
		raw, err := c.client.Get(ctx, iter.Val()).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			return nil, err
		}
		var p Payload
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
		}
		return &p, nil
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return nil, ErrNotFound
}

// RevokeAll deletes every session belonging to userGuid and returns the
// number of sessions removed.
func (c *Cache) RevokeAll(ctx context.Context, userGuid string) (int64, error) {
	var keys []string
	iter := c.client.Scan(ctx, 0, fmt.Sprintf("%s:%s:*", authKeyPrefix, userGuid), 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return 0, err
	}
	if len(keys) == 0 {
		return 0, nil
	}
	return c.client.Del(ctx, keys...).Result()
}
