package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/google/uuid"
)

type kvStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
	CartKey(storeID, sessionID string) string
}

// Repository persists carts as JSON blobs in Redis, one key per
// store and shopper session. Every save refreshes the TTL so active
// shoppers never lose their cart mid-visit.
type Repository struct {
	store kvStore
	ttl   time.Duration
}

// NewRepository builds a cart repository over the given Redis store.
func NewRepository(store kvStore, ttl time.Duration) (*Repository, error) {
	if store == nil {
		return nil, fmt.Errorf("redis store required")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("cart ttl must be positive")
	}
	return &Repository{store: store, ttl: ttl}, nil
}

// Load returns the shopper's cart, or a fresh empty cart when none is stored.
func (r *Repository) Load(ctx context.Context, storeID uuid.UUID, sessionID string) (*Cart, error) {
	raw, err := r.store.Get(ctx, r.store.CartKey(storeID.String(), sessionID))
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return New(storeID, sessionID), nil
		}
		return nil, fmt.Errorf("load cart: %w", err)
	}

	var c Cart
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}
	return &c, nil
}

// Save writes the cart back with a refreshed TTL.
func (r *Repository) Save(ctx context.Context, c *Cart) error {
	if c == nil {
		return fmt.Errorf("cart is required")
	}
	c.UpdatedAt = time.Now().UTC()
	payload, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	key := r.store.CartKey(c.StoreID.String(), c.SessionID)
	if err := r.store.Set(ctx, key, payload, r.ttl); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

// Delete removes the shopper's cart key.
func (r *Repository) Delete(ctx context.Context, storeID uuid.UUID, sessionID string) error {
	key := r.store.CartKey(storeID.String(), sessionID)
	if err := r.store.Del(ctx, key); err != nil {
		return fmt.Errorf("delete cart: %w", err)
	}
	return nil
}
