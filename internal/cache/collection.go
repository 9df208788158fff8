package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fekuna/omnipos-retail-view/internal/logger"
	"go.uber.org/zap"
)

const DefaultTTL = 5 * time.Minute

// Collection caches whole fetched batches per merchant. A Collection with a
// nil store passes every Load straight through to fetch.
type Collection[T any] struct {
	name   string
	store  Store
	ttl    time.Duration
	logger logger.ZapLogger
}

func NewCollection[T any](name string, store Store, ttl time.Duration, log logger.ZapLogger) *Collection[T] {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Collection[T]{name: name, store: store, ttl: ttl, logger: log}
}

func (c *Collection[T]) key(merchantID string) string {
	return fmt.Sprintf("retailview:%s:%s", c.name, merchantID)
}

// Load returns the cached batch or calls fetch and caches its result. Cache
// failures are logged and never fail the load.
func (c *Collection[T]) Load(ctx context.Context, merchantID string, fetch func(ctx context.Context) ([]T, error)) ([]T, error) {
	if c == nil || c.store == nil {
		return fetch(ctx)
	}

	key := c.key(merchantID)
	data, err := c.store.Get(ctx, key)
	switch {
	case err == nil:
		var records []T
		if err := json.Unmarshal(data, &records); err == nil {
			return records, nil
		}
		c.logger.Warn("dropping undecodable cache entry", zap.String("key", key))
	case !errors.Is(err, ErrMiss):
		c.logger.Warn("cache read failed", zap.String("key", key), zap.Error(err))
	}

	records, err := fetch(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(records); err == nil {
		if err := c.store.Set(ctx, key, data, c.ttl); err != nil {
			c.logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return records, nil
}

func (c *Collection[T]) Invalidate(ctx context.Context, merchantID string) error {
	if c == nil || c.store == nil {
		return nil
	}
	return c.store.Delete(ctx, c.key(merchantID))
}
