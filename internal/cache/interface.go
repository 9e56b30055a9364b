package cache

import (
	"context"
	"time"
)

type Cache interface {
	Get(ctx context.Context, key string, value any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

func Key(prefix string, id string) string {
	return prefix + ":" + id
}

const CatalogKeyPrefix = "catalog"

// ProductListKey holds the whole catalog, newest first.
var ProductListKey = Key(CatalogKeyPrefix, "all")

// Fetch is a read-through lookup: a hit is returned as is, a miss calls load
// and stores its result. Cache failures go to onErr and never fail the call.
func Fetch[T any](ctx context.Context, c Cache, key string, ttl time.Duration, load func(context.Context) (T, error), onErr func(error)) (T, error) {
	var value T

	found, err := c.Get(ctx, key, &value)
	if err != nil {
		onErr(err)
	} else if found {
		return value, nil
	}

	value, err = load(ctx)
	if err != nil {
		return value, err
	}

	if err := c.Set(ctx, key, value, ttl); err != nil {
		onErr(err)
	}

	return value, nil
}
