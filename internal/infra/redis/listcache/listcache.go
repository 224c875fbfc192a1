package infra_redis_listcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis"
	"github.com/humanbelnik/kinoswap/swipematch/internal/model"
)

var ErrMiss = errors.New("listcache: miss")

// Driver stores catalog listing pages as JSON under "<prefix>:<key>".
type Driver struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func New(
	client *redis.Client,
	prefix string,
	ttl time.Duration,
) *Driver {
	return &Driver{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (d *Driver) Load(ctx context.Context, key string) (model.Page, error) {
	raw, err := d.client.WithContext(ctx).Get(d.fullKey(key)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return model.Page{}, ErrMiss
		}
		return model.Page{}, err
	}

	var page model.Page
	if err := json.Unmarshal(raw, &page); err != nil {
		return model.Page{}, fmt.Errorf("listcache: corrupt entry %s: %w", key, err)
	}
	return page, nil
}

func (d *Driver) Store(ctx context.Context, key string, page model.Page) error {
	raw, err := json.Marshal(page)
	if err != nil {
		return err
	}
	return d.client.WithContext(ctx).Set(d.fullKey(key), raw, d.ttl).Err()
}

func (d *Driver) fullKey(key string) string {
	if d.prefix != "" {
		return d.prefix + ":" + key
	}
	return key
}
