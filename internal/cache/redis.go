package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/emrgen/pagebuilder/internal/compositor"
	"github.com/emrgen/pagebuilder/internal/compress"
	redis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const defaultTTL = time.Hour

// Keys carry the catalog fingerprint, so binaries with different catalogs
// sharing one redis never read each other's compositions.
func renderKey(catalog, id string, version int64) string {
	return "page:render:" + catalog + ":" + id + ":" + strconv.FormatInt(version, 10)
}

func renderVersionHash(catalog string) string {
	return "page:render:" + catalog + ":version"
}

var _ RenderCache = (*RedisRenderCache)(nil)

type RedisRenderCache struct {
	client  *redis.Client
	encoder compress.Compress
	ttl     time.Duration
	catalog string
}

// NewRedisRenderCache creates a render cache for compositions built against
// the catalog with the given fingerprint.
func NewRedisRenderCache(client *redis.Client, encoder compress.Compress, ttl time.Duration, catalog string) *RedisRenderCache {
	if encoder == nil {
		encoder = compress.NewNop()
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}

	return &RedisRenderCache{client: client, encoder: encoder, ttl: ttl, catalog: catalog}
}

func (r *RedisRenderCache) GetComposition(ctx context.Context, pageID string, version int64) (*compositor.Composition, error) {
	res := r.client.Get(ctx, renderKey(r.catalog, pageID, version))
	if res.Err() != nil {
		if errors.Is(res.Err(), redis.Nil) {
			return nil, nil
		}
		return nil, res.Err()
	}

	buf, err := res.Bytes()
	if err != nil {
		return nil, err
	}

	data, err := r.encoder.Decode(buf)
	if err != nil {
		return nil, err
	}

	comp := &compositor.Composition{}
	if err := json.Unmarshal(data, comp); err != nil {
		return nil, err
	}

	return comp, nil
}

func (r *RedisRenderCache) SetComposition(ctx context.Context, comp *compositor.Composition) error {
	marshal, err := json.Marshal(comp)
	if err != nil {
		return err
	}

	data, err := r.encoder.Encode(marshal)
	if err != nil {
		return err
	}

	previous, err := r.cachedVersion(ctx, comp.PageID)
	if err != nil {
		return err
	}

	_, err = r.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		if previous >= 0 && previous != comp.Version {
			p.Del(ctx, renderKey(r.catalog, comp.PageID, previous))
		}
		p.Set(ctx, renderKey(r.catalog, comp.PageID, comp.Version), data, r.ttl)
		p.HSet(ctx, renderVersionHash(r.catalog), comp.PageID, comp.Version)

		return nil
	})

	return err
}

func (r *RedisRenderCache) DeletePage(ctx context.Context, pageID string) error {
	version, err := r.cachedVersion(ctx, pageID)
	if err != nil {
		return err
	}
	if version < 0 {
		return nil
	}

	logrus.Debugf("dropping cached render of page %s version %d", pageID, version)
	_, err = r.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Del(ctx, renderKey(r.catalog, pageID, version))
		p.HDel(ctx, renderVersionHash(r.catalog), pageID)
		return nil
	})

	return err
}

// cachedVersion returns the version last cached for the page, -1 if none.
func (r *RedisRenderCache) cachedVersion(ctx context.Context, pageID string) (int64, error) {
	res := r.client.HGet(ctx, renderVersionHash(r.catalog), pageID)
	if res.Err() != nil {
		if errors.Is(res.Err(), redis.Nil) {
			return -1, nil
		}
		return 0, res.Err()
	}

	return strconv.ParseInt(res.Val(), 10, 64)
}
