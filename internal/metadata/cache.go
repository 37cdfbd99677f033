package metadata

import (
	"context"

	"github.com/rpattn/crmql/internal/domain"

	lru "github.com/hashicorp/golang-lru/v2"
)

const defaultCacheSize = 1024

// CachedResolver memoizes successful resolutions in a fixed-size LRU
// keyed by (resourceType, slug). Failures are not cached, so a
// transient resolver error does not poison later calls.
type CachedResolver struct {
	inner AttributeResolver
	cache *lru.Cache[string, domain.AttributeTypeInfo]
}

// NewCachedResolver wraps inner with an LRU of the given size. A size
// of zero or less uses the default.
func NewCachedResolver(inner AttributeResolver, size int) (*CachedResolver, error) {
	if size <= 0 {
		size = defaultCacheSize
	}
	cache, err := lru.New[string, domain.AttributeTypeInfo](size)
	if err != nil {
		return nil, err
	}
	return &CachedResolver{inner: inner, cache: cache}, nil
}

func cacheKey(resourceType, slug string) string {
	return resourceType + "/" + slug
}

// Resolve returns the cached metadata when present, otherwise delegates
// to the wrapped resolver and stores the result.
func (r *CachedResolver) Resolve(ctx context.Context, resourceType, slug string) (domain.AttributeTypeInfo, error) {
	key := cacheKey(resourceType, slug)
	if info, ok := r.cache.Get(key); ok {
		return info, nil
	}

	info, err := r.inner.Resolve(ctx, resourceType, slug)
	if err != nil {
		return domain.AttributeTypeInfo{}, err
	}

	r.cache.Add(key, info)
	return info, nil
}
