package cache

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

const DefaultQueryCacheSize = 1024

type CachedQuery struct {
	SQL     string
	Dialect string
}

// QueryCache maps a statement fingerprint to its rendered SQL.
type QueryCache interface {
	Get(fingerprint uint64) (*CachedQuery, bool)
	Set(fingerprint uint64, q *CachedQuery)
	Len() int
	Purge()
}

type lruQueryCache struct {
	cache *lru.Cache[uint64, *CachedQuery]
}

// NewQueryCache returns a bounded cache holding at most size entries. A
// non-positive size falls back to DefaultQueryCacheSize.
func NewQueryCache(size int) QueryCache {
	if size <= 0 {
		size = DefaultQueryCacheSize
	}
	c, _ := lru.New[uint64, *CachedQuery](size) // only fails on size <= 0
	return &lruQueryCache{cache: c}
}

func (c *lruQueryCache) Get(f uint64) (*CachedQuery, bool) {
	return c.cache.Get(f)
}

func (c *lruQueryCache) Set(f uint64, q *CachedQuery) {
	c.cache.Add(f, q)
}

func (c *lruQueryCache) Len() int {
	return c.cache.Len()
}

func (c *lruQueryCache) Purge() {
	c.cache.Purge()
}

type noopQueryCache struct{}

// NewNoopQueryCache returns a cache that never stores anything.
func NewNoopQueryCache() QueryCache { return noopQueryCache{} }

func (noopQueryCache) Get(uint64) (*CachedQuery, bool) { return nil, false }
func (noopQueryCache) Set(uint64, *CachedQuery)        {}
func (noopQueryCache) Len() int                        { return 0 }
func (noopQueryCache) Purge()                          {}
