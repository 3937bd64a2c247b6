package parse

import (
	"fmt"

	"github.com/dgraph-io/ristretto"
	"github.com/tliron/commonlog"
	"github.com/zeebo/xxh3"
)

var log = commonlog.GetLogger("comb.ebnf")

// Cache keeps compiled parsers keyed by grammar source and start
// production, so editors re-parsing a document on every change do not
// recompile the grammar each time. It is safe for concurrent use.
type Cache struct {
	cache *ristretto.Cache
}

// NewCache creates a cache holding up to capacity compiled grammars.
func NewCache(capacity int64) (*Cache, error) {
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: capacity * 10,
		MaxCost:     capacity,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("create cache: %w", err)
	}
	return &Cache{cache: c}, nil
}

func cacheKey(name, src, start string) uint64 {
	return xxh3.HashString(name + "\x00" + start + "\x00" + src)
}

// Get returns the parser for the grammar src, compiling it on a miss.
func (c *Cache) Get(name, src, start string) (*Parser, error) {
	key := cacheKey(name, src, start)
	if v, ok := c.cache.Get(key); ok {
		return v.(*Parser), nil
	}

	p, err := CompileString(name, src, start)
	if err != nil {
		return nil, err
	}
	log.Debugf("compiled grammar %s (start %s)", name, start)
	c.cache.Set(key, p, 1)
	return p, nil
}

// Wait blocks until pending insertions are visible to Get.
func (c *Cache) Wait() {
	c.cache.Wait()
}

// Close stops the cache's background goroutines.
func (c *Cache) Close() {
	c.cache.Close()
}
