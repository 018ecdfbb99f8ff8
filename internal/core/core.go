// Package core holds the process-wide registries: HTTP routes, curve
// computations and the cache backend. Feature packages register themselves
// here at init time.
package core

import (
	"sync"

	"github.com/spacefill/spacefill/internal/cache"
)

var mu sync.RWMutex
var routes map[string]Route = make(map[string]Route)
var theCache cache.Cache = cache.NewMemoryCache()

// InitCache swaps the cache backend. Call before serving; the default is
// an in-memory cache.
func InitCache(c cache.Cache) {
	theCache = c
}

func GetCache() cache.Cache {
	return theCache
}
