package enrich

import (
	"sync"

	"github.com/meridianvc/dealscope/internal/model"
)

// Cache stores enrichment results by company ID. Entries live for the
// process lifetime with no eviction; they are only ever added, since a
// hit short-circuits the pipeline before any new write can happen.
type Cache interface {
	Get(companyID string) (*model.EnrichmentResult, bool)
	Put(companyID string, result *model.EnrichmentResult)
}

// MemoryCache is the in-process Cache used by the server. Cached values
// are treated as immutable, so concurrent duplicate writes for the same
// key (last one wins) are harmless.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]*model.EnrichmentResult
}

// NewMemoryCache creates an empty MemoryCache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]*model.EnrichmentResult),
	}
}

// Get returns the cached result for companyID, if any.
func (c *MemoryCache) Get(companyID string) (*model.EnrichmentResult, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	result, ok := c.entries[companyID]
	return result, ok
}

// Put stores a result under companyID.
func (c *MemoryCache) Put(companyID string, result *model.EnrichmentResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[companyID] = result
}

// Len reports the number of cached entries.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
