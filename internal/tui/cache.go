package tui

import "sync"

// Cache keys are an enumerated set, invalidated explicitly after successful
// mutations. No ambient cache magic.
const KeyPurchases = "purchases"

func KeyPurchase(id string) string {
	return "purchase/" + id
}

// QueryCache memoizes query results per key.
type QueryCache struct {
	mu      sync.Mutex
	entries map[string]interface{}
}

func NewQueryCache() *QueryCache {
	return &QueryCache{entries: make(map[string]interface{})}
}

func (c *QueryCache) Get(key string) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[key]
	return v, ok
}

func (c *QueryCache) Put(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
}

func (c *QueryCache) Invalidate(keys ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, key := range keys {
		delete(c.entries, key)
	}
}
