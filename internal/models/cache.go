package models

import (
	"sync"

	"github.com/reward-network/backend/internal/rewards"
)

// RestaurantCache is a read-through cache for restaurant lookups.
// Restaurants are immutable per lookup, so entries stay valid until the
// cache is shut down. The cache owns its own lifecycle: it is populated
// through lookups and emptied by an explicit Shutdown call, there is no
// process-wide state.
type RestaurantCache struct {
	mu      sync.RWMutex
	entries map[string]*rewards.Restaurant
}

// NewRestaurantCache creates an empty cache.
func NewRestaurantCache() *RestaurantCache {
	return &RestaurantCache{
		entries: make(map[string]*rewards.Restaurant),
	}
}

// Lookup wraps a restaurant lookup with this cache.
func (c *RestaurantCache) Lookup(next rewards.RestaurantLookup) rewards.RestaurantLookup {
	return cachedLookup{cache: c, next: next}
}

// Shutdown empties the cache. Subsequent lookups fall through to the
// wrapped lookup again.
func (c *RestaurantCache) Shutdown() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*rewards.Restaurant)
}

func (c *RestaurantCache) get(merchantNumber string) (*rewards.Restaurant, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	restaurant, ok := c.entries[merchantNumber]
	return restaurant, ok
}

func (c *RestaurantCache) put(restaurant *rewards.Restaurant) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[restaurant.MerchantNumber] = restaurant
}

type cachedLookup struct {
	cache *RestaurantCache
	next  rewards.RestaurantLookup
}

func (l cachedLookup) FindByMerchantNumber(merchantNumber string) (*rewards.Restaurant, error) {
	if restaurant, ok := l.cache.get(merchantNumber); ok {
		return restaurant, nil
	}

	restaurant, err := l.next.FindByMerchantNumber(merchantNumber)
	if err != nil {
		return nil, err
	}

	l.cache.put(restaurant)
	return restaurant, nil
}
