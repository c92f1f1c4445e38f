package imageio

import (
	"image"
	"sync"
)

// Cache is a concurrency-safe cache of decoded images keyed by path.
// Failed loads are cached too, so a missing file is read once.
type Cache struct {
	mu    sync.RWMutex
	items map[string]*cacheEntry
	load  func(string) (image.Image, error)
}

type cacheEntry struct {
	img image.Image
	err error
}

// NewCache returns an empty cache that decodes with Load.
func NewCache() *Cache {
	return &Cache{
		items: make(map[string]*cacheEntry),
		load:  Load,
	}
}

// Get returns the decoded image at path, loading it on first use.
func (c *Cache) Get(path string) (image.Image, error) {
	c.mu.RLock()
	if e, ok := c.items[path]; ok {
		c.mu.RUnlock()
		return e.img, e.err
	}
	c.mu.RUnlock()

	img, err := c.load(path)

	// Double-check: another worker may have loaded it meanwhile
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.items[path]; ok {
		return e.img, e.err
	}
	c.items[path] = &cacheEntry{img: img, err: err}
	return img, err
}

// Len returns the number of cached paths, including failed ones.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
