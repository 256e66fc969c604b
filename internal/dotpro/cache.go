package dotpro

import (
	"sync"
)

// Cache keeps decoded images keyed by file path so repeated tool calls on
// the same file decode it once.
//
// Cache is safe for concurrent use. Cached images are immutable and may be
// handed to any number of callers.
//
// # Memory Management
//
// Images stay in memory until Evict or Clear is called. A grid is two bytes
// per pixel, so a long-running server that touches many files should evict
// the ones it no longer needs.
type Cache struct {
	decoder *Decoder

	mu     sync.RWMutex
	images map[string]*Image
}

// NewCache returns an empty cache that decodes with d.
func NewCache(d *Decoder) *Cache {
	return &Cache{
		decoder: d,
		images:  make(map[string]*Image),
	}
}

// Decoder returns the decoder used for cache misses.
func (c *Cache) Decoder() *Decoder {
	return c.decoder
}

// Load returns the cached image for path, decoding the file on a miss.
//
// The image is cached using the exact path string provided. Different
// spellings of the same file (relative vs absolute) are separate entries.
// Failed decodes are not cached.
func (c *Cache) Load(path string) (*Image, error) {
	c.mu.RLock()
	if img, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	c.mu.RUnlock()

	img, err := c.decoder.DecodeFile(path)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	if cached, ok := c.images[path]; ok {
		img = cached
	} else {
		c.images[path] = img
	}
	c.mu.Unlock()

	return img, nil
}

// Evict drops path from the cache. It reports whether an entry was removed.
func (c *Cache) Evict(path string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, ok := c.images[path]
	delete(c.images, path)
	return ok
}

// Clear removes every cached image.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]*Image)
	c.mu.Unlock()
}

// Len returns the number of cached images.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.images)
}
