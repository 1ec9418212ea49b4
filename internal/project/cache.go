package project

import (
	"crypto/sha256"
	"sync"

	"github.com/microsoft/typescript-go/shim/compiler"
	"golang.org/x/sync/singleflight"
)

type cacheEntry struct {
	hash    [sha256.Size]byte
	program *compiler.Program
}

// Cache holds one built Program per config path, keyed by the config file's
// content hash so edits to the config invalidate the entry. Concurrent
// resolutions of the same config path share a single construction.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*cacheEntry
	group   singleflight.Group
}

func NewCache() *Cache {
	return &Cache{
		entries: make(map[string]*cacheEntry),
	}
}

func (c *Cache) lookup(configPath string, hash [sha256.Size]byte) (*compiler.Program, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[configPath]
	if !ok || entry.hash != hash {
		return nil, false
	}
	return entry.program, true
}

func (c *Cache) store(configPath string, hash [sha256.Size]byte, program *compiler.Program) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[configPath] = &cacheEntry{hash: hash, program: program}
}

// Len reports the number of cached Programs.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
