package domain

import (
	"slices"
	"unique"
)

// DependencyCache maps a vector source path to its transitive dependency list.
// Entries are write-once: a file's content is assumed stable for one run.
type DependencyCache struct {
	entries map[unique.Handle[string]][]string
}

// NewDependencyCache creates an empty cache.
func NewDependencyCache() *DependencyCache {
	return &DependencyCache{
		entries: make(map[unique.Handle[string]][]string),
	}
}

// Lookup returns the cached dependency list for path.
func (c *DependencyCache) Lookup(path string) ([]string, bool) {
	deps, ok := c.entries[unique.Make(path)]
	return deps, ok
}

// Store records deps for path and returns the cached list.
// If path already has an entry, the existing entry is kept and returned.
func (c *DependencyCache) Store(path string, deps []string) []string {
	key := unique.Make(path)
	if existing, ok := c.entries[key]; ok {
		return existing
	}
	// Clip so appends by callers never write into the cached backing array.
	deps = slices.Clip(deps)
	c.entries[key] = deps
	return deps
}

// Len returns the number of cached paths.
func (c *DependencyCache) Len() int {
	return len(c.entries)
}
