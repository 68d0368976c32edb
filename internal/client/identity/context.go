// Package identity holds the process-wide authenticated identity. It is the
// single in-memory source of truth read by every view; it never touches the
// durable store itself.
package identity

import (
	"sync"

	"github.com/dmitrijs2005/interviewprep/internal/client/models"
)

// Context is a guarded cell holding the current identity, or nothing.
// The zero value is an empty, ready-to-use Context.
type Context struct {
	mu      sync.RWMutex
	current models.Identity
	present bool
	gen     uint64
}

func New() *Context {
	return &Context{}
}

// Current returns the identity and whether one is present.
func (c *Context) Current() (models.Identity, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current, c.present
}

func (c *Context) Replace(id models.Identity) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current, c.present = id, true
	c.gen++
}

func (c *Context) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current, c.present = models.Identity{}, false
	c.gen++
}

// Snapshot is Current plus the generation the value was read at. Every
// Replace or Clear bumps the generation.
func (c *Context) Snapshot() (models.Identity, bool, uint64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current, c.present, c.gen
}

// ReplaceIf stores id only if nothing replaced or cleared the identity since
// gen was observed. It reports whether the write happened.
func (c *Context) ReplaceIf(gen uint64, id models.Identity) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen != gen {
		return false
	}
	c.current, c.present = id, true
	c.gen++
	return true
}
