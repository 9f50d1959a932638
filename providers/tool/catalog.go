package tool

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
)

// ErrToolNotFound is returned by [Catalog.Call] for unknown tool names.
var ErrToolNotFound = errors.New("tool not found")

// Catalog is a thread-safe registry of tools keyed by lower-cased name.
// The zero value is an empty catalog ready to use.
type Catalog struct {
	mu    sync.RWMutex
	tools map[string]GenericTool
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{tools: make(map[string]GenericTool)}
}

// NewCatalogWithTools creates a catalog holding tools.
func NewCatalogWithTools(tools ...GenericTool) *Catalog {
	c := NewCatalog()
	c.AddTools(tools...)
	return c
}

// ensureMap allocates the map of a zero-value Catalog. Callers hold c.mu.
func (c *Catalog) ensureMap() {
	if c.tools == nil {
		c.tools = make(map[string]GenericTool)
	}
}

func key(name string) string {
	return strings.ToLower(name)
}

// AddTools registers tools under their ToolInfo().Name. A tool with the
// same name, in any case, is replaced.
func (c *Catalog) AddTools(tools ...GenericTool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ensureMap()
	for _, t := range tools {
		c.tools[key(t.ToolInfo().Name)] = t
	}
}

// Get retrieves a tool by name (case-insensitive).
func (c *Catalog) Get(name string) (GenericTool, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	t, ok := c.tools[key(name)]
	return t, ok
}

// Has reports whether a tool with the given name exists (case-insensitive).
func (c *Catalog) Has(name string) bool {
	_, ok := c.Get(name)
	return ok
}

// Call runs the named tool with inputJSON.
func (c *Catalog) Call(ctx context.Context, name, inputJSON string) (string, error) {
	t, ok := c.Get(name)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrToolNotFound, name)
	}
	return t.Call(ctx, inputJSON)
}

// Remove deletes the named tool and reports whether it was present.
func (c *Catalog) Remove(name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.tools[key(name)]; !ok {
		return false
	}
	delete(c.tools, key(name))
	return true
}

// Clear removes all tools from the catalog.
func (c *Catalog) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.tools)
}

// Tools returns a copy of the registry, keyed by lower-cased name.
func (c *Catalog) Tools() map[string]GenericTool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return maps.Clone(c.tools)
}

// Names returns the registered keys in sorted order.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Sorted(maps.Keys(c.tools))
}

// Size returns the number of tools in the catalog.
func (c *Catalog) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.tools)
}

// Merge copies every tool of other into c, replacing same-named entries.
func (c *Catalog) Merge(other *Catalog) {
	if other == nil || other == c {
		return
	}
	snapshot := other.Tools()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.ensureMap()
	maps.Copy(c.tools, snapshot)
}

// Clone returns an independent catalog with the same tools.
func (c *Catalog) Clone() *Catalog {
	clone := &Catalog{tools: c.Tools()}
	clone.ensureMap()
	return clone
}
