package maven

import (
	"iter"

	"github.com/hupe1980/pomgen/internal/maputil"
)

// Container is an ordered collection of build items keyed by an identifier.
// Adding an item under an existing identifier replaces it without changing
// its position. The zero value is ready to use.
type Container[V any] struct {
	items maputil.OrderedMap[string, V]
}

// Add stores item under id.
func (c *Container[V]) Add(id string, item V) {
	c.items.Set(id, item)
}

// Get returns the item stored under id.
func (c *Container[V]) Get(id string) (V, bool) {
	return c.items.Get(id)
}

// Has reports whether an item is stored under id.
func (c *Container[V]) Has(id string) bool {
	return c.items.Has(id)
}

// Remove deletes the item stored under id and reports whether it existed.
func (c *Container[V]) Remove(id string) bool {
	return c.items.Delete(id)
}

// IDs returns the identifiers in insertion order.
func (c *Container[V]) IDs() []string {
	return c.items.Keys()
}

// Items returns a restartable iterator over the items in insertion order.
func (c *Container[V]) Items() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range c.items.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Values returns the items in insertion order.
func (c *Container[V]) Values() []V {
	return c.items.Values()
}

// Len returns the number of items.
func (c *Container[V]) Len() int {
	return c.items.Len()
}

// IsEmpty reports whether the container holds no items.
func (c *Container[V]) IsEmpty() bool {
	return c.items.Len() == 0
}
