package maven

import (
	"iter"
	"slices"

	"github.com/hupe1980/pomgen/internal/maputil"
)

// Resource is a main or test resource directory.
type Resource struct {
	Directory  string
	TargetPath string
	Filtering  bool
	Includes   []string
	Excludes   []string
}

// ResourceContainer holds resources keyed by directory.
type ResourceContainer struct {
	resources maputil.OrderedMap[string, *Resource]
}

// Add registers directory if needed and applies fns to the staged resource.
func (c *ResourceContainer) Add(directory string, fns ...func(*Resource)) {
	r, ok := c.resources.Get(directory)
	if !ok {
		r = &Resource{Directory: directory}
		c.resources.Set(directory, r)
	}

	for _, fn := range fns {
		fn(r)
	}
}

// Has reports whether directory is registered.
func (c *ResourceContainer) Has(directory string) bool {
	return c.resources.Has(directory)
}

// Items returns a restartable iterator over copies of the resources.
func (c *ResourceContainer) Items() iter.Seq[Resource] {
	return func(yield func(Resource) bool) {
		for _, r := range c.resources.All() {
			cp := *r
			cp.Includes = slices.Clone(r.Includes)
			cp.Excludes = slices.Clone(r.Excludes)

			if !yield(cp) {
				return
			}
		}
	}
}

// Values returns copies of the resources in insertion order.
func (c *ResourceContainer) Values() []Resource {
	return slices.Collect(c.Items())
}

// IsEmpty reports whether no resource is registered.
func (c *ResourceContainer) IsEmpty() bool {
	return c.resources.Len() == 0
}
