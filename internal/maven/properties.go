package maven

import "github.com/hupe1980/pomgen/internal/maputil"

// PropertyContainer holds free-form project properties and typed version
// properties. Both sets are written sorted by name so output does not depend
// on the order in which customisations ran.
type PropertyContainer struct {
	values   map[string]string
	versions map[string]versionEntry
}

type versionEntry struct {
	property VersionProperty
	value    string
}

// Property sets a free-form property.
func (c *PropertyContainer) Property(name, value string) *PropertyContainer {
	if c.values == nil {
		c.values = make(map[string]string)
	}

	c.values[name] = value

	return c
}

// Version sets a version property.
func (c *PropertyContainer) Version(p VersionProperty, value string) *PropertyContainer {
	if c.versions == nil {
		c.versions = make(map[string]versionEntry)
	}

	c.versions[p.StandardFormat()] = versionEntry{property: p, value: value}

	return c
}

// Has reports whether name is defined as either kind of property.
func (c *PropertyContainer) Has(name string) bool {
	if _, ok := c.values[name]; ok {
		return true
	}

	_, ok := c.versions[name]

	return ok
}

// Remove deletes name from both sets.
func (c *PropertyContainer) Remove(name string) {
	delete(c.values, name)
	delete(c.versions, name)
}

// Values returns the free-form properties sorted by name.
func (c *PropertyContainer) Values() []Property {
	out := make([]Property, 0, len(c.values))
	for _, k := range maputil.SortedKeys(c.values) {
		out = append(out, Property{Key: k, Value: c.values[k]})
	}

	return out
}

// Versions returns the version properties in standard format, sorted by name.
func (c *PropertyContainer) Versions() []Property {
	out := make([]Property, 0, len(c.versions))
	for _, k := range maputil.SortedKeys(c.versions) {
		out = append(out, Property{Key: k, Value: c.versions[k].value})
	}

	return out
}

// IsEmpty reports whether no property of either kind is set.
func (c *PropertyContainer) IsEmpty() bool {
	return len(c.values) == 0 && len(c.versions) == 0
}
