package maven

import (
	"iter"
	"slices"

	"github.com/hupe1980/pomgen/internal/maputil"
)

// Plugin is a frozen build plugin declaration.
type Plugin struct {
	GroupID       string
	ArtifactID    string
	Version       string
	Extensions    bool
	Configuration []Setting
	Executions    []Execution
	Dependencies  []PluginDependency
}

// Execution binds plugin goals to a lifecycle phase.
type Execution struct {
	ID            string
	Phase         string
	Goals         []string
	Configuration []Setting
}

// PluginDependency is an extra dependency on the plugin classpath.
type PluginDependency struct {
	GroupID    string
	ArtifactID string
	Version    string
}

// PluginBuilder stages a plugin. Repeated customisation merges into the same
// builder.
type PluginBuilder struct {
	groupID       string
	artifactID    string
	version       string
	extensions    bool
	configuration *ConfigurationBuilder
	executions    maputil.OrderedMap[string, *ExecutionBuilder]
	dependencies  []PluginDependency
}

// NewPluginBuilder returns a builder for groupID:artifactID.
func NewPluginBuilder(groupID, artifactID string) *PluginBuilder {
	return &PluginBuilder{groupID: groupID, artifactID: artifactID}
}

// Version sets the plugin version.
func (b *PluginBuilder) Version(version string) *PluginBuilder {
	b.version = version
	return b
}

// Extensions sets whether the plugin contributes build extensions.
func (b *PluginBuilder) Extensions(extensions bool) *PluginBuilder {
	b.extensions = extensions
	return b
}

// Configuration customises the plugin-level configuration.
func (b *PluginBuilder) Configuration(fn func(*ConfigurationBuilder)) *PluginBuilder {
	if b.configuration == nil {
		b.configuration = &ConfigurationBuilder{}
	}

	fn(b.configuration)

	return b
}

// Execution customises the execution with the given id, creating it when absent.
func (b *PluginBuilder) Execution(id string, fn func(*ExecutionBuilder)) *PluginBuilder {
	e, ok := b.executions.Get(id)
	if !ok {
		e = &ExecutionBuilder{id: id}
		b.executions.Set(id, e)
	}

	fn(e)

	return b
}

// Dependency adds a plugin dependency.
func (b *PluginBuilder) Dependency(groupID, artifactID, version string) *PluginBuilder {
	b.dependencies = append(b.dependencies, PluginDependency{
		GroupID:    groupID,
		ArtifactID: artifactID,
		Version:    version,
	})

	return b
}

// Build freezes the plugin.
func (b *PluginBuilder) Build() Plugin {
	p := Plugin{
		GroupID:       b.groupID,
		ArtifactID:    b.artifactID,
		Version:       b.version,
		Extensions:    b.extensions,
		Configuration: b.configuration.Build(),
		Dependencies:  slices.Clone(b.dependencies),
	}

	for _, e := range b.executions.All() {
		p.Executions = append(p.Executions, e.build())
	}

	return p
}

// ExecutionBuilder stages a plugin execution.
type ExecutionBuilder struct {
	id            string
	phase         string
	goals         []string
	configuration *ConfigurationBuilder
}

// Phase sets the lifecycle phase.
func (e *ExecutionBuilder) Phase(phase string) *ExecutionBuilder {
	e.phase = phase
	return e
}

// Goal appends a goal.
func (e *ExecutionBuilder) Goal(goal string) *ExecutionBuilder {
	e.goals = append(e.goals, goal)
	return e
}

// Configuration customises the execution-level configuration.
func (e *ExecutionBuilder) Configuration(fn func(*ConfigurationBuilder)) *ExecutionBuilder {
	if e.configuration == nil {
		e.configuration = &ConfigurationBuilder{}
	}

	fn(e.configuration)

	return e
}

func (e *ExecutionBuilder) build() Execution {
	return Execution{
		ID:            e.id,
		Phase:         e.phase,
		Goals:         slices.Clone(e.goals),
		Configuration: e.configuration.Build(),
	}
}

// PluginContainer holds plugins keyed by groupId and artifactId.
type PluginContainer struct {
	plugins maputil.OrderedMap[string, *PluginBuilder]
}

func pluginKey(groupID, artifactID string) string {
	return groupID + ":" + artifactID
}

// Add registers groupID:artifactID if needed and applies fns to its builder.
// Adding the same plugin twice merges the customisations.
func (c *PluginContainer) Add(groupID, artifactID string, fns ...func(*PluginBuilder)) {
	key := pluginKey(groupID, artifactID)

	b, ok := c.plugins.Get(key)
	if !ok {
		b = NewPluginBuilder(groupID, artifactID)
		c.plugins.Set(key, b)
	}

	for _, fn := range fns {
		fn(b)
	}
}

// Has reports whether the plugin is registered.
func (c *PluginContainer) Has(groupID, artifactID string) bool {
	return c.plugins.Has(pluginKey(groupID, artifactID))
}

// Remove deletes the plugin and reports whether it existed.
func (c *PluginContainer) Remove(groupID, artifactID string) bool {
	return c.plugins.Delete(pluginKey(groupID, artifactID))
}

// Items returns a restartable iterator over the frozen plugins in insertion order.
func (c *PluginContainer) Items() iter.Seq[Plugin] {
	return func(yield func(Plugin) bool) {
		for _, b := range c.plugins.All() {
			if !yield(b.Build()) {
				return
			}
		}
	}
}

// Values returns the frozen plugins in insertion order.
func (c *PluginContainer) Values() []Plugin {
	return slices.Collect(c.Items())
}

// Len returns the number of plugins.
func (c *PluginContainer) Len() int {
	return c.plugins.Len()
}

// IsEmpty reports whether no plugin is registered.
func (c *PluginContainer) IsEmpty() bool {
	return c.plugins.Len() == 0
}
