package maven

// Build is the full in-memory descriptor of a Maven project. Profiles carry a
// nested Build of their own whose settings contribute only build-block
// fields (finalName and source directories).
//
// A Build is owned by a single generation request and is not safe for
// concurrent mutation.
type Build struct {
	settings           *SettingsBuilder
	dependencies       DependencyContainer
	boms               BomContainer
	plugins            PluginContainer
	resources          ResourceContainer
	testResources      ResourceContainer
	repositories       RepositoryContainer
	pluginRepositories RepositoryContainer
	profiles           ProfileContainer
	distribution       DistributionManagementBuilder
	properties         PropertyContainer
}

// NewBuild returns an empty build.
func NewBuild() *Build {
	return &Build{settings: NewSettingsBuilder()}
}

// Settings returns the settings builder.
func (b *Build) Settings() *SettingsBuilder {
	if b.settings == nil {
		b.settings = NewSettingsBuilder()
	}

	return b.settings
}

// BuildSettings returns a snapshot of the current settings.
func (b *Build) BuildSettings() Settings {
	return b.Settings().Build()
}

// Dependencies returns the dependency container.
func (b *Build) Dependencies() *DependencyContainer {
	return &b.dependencies
}

// Boms returns the bill of materials container.
func (b *Build) Boms() *BomContainer {
	return &b.boms
}

// Plugins returns the plugin container.
func (b *Build) Plugins() *PluginContainer {
	return &b.plugins
}

// Resources returns the main resource container.
func (b *Build) Resources() *ResourceContainer {
	return &b.resources
}

// TestResources returns the test resource container.
func (b *Build) TestResources() *ResourceContainer {
	return &b.testResources
}

// Repositories returns the artifact repository container.
func (b *Build) Repositories() *RepositoryContainer {
	return &b.repositories
}

// PluginRepositories returns the plugin repository container.
func (b *Build) PluginRepositories() *RepositoryContainer {
	return &b.pluginRepositories
}

// Profiles returns the profile container.
func (b *Build) Profiles() *ProfileContainer {
	return &b.profiles
}

// DistributionManagement returns the distribution management builder.
func (b *Build) DistributionManagement() *DistributionManagementBuilder {
	return &b.distribution
}

// Properties returns the property container.
func (b *Build) Properties() *PropertyContainer {
	return &b.properties
}
