package descriptor

// Descriptor is the decoded form of a project descriptor file.
type Descriptor struct {
	Project                Project                 `yaml:"project" toml:"project"`
	Parent                 *Parent                 `yaml:"parent,omitempty" toml:"parent,omitempty"`
	Properties             map[string]string       `yaml:"properties,omitempty" toml:"properties,omitempty"`
	VersionProperties      map[string]string       `yaml:"versionProperties,omitempty" toml:"versionProperties,omitempty"`
	Dependencies           []Dependency            `yaml:"dependencies,omitempty" toml:"dependencies,omitempty"`
	Boms                   []Bom                   `yaml:"boms,omitempty" toml:"boms,omitempty"`
	Build                  BuildSection            `yaml:"build,omitempty" toml:"build,omitempty"`
	Repositories           []Repository            `yaml:"repositories,omitempty" toml:"repositories,omitempty"`
	PluginRepositories     []Repository            `yaml:"pluginRepositories,omitempty" toml:"pluginRepositories,omitempty"`
	Profiles               []Profile               `yaml:"profiles,omitempty" toml:"profiles,omitempty"`
	DistributionManagement *DistributionManagement `yaml:"distributionManagement,omitempty" toml:"distributionManagement,omitempty"`
	Conventions            Conventions             `yaml:"conventions,omitempty" toml:"conventions,omitempty"`
}

// Project holds the project identity and metadata.
type Project struct {
	GroupID     string      `yaml:"groupId" toml:"groupId"`
	ArtifactID  string      `yaml:"artifactId" toml:"artifactId"`
	Version     string      `yaml:"version,omitempty" toml:"version,omitempty"`
	Packaging   string      `yaml:"packaging,omitempty" toml:"packaging,omitempty"`
	Name        string      `yaml:"name,omitempty" toml:"name,omitempty"`
	Description string      `yaml:"description,omitempty" toml:"description,omitempty"`
	Licenses    []License   `yaml:"licenses,omitempty" toml:"licenses,omitempty"`
	Developers  []Developer `yaml:"developers,omitempty" toml:"developers,omitempty"`
	Scm         *Scm        `yaml:"scm,omitempty" toml:"scm,omitempty"`
}

// Parent is the parent pom.
type Parent struct {
	GroupID    string `yaml:"groupId" toml:"groupId"`
	ArtifactID string `yaml:"artifactId" toml:"artifactId"`
	Version    string `yaml:"version" toml:"version"`
}

// License is a project license. Distribution is "repo" or "manual".
type License struct {
	Name         string `yaml:"name,omitempty" toml:"name,omitempty"`
	URL          string `yaml:"url,omitempty" toml:"url,omitempty"`
	Distribution string `yaml:"distribution,omitempty" toml:"distribution,omitempty"`
	Comments     string `yaml:"comments,omitempty" toml:"comments,omitempty"`
}

// Developer is a project developer.
type Developer struct {
	ID              string            `yaml:"id,omitempty" toml:"id,omitempty"`
	Name            string            `yaml:"name,omitempty" toml:"name,omitempty"`
	Email           string            `yaml:"email,omitempty" toml:"email,omitempty"`
	URL             string            `yaml:"url,omitempty" toml:"url,omitempty"`
	Organization    string            `yaml:"organization,omitempty" toml:"organization,omitempty"`
	OrganizationURL string            `yaml:"organizationUrl,omitempty" toml:"organizationUrl,omitempty"`
	Roles           []string          `yaml:"roles,omitempty" toml:"roles,omitempty"`
	Timezone        string            `yaml:"timezone,omitempty" toml:"timezone,omitempty"`
	Properties      map[string]string `yaml:"properties,omitempty" toml:"properties,omitempty"`
}

// Scm is the source control section.
type Scm struct {
	Connection          string `yaml:"connection,omitempty" toml:"connection,omitempty"`
	DeveloperConnection string `yaml:"developerConnection,omitempty" toml:"developerConnection,omitempty"`
	Tag                 string `yaml:"tag,omitempty" toml:"tag,omitempty"`
	URL                 string `yaml:"url,omitempty" toml:"url,omitempty"`
}

// Dependency is a project dependency. ID defaults to the artifactId. Version
// and VersionProperty are mutually exclusive; the latter renders as
// ${property}.
type Dependency struct {
	ID              string      `yaml:"id,omitempty" toml:"id,omitempty"`
	GroupID         string      `yaml:"groupId" toml:"groupId"`
	ArtifactID      string      `yaml:"artifactId" toml:"artifactId"`
	Version         string      `yaml:"version,omitempty" toml:"version,omitempty"`
	VersionProperty string      `yaml:"versionProperty,omitempty" toml:"versionProperty,omitempty"`
	Scope           string      `yaml:"scope,omitempty" toml:"scope,omitempty"`
	Classifier      string      `yaml:"classifier,omitempty" toml:"classifier,omitempty"`
	Type            string      `yaml:"type,omitempty" toml:"type,omitempty"`
	Optional        bool        `yaml:"optional,omitempty" toml:"optional,omitempty"`
	Exclusions      []Exclusion `yaml:"exclusions,omitempty" toml:"exclusions,omitempty"`
}

// Exclusion removes a transitive dependency.
type Exclusion struct {
	GroupID    string `yaml:"groupId" toml:"groupId"`
	ArtifactID string `yaml:"artifactId" toml:"artifactId"`
}

// Bom is an imported bill of materials. A nil Order sorts last.
type Bom struct {
	ID              string `yaml:"id,omitempty" toml:"id,omitempty"`
	GroupID         string `yaml:"groupId" toml:"groupId"`
	ArtifactID      string `yaml:"artifactId" toml:"artifactId"`
	Version         string `yaml:"version,omitempty" toml:"version,omitempty"`
	VersionProperty string `yaml:"versionProperty,omitempty" toml:"versionProperty,omitempty"`
	Order           *int   `yaml:"order,omitempty" toml:"order,omitempty"`
}

// BuildSection is the build block of the project or of a profile.
type BuildSection struct {
	FinalName           string     `yaml:"finalName,omitempty" toml:"finalName,omitempty"`
	SourceDirectory     string     `yaml:"sourceDirectory,omitempty" toml:"sourceDirectory,omitempty"`
	TestSourceDirectory string     `yaml:"testSourceDirectory,omitempty" toml:"testSourceDirectory,omitempty"`
	Resources           []Resource `yaml:"resources,omitempty" toml:"resources,omitempty"`
	TestResources       []Resource `yaml:"testResources,omitempty" toml:"testResources,omitempty"`
	Plugins             []Plugin   `yaml:"plugins,omitempty" toml:"plugins,omitempty"`
}

// Resource is a resource directory.
type Resource struct {
	Directory  string   `yaml:"directory" toml:"directory"`
	TargetPath string   `yaml:"targetPath,omitempty" toml:"targetPath,omitempty"`
	Filtering  bool     `yaml:"filtering,omitempty" toml:"filtering,omitempty"`
	Includes   []string `yaml:"includes,omitempty" toml:"includes,omitempty"`
	Excludes   []string `yaml:"excludes,omitempty" toml:"excludes,omitempty"`
}

// Plugin is a build plugin.
type Plugin struct {
	GroupID       string             `yaml:"groupId" toml:"groupId"`
	ArtifactID    string             `yaml:"artifactId" toml:"artifactId"`
	Version       string             `yaml:"version,omitempty" toml:"version,omitempty"`
	Extensions    bool               `yaml:"extensions,omitempty" toml:"extensions,omitempty"`
	Configuration Configuration      `yaml:"configuration,omitempty" toml:"configuration,omitempty"`
	Executions    []Execution        `yaml:"executions,omitempty" toml:"executions,omitempty"`
	Dependencies  []PluginDependency `yaml:"dependencies,omitempty" toml:"dependencies,omitempty"`
}

// Execution binds plugin goals to a phase.
type Execution struct {
	ID            string        `yaml:"id" toml:"id"`
	Phase         string        `yaml:"phase,omitempty" toml:"phase,omitempty"`
	Goals         []string      `yaml:"goals,omitempty" toml:"goals,omitempty"`
	Configuration Configuration `yaml:"configuration,omitempty" toml:"configuration,omitempty"`
}

// PluginDependency is a dependency on the plugin classpath.
type PluginDependency struct {
	GroupID    string `yaml:"groupId" toml:"groupId"`
	ArtifactID string `yaml:"artifactId" toml:"artifactId"`
	Version    string `yaml:"version,omitempty" toml:"version,omitempty"`
}

// Repository is an artifact or plugin repository. Releases default to enabled.
type Repository struct {
	ID        string `yaml:"id" toml:"id"`
	Name      string `yaml:"name,omitempty" toml:"name,omitempty"`
	URL       string `yaml:"url" toml:"url"`
	Releases  *bool  `yaml:"releases,omitempty" toml:"releases,omitempty"`
	Snapshots bool   `yaml:"snapshots,omitempty" toml:"snapshots,omitempty"`
}

// Profile is a build profile with its own build section.
type Profile struct {
	ID         string       `yaml:"id" toml:"id"`
	Activation *Activation  `yaml:"activation,omitempty" toml:"activation,omitempty"`
	Build      BuildSection `yaml:"build,omitempty" toml:"build,omitempty"`
}

// Activation holds profile activation conditions.
type Activation struct {
	ActiveByDefault *bool         `yaml:"activeByDefault,omitempty" toml:"activeByDefault,omitempty"`
	JDK             string        `yaml:"jdk,omitempty" toml:"jdk,omitempty"`
	OS              *ActivationOS `yaml:"os,omitempty" toml:"os,omitempty"`
}

// ActivationOS activates a profile on matching operating systems.
type ActivationOS struct {
	Name    string `yaml:"name,omitempty" toml:"name,omitempty"`
	Family  string `yaml:"family,omitempty" toml:"family,omitempty"`
	Arch    string `yaml:"arch,omitempty" toml:"arch,omitempty"`
	Version string `yaml:"version,omitempty" toml:"version,omitempty"`
}

// DistributionManagement describes deployment targets.
type DistributionManagement struct {
	DownloadURL        string                `yaml:"downloadUrl,omitempty" toml:"downloadUrl,omitempty"`
	Repository         *DeploymentRepository `yaml:"repository,omitempty" toml:"repository,omitempty"`
	SnapshotRepository *DeploymentRepository `yaml:"snapshotRepository,omitempty" toml:"snapshotRepository,omitempty"`
	Site               *Site                 `yaml:"site,omitempty" toml:"site,omitempty"`
	Relocation         *Relocation           `yaml:"relocation,omitempty" toml:"relocation,omitempty"`
}

// DeploymentRepository is a release or snapshot deployment target.
type DeploymentRepository struct {
	ID            string `yaml:"id,omitempty" toml:"id,omitempty"`
	Name          string `yaml:"name,omitempty" toml:"name,omitempty"`
	URL           string `yaml:"url,omitempty" toml:"url,omitempty"`
	Layout        string `yaml:"layout,omitempty" toml:"layout,omitempty"`
	UniqueVersion *bool  `yaml:"uniqueVersion,omitempty" toml:"uniqueVersion,omitempty"`
}

// Site is the site deployment target.
type Site struct {
	ID   string `yaml:"id,omitempty" toml:"id,omitempty"`
	Name string `yaml:"name,omitempty" toml:"name,omitempty"`
	URL  string `yaml:"url,omitempty" toml:"url,omitempty"`
}

// Relocation points to the new coordinates of a moved artifact.
type Relocation struct {
	GroupID    string `yaml:"groupId,omitempty" toml:"groupId,omitempty"`
	ArtifactID string `yaml:"artifactId,omitempty" toml:"artifactId,omitempty"`
	Version    string `yaml:"version,omitempty" toml:"version,omitempty"`
	Message    string `yaml:"message,omitempty" toml:"message,omitempty"`
}

// Conventions selects the build customisations applied before writing.
type Conventions struct {
	// Enabled lists convention names, e.g. "defaults" or "docker".
	Enabled         []string `yaml:"enabled,omitempty" toml:"enabled,omitempty"`
	PlatformVersion string   `yaml:"platformVersion,omitempty" toml:"platformVersion,omitempty"`
	JavaVersion     string   `yaml:"javaVersion,omitempty" toml:"javaVersion,omitempty"`
}
