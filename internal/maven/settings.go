package maven

import (
	"fmt"
	"slices"
)

// DefaultPackaging is the packaging Maven assumes when none is declared.
const DefaultPackaging = "jar"

// DefaultVersion is the project version used until one is set.
const DefaultVersion = "0.0.1-SNAPSHOT"

// Coordinate identifies a project.
type Coordinate struct {
	GroupID    string
	ArtifactID string
	Version    string
}

// String returns "groupId:artifactId:version".
func (c Coordinate) String() string {
	return c.GroupID + ":" + c.ArtifactID + ":" + c.Version
}

// Validate checks that groupId and artifactId are present.
func (c Coordinate) Validate() error {
	if c.GroupID == "" {
		return fmt.Errorf("%w: groupId is required", ErrInvalidCoordinate)
	}

	if c.ArtifactID == "" {
		return fmt.Errorf("%w: artifactId is required", ErrInvalidCoordinate)
	}

	return nil
}

// Parent is the parent pom, always resolved from a repository.
type Parent struct {
	GroupID    string
	ArtifactID string
	Version    string
}

// LicenseDistribution describes how a license may be distributed.
type LicenseDistribution int

// License distributions.
const (
	DistributionUnset LicenseDistribution = iota
	DistributionRepo
	DistributionManual
)

// String returns the lower-case pom representation ("repo", "manual").
func (d LicenseDistribution) String() string {
	switch d {
	case DistributionRepo:
		return "repo"
	case DistributionManual:
		return "manual"
	default:
		return ""
	}
}

// License is a project license.
type License struct {
	Name         string
	URL          string
	Distribution LicenseDistribution
	Comments     string
}

// Property is a single key/value pair.
type Property struct {
	Key   string
	Value string
}

// Developer is a project developer.
type Developer struct {
	ID              string
	Name            string
	Email           string
	URL             string
	Organization    string
	OrganizationURL string
	Roles           []string
	Timezone        string
	// Properties are free-form and written in declaration order.
	Properties []Property
}

// Scm holds source control information.
type Scm struct {
	Connection          string
	DeveloperConnection string
	Tag                 string
	URL                 string
}

// IsEmpty reports whether every field is unset.
func (s Scm) IsEmpty() bool {
	return s == Scm{}
}

// Settings is the frozen project identity and metadata.
type Settings struct {
	Coordinate

	Parent              *Parent
	Packaging           string
	Name                string
	Description         string
	Licenses            []License
	Developers          []Developer
	Scm                 Scm
	FinalName           string
	SourceDirectory     string
	TestSourceDirectory string
}

// SettingsBuilder stages Settings with fluent setters.
type SettingsBuilder struct {
	s Settings
}

// NewSettingsBuilder returns a builder with the default version and packaging.
func NewSettingsBuilder() *SettingsBuilder {
	return &SettingsBuilder{s: Settings{
		Coordinate: Coordinate{Version: DefaultVersion},
		Packaging:  DefaultPackaging,
	}}
}

// Coordinates sets groupId and artifactId.
func (b *SettingsBuilder) Coordinates(groupID, artifactID string) *SettingsBuilder {
	b.s.GroupID = groupID
	b.s.ArtifactID = artifactID

	return b
}

// Group sets the groupId.
func (b *SettingsBuilder) Group(groupID string) *SettingsBuilder {
	b.s.GroupID = groupID
	return b
}

// Artifact sets the artifactId.
func (b *SettingsBuilder) Artifact(artifactID string) *SettingsBuilder {
	b.s.ArtifactID = artifactID
	return b
}

// Version sets the project version.
func (b *SettingsBuilder) Version(version string) *SettingsBuilder {
	b.s.Version = version
	return b
}

// Parent sets the parent pom.
func (b *SettingsBuilder) Parent(groupID, artifactID, version string) *SettingsBuilder {
	b.s.Parent = &Parent{GroupID: groupID, ArtifactID: artifactID, Version: version}
	return b
}

// Packaging sets the packaging. An empty value restores the default.
func (b *SettingsBuilder) Packaging(packaging string) *SettingsBuilder {
	if packaging == "" {
		packaging = DefaultPackaging
	}

	b.s.Packaging = packaging

	return b
}

// Name sets the human readable project name.
func (b *SettingsBuilder) Name(name string) *SettingsBuilder {
	b.s.Name = name
	return b
}

// Description sets the project description.
func (b *SettingsBuilder) Description(description string) *SettingsBuilder {
	b.s.Description = description
	return b
}

// Licenses replaces the licenses.
func (b *SettingsBuilder) Licenses(licenses ...License) *SettingsBuilder {
	b.s.Licenses = slices.Clone(licenses)
	return b
}

// Developers replaces the developers.
func (b *SettingsBuilder) Developers(developers ...Developer) *SettingsBuilder {
	b.s.Developers = slices.Clone(developers)
	return b
}

// Scm customises the source control information.
func (b *SettingsBuilder) Scm(fn func(*Scm)) *SettingsBuilder {
	fn(&b.s.Scm)
	return b
}

// FinalName sets the name of the built artifact.
func (b *SettingsBuilder) FinalName(finalName string) *SettingsBuilder {
	b.s.FinalName = finalName
	return b
}

// SourceDirectory overrides the main source directory.
func (b *SettingsBuilder) SourceDirectory(dir string) *SettingsBuilder {
	b.s.SourceDirectory = dir
	return b
}

// TestSourceDirectory overrides the test source directory.
func (b *SettingsBuilder) TestSourceDirectory(dir string) *SettingsBuilder {
	b.s.TestSourceDirectory = dir
	return b
}

// Build returns a snapshot of the staged settings. Later builder calls do
// not affect a returned snapshot.
func (b *SettingsBuilder) Build() Settings {
	s := b.s
	s.Licenses = slices.Clone(b.s.Licenses)
	s.Developers = slices.Clone(b.s.Developers)

	if b.s.Parent != nil {
		p := *b.s.Parent
		s.Parent = &p
	}

	return s
}
