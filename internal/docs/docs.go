// Package docs generates human-readable project documentation from a Maven
// build. It supports Markdown, HTML, and AsciiDoc output formats, with an
// optional usage snippet showing how other projects depend on the artifact.
package docs

import (
	"fmt"
	"strings"

	"github.com/hupe1980/pomgen/internal/maven"
)

// DependencyInfo describes a single dependency.
type DependencyInfo struct {
	// Coordinates is "groupId:artifactId".
	Coordinates string
	// Version is the literal version, "${property}", or "managed".
	Version string
	// Scope is the model scope name (compile when unset).
	Scope string
	// Optional reports whether the dependency is rendered optional.
	Optional bool
}

// PluginInfo describes a build plugin.
type PluginInfo struct {
	Coordinates string
	Version     string
	// Goals lists "phase: goal, goal" entries, one per execution.
	Goals []string
}

// ProfileInfo describes a profile.
type ProfileInfo struct {
	ID string
	// Activation summarises the activation conditions, or "-" for none.
	Activation string
	Plugins    []string
}

// PropertyInfo is a single property.
type PropertyInfo struct {
	Name  string
	Value string
}

// DocModel is the structured data model for documentation generation.
type DocModel struct {
	// Title overrides the document title.
	Title       string
	GroupID     string
	ArtifactID  string
	Version     string
	Packaging   string
	Name        string
	Description string
	// Parent is "groupId:artifactId:version", empty without a parent.
	Parent       string
	Licenses     []string
	Boms         []DependencyInfo
	Dependencies []DependencyInfo
	Plugins      []PluginInfo
	Profiles     []ProfileInfo
	Properties   []PropertyInfo
	// IncludeUsage controls whether a dependency snippet is appended.
	IncludeUsage bool
}

// DefaultTitle returns the title used when Title is empty.
func (m *DocModel) DefaultTitle() string {
	if m.Title != "" {
		return m.Title
	}

	if m.Name != "" {
		return m.Name
	}

	return m.ArtifactID
}

// Coordinates returns "groupId:artifactId:version".
func (m *DocModel) Coordinates() string {
	return m.GroupID + ":" + m.ArtifactID + ":" + m.Version
}

// FromBuild extracts a DocModel from a build. Dependencies are listed in pom
// order; everything else keeps declaration order.
func FromBuild(build *maven.Build) *DocModel {
	s := build.BuildSettings()

	model := &DocModel{
		GroupID:     s.GroupID,
		ArtifactID:  s.ArtifactID,
		Version:     s.Version,
		Packaging:   s.Packaging,
		Name:        s.Name,
		Description: s.Description,
	}

	if s.Parent != nil {
		model.Parent = s.Parent.GroupID + ":" + s.Parent.ArtifactID + ":" + s.Parent.Version
	}

	for _, l := range s.Licenses {
		model.Licenses = append(model.Licenses, l.Name)
	}

	for _, b := range build.Boms().Ordered() {
		model.Boms = append(model.Boms, DependencyInfo{
			Coordinates: b.GroupID + ":" + b.ArtifactID,
			Version:     versionString(b.Version),
			Scope:       "import",
		})
	}

	for _, d := range maven.SortedDependencies(build.Dependencies().Values()) {
		scope := d.Scope.String()
		if d.Scope == maven.ScopeUnset {
			scope = maven.ScopeCompile.String()
		}

		model.Dependencies = append(model.Dependencies, DependencyInfo{
			Coordinates: d.Coordinates(),
			Version:     versionString(d.Version),
			Scope:       scope,
			Optional:    d.IsOptional(),
		})
	}

	for p := range build.Plugins().Items() {
		model.Plugins = append(model.Plugins, pluginInfo(p))
	}

	for p := range build.Profiles().Items() {
		pi := ProfileInfo{ID: p.ID, Activation: activationString(p.Activation)}

		if p.Build != nil {
			for plugin := range p.Build.Plugins().Items() {
				pi.Plugins = append(pi.Plugins, plugin.GroupID+":"+plugin.ArtifactID)
			}
		}

		model.Profiles = append(model.Profiles, pi)
	}

	props := build.Properties()
	for _, p := range append(props.Versions(), props.Values()...) {
		model.Properties = append(model.Properties, PropertyInfo{Name: p.Key, Value: p.Value})
	}

	return model
}

func versionString(v *maven.VersionReference) string {
	if v == nil {
		return "managed"
	}

	return v.String()
}

func pluginInfo(p maven.Plugin) PluginInfo {
	pi := PluginInfo{Coordinates: p.GroupID + ":" + p.ArtifactID, Version: p.Version}
	if pi.Version == "" {
		pi.Version = "managed"
	}

	for _, e := range p.Executions {
		phase := e.Phase
		if phase == "" {
			phase = "default"
		}

		pi.Goals = append(pi.Goals, fmt.Sprintf("%s: %s", phase, strings.Join(e.Goals, ", ")))
	}

	return pi
}

func activationString(a maven.Activation) string {
	var parts []string

	if a.ActiveByDefault != nil {
		parts = append(parts, fmt.Sprintf("activeByDefault=%t", *a.ActiveByDefault))
	}

	if a.JDK != "" {
		parts = append(parts, "jdk="+a.JDK)
	}

	if a.OS.Family != "" {
		parts = append(parts, "os.family="+a.OS.Family)
	}

	if a.OS.Name != "" {
		parts = append(parts, "os.name="+a.OS.Name)
	}

	if len(parts) == 0 {
		return "-"
	}

	return strings.Join(parts, ", ")
}

// GenerateUsageSnippet returns the pom fragment other projects use to depend
// on the documented artifact.
func GenerateUsageSnippet(model *DocModel) string {
	var b strings.Builder

	b.WriteString("<dependency>\n")
	fmt.Fprintf(&b, "  <groupId>%s</groupId>\n", model.GroupID)
	fmt.Fprintf(&b, "  <artifactId>%s</artifactId>\n", model.ArtifactID)
	fmt.Fprintf(&b, "  <version>%s</version>\n", model.Version)

	if model.Packaging != "" && model.Packaging != "jar" {
		fmt.Fprintf(&b, "  <type>%s</type>\n", model.Packaging)
	}

	b.WriteString("</dependency>\n")

	return b.String()
}
