package pom

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hupe1980/pomgen/internal/maven"
)

const (
	modelVersion    = "4.0.0"
	projectOpen     = `<project xmlns="http://maven.apache.org/POM/4.0.0" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"`
	schemaLocation  = `xsi:schemaLocation="http://maven.apache.org/POM/4.0.0 https://maven.apache.org/xsd/maven-4.0.0.xsd">`
	xmlDeclaration  = `<?xml version="1.0" encoding="UTF-8"?>`
	relativePathTag = "<relativePath/> <!-- lookup parent from repository -->"
)

// DefaultIndent is the indentation unit used when none is configured.
const DefaultIndent = "\t"

var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// Writer renders a maven.Build as a pom.xml document.
type Writer struct {
	indent string
}

// Option configures a Writer.
type Option func(*Writer)

// WithIndent sets the indentation unit, e.g. "\t" or four spaces.
func WithIndent(indent string) Option {
	return func(w *Writer) { w.indent = indent }
}

// NewWriter returns a Writer with opts applied.
func NewWriter(opts ...Option) *Writer {
	w := &Writer{indent: DefaultIndent}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Render writes build to a new buffer and returns its bytes.
func Render(build *maven.Build, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := NewWriter(opts...).Write(&buf, build); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Write renders build to out. The build is only read. Identical builds always
// produce identical bytes.
//
// Configuration problems (a missing groupId or artifactId, an unrecognised
// dependency scope) are reported as *ConfigError before anything is written.
// Errors from out are returned as they are. On error, out may hold a partial
// document that must be discarded.
func (w *Writer) Write(out io.Writer, build *maven.Build) error {
	if err := validate(build); err != nil {
		return err
	}

	iw := newIndentWriter(out, w.indent)
	d := &document{w: iw}
	d.writeProject(build)

	return iw.flush()
}

// document walks the build model and emits elements. It relies on three
// primitives for every conditional: singleElement (skipped for empty text),
// element (wrapping block) and collectionElement (skipped for zero items).
type document struct {
	w *indentWriter
}

func (d *document) writeProject(build *maven.Build) {
	settings := build.BuildSettings()

	d.w.println(xmlDeclaration)
	d.w.println(projectOpen)
	d.w.indented(func() {
		d.w.println(schemaLocation)
		d.singleElement("modelVersion", modelVersion)
		d.writeParent(settings.Parent)
		d.writeCoordinates(settings)
		d.writePackaging(settings)
		d.singleElement("name", settings.Name)
		d.singleElement("description", settings.Description)
		collectionElement(d, "licenses", settings.Licenses, d.writeLicense)
		collectionElement(d, "developers", settings.Developers, d.writeDeveloper)
		d.writeScm(settings.Scm)
		d.writeProperties(build.Properties())
		d.writeDependencies(build.Dependencies())
		d.writeDependencyManagement(build.Boms())
		d.writeProfiles(build.Profiles())
		d.writeBuild(build)
		d.writeRepositories(build)
		d.writeDistributionManagement(build.DistributionManagement().Build())
	})
	d.w.println("")
	d.w.println("</project>")
}

func (d *document) writeParent(parent *maven.Parent) {
	if parent == nil {
		return
	}

	d.element("parent", func() {
		d.singleElement("groupId", parent.GroupID)
		d.singleElement("artifactId", parent.ArtifactID)
		d.singleElement("version", parent.Version)
		d.w.println(relativePathTag)
	})
}

func (d *document) writeCoordinates(settings maven.Settings) {
	d.singleElement("groupId", settings.GroupID)
	d.singleElement("artifactId", settings.ArtifactID)
	d.singleElement("version", settings.Version)
}

func (d *document) writePackaging(settings maven.Settings) {
	if settings.Packaging != "" && settings.Packaging != maven.DefaultPackaging {
		d.singleElement("packaging", settings.Packaging)
	}
}

func (d *document) writeLicense(license maven.License) {
	d.element("license", func() {
		d.singleElement("name", license.Name)
		d.singleElement("url", license.URL)
		d.singleElement("distribution", license.Distribution.String())
		d.singleElement("comments", license.Comments)
	})
}

func (d *document) writeDeveloper(developer maven.Developer) {
	d.element("developer", func() {
		d.singleElement("id", developer.ID)
		d.singleElement("name", developer.Name)
		d.singleElement("email", developer.Email)
		d.singleElement("url", developer.URL)
		d.singleElement("organization", developer.Organization)
		d.singleElement("organizationUrl", developer.OrganizationURL)
		collectionElement(d, "roles", developer.Roles, func(role string) {
			d.singleElement("role", role)
		})
		d.singleElement("timezone", developer.Timezone)
		collectionElement(d, "properties", developer.Properties, func(p maven.Property) {
			d.leafElement(p.Key, p.Value)
		})
	})
}

func (d *document) writeScm(scm maven.Scm) {
	if scm.IsEmpty() {
		return
	}

	d.element("scm", func() {
		d.singleElement("connection", scm.Connection)
		d.singleElement("developerConnection", scm.DeveloperConnection)
		d.singleElement("tag", scm.Tag)
		d.singleElement("url", scm.URL)
	})
}

func (d *document) writeProperties(properties *maven.PropertyContainer) {
	if properties.IsEmpty() {
		return
	}

	d.w.println("")
	d.element("properties", func() {
		for _, p := range properties.Values() {
			d.leafElement(p.Key, p.Value)
		}

		for _, p := range properties.Versions() {
			d.leafElement(p.Key, p.Value)
		}
	})
}

// dependencyBuckets lists the scope groups in the order they are written.
var dependencyBuckets = []func(maven.Scope) bool{
	maven.Scope.IsCompile,
	hasScope(maven.ScopeRuntime),
	hasScope(maven.ScopeCompileOnly),
	hasScope(maven.ScopeAnnotationProcessor),
	hasScope(maven.ScopeProvidedRuntime),
	maven.Scope.IsTest,
}

func hasScope(scopes ...maven.Scope) func(maven.Scope) bool {
	return func(s maven.Scope) bool {
		for _, candidate := range scopes {
			if s == candidate {
				return true
			}
		}

		return false
	}
}

func (d *document) writeDependencies(dependencies *maven.DependencyContainer) {
	if dependencies.IsEmpty() {
		return
	}

	d.w.println("")
	d.element("dependencies", func() {
		for i, bucket := range dependencyBuckets {
			written := d.writeDependencyBucket(dependencies, bucket)

			// Only the compile bucket is followed by a separator.
			if i == 0 && written > 0 {
				d.w.println("")
			}
		}
	})
}

func (d *document) writeDependencyBucket(dependencies *maven.DependencyContainer, match func(maven.Scope) bool) int {
	candidates := maven.SortedDependencies(dependencies.Filter(match))
	for _, dep := range candidates {
		d.writeDependency(dep)
	}

	return len(candidates)
}

func (d *document) writeDependency(dep maven.Dependency) {
	d.element("dependency", func() {
		d.singleElement("groupId", dep.GroupID)
		d.singleElement("artifactId", dep.ArtifactID)
		d.singleElement("version", dep.Version.String())

		scope, err := scopeForType(dep.Scope)
		if err != nil {
			d.w.fail(&ConfigError{Path: "dependency " + dep.Coordinates(), Err: err})
			return
		}

		d.singleElement("scope", scope)
		d.singleElement("classifier", dep.Classifier)

		if dep.IsOptional() {
			d.singleElement("optional", "true")
		}

		d.singleElement("type", dep.Type)
		collectionElement(d, "exclusions", dep.Exclusions, d.writeExclusion)
	})
}

func (d *document) writeExclusion(exclusion maven.Exclusion) {
	d.element("exclusion", func() {
		d.singleElement("groupId", exclusion.GroupID)
		d.singleElement("artifactId", exclusion.ArtifactID)
	})
}

// scopeForType maps a model scope to its pom representation. Compile,
// compile-only and annotation processor dependencies have no scope element.
func scopeForType(scope maven.Scope) (string, error) {
	switch scope {
	case maven.ScopeUnset, maven.ScopeCompile, maven.ScopeCompileOnly, maven.ScopeAnnotationProcessor:
		return "", nil
	case maven.ScopeRuntime:
		return "runtime", nil
	case maven.ScopeProvidedRuntime:
		return "provided", nil
	case maven.ScopeTestCompile, maven.ScopeTestRuntime:
		return "test", nil
	default:
		return "", fmt.Errorf("%w '%s'", maven.ErrUnknownScope, scope)
	}
}

func (d *document) writeDependencyManagement(boms *maven.BomContainer) {
	if boms.IsEmpty() {
		return
	}

	d.w.println("")
	d.element("dependencyManagement", func() {
		collectionElement(d, "dependencies", boms.Ordered(), d.writeBom)
	})
}

func (d *document) writeBom(bom maven.BillOfMaterials) {
	d.element("dependency", func() {
		d.singleElement("groupId", bom.GroupID)
		d.singleElement("artifactId", bom.ArtifactID)
		d.singleElement("version", bom.Version.String())
		d.singleElement("type", "pom")
		d.singleElement("scope", "import")
	})
}

func (d *document) writeProfiles(profiles *maven.ProfileContainer) {
	var candidates []maven.Profile

	for p := range profiles.Items() {
		if !p.IsEmpty() {
			candidates = append(candidates, p)
		}
	}

	collectionElement(d, "profiles", candidates, d.writeProfile)
}

func (d *document) writeProfile(profile maven.Profile) {
	d.element("profile", func() {
		d.singleElement("id", profile.ID)

		if !profile.Activation.IsEmpty() {
			d.writeActivation(profile.Activation)
		}

		if profile.Build != nil {
			d.writeBuild(profile.Build)
		}
	})
}

func (d *document) writeActivation(activation maven.Activation) {
	d.element("activation", func() {
		if activation.ActiveByDefault != nil {
			d.singleElement("activeByDefault", strconv.FormatBool(*activation.ActiveByDefault))
		}

		d.singleElement("jdk", activation.JDK)
		d.writeOS(activation.OS)
	})
}

func (d *document) writeOS(os maven.ActivationOS) {
	if os.IsEmpty() {
		return
	}

	d.element("os", func() {
		d.singleElement("name", os.Name)
		d.singleElement("family", os.Family)
		d.singleElement("arch", os.Arch)
		d.singleElement("version", os.Version)
	})
}

// writeBuild writes the build block of build. It is used for the project and
// for every profile, and is skipped when there is nothing to write.
func (d *document) writeBuild(build *maven.Build) {
	settings := build.BuildSettings()

	if settings.FinalName == "" && settings.SourceDirectory == "" && settings.TestSourceDirectory == "" &&
		build.Resources().IsEmpty() && build.TestResources().IsEmpty() && build.Plugins().IsEmpty() {
		return
	}

	d.w.println("")
	d.element("build", func() {
		d.singleElement("finalName", settings.FinalName)
		d.singleElement("sourceDirectory", settings.SourceDirectory)
		d.singleElement("testSourceDirectory", settings.TestSourceDirectory)
		collectionElement(d, "resources", build.Resources().Values(), func(r maven.Resource) {
			d.writeResource("resource", r)
		})
		collectionElement(d, "testResources", build.TestResources().Values(), func(r maven.Resource) {
			d.writeResource("testResource", r)
		})
		collectionElement(d, "plugins", build.Plugins().Values(), d.writePlugin)
	})
}

func (d *document) writeResource(name string, resource maven.Resource) {
	d.element(name, func() {
		d.singleElement("directory", resource.Directory)
		d.singleElement("targetPath", resource.TargetPath)

		if resource.Filtering {
			d.singleElement("filtering", "true")
		}

		collectionElement(d, "includes", resource.Includes, func(include string) {
			d.singleElement("include", include)
		})
		collectionElement(d, "excludes", resource.Excludes, func(exclude string) {
			d.singleElement("exclude", exclude)
		})
	})
}

func (d *document) writePlugin(plugin maven.Plugin) {
	d.element("plugin", func() {
		d.singleElement("groupId", plugin.GroupID)
		d.singleElement("artifactId", plugin.ArtifactID)
		d.singleElement("version", plugin.Version)

		if plugin.Extensions {
			d.singleElement("extensions", "true")
		}

		collectionElement(d, "configuration", plugin.Configuration, d.writeSetting)
		collectionElement(d, "executions", plugin.Executions, d.writeExecution)
		collectionElement(d, "dependencies", plugin.Dependencies, d.writePluginDependency)
	})
}

// writeSetting renders one node of a plugin configuration tree.
func (d *document) writeSetting(setting maven.Setting) {
	switch setting.Kind() {
	case maven.SettingScalar:
		d.singleElement(setting.Name, setting.Value())
	case maven.SettingNested:
		collectionElement(d, setting.Name, setting.Children(), d.writeSetting)
	}
}

func (d *document) writeExecution(execution maven.Execution) {
	d.element("execution", func() {
		d.singleElement("id", execution.ID)
		d.singleElement("phase", execution.Phase)
		collectionElement(d, "goals", execution.Goals, func(goal string) {
			d.singleElement("goal", goal)
		})
		collectionElement(d, "configuration", execution.Configuration, d.writeSetting)
	})
}

func (d *document) writePluginDependency(dep maven.PluginDependency) {
	d.element("dependency", func() {
		d.singleElement("groupId", dep.GroupID)
		d.singleElement("artifactId", dep.ArtifactID)
		d.singleElement("version", dep.Version)
	})
}

func (d *document) writeRepositories(build *maven.Build) {
	repositories := build.Repositories().Explicit()
	pluginRepositories := build.PluginRepositories().Explicit()

	if len(repositories) == 0 && len(pluginRepositories) == 0 {
		return
	}

	d.w.println("")
	collectionElement(d, "repositories", repositories, func(r maven.Repository) {
		d.writeRepository("repository", r)
	})
	collectionElement(d, "pluginRepositories", pluginRepositories, func(r maven.Repository) {
		d.writeRepository("pluginRepository", r)
	})
}

func (d *document) writeRepository(name string, repository maven.Repository) {
	d.element(name, func() {
		d.singleElement("id", repository.ID)
		d.singleElement("name", repository.Name)
		d.singleElement("url", repository.URL)

		if repository.SnapshotsEnabled {
			d.element("snapshots", func() {
				d.singleElement("enabled", "true")
			})
		}
	})
}

func (d *document) writeDistributionManagement(dm maven.DistributionManagement) {
	if dm.IsEmpty() {
		return
	}

	d.element("distributionManagement", func() {
		d.singleElement("downloadUrl", dm.DownloadURL)
		d.writeDeploymentRepository("repository", dm.Repository)
		d.writeDeploymentRepository("snapshotRepository", dm.SnapshotRepository)

		if !dm.Site.IsEmpty() {
			d.element("site", func() {
				d.singleElement("id", dm.Site.ID)
				d.singleElement("name", dm.Site.Name)
				d.singleElement("url", dm.Site.URL)
			})
		}

		if !dm.Relocation.IsEmpty() {
			d.element("relocation", func() {
				d.singleElement("groupId", dm.Relocation.GroupID)
				d.singleElement("artifactId", dm.Relocation.ArtifactID)
				d.singleElement("version", dm.Relocation.Version)
				d.singleElement("message", dm.Relocation.Message)
			})
		}
	})
}

func (d *document) writeDeploymentRepository(name string, repository maven.DeploymentRepository) {
	if repository.IsEmpty() {
		return
	}

	d.element(name, func() {
		d.singleElement("id", repository.ID)
		d.singleElement("name", repository.Name)
		d.singleElement("url", repository.URL)
		d.singleElement("layout", repository.Layout)

		if repository.UniqueVersion != nil {
			d.singleElement("uniqueVersion", strconv.FormatBool(*repository.UniqueVersion))
		}
	})
}

// singleElement writes <name>text</name>, or nothing when text is empty.
func (d *document) singleElement(name, text string) {
	if text == "" {
		return
	}

	d.leafElement(name, text)
}

// leafElement writes <name>text</name> even when text is empty. Properties
// use it because an empty value is still a definition.
func (d *document) leafElement(name, text string) {
	d.w.print("<" + name + ">")
	d.w.print(textEscaper.Replace(text))
	d.w.println("</" + name + ">")
}

// element writes a wrapping element around the output of content.
func (d *document) element(name string, content func()) {
	d.w.println("<" + name + ">")
	d.w.indented(content)
	d.w.println("</" + name + ">")
}

// collectionElement wraps one itemWriter call per item in an element called
// name, or writes nothing when items is empty.
func collectionElement[T any](d *document, name string, items []T, itemWriter func(T)) {
	if len(items) == 0 {
		return
	}

	d.element(name, func() {
		for _, item := range items {
			itemWriter(item)
		}
	})
}
