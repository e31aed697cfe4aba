package conventions

import (
	"log/slog"

	"github.com/hupe1980/pomgen/internal/maven"
)

// Defaults for Options.
const (
	DefaultJavaVersion = "17"
	DefaultEncoding    = "UTF-8"
)

var bootVersionProperty = func() maven.VersionProperty {
	p, err := maven.NewVersionProperty(BomVersionProperty, true)
	if err != nil {
		panic(err)
	}

	return p
}()

// Defaults applies the base project conventions: the java.version property,
// the Spring Boot Maven plugin, and when a platform version is known the
// parent pom, the Spring Boot bom and encoding properties.
type Defaults struct {
	opts   Options
	parent *ParentPom
}

// NewDefaults resolves the parent pom up front so that Customize cannot fail.
func NewDefaults(opts Options) (*Defaults, error) {
	opts = opts.withDefaults()

	if err := ValidateRules(opts.ParentRules); err != nil {
		return nil, err
	}

	d := &Defaults{opts: opts}

	if opts.PlatformVersion != "" {
		parent, err := ResolveParent(opts.PlatformVersion, opts.ParentRules)
		if err != nil {
			return nil, err
		}

		d.parent = &parent
	}

	return d, nil
}

// Order implements Customizer.
func (d *Defaults) Order() int { return 0 }

// Customize implements Customizer. A parent already declared on the build is
// kept and no bom is imported for it.
func (d *Defaults) Customize(build *maven.Build) {
	if !build.Properties().Has("java.version") {
		build.Properties().Property("java.version", d.opts.JavaVersion)
	}

	build.Plugins().Add(SpringBootGroupID, "spring-boot-maven-plugin")

	if d.parent == nil {
		return
	}

	parent := *d.parent

	if existing := build.BuildSettings().Parent; existing != nil {
		parent = ParentPom{GroupID: existing.GroupID, ArtifactID: existing.ArtifactID, Version: existing.Version}
		d.opts.Logger.Debug("keeping declared parent", slog.String("parent", existing.GroupID+":"+existing.ArtifactID))
	} else {
		build.Settings().Parent(parent.GroupID, parent.ArtifactID, parent.Version)
	}

	if parent.IncludeBom && !build.Boms().HasCoordinates(SpringBootGroupID, BomArtifactID) {
		build.Properties().Version(bootVersionProperty, d.opts.PlatformVersion)
		build.Boms().Add(BomID, maven.BillOfMaterials{
			GroupID:    SpringBootGroupID,
			ArtifactID: BomArtifactID,
			Version:    maven.VersionOfProperty(bootVersionProperty),
			Order:      BomOrder,
		})
	}

	if !parent.IsStarterParent() {
		build.Properties().
			Property("project.build.sourceEncoding", d.opts.Encoding).
			Property("project.reporting.outputEncoding", d.opts.Encoding)
	}
}
