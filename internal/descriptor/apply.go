package descriptor

import (
	"fmt"
	"strings"

	"github.com/hupe1980/pomgen/internal/maputil"
	"github.com/hupe1980/pomgen/internal/maven"
)

// DefaultBomOrder is the order given to boms that do not declare one.
const DefaultBomOrder = 1<<31 - 1

func (dep Dependency) id() string {
	if dep.ID != "" {
		return dep.ID
	}

	return dep.ArtifactID
}

func (bom Bom) id() string {
	if bom.ID != "" {
		return bom.ID
	}

	return bom.ArtifactID
}

func parseDistribution(s string) (maven.LicenseDistribution, error) {
	switch strings.ToLower(s) {
	case "":
		return maven.DistributionUnset, nil
	case "repo":
		return maven.DistributionRepo, nil
	case "manual":
		return maven.DistributionManual, nil
	default:
		return maven.DistributionUnset, fmt.Errorf("unknown license distribution %q (must be repo or manual)", s)
	}
}

func versionReference(version, property string) (*maven.VersionReference, error) {
	if property != "" {
		p, err := maven.NewVersionProperty(property, false)
		if err != nil {
			return nil, err
		}

		return maven.VersionOfProperty(p), nil
	}

	if version != "" {
		return maven.VersionOf(version), nil
	}

	return nil, nil //nolint:nilnil // no version means managed elsewhere
}

// Apply populates build from the descriptor through the build model API.
// Items already present under the same key are replaced or merged.
func (d *Descriptor) Apply(build *maven.Build) error {
	applySettings(build.Settings(), d)

	for _, name := range maputil.SortedKeys(d.Properties) {
		build.Properties().Property(name, d.Properties[name])
	}

	for _, name := range maputil.SortedKeys(d.VersionProperties) {
		p, err := maven.NewVersionProperty(name, false)
		if err != nil {
			return err
		}

		build.Properties().Version(p, d.VersionProperties[name])
	}

	for i, dep := range d.Dependencies {
		md, err := dep.toMaven()
		if err != nil {
			return fmt.Errorf("dependencies[%d]: %w", i, err)
		}

		build.Dependencies().Add(dep.id(), md)
	}

	for i, bom := range d.Boms {
		mb, err := bom.toMaven()
		if err != nil {
			return fmt.Errorf("boms[%d]: %w", i, err)
		}

		build.Boms().Add(bom.id(), mb)
	}

	applyBuildSection(build, d.Build)

	for _, r := range d.Repositories {
		build.Repositories().AddRepository(r.toMaven())
	}

	for _, r := range d.PluginRepositories {
		build.PluginRepositories().AddRepository(r.toMaven())
	}

	for _, p := range d.Profiles {
		build.Profiles().Add(p.toMaven())
	}

	if d.DistributionManagement != nil {
		applyDistribution(build.DistributionManagement(), d.DistributionManagement)
	}

	return nil
}

func applySettings(s *maven.SettingsBuilder, d *Descriptor) {
	p := d.Project

	s.Coordinates(p.GroupID, p.ArtifactID)

	if p.Version != "" {
		s.Version(p.Version)
	}

	if d.Parent != nil {
		s.Parent(d.Parent.GroupID, d.Parent.ArtifactID, d.Parent.Version)
	}

	s.Packaging(p.Packaging).Name(p.Name).Description(p.Description)

	if len(p.Licenses) > 0 {
		licenses := make([]maven.License, 0, len(p.Licenses))
		for _, l := range p.Licenses {
			dist, _ := parseDistribution(l.Distribution)
			licenses = append(licenses, maven.License{Name: l.Name, URL: l.URL, Distribution: dist, Comments: l.Comments})
		}

		s.Licenses(licenses...)
	}

	if len(p.Developers) > 0 {
		developers := make([]maven.Developer, 0, len(p.Developers))
		for _, dev := range p.Developers {
			developers = append(developers, dev.toMaven())
		}

		s.Developers(developers...)
	}

	if p.Scm != nil {
		s.Scm(func(scm *maven.Scm) {
			*scm = maven.Scm{
				Connection:          p.Scm.Connection,
				DeveloperConnection: p.Scm.DeveloperConnection,
				Tag:                 p.Scm.Tag,
				URL:                 p.Scm.URL,
			}
		})
	}
}

func (dev Developer) toMaven() maven.Developer {
	md := maven.Developer{
		ID:              dev.ID,
		Name:            dev.Name,
		Email:           dev.Email,
		URL:             dev.URL,
		Organization:    dev.Organization,
		OrganizationURL: dev.OrganizationURL,
		Roles:           dev.Roles,
		Timezone:        dev.Timezone,
	}

	for _, key := range maputil.SortedKeys(dev.Properties) {
		md.Properties = append(md.Properties, maven.Property{Key: key, Value: dev.Properties[key]})
	}

	return md
}

func (dep Dependency) toMaven() (maven.Dependency, error) {
	scope, err := maven.ParseScope(dep.Scope)
	if err != nil {
		return maven.Dependency{}, err
	}

	version, err := versionReference(dep.Version, dep.VersionProperty)
	if err != nil {
		return maven.Dependency{}, err
	}

	opts := []maven.DependencyOption{
		maven.WithVersionReference(version),
		maven.WithScope(scope),
		maven.WithClassifier(dep.Classifier),
		maven.WithType(dep.Type),
		maven.WithOptional(dep.Optional),
	}

	for _, ex := range dep.Exclusions {
		opts = append(opts, maven.WithExclusions(maven.Exclusion{GroupID: ex.GroupID, ArtifactID: ex.ArtifactID}))
	}

	return maven.NewDependency(dep.GroupID, dep.ArtifactID, opts...), nil
}

func (bom Bom) toMaven() (maven.BillOfMaterials, error) {
	version, err := versionReference(bom.Version, bom.VersionProperty)
	if err != nil {
		return maven.BillOfMaterials{}, err
	}

	order := DefaultBomOrder
	if bom.Order != nil {
		order = *bom.Order
	}

	return maven.BillOfMaterials{
		GroupID:    bom.GroupID,
		ArtifactID: bom.ArtifactID,
		Version:    version,
		Order:      order,
	}, nil
}

func applyBuildSection(build *maven.Build, b BuildSection) {
	build.Settings().
		FinalName(b.FinalName).
		SourceDirectory(b.SourceDirectory).
		TestSourceDirectory(b.TestSourceDirectory)

	for _, r := range b.Resources {
		build.Resources().Add(r.Directory, r.apply)
	}

	for _, r := range b.TestResources {
		build.TestResources().Add(r.Directory, r.apply)
	}

	for _, p := range b.Plugins {
		build.Plugins().Add(p.GroupID, p.ArtifactID, p.apply)
	}
}

func (r Resource) apply(mr *maven.Resource) {
	mr.TargetPath = r.TargetPath
	mr.Filtering = r.Filtering
	mr.Includes = append(mr.Includes, r.Includes...)
	mr.Excludes = append(mr.Excludes, r.Excludes...)
}

func (p Plugin) apply(b *maven.PluginBuilder) {
	if p.Version != "" {
		b.Version(p.Version)
	}

	if p.Extensions {
		b.Extensions(true)
	}

	if len(p.Configuration) > 0 {
		b.Configuration(p.Configuration.apply)
	}

	for _, e := range p.Executions {
		b.Execution(e.ID, func(eb *maven.ExecutionBuilder) {
			if e.Phase != "" {
				eb.Phase(e.Phase)
			}

			for _, goal := range e.Goals {
				eb.Goal(goal)
			}

			if len(e.Configuration) > 0 {
				eb.Configuration(e.Configuration.apply)
			}
		})
	}

	for _, dep := range p.Dependencies {
		b.Dependency(dep.GroupID, dep.ArtifactID, dep.Version)
	}
}

// apply replays the tree onto a configuration builder.
func (c Configuration) apply(b *maven.ConfigurationBuilder) {
	for _, s := range c {
		switch s.Kind() {
		case maven.SettingScalar:
			b.Add(s.Name, s.Value())
		case maven.SettingNested:
			b.AddConfigure(s.Name, Configuration(s.Children()).apply)
		}
	}
}

func (r Repository) toMaven() maven.Repository {
	releases := true
	if r.Releases != nil {
		releases = *r.Releases
	}

	return maven.Repository{
		ID:               r.ID,
		Name:             r.Name,
		URL:              r.URL,
		ReleasesEnabled:  releases,
		SnapshotsEnabled: r.Snapshots,
	}
}

func (p Profile) toMaven() maven.Profile {
	return maven.NewProfile(p.ID,
		maven.ProfileActivation(func(a *maven.Activation) {
			if p.Activation == nil {
				return
			}

			if p.Activation.ActiveByDefault != nil {
				a.SetActiveByDefault(*p.Activation.ActiveByDefault)
			}

			a.JDK = p.Activation.JDK

			if activationOS := p.Activation.OS; activationOS != nil {
				a.OS = maven.ActivationOS{
					Name:    activationOS.Name,
					Family:  activationOS.Family,
					Arch:    activationOS.Arch,
					Version: activationOS.Version,
				}
			}
		}),
		maven.ProfileBuild(func(b *maven.Build) {
			applyBuildSection(b, p.Build)
		}),
	)
}

func applyDistribution(b *maven.DistributionManagementBuilder, dm *DistributionManagement) {
	b.DownloadURL(dm.DownloadURL)

	if dm.Repository != nil {
		b.Repository(dm.Repository.apply)
	}

	if dm.SnapshotRepository != nil {
		b.SnapshotRepository(dm.SnapshotRepository.apply)
	}

	if dm.Site != nil {
		b.Site(func(s *maven.Site) {
			*s = maven.Site{ID: dm.Site.ID, Name: dm.Site.Name, URL: dm.Site.URL}
		})
	}

	if dm.Relocation != nil {
		b.Relocation(func(r *maven.Relocation) {
			*r = maven.Relocation{
				GroupID:    dm.Relocation.GroupID,
				ArtifactID: dm.Relocation.ArtifactID,
				Version:    dm.Relocation.Version,
				Message:    dm.Relocation.Message,
			}
		})
	}
}

func (r *DeploymentRepository) apply(mr *maven.DeploymentRepository) {
	*mr = maven.DeploymentRepository{
		ID:            r.ID,
		Name:          r.Name,
		URL:           r.URL,
		Layout:        r.Layout,
		UniqueVersion: r.UniqueVersion,
	}
}
