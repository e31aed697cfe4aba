package descriptor

import (
	"errors"
	"fmt"

	"github.com/hupe1980/pomgen/internal/maven"
)

// Validate checks the descriptor for errors that would otherwise surface only
// when the pom is written. The returned error wraps ErrInvalidDescriptor.
func (d *Descriptor) Validate() error {
	if err := d.validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDescriptor, err)
	}

	return nil
}

func (d *Descriptor) validate() error {
	if d.Project.GroupID == "" {
		return errors.New("project.groupId is required")
	}

	if d.Project.ArtifactID == "" {
		return errors.New("project.artifactId is required")
	}

	if d.Parent != nil && (d.Parent.GroupID == "" || d.Parent.ArtifactID == "" || d.Parent.Version == "") {
		return errors.New("parent: groupId, artifactId and version are required")
	}

	for i, l := range d.Project.Licenses {
		if _, err := parseDistribution(l.Distribution); err != nil {
			return fmt.Errorf("project.licenses[%d]: %w", i, err)
		}
	}

	for name := range d.VersionProperties {
		if _, err := maven.NewVersionProperty(name, false); err != nil {
			return fmt.Errorf("versionProperties: %w", err)
		}
	}

	if err := validateDependencies(d.Dependencies); err != nil {
		return err
	}

	if err := validateBoms(d.Boms); err != nil {
		return err
	}

	if err := validateBuildSection("build", d.Build); err != nil {
		return err
	}

	if err := validateRepositories("repositories", d.Repositories); err != nil {
		return err
	}

	if err := validateRepositories("pluginRepositories", d.PluginRepositories); err != nil {
		return err
	}

	return validateProfiles(d.Profiles)
}

func validateDependencies(deps []Dependency) error {
	seen := make(map[string]int, len(deps))

	for i, dep := range deps {
		if dep.GroupID == "" || dep.ArtifactID == "" {
			return fmt.Errorf("dependencies[%d]: groupId and artifactId are required", i)
		}

		id := dep.id()
		if prev, ok := seen[id]; ok {
			return fmt.Errorf("dependencies[%d]: duplicate id %q (also used by dependencies[%d])", i, id, prev)
		}

		seen[id] = i

		if _, err := maven.ParseScope(dep.Scope); err != nil {
			return fmt.Errorf("dependencies[%d]: %w", i, err)
		}

		if err := validateVersion(dep.Version, dep.VersionProperty); err != nil {
			return fmt.Errorf("dependencies[%d]: %w", i, err)
		}

		for j, ex := range dep.Exclusions {
			if ex.GroupID == "" || ex.ArtifactID == "" {
				return fmt.Errorf("dependencies[%d].exclusions[%d]: groupId and artifactId are required", i, j)
			}
		}
	}

	return nil
}

func validateBoms(boms []Bom) error {
	seen := make(map[string]int, len(boms))

	for i, bom := range boms {
		if bom.GroupID == "" || bom.ArtifactID == "" {
			return fmt.Errorf("boms[%d]: groupId and artifactId are required", i)
		}

		id := bom.id()
		if prev, ok := seen[id]; ok {
			return fmt.Errorf("boms[%d]: duplicate id %q (also used by boms[%d])", i, id, prev)
		}

		seen[id] = i

		if bom.Version == "" && bom.VersionProperty == "" {
			return fmt.Errorf("boms[%d]: version or versionProperty is required", i)
		}

		if err := validateVersion(bom.Version, bom.VersionProperty); err != nil {
			return fmt.Errorf("boms[%d]: %w", i, err)
		}
	}

	return nil
}

func validateVersion(version, property string) error {
	if version != "" && property != "" {
		return errors.New("version and versionProperty are mutually exclusive")
	}

	if property != "" {
		if _, err := maven.NewVersionProperty(property, false); err != nil {
			return err
		}
	}

	return nil
}

func validateBuildSection(path string, b BuildSection) error {
	for i, r := range b.Resources {
		if r.Directory == "" {
			return fmt.Errorf("%s.resources[%d]: directory is required", path, i)
		}
	}

	for i, r := range b.TestResources {
		if r.Directory == "" {
			return fmt.Errorf("%s.testResources[%d]: directory is required", path, i)
		}
	}

	for i, p := range b.Plugins {
		if p.GroupID == "" || p.ArtifactID == "" {
			return fmt.Errorf("%s.plugins[%d]: groupId and artifactId are required", path, i)
		}

		for j, e := range p.Executions {
			if e.ID == "" {
				return fmt.Errorf("%s.plugins[%d].executions[%d]: id is required", path, i, j)
			}
		}
	}

	return nil
}

func validateRepositories(path string, repos []Repository) error {
	seen := make(map[string]bool, len(repos))

	for i, r := range repos {
		if r.ID == "" || r.URL == "" {
			return fmt.Errorf("%s[%d]: id and url are required", path, i)
		}

		if seen[r.ID] {
			return fmt.Errorf("%s[%d]: duplicate id %q", path, i, r.ID)
		}

		seen[r.ID] = true
	}

	return nil
}

func validateProfiles(profiles []Profile) error {
	seen := make(map[string]bool, len(profiles))

	for i, p := range profiles {
		if p.ID == "" {
			return fmt.Errorf("profiles[%d]: id is required", i)
		}

		if seen[p.ID] {
			return fmt.Errorf("profiles[%d]: duplicate id %q", i, p.ID)
		}

		seen[p.ID] = true

		if err := validateBuildSection(fmt.Sprintf("profiles[%d].build", i), p.Build); err != nil {
			return err
		}
	}

	return nil
}
