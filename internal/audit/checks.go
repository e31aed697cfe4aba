package audit

import (
	"context"
	"fmt"
	"strings"

	"github.com/hupe1980/pomgen/internal/maven"
)

const snapshotSuffix = "-SNAPSHOT"

// dependencyLocation returns the location of a dependency in the pom.
func dependencyLocation(d maven.Dependency) string {
	return "dependencies/" + d.Coordinates()
}

// pluginEntry is a plugin together with the location prefix of the build it
// belongs to.
type pluginEntry struct {
	plugin maven.Plugin
	prefix string
}

// allPlugins returns the plugins of the main build followed by those of each
// profile build.
func allPlugins(build *maven.Build) []pluginEntry {
	var out []pluginEntry

	for p := range build.Plugins().Items() {
		out = append(out, pluginEntry{plugin: p, prefix: "plugins/"})
	}

	for profile := range build.Profiles().Items() {
		if profile.Build == nil {
			continue
		}

		for p := range profile.Build.Plugins().Items() {
			out = append(out, pluginEntry{plugin: p, prefix: "profiles/" + profile.ID + "/plugins/"})
		}
	}

	return out
}

// isDynamicVersion reports whether v resolves differently over time.
func isDynamicVersion(v string) bool {
	switch strings.ToUpper(v) {
	case "LATEST", "RELEASE":
		return true
	}

	return strings.ContainsAny(v, "[(,)]")
}

// ---------------------------------------------------------------------------
// POM-001: Snapshot dependency in a release
// ---------------------------------------------------------------------------

// SnapshotDependencyCheck flags SNAPSHOT dependencies of a release project.
type SnapshotDependencyCheck struct{}

// ID implements Check.
func (c *SnapshotDependencyCheck) ID() string { return "POM-001" }

// Run implements Check.
func (c *SnapshotDependencyCheck) Run(_ context.Context, build *maven.Build) []Finding {
	if strings.HasSuffix(build.BuildSettings().Version, snapshotSuffix) {
		return nil
	}

	var findings []Finding

	for d := range build.Dependencies().Items() {
		if d.Version == nil || d.Version.IsProperty() || !strings.HasSuffix(d.Version.Value(), snapshotSuffix) {
			continue
		}

		findings = append(findings, Finding{
			RuleID:      c.ID(),
			Severity:    SeverityMedium,
			Location:    dependencyLocation(d),
			Message:     fmt.Sprintf("release build depends on snapshot %s", d.Version.Value()),
			Remediation: "Depend on a released version or mark the project version as -SNAPSHOT.",
		})
	}

	return findings
}

// ---------------------------------------------------------------------------
// POM-002: Repository over plain HTTP
// ---------------------------------------------------------------------------

// InsecureRepositoryCheck flags repositories that are not served over HTTPS.
type InsecureRepositoryCheck struct{}

// ID implements Check.
func (c *InsecureRepositoryCheck) ID() string { return "POM-002" }

// Run implements Check.
func (c *InsecureRepositoryCheck) Run(_ context.Context, build *maven.Build) []Finding {
	var findings []Finding

	check := func(kind string, repos []maven.Repository) {
		for _, r := range repos {
			if !strings.HasPrefix(strings.ToLower(r.URL), "http://") {
				continue
			}

			findings = append(findings, Finding{
				RuleID:      c.ID(),
				Severity:    SeverityHigh,
				Location:    kind + "/" + r.ID,
				Message:     fmt.Sprintf("repository %q uses plain HTTP: %s", r.ID, r.URL),
				Remediation: "Use an https:// URL; Maven 3.8.1+ blocks HTTP repositories by default.",
			})
		}
	}

	check("repositories", build.Repositories().Explicit())
	check("pluginRepositories", build.PluginRepositories().Explicit())

	return findings
}

// ---------------------------------------------------------------------------
// POM-003: Plugin without version
// ---------------------------------------------------------------------------

// UnpinnedPluginCheck flags plugins without a version when no parent pom
// manages plugin versions.
type UnpinnedPluginCheck struct{}

// ID implements Check.
func (c *UnpinnedPluginCheck) ID() string { return "POM-003" }

// Run implements Check.
func (c *UnpinnedPluginCheck) Run(_ context.Context, build *maven.Build) []Finding {
	if build.BuildSettings().Parent != nil {
		return nil
	}

	var findings []Finding

	for _, e := range allPlugins(build) {
		if e.plugin.Version != "" {
			continue
		}

		coords := e.plugin.GroupID + ":" + e.plugin.ArtifactID
		findings = append(findings, Finding{
			RuleID:      c.ID(),
			Severity:    SeverityLow,
			Location:    e.prefix + coords,
			Message:     fmt.Sprintf("plugin %s has no version", coords),
			Remediation: "Pin the plugin version or inherit it from a parent pom.",
		})
	}

	return findings
}

// ---------------------------------------------------------------------------
// POM-004: Dynamic dependency version
// ---------------------------------------------------------------------------

// DynamicVersionCheck flags version ranges and the LATEST/RELEASE markers.
type DynamicVersionCheck struct{}

// ID implements Check.
func (c *DynamicVersionCheck) ID() string { return "POM-004" }

// Run implements Check.
func (c *DynamicVersionCheck) Run(_ context.Context, build *maven.Build) []Finding {
	var findings []Finding

	for d := range build.Dependencies().Items() {
		if d.Version == nil || d.Version.IsProperty() || !isDynamicVersion(d.Version.Value()) {
			continue
		}

		findings = append(findings, Finding{
			RuleID:      c.ID(),
			Severity:    SeverityHigh,
			Location:    dependencyLocation(d),
			Message:     fmt.Sprintf("dynamic version %q makes the build non-reproducible", d.Version.Value()),
			Remediation: "Pin an exact version.",
		})
	}

	return findings
}

// ---------------------------------------------------------------------------
// POM-005: Missing license
// ---------------------------------------------------------------------------

// MissingLicenseCheck reports a project that declares no license.
type MissingLicenseCheck struct{}

// ID implements Check.
func (c *MissingLicenseCheck) ID() string { return "POM-005" }

// Run implements Check.
func (c *MissingLicenseCheck) Run(_ context.Context, build *maven.Build) []Finding {
	if len(build.BuildSettings().Licenses) > 0 {
		return nil
	}

	return []Finding{{
		RuleID:      c.ID(),
		Severity:    SeverityInfo,
		Location:    "licenses",
		Message:     "project declares no license",
		Remediation: "Add a license under project.licenses.",
	}}
}

// ---------------------------------------------------------------------------
// POM-006: activeByDefault profile
// ---------------------------------------------------------------------------

// ActiveByDefaultProfileCheck flags profiles activated by default. Such a
// profile is silently deactivated as soon as any other profile is activated.
type ActiveByDefaultProfileCheck struct{}

// ID implements Check.
func (c *ActiveByDefaultProfileCheck) ID() string { return "POM-006" }

// Run implements Check.
func (c *ActiveByDefaultProfileCheck) Run(_ context.Context, build *maven.Build) []Finding {
	var findings []Finding

	for p := range build.Profiles().Items() {
		if p.Activation.ActiveByDefault == nil || !*p.Activation.ActiveByDefault {
			continue
		}

		findings = append(findings, Finding{
			RuleID:      c.ID(),
			Severity:    SeverityLow,
			Location:    "profiles/" + p.ID,
			Message:     fmt.Sprintf("profile %q is activeByDefault", p.ID),
			Remediation: "Activate the profile with a property or file condition instead.",
		})
	}

	return findings
}
