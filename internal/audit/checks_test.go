package audit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/pomgen/internal/maven"
)

func TestSnapshotDependencyCheck(t *testing.T) {
	tests := []struct {
		name    string
		version string
		dep     maven.DependencyOption
		want    int
	}{
		{"release with snapshot", "1.0.0", maven.WithVersion("2.0-SNAPSHOT"), 1},
		{"release with release", "1.0.0", maven.WithVersion("2.0"), 0},
		{"snapshot project", "1.1.0-SNAPSHOT", maven.WithVersion("2.0-SNAPSHOT"), 0},
		{"managed version", "1.0.0", maven.WithScope(maven.ScopeCompile), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			build := newBuild()
			build.Settings().Version(tt.version)
			addDependency(build, "org.example", "lib", tt.dep)

			findings := (&SnapshotDependencyCheck{}).Run(context.Background(), build)
			require.Len(t, findings, tt.want)

			if tt.want > 0 {
				assert.Equal(t, "dependencies/org.example:lib", findings[0].Location)
				assert.Equal(t, SeverityMedium, findings[0].Severity)
			}
		})
	}
}

func TestInsecureRepositoryCheck(t *testing.T) {
	build := newBuild()
	build.Repositories().AddRepository(maven.Repository{ID: "secure", URL: "https://repo.example.com"})
	build.Repositories().AddRepository(maven.Repository{ID: "plain", URL: "HTTP://repo.example.com"})
	build.PluginRepositories().AddRepository(maven.Repository{ID: "plugins", URL: "http://plugins.example.com"})
	build.Repositories().AddRepository(maven.MavenCentral)

	findings := (&InsecureRepositoryCheck{}).Run(context.Background(), build)
	require.Len(t, findings, 2)
	assert.Equal(t, "repositories/plain", findings[0].Location)
	assert.Equal(t, "pluginRepositories/plugins", findings[1].Location)
	assert.Equal(t, SeverityHigh, findings[0].Severity)
}

func TestUnpinnedPluginCheck(t *testing.T) {
	build := newBuild()
	build.Plugins().Add("org.apache.maven.plugins", "maven-compiler-plugin")
	build.Plugins().Add("org.apache.maven.plugins", "maven-jar-plugin", func(p *maven.PluginBuilder) {
		p.Version("3.4.1")
	})
	build.Profiles().Add(maven.NewProfile("docker", maven.ProfileBuild(func(b *maven.Build) {
		b.Plugins().Add("com.spotify", "dockerfile-maven-plugin")
	})))

	findings := (&UnpinnedPluginCheck{}).Run(context.Background(), build)
	require.Len(t, findings, 2)
	assert.Equal(t, "plugins/org.apache.maven.plugins:maven-compiler-plugin", findings[0].Location)
	assert.Equal(t, "profiles/docker/plugins/com.spotify:dockerfile-maven-plugin", findings[1].Location)

	t.Run("parent manages versions", func(t *testing.T) {
		build.Settings().Parent("org.springframework.boot", "spring-boot-starter-parent", "3.3.0")
		assert.Empty(t, (&UnpinnedPluginCheck{}).Run(context.Background(), build))
	})
}

func TestDynamicVersionCheck(t *testing.T) {
	tests := []struct {
		version string
		dynamic bool
	}{
		{"1.0.0", false},
		{"1.0.0-SNAPSHOT", false},
		{"LATEST", true},
		{"release", true},
		{"[1.0,2.0)", true},
		{"(,1.0]", true},
		{"[1.5]", true},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			build := newBuild()
			addDependency(build, "org.example", "lib", maven.WithVersion(tt.version))

			findings := (&DynamicVersionCheck{}).Run(context.Background(), build)
			assert.Equal(t, tt.dynamic, len(findings) == 1)
		})
	}
}

func TestDynamicVersionCheck_IgnoresProperties(t *testing.T) {
	build := newBuild()
	addDependency(build, "org.example", "lib",
		maven.WithVersionReference(maven.VersionOfProperty(maven.MustVersionProperty("lib.version"))))

	assert.Empty(t, (&DynamicVersionCheck{}).Run(context.Background(), build))
}

func TestMissingLicenseCheck(t *testing.T) {
	build := newBuild()
	assert.Empty(t, (&MissingLicenseCheck{}).Run(context.Background(), build))

	build.Settings().Licenses()

	findings := (&MissingLicenseCheck{}).Run(context.Background(), build)
	require.Len(t, findings, 1)
	assert.Equal(t, SeverityInfo, findings[0].Severity)
}

func TestActiveByDefaultProfileCheck(t *testing.T) {
	build := newBuild()
	build.Profiles().Add(maven.NewProfile("on", maven.ProfileActivation(func(a *maven.Activation) {
		a.SetActiveByDefault(true)
	})))
	build.Profiles().Add(maven.NewProfile("off", maven.ProfileActivation(func(a *maven.Activation) {
		a.SetActiveByDefault(false)
	})))
	build.Profiles().Add(maven.NewProfile("plain"))

	findings := (&ActiveByDefaultProfileCheck{}).Run(context.Background(), build)
	require.Len(t, findings, 1)
	assert.Equal(t, "profiles/on", findings[0].Location)
}
