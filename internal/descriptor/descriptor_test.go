package descriptor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/pomgen/internal/maven"
	"github.com/hupe1980/pomgen/internal/pom"
)

const demoYAML = `
project:
  groupId: com.example
  artifactId: demo
  version: 0.0.1
  name: demo
  description: Demo project
  licenses:
    - name: Apache-2.0
      distribution: repo
  developers:
    - id: jdoe
      roles: [lead]
      properties:
        twitter: "@jdoe"
  scm:
    url: https://github.com/example/demo
parent:
  groupId: org.springframework.boot
  artifactId: spring-boot-starter-parent
  version: 3.4.1
properties:
  java.version: "21"
versionProperties:
  spring-cloud.version: 2024.0.0
dependencies:
  - groupId: org.springframework.boot
    artifactId: spring-boot-starter-web
  - groupId: org.projectlombok
    artifactId: lombok
    scope: annotation-processor
  - groupId: org.springframework.boot
    artifactId: spring-boot-starter-test
    scope: test-compile
    exclusions:
      - groupId: org.junit.vintage
        artifactId: junit-vintage-engine
boms:
  - groupId: org.springframework.cloud
    artifactId: spring-cloud-dependencies
    versionProperty: spring-cloud.version
    order: 1
build:
  finalName: demo-app
  resources:
    - directory: src/main/resources
      filtering: true
  plugins:
    - groupId: org.apache.maven.plugins
      artifactId: maven-surefire-plugin
      configuration:
        excludes:
          - exclude: "**/*IT.java"
        skip: "false"
      executions:
        - id: default-test
          phase: test
          goals: [test]
repositories:
  - id: spring-milestones
    name: Spring Milestones
    url: https://repo.spring.io/milestone
profiles:
  - id: native
    activation:
      activeByDefault: false
      os:
        family: unix
    build:
      plugins:
        - groupId: org.graalvm.buildtools
          artifactId: native-maven-plugin
distributionManagement:
  repository:
    id: releases
    url: https://repo.example.com/releases
conventions:
  enabled: [defaults]
  platformVersion: 3.4.1
`

const demoTOML = `
[project]
groupId = "com.example"
artifactId = "demo"
version = "0.0.1"
name = "demo"
description = "Demo project"

[[project.licenses]]
name = "Apache-2.0"
distribution = "repo"

[[project.developers]]
id = "jdoe"
roles = ["lead"]
properties = { twitter = "@jdoe" }

[project.scm]
url = "https://github.com/example/demo"

[parent]
groupId = "org.springframework.boot"
artifactId = "spring-boot-starter-parent"
version = "3.4.1"

[properties]
"java.version" = "21"

[versionProperties]
"spring-cloud.version" = "2024.0.0"

[[dependencies]]
groupId = "org.springframework.boot"
artifactId = "spring-boot-starter-web"

[[dependencies]]
groupId = "org.projectlombok"
artifactId = "lombok"
scope = "annotation-processor"

[[dependencies]]
groupId = "org.springframework.boot"
artifactId = "spring-boot-starter-test"
scope = "test-compile"
exclusions = [{ groupId = "org.junit.vintage", artifactId = "junit-vintage-engine" }]

[[boms]]
groupId = "org.springframework.cloud"
artifactId = "spring-cloud-dependencies"
versionProperty = "spring-cloud.version"
order = 1

[build]
finalName = "demo-app"

[[build.resources]]
directory = "src/main/resources"
filtering = true

[[build.plugins]]
groupId = "org.apache.maven.plugins"
artifactId = "maven-surefire-plugin"

[build.plugins.configuration]
excludes = [{ exclude = "**/*IT.java" }]
skip = false

[[build.plugins.executions]]
id = "default-test"
phase = "test"
goals = ["test"]

[[repositories]]
id = "spring-milestones"
name = "Spring Milestones"
url = "https://repo.spring.io/milestone"

[[profiles]]
id = "native"

[profiles.activation]
activeByDefault = false

[profiles.activation.os]
family = "unix"

[[profiles.build.plugins]]
groupId = "org.graalvm.buildtools"
artifactId = "native-maven-plugin"

[distributionManagement.repository]
id = "releases"
url = "https://repo.example.com/releases"

[conventions]
enabled = ["defaults"]
platformVersion = "3.4.1"
`

func TestParse_YAML(t *testing.T) {
	d, err := Parse([]byte(demoYAML), FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, "com.example", d.Project.GroupID)
	require.NotNil(t, d.Parent)
	assert.Equal(t, "3.4.1", d.Parent.Version)
	assert.Len(t, d.Dependencies, 3)
	assert.Equal(t, []string{"defaults"}, d.Conventions.Enabled)

	require.Len(t, d.Build.Plugins, 1)
	cfg := d.Build.Plugins[0].Configuration
	require.Len(t, cfg, 2)
	assert.Equal(t, "excludes", cfg[0].Name)
	assert.Equal(t, maven.SettingNested, cfg[0].Kind())
	assert.Equal(t, "exclude", cfg[0].Children()[0].Name)
	assert.Equal(t, "skip", cfg[1].Name)
}

func TestParse_YAMLAndTOMLRenderIdentically(t *testing.T) {
	fromYAML, err := Parse([]byte(demoYAML), FormatYAML)
	require.NoError(t, err)

	fromTOML, err := Parse([]byte(demoTOML), FormatTOML)
	require.NoError(t, err)

	render := func(d *Descriptor) string {
		build := maven.NewBuild()
		require.NoError(t, d.Apply(build))

		out, err := pom.Render(build)
		require.NoError(t, err)

		return string(out)
	}

	assert.Equal(t, render(fromYAML), render(fromTOML))
}

func TestApply(t *testing.T) {
	d, err := Parse([]byte(demoYAML), FormatYAML)
	require.NoError(t, err)

	build := maven.NewBuild()
	require.NoError(t, d.Apply(build))

	s := build.BuildSettings()
	assert.Equal(t, "demo", s.ArtifactID)
	assert.Equal(t, "0.0.1", s.Version)
	assert.Equal(t, maven.DefaultPackaging, s.Packaging)
	assert.Equal(t, "demo-app", s.FinalName)
	require.Len(t, s.Licenses, 1)
	assert.Equal(t, maven.DistributionRepo, s.Licenses[0].Distribution)
	assert.Equal(t, []maven.Property{{Key: "twitter", Value: "@jdoe"}}, s.Developers[0].Properties)

	lombok, ok := build.Dependencies().Get("lombok")
	require.True(t, ok)
	assert.Equal(t, maven.ScopeAnnotationProcessor, lombok.Scope)
	assert.Nil(t, lombok.Version)

	bom, ok := build.Boms().Get("spring-cloud-dependencies")
	require.True(t, ok)
	assert.Equal(t, 1, bom.Order)
	assert.Equal(t, "${spring-cloud.version}", bom.Version.String())

	assert.True(t, build.Properties().Has("spring-cloud.version"))
	assert.True(t, build.Resources().Has("src/main/resources"))
	assert.True(t, build.Plugins().Has("org.apache.maven.plugins", "maven-surefire-plugin"))

	profile, ok := build.Profiles().Get("native")
	require.True(t, ok)
	require.NotNil(t, profile.Activation.ActiveByDefault)
	assert.False(t, *profile.Activation.ActiveByDefault)
	assert.Equal(t, "unix", profile.Activation.OS.Family)
	assert.True(t, profile.Build.Plugins().Has("org.graalvm.buildtools", "native-maven-plugin"))

	repos := build.Repositories().Explicit()
	require.Len(t, repos, 1)
	assert.True(t, repos[0].ReleasesEnabled)

	assert.Equal(t, "releases", build.DistributionManagement().Build().Repository.ID)
}

func TestApply_BomWithoutOrderSortsLast(t *testing.T) {
	d := &Descriptor{
		Project: Project{GroupID: "g", ArtifactID: "a"},
		Boms:    []Bom{{GroupID: "g", ArtifactID: "bom", Version: "1"}},
	}

	build := maven.NewBuild()
	require.NoError(t, d.Apply(build))

	bom, ok := build.Boms().Get("bom")
	require.True(t, ok)
	assert.Equal(t, DefaultBomOrder, bom.Order)
}

func TestParse_YAMLConfigurationOrderIsKept(t *testing.T) {
	src := `
project: {groupId: g, artifactId: a}
build:
  plugins:
    - groupId: io.fabric8
      artifactId: docker-maven-plugin
      configuration:
        images:
          - image:
              name: postgres:10
              alias: db
          - image:
              name: redis:7
        zeta: "1"
        alpha: "2"
`

	d, err := Parse([]byte(src), FormatYAML)
	require.NoError(t, err)

	cfg := d.Build.Plugins[0].Configuration
	require.Len(t, cfg, 3)
	assert.Equal(t, []string{"images", "zeta", "alpha"}, []string{cfg[0].Name, cfg[1].Name, cfg[2].Name})

	images := cfg[0].Children()
	require.Len(t, images, 2)
	assert.Equal(t, "name", images[0].Children()[0].Name)
	assert.Equal(t, "alias", images[0].Children()[1].Name)
	assert.Equal(t, "redis:7", images[1].Children()[0].Value())
}

func TestParse_TOMLConfigurationKeysAreSorted(t *testing.T) {
	src := `
[project]
groupId = "g"
artifactId = "a"

[[build.plugins]]
groupId = "org.apache.maven.plugins"
artifactId = "maven-surefire-plugin"

[build.plugins.configuration]
zeta = "1"
excludes = [{ exclude = "b" }, { exclude = "a" }]
alpha = "2"
`

	d, err := Parse([]byte(src), FormatTOML)
	require.NoError(t, err)

	cfg := d.Build.Plugins[0].Configuration
	require.Len(t, cfg, 3)
	assert.Equal(t, []string{"alpha", "excludes", "zeta"}, []string{cfg[0].Name, cfg[1].Name, cfg[2].Name})

	excludes := cfg[1].Children()
	require.Len(t, excludes, 2)
	assert.Equal(t, "b", excludes[0].Value())
	assert.Equal(t, "a", excludes[1].Value())
}

func TestParse_YAMLConfigurationRejectsScalarLists(t *testing.T) {
	src := `
project: {groupId: g, artifactId: a}
build:
  plugins:
    - groupId: g
      artifactId: p
      configuration:
        excludes: ["**/*IT.java"]
`

	_, err := Parse([]byte(src), FormatYAML)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "- exclude: value")
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr string
	}{
		{name: "empty", src: "", wantErr: "empty document"},
		{name: "unknown field", src: "project: {groupId: g, artifactId: a}\nbogus: 1\n", wantErr: "bogus"},
		{name: "missing group", src: "project: {artifactId: a}\n", wantErr: "project.groupId is required"},
		{name: "missing artifact", src: "project: {groupId: g}\n", wantErr: "project.artifactId is required"},
		{
			name:    "unknown scope",
			src:     "project: {groupId: g, artifactId: a}\ndependencies: [{groupId: g, artifactId: x, scope: system}]\n",
			wantErr: "dependencies[0]: unknown dependency scope",
		},
		{
			name:    "duplicate dependency id",
			src:     "project: {groupId: g, artifactId: a}\ndependencies: [{groupId: g, artifactId: x}, {groupId: h, artifactId: x}]\n",
			wantErr: `duplicate id "x"`,
		},
		{
			name:    "invalid version property",
			src:     "project: {groupId: g, artifactId: a}\nversionProperties: {Spring.Version: '1'}\n",
			wantErr: "invalid version property",
		},
		{
			name:    "version and property",
			src:     "project: {groupId: g, artifactId: a}\ndependencies: [{groupId: g, artifactId: x, version: '1', versionProperty: x.version}]\n",
			wantErr: "mutually exclusive",
		},
		{
			name:    "bom without version",
			src:     "project: {groupId: g, artifactId: a}\nboms: [{groupId: g, artifactId: b}]\n",
			wantErr: "boms[0]: version or versionProperty is required",
		},
		{
			name:    "profile without id",
			src:     "project: {groupId: g, artifactId: a}\nprofiles: [{build: {finalName: x}}]\n",
			wantErr: "profiles[0]: id is required",
		},
		{
			name:    "execution without id",
			src:     "project: {groupId: g, artifactId: a}\nbuild: {plugins: [{groupId: g, artifactId: p, executions: [{phase: test}]}]}\n",
			wantErr: "build.plugins[0].executions[0]: id is required",
		},
		{
			name:    "duplicate repository",
			src:     "project: {groupId: g, artifactId: a}\nrepositories: [{id: r, url: u}, {id: r, url: v}]\n",
			wantErr: `repositories[1]: duplicate id "r"`,
		},
		{
			name:    "license distribution",
			src:     "project: {groupId: g, artifactId: a, licenses: [{name: MIT, distribution: ftp}]}\n",
			wantErr: "unknown license distribution",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src), FormatYAML)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParse_ValidationErrorsWrapSentinel(t *testing.T) {
	_, err := Parse([]byte("project: {groupId: g}\n"), FormatYAML)
	require.ErrorIs(t, err, ErrInvalidDescriptor)
}

func TestParse_TOMLUnknownKey(t *testing.T) {
	src := "[project]\ngroupId = \"g\"\nartifactId = \"a\"\nbogus = 1\n"

	_, err := Parse([]byte(src), FormatTOML)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "project.bogus")
}

func TestParse_UnsupportedFormat(t *testing.T) {
	_, err := Parse([]byte("{}"), Format("json"))
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{path: "pomgen.yaml", want: FormatYAML},
		{path: "dir/pomgen.YML", want: FormatYAML},
		{path: "pomgen.toml", want: FormatTOML},
		{path: "pom.xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnsupportedFormat)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pomgen.toml")
	require.NoError(t, os.WriteFile(path, []byte(demoTOML), 0o600))

	d, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "demo", d.Project.ArtifactID)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading descriptor")
}
