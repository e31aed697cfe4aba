package maven

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDependency(t *testing.T) {
	d := NewDependency("org.acme", "lib",
		WithVersion("1.0"),
		WithScope(ScopeRuntime),
		WithClassifier("tests"),
		WithType("test-jar"),
		WithExclusions(Exclusion{GroupID: "a", ArtifactID: "b"}),
		WithExclusions(Exclusion{GroupID: "c", ArtifactID: "d"}),
	)

	assert.Equal(t, "org.acme:lib", d.Coordinates())
	assert.Equal(t, "1.0", d.Version.String())
	assert.Equal(t, ScopeRuntime, d.Scope)
	assert.Equal(t, "tests", d.Classifier)
	assert.Equal(t, "test-jar", d.Type)
	assert.Len(t, d.Exclusions, 2)
	assert.False(t, d.IsOptional())
}

func TestDependency_IsOptional(t *testing.T) {
	assert.True(t, NewDependency("g", "a", WithOptional(true)).IsOptional())
	assert.True(t, NewDependency("g", "a", WithScope(ScopeCompileOnly)).IsOptional())
	assert.True(t, NewDependency("g", "a", WithScope(ScopeAnnotationProcessor)).IsOptional())
	assert.False(t, NewDependency("g", "a", WithScope(ScopeProvidedRuntime)).IsOptional())
}

func TestSortedDependencies(t *testing.T) {
	deps := []Dependency{
		NewDependency("org.b", "x"),
		NewDependency("org.a", "y", WithClassifier("native")),
		NewDependency("org.a", "y"),
		NewDependency("org.a", "x", WithVersion("2")),
		NewDependency("org.a", "x", WithVersion("1")),
	}

	sorted := SortedDependencies(deps)

	got := make([]string, 0, len(sorted))
	for _, d := range sorted {
		got = append(got, d.Coordinates()+":"+d.Classifier+":"+d.Version.String())
	}

	assert.Equal(t, []string{
		"org.a:x::2",
		"org.a:x::1",
		"org.a:y::",
		"org.a:y:native:",
		"org.b:x::",
	}, got)
	assert.Equal(t, "org.b", deps[0].GroupID, "input is not mutated")
}

func TestDependencyContainer(t *testing.T) {
	var c DependencyContainer
	assert.True(t, c.IsEmpty())

	c.Add("web", NewDependency("org.springframework.boot", "spring-boot-starter-web"))
	c.Add("test", NewDependency("org.springframework.boot", "spring-boot-starter-test", WithScope(ScopeTestCompile)))
	c.Add("web", NewDependency("org.springframework.boot", "spring-boot-starter-webflux"))

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, []string{"web", "test"}, c.IDs())

	web, ok := c.Get("web")
	assert.True(t, ok)
	assert.Equal(t, "spring-boot-starter-webflux", web.ArtifactID)

	tests := c.Filter(Scope.IsTest)
	assert.Len(t, tests, 1)
	assert.Equal(t, "spring-boot-starter-test", tests[0].ArtifactID)

	assert.True(t, c.Remove("test"))
	assert.False(t, c.Remove("test"))
	assert.Equal(t, 1, c.Len())
}

func TestContainer_ItemsIsRestartable(t *testing.T) {
	var c Container[string]
	c.Add("a", "1")
	c.Add("b", "2")

	var first, second []string
	for v := range c.Items() {
		first = append(first, v)
	}

	for v := range c.Items() {
		second = append(second, v)
	}

	assert.Equal(t, []string{"1", "2"}, first)
	assert.Equal(t, first, second)
}
