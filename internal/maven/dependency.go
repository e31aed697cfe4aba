package maven

import (
	"cmp"
	"slices"
)

// Exclusion removes a transitive dependency.
type Exclusion struct {
	GroupID    string
	ArtifactID string
}

// Dependency is a project dependency.
type Dependency struct {
	GroupID    string
	ArtifactID string
	Version    *VersionReference
	Scope      Scope
	Classifier string
	Type       string
	// Optional marks the dependency optional. Compile-only and annotation
	// processor dependencies are always rendered optional regardless.
	Optional   bool
	Exclusions []Exclusion
}

// DependencyOption customises a Dependency created by NewDependency.
type DependencyOption func(*Dependency)

// NewDependency returns a dependency on groupID:artifactID with opts applied.
func NewDependency(groupID, artifactID string, opts ...DependencyOption) Dependency {
	d := Dependency{GroupID: groupID, ArtifactID: artifactID}

	for _, opt := range opts {
		opt(&d)
	}

	return d
}

// WithVersion sets a literal version.
func WithVersion(version string) DependencyOption {
	return func(d *Dependency) { d.Version = VersionOf(version) }
}

// WithVersionReference sets the version to ref (literal or property).
func WithVersionReference(ref *VersionReference) DependencyOption {
	return func(d *Dependency) { d.Version = ref }
}

// WithScope sets the scope.
func WithScope(scope Scope) DependencyOption {
	return func(d *Dependency) { d.Scope = scope }
}

// WithClassifier sets the classifier.
func WithClassifier(classifier string) DependencyOption {
	return func(d *Dependency) { d.Classifier = classifier }
}

// WithType sets the packaging type, e.g. "pom" or "test-jar".
func WithType(typ string) DependencyOption {
	return func(d *Dependency) { d.Type = typ }
}

// WithOptional sets the optional flag.
func WithOptional(optional bool) DependencyOption {
	return func(d *Dependency) { d.Optional = optional }
}

// WithExclusions appends exclusions.
func WithExclusions(exclusions ...Exclusion) DependencyOption {
	return func(d *Dependency) { d.Exclusions = append(d.Exclusions, exclusions...) }
}

// IsOptional reports whether the dependency renders as optional: either its
// own flag is set or its scope is compile-only or annotation processor.
func (d Dependency) IsOptional() bool {
	return d.Optional || d.Scope == ScopeCompileOnly || d.Scope == ScopeAnnotationProcessor
}

// Coordinates returns "groupId:artifactId".
func (d Dependency) Coordinates() string {
	return d.GroupID + ":" + d.ArtifactID
}

// CompareDependencies orders dependencies by groupId, then artifactId, then
// classifier.
func CompareDependencies(a, b Dependency) int {
	if c := cmp.Compare(a.GroupID, b.GroupID); c != 0 {
		return c
	}

	if c := cmp.Compare(a.ArtifactID, b.ArtifactID); c != 0 {
		return c
	}

	return cmp.Compare(a.Classifier, b.Classifier)
}

// SortedDependencies returns a sorted copy of deps. Equal elements keep their
// declaration order.
func SortedDependencies(deps []Dependency) []Dependency {
	sorted := slices.Clone(deps)
	slices.SortStableFunc(sorted, CompareDependencies)

	return sorted
}

// DependencyContainer holds project dependencies keyed by an identifier.
type DependencyContainer struct {
	Container[Dependency]
}

// Filter returns the dependencies whose scope satisfies match, in insertion order.
func (c *DependencyContainer) Filter(match func(Scope) bool) []Dependency {
	var out []Dependency

	for d := range c.Items() {
		if match(d.Scope) {
			out = append(out, d)
		}
	}

	return out
}
