package maven

// Repository is an artifact or plugin repository.
type Repository struct {
	ID               string
	Name             string
	URL              string
	ReleasesEnabled  bool
	SnapshotsEnabled bool
}

// MavenCentral is the repository every Maven build uses implicitly. It is
// never written to a pom.
var MavenCentral = Repository{
	ID:              "maven-central",
	Name:            "Maven Central",
	URL:             "https://repo.maven.apache.org/maven2",
	ReleasesEnabled: true,
}

// IsMavenCentral reports whether r designates the implicit central repository.
func (r Repository) IsMavenCentral() bool {
	return r.ID == MavenCentral.ID && r.URL == MavenCentral.URL
}

// RepositoryContainer holds repositories keyed by id.
type RepositoryContainer struct {
	Container[Repository]
}

// AddRepository stores r under its own id.
func (c *RepositoryContainer) AddRepository(r Repository) {
	c.Add(r.ID, r)
}

// Explicit returns the repositories that must be written, i.e. all but
// Maven Central, in insertion order.
func (c *RepositoryContainer) Explicit() []Repository {
	var out []Repository

	for r := range c.Items() {
		if !r.IsMavenCentral() {
			out = append(out, r)
		}
	}

	return out
}
