package maven

// DeploymentRepository is a release or snapshot deployment target.
type DeploymentRepository struct {
	ID            string
	Name          string
	URL           string
	Layout        string
	UniqueVersion *bool
}

// IsEmpty reports whether every field is unset.
func (r DeploymentRepository) IsEmpty() bool {
	return r.ID == "" && r.Name == "" && r.URL == "" && r.Layout == "" && r.UniqueVersion == nil
}

// Site is the project site deployment target.
type Site struct {
	ID   string
	Name string
	URL  string
}

// IsEmpty reports whether every field is unset.
func (s Site) IsEmpty() bool {
	return s == Site{}
}

// Relocation points consumers to the new coordinates of a moved artifact.
type Relocation struct {
	GroupID    string
	ArtifactID string
	Version    string
	Message    string
}

// IsEmpty reports whether every field is unset.
func (r Relocation) IsEmpty() bool {
	return r == Relocation{}
}

// DistributionManagement describes where the project is deployed.
type DistributionManagement struct {
	DownloadURL        string
	Repository         DeploymentRepository
	SnapshotRepository DeploymentRepository
	Site               Site
	Relocation         Relocation
}

// IsEmpty reports whether the download URL and every subsection are unset.
func (d DistributionManagement) IsEmpty() bool {
	return d.DownloadURL == "" && d.Repository.IsEmpty() && d.SnapshotRepository.IsEmpty() &&
		d.Site.IsEmpty() && d.Relocation.IsEmpty()
}

// DistributionManagementBuilder stages DistributionManagement.
type DistributionManagementBuilder struct {
	d DistributionManagement
}

// DownloadURL sets the download URL.
func (b *DistributionManagementBuilder) DownloadURL(url string) *DistributionManagementBuilder {
	b.d.DownloadURL = url
	return b
}

// Repository customises the release repository.
func (b *DistributionManagementBuilder) Repository(fn func(*DeploymentRepository)) *DistributionManagementBuilder {
	fn(&b.d.Repository)
	return b
}

// SnapshotRepository customises the snapshot repository.
func (b *DistributionManagementBuilder) SnapshotRepository(fn func(*DeploymentRepository)) *DistributionManagementBuilder {
	fn(&b.d.SnapshotRepository)
	return b
}

// Site customises the site.
func (b *DistributionManagementBuilder) Site(fn func(*Site)) *DistributionManagementBuilder {
	fn(&b.d.Site)
	return b
}

// Relocation customises the relocation.
func (b *DistributionManagementBuilder) Relocation(fn func(*Relocation)) *DistributionManagementBuilder {
	fn(&b.d.Relocation)
	return b
}

// Build returns a snapshot of the staged value.
func (b *DistributionManagementBuilder) Build() DistributionManagement {
	d := b.d

	for _, r := range []*DeploymentRepository{&d.Repository, &d.SnapshotRepository} {
		if r.UniqueVersion != nil {
			v := *r.UniqueVersion
			r.UniqueVersion = &v
		}
	}

	return d
}
