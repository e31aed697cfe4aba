package conventions

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Spring Boot coordinates.
const (
	SpringBootGroupID       = "org.springframework.boot"
	StarterParentArtifactID = "spring-boot-starter-parent"
	BomArtifactID           = "spring-boot-dependencies"
	BomVersionProperty      = "spring-boot.version"
	BomID                   = "spring-boot"
	BomOrder                = 100
)

// ParentRule selects a parent pom for the platform versions matching
// VersionRange, a Masterminds/semver constraint such as ">=3.0.0 <3.5.0".
type ParentRule struct {
	VersionRange string
	GroupID      string
	ArtifactID   string
	// Version of the parent. Empty means the platform version.
	Version string
	// IncludeBom imports the Spring Boot bom, which a custom parent usually
	// does not provide.
	IncludeBom bool
}

// ParentPom is a resolved parent.
type ParentPom struct {
	GroupID    string
	ArtifactID string
	Version    string
	IncludeBom bool
}

// IsStarterParent reports whether p is the Spring Boot starter parent, which
// already declares encodings and the Spring Boot bom.
func (p ParentPom) IsStarterParent() bool {
	return p.GroupID == SpringBootGroupID && p.ArtifactID == StarterParentArtifactID
}

// ValidateRules checks every rule for a parseable range and coordinates.
func ValidateRules(rules []ParentRule) error {
	for i, r := range rules {
		if _, err := semver.NewConstraint(r.VersionRange); err != nil {
			return fmt.Errorf("parent rule %d: invalid version range %q: %w", i, r.VersionRange, err)
		}

		if r.GroupID == "" || r.ArtifactID == "" {
			return fmt.Errorf("parent rule %d: groupId and artifactId are required", i)
		}
	}

	return nil
}

// ResolveParent returns the parent for platformVersion: the first matching
// rule, or the Spring Boot starter parent at the platform version.
func ResolveParent(platformVersion string, rules []ParentRule) (ParentPom, error) {
	fallback := ParentPom{
		GroupID:    SpringBootGroupID,
		ArtifactID: StarterParentArtifactID,
		Version:    platformVersion,
	}

	if len(rules) == 0 {
		return fallback, nil
	}

	v, err := semver.NewVersion(platformVersion)
	if err != nil {
		return ParentPom{}, fmt.Errorf("parsing platform version %q: %w", platformVersion, err)
	}

	for i, r := range rules {
		c, err := semver.NewConstraint(r.VersionRange)
		if err != nil {
			return ParentPom{}, fmt.Errorf("parent rule %d: invalid version range %q: %w", i, r.VersionRange, err)
		}

		if !c.Check(v) {
			continue
		}

		version := r.Version
		if version == "" {
			version = platformVersion
		}

		return ParentPom{
			GroupID:    r.GroupID,
			ArtifactID: r.ArtifactID,
			Version:    version,
			IncludeBom: r.IncludeBom,
		}, nil
	}

	return fallback, nil
}
