package config

import (
	"fmt"
	"os"
	"regexp"

	sigsyaml "sigs.k8s.io/yaml"

	"github.com/hupe1980/pomgen/internal/conventions"
)

// ConventionsConfig holds the convention settings loaded from the config
// file (.pomgen.yaml).
type ConventionsConfig struct {
	// ParentRules select the parent pom by platform version. The first
	// matching rule wins.
	ParentRules []ParentRuleConfig `json:"parentRules,omitempty"`

	// JavaVersion overrides the java.version property written by the
	// defaults convention.
	JavaVersion string `json:"javaVersion,omitempty"`

	// Encoding overrides the source and reporting encoding.
	Encoding string `json:"encoding,omitempty"`
}

// ParentRuleConfig is the file form of a conventions.ParentRule.
type ParentRuleConfig struct {
	// VersionRange is a semver constraint such as ">=3.0.0 <3.5.0".
	VersionRange string `json:"versionRange"`

	GroupID    string `json:"groupId"`
	ArtifactID string `json:"artifactId"`

	// Version of the parent. Empty means the platform version.
	Version string `json:"version,omitempty"`

	// IncludeBom imports the Spring Boot bom alongside the parent.
	IncludeBom bool `json:"includeBom,omitempty"`
}

// ParseConventionsConfig parses the parentRules, javaVersion and encoding
// sections from raw config file bytes.
func ParseConventionsConfig(data []byte) (*ConventionsConfig, error) {
	var cfg ConventionsConfig
	if err := sigsyaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing conventions config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadConventionsConfig reads the conventions sections from path. An empty
// path yields an empty config.
func LoadConventionsConfig(path string) (*ConventionsConfig, error) {
	if path == "" {
		return &ConventionsConfig{}, nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // user-provided CLI arg
	if err != nil {
		return nil, fmt.Errorf("reading conventions config %q: %w", path, err)
	}

	return ParseConventionsConfig(data)
}

var (
	javaVersionPattern = regexp.MustCompile(`^(1\.[5-8]|[1-9][0-9]?)$`)
	encodingPattern    = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9._:-]*$`)
)

// Validate checks the conventions config for correctness.
func (c *ConventionsConfig) Validate() error {
	if err := conventions.ValidateRules(c.Rules()); err != nil {
		return err
	}

	if c.JavaVersion != "" && !javaVersionPattern.MatchString(c.JavaVersion) {
		return fmt.Errorf("javaVersion: invalid value %q (must match %s)", c.JavaVersion, javaVersionPattern.String())
	}

	if c.Encoding != "" && !encodingPattern.MatchString(c.Encoding) {
		return fmt.Errorf("encoding: invalid value %q", c.Encoding)
	}

	return nil
}

// Rules converts the parent rules for the conventions package.
func (c *ConventionsConfig) Rules() []conventions.ParentRule {
	if len(c.ParentRules) == 0 {
		return nil
	}

	out := make([]conventions.ParentRule, 0, len(c.ParentRules))
	for _, r := range c.ParentRules {
		out = append(out, conventions.ParentRule{
			VersionRange: r.VersionRange,
			GroupID:      r.GroupID,
			ArtifactID:   r.ArtifactID,
			Version:      r.Version,
			IncludeBom:   r.IncludeBom,
		})
	}

	return out
}

// IsEmpty returns true if the config sets nothing.
func (c *ConventionsConfig) IsEmpty() bool {
	return len(c.ParentRules) == 0 && c.JavaVersion == "" && c.Encoding == ""
}
