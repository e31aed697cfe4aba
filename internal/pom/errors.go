package pom

import (
	"fmt"

	"github.com/hupe1980/pomgen/internal/maven"
)

// ConfigError reports a build model that cannot be rendered.
type ConfigError struct {
	// Path locates the offending element, e.g. "project" or
	// "dependency org.acme:demo".
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid build at %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// validate checks the parts of build that must be well formed before any
// output is produced.
func validate(build *maven.Build) error {
	if build == nil {
		return &ConfigError{Path: "project", Err: fmt.Errorf("%w: build is nil", maven.ErrInvalidCoordinate)}
	}

	if err := build.BuildSettings().Coordinate.Validate(); err != nil {
		return &ConfigError{Path: "project", Err: err}
	}

	for dep := range build.Dependencies().Items() {
		if _, err := scopeForType(dep.Scope); err != nil {
			return &ConfigError{Path: "dependency " + dep.Coordinates(), Err: err}
		}
	}

	return nil
}
