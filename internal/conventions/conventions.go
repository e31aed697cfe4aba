// Package conventions provides build customizers that apply house defaults
// to a maven.Build before it is written: the Spring Boot parent and plugin,
// integration test wiring and Docker packaging.
package conventions

import (
	"cmp"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/hupe1980/pomgen/internal/maven"
)

// Convention names accepted by New.
const (
	NameDefaults         = "defaults"
	NameIntegrationTests = "integration-tests"
	NameDocker           = "docker"
)

// ErrUnknownConvention is returned by New for an unregistered name.
var ErrUnknownConvention = errors.New("unknown convention")

// Customizer mutates a build. Customizers run in ascending Order.
type Customizer interface {
	Customize(build *maven.Build)
	Order() int
}

// Apply runs customizers against build in ascending order. Customizers with
// the same order run in the order given.
func Apply(build *maven.Build, customizers ...Customizer) {
	for _, c := range Sorted(customizers) {
		c.Customize(build)
	}
}

// Sorted returns customizers in the order Apply runs them.
func Sorted(customizers []Customizer) []Customizer {
	sorted := slices.Clone(customizers)
	slices.SortStableFunc(sorted, func(a, b Customizer) int {
		return cmp.Compare(a.Order(), b.Order())
	})

	return sorted
}

// Options configures the built-in conventions.
type Options struct {
	// PlatformVersion is the Spring Boot version the project targets. The
	// parent pom and the Spring Boot bom are only added when it is set.
	PlatformVersion string

	// JavaVersion is written as the java.version property. Defaults to 17.
	JavaVersion string

	// Encoding is used for the source and reporting encoding properties.
	// Defaults to UTF-8.
	Encoding string

	// ParentRules select the parent pom by platform version. The first
	// matching rule wins.
	ParentRules []ParentRule

	Logger *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.JavaVersion == "" {
		o.JavaVersion = DefaultJavaVersion
	}

	if o.Encoding == "" {
		o.Encoding = DefaultEncoding
	}

	if o.Logger == nil {
		o.Logger = slog.Default()
	}

	return o
}

// Names returns the registered convention names in a stable order.
func Names() []string {
	return []string{NameDefaults, NameIntegrationTests, NameDocker}
}

// Description returns a one-line summary of the named convention, or an
// empty string for unknown names.
func Description(name string) string {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameDefaults:
		return "Spring Boot parent or BOM, java.version and source encoding"
	case NameIntegrationTests:
		return "surefire/failsafe split and a pg-docker profile running Postgres"
	case NameDocker:
		return "dockerfile image build and push instead of a jar deploy"
	default:
		return ""
	}
}

// New returns the customizers registered under names. Names are
// case-insensitive; duplicates are ignored.
func New(names []string, opts Options) ([]Customizer, error) {
	opts = opts.withDefaults()

	var (
		out  []Customizer
		seen = make(map[string]bool, len(names))
	)

	for _, raw := range names {
		name := strings.ToLower(strings.TrimSpace(raw))
		if name == "" || seen[name] {
			continue
		}

		seen[name] = true

		switch name {
		case NameDefaults:
			d, err := NewDefaults(opts)
			if err != nil {
				return nil, err
			}

			out = append(out, d)
		case NameIntegrationTests:
			out = append(out, IntegrationTests{})
		case NameDocker:
			out = append(out, DockerPackaging{})
		default:
			return nil, fmt.Errorf("%w %q (available: %s)", ErrUnknownConvention, raw, strings.Join(Names(), ", "))
		}
	}

	return out, nil
}
