// Package pomgen provides a public Go API for generating a Maven pom.xml
// from a YAML or TOML project descriptor.
//
// Basic usage:
//
//	result, err := pomgen.Generate(ctx, "pomgen.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.Stdout.Write(result.XML)
//
// With conventions:
//
//	result, err := pomgen.Generate(ctx, "pomgen.yaml",
//	    pomgen.WithConventions("defaults", "integration-tests"),
//	    pomgen.WithPlatformVersion("3.2.5"),
//	)
package pomgen

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/hupe1980/pomgen/internal/conventions"
	"github.com/hupe1980/pomgen/internal/descriptor"
	"github.com/hupe1980/pomgen/internal/logging"
	"github.com/hupe1980/pomgen/internal/maven"
	"github.com/hupe1980/pomgen/internal/pom"
)

// ErrInvalidDescriptor is returned, wrapped, for a descriptor that fails to
// parse or validate.
var ErrInvalidDescriptor = descriptor.ErrInvalidDescriptor

// ParentRule selects a parent pom for the platform versions matching
// VersionRange, a semver constraint such as ">=3.0.0 <3.5.0".
type ParentRule struct {
	VersionRange string
	GroupID      string
	ArtifactID   string
	// Version of the parent. Empty means the platform version.
	Version string
	// IncludeBom also imports the Spring Boot bom.
	IncludeBom bool
}

// Option configures generation.
type Option func(*options)

type options struct {
	conventions     []string
	platformVersion string
	javaVersion     string
	encoding        string
	parentRules     []ParentRule
	indent          string
	logger          *slog.Logger
}

// WithConventions enables conventions by name in addition to those the
// descriptor enables. See conventions.Names for the registered names.
func WithConventions(names ...string) Option {
	return func(o *options) { o.conventions = append(o.conventions, names...) }
}

// WithPlatformVersion sets the Spring Boot version used when the descriptor
// does not declare one.
func WithPlatformVersion(v string) Option { return func(o *options) { o.platformVersion = v } }

// WithJavaVersion sets the java.version used when the descriptor does not
// declare one (default "17").
func WithJavaVersion(v string) Option { return func(o *options) { o.javaVersion = v } }

// WithEncoding sets the source encoding written by the defaults convention.
func WithEncoding(enc string) Option { return func(o *options) { o.encoding = enc } }

// WithParentRules sets the rules that pick a parent pom by platform version.
func WithParentRules(rules ...ParentRule) Option {
	return func(o *options) { o.parentRules = append(o.parentRules, rules...) }
}

// WithIndent sets the indentation unit of the generated pom (default tab).
func WithIndent(indent string) Option { return func(o *options) { o.indent = indent } }

// WithLogger sets the logger. By default nothing is logged.
func WithLogger(logger *slog.Logger) Option { return func(o *options) { o.logger = logger } }

// Result holds the output of a successful generation.
type Result struct {
	// XML is the rendered pom.xml.
	XML []byte

	// Build is the populated build model the pom was rendered from.
	Build *maven.Build

	// Conventions lists the conventions applied, in application order.
	Conventions []string

	// Dependencies maps groupId:artifactId, plus :classifier when one is
	// set, to the declared version, "" when a parent or bom manages it.
	Dependencies map[string]string

	Plugins  int
	Profiles int
}

// Generate loads the descriptor at path and renders its pom. The format is
// taken from the file extension.
func Generate(ctx context.Context, path string, opts ...Option) (*Result, error) {
	if path == "" {
		return nil, errors.New("descriptor path must not be empty")
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	d, err := descriptor.Load(path)
	if err != nil {
		return nil, err
	}

	return GenerateDescriptor(ctx, d, opts...)
}

// GenerateBytes renders the pom for a descriptor held in memory. format is
// "yaml" or "toml".
func GenerateBytes(ctx context.Context, data []byte, format string, opts ...Option) (*Result, error) {
	d, err := descriptor.Parse(data, descriptor.Format(format))
	if err != nil {
		return nil, err
	}

	return GenerateDescriptor(ctx, d, opts...)
}

// GenerateDescriptor renders the pom for an already parsed descriptor.
func GenerateDescriptor(ctx context.Context, d *descriptor.Descriptor, opts ...Option) (*Result, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	o.applyDefaults()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	build := maven.NewBuild()
	if err := d.Apply(build); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDescriptor, err)
	}

	names := slices.Concat(d.Conventions.Enabled, o.conventions)

	customizers, err := conventions.New(names, conventions.Options{
		PlatformVersion: cmp.Or(d.Conventions.PlatformVersion, o.platformVersion),
		JavaVersion:     cmp.Or(d.Conventions.JavaVersion, o.javaVersion),
		Encoding:        o.encoding,
		ParentRules:     o.conventionRules(),
		Logger:          o.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("configuring conventions: %w", err)
	}

	customizers = conventions.Sorted(customizers)
	conventions.Apply(build, customizers...)

	applied := make([]string, 0, len(customizers))
	for _, c := range customizers {
		applied = append(applied, conventionName(c))
	}

	var renderOpts []pom.Option
	if o.indent != "" {
		renderOpts = append(renderOpts, pom.WithIndent(o.indent))
	}

	xml, err := pom.Render(build, renderOpts...)
	if err != nil {
		return nil, fmt.Errorf("rendering pom: %w", err)
	}

	settings := build.BuildSettings()
	o.logger.Info("generated pom",
		slog.String("groupId", settings.Coordinate.GroupID),
		slog.String("artifactId", settings.Coordinate.ArtifactID),
		slog.Int("dependencies", build.Dependencies().Len()),
		slog.Any("conventions", applied),
	)

	return &Result{
		XML:          xml,
		Build:        build,
		Conventions:  applied,
		Dependencies: dependencySummary(build),
		Plugins:      build.Plugins().Len(),
		Profiles:     len(build.Profiles().Values()),
	}, nil
}

func (o *options) applyDefaults() {
	if o.logger == nil {
		o.logger = logging.Discard()
	}
}

func (o *options) conventionRules() []conventions.ParentRule {
	if len(o.parentRules) == 0 {
		return nil
	}

	rules := make([]conventions.ParentRule, 0, len(o.parentRules))
	for _, r := range o.parentRules {
		rules = append(rules, conventions.ParentRule(r))
	}

	return rules
}

func conventionName(c conventions.Customizer) string {
	switch c.(type) {
	case *conventions.Defaults:
		return conventions.NameDefaults
	case conventions.IntegrationTests:
		return conventions.NameIntegrationTests
	case conventions.DockerPackaging:
		return conventions.NameDocker
	default:
		return fmt.Sprintf("%T", c)
	}
}

func dependencySummary(build *maven.Build) map[string]string {
	deps := make(map[string]string, build.Dependencies().Len())
	for d := range build.Dependencies().Items() {
		key := d.Coordinates()
		if d.Classifier != "" {
			key += ":" + d.Classifier
		}

		deps[key] = d.Version.String()
	}

	return deps
}
