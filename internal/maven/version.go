package maven

import (
	"fmt"
	"regexp"
	"strings"
)

var versionPropertyPattern = regexp.MustCompile(`^[a-z0-9]+([.-][a-z0-9]+)*$`)

// VersionProperty is the name of a property holding a version, such as
// "spring-boot.version". Internal properties are managed by the generator
// itself rather than by the user.
type VersionProperty struct {
	name     string
	internal bool
}

// NewVersionProperty validates name and returns a VersionProperty. Names must
// be lowercase letters and digits separated by single dots or dashes.
func NewVersionProperty(name string, internal bool) (VersionProperty, error) {
	if !versionPropertyPattern.MatchString(name) {
		return VersionProperty{}, fmt.Errorf("%w %q: use lowercase letters, digits, '.' and '-'", ErrInvalidVersionProperty, name)
	}

	return VersionProperty{name: name, internal: internal}, nil
}

// MustVersionProperty is like NewVersionProperty for a non-internal property
// but panics on an invalid name. It is intended for constants.
func MustVersionProperty(name string) VersionProperty {
	p, err := NewVersionProperty(name, false)
	if err != nil {
		panic(err)
	}

	return p
}

// StandardFormat returns the property name as written in a pom, e.g.
// "spring-boot.version".
func (p VersionProperty) StandardFormat() string {
	return p.name
}

// CamelCaseFormat returns the camel-cased name, e.g. "springBootVersion".
func (p VersionProperty) CamelCaseFormat() string {
	parts := strings.FieldsFunc(p.name, func(r rune) bool { return r == '.' || r == '-' })

	var b strings.Builder

	for i, part := range parts {
		if i == 0 {
			b.WriteString(part)
			continue
		}

		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}

	return b.String()
}

// Internal reports whether the property is managed by the generator.
func (p VersionProperty) Internal() bool {
	return p.internal
}

// String implements fmt.Stringer.
func (p VersionProperty) String() string {
	return p.name
}

// VersionReference is either a literal version or a reference to a
// VersionProperty.
type VersionReference struct {
	value    string
	property *VersionProperty
}

// VersionOf returns a reference to a literal version.
func VersionOf(value string) *VersionReference {
	return &VersionReference{value: value}
}

// VersionOfProperty returns a reference to a version property.
func VersionOfProperty(p VersionProperty) *VersionReference {
	return &VersionReference{property: &p}
}

// IsProperty reports whether the reference points to a property.
func (r *VersionReference) IsProperty() bool {
	return r.property != nil
}

// Value returns the literal version, or "" for a property reference.
func (r *VersionReference) Value() string {
	return r.value
}

// Property returns the referenced property. It is the zero value for a
// literal reference.
func (r *VersionReference) Property() VersionProperty {
	if r.property == nil {
		return VersionProperty{}
	}

	return *r.property
}

// String renders the reference the way it appears in a pom: the literal
// value, or "${name}" for a property.
func (r *VersionReference) String() string {
	if r == nil {
		return ""
	}

	if r.property != nil {
		return "${" + r.property.StandardFormat() + "}"
	}

	return r.value
}
