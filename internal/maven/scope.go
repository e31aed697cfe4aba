package maven

import (
	"fmt"
	"strings"
)

// Scope is the lifecycle phase and classpath visibility of a dependency.
// The zero value means the scope was not specified and is treated like
// ScopeCompile.
type Scope int

// Known dependency scopes.
const (
	ScopeUnset Scope = iota
	ScopeCompile
	ScopeRuntime
	ScopeCompileOnly
	ScopeAnnotationProcessor
	ScopeProvidedRuntime
	ScopeTestCompile
	ScopeTestRuntime
)

var scopeNames = map[Scope]string{
	ScopeUnset:               "",
	ScopeCompile:             "compile",
	ScopeRuntime:             "runtime",
	ScopeCompileOnly:         "compile-only",
	ScopeAnnotationProcessor: "annotation-processor",
	ScopeProvidedRuntime:     "provided-runtime",
	ScopeTestCompile:         "test-compile",
	ScopeTestRuntime:         "test-runtime",
}

// String returns the canonical kebab-case name of the scope.
func (s Scope) String() string {
	if name, ok := scopeNames[s]; ok {
		return name
	}

	return fmt.Sprintf("Scope(%d)", int(s))
}

// IsValid reports whether s is one of the known scopes (including ScopeUnset).
func (s Scope) IsValid() bool {
	_, ok := scopeNames[s]
	return ok
}

// IsCompile reports whether s belongs to the compile bucket: either
// unspecified or explicitly ScopeCompile.
func (s Scope) IsCompile() bool {
	return s == ScopeUnset || s == ScopeCompile
}

// IsTest reports whether s is one of the test scopes.
func (s Scope) IsTest() bool {
	return s == ScopeTestCompile || s == ScopeTestRuntime
}

// ParseScope converts a scope name to a Scope. The empty string yields
// ScopeUnset. Names are matched case-insensitively and underscores are
// accepted in place of dashes (e.g. "TEST_COMPILE").
func ParseScope(name string) (Scope, error) {
	normalized := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), "_", "-"))

	for scope, candidate := range scopeNames {
		if candidate == normalized {
			return scope, nil
		}
	}

	return ScopeUnset, fmt.Errorf("%w %q", ErrUnknownScope, name)
}

// ScopeNames returns the names accepted by ParseScope, excluding the empty name.
func ScopeNames() []string {
	return []string{
		"compile", "runtime", "compile-only", "annotation-processor",
		"provided-runtime", "test-compile", "test-runtime",
	}
}
