// Package pom serializes a maven.Build into a pom.xml document.
//
// Elements appear in a fixed order and empty sections are left out entirely,
// so the same build always yields byte-identical output. Dependencies are
// grouped by scope (compile, runtime, compile-only, annotation processor,
// provided, test) and sorted within each group. Maven Central is implicit and
// never written.
package pom
