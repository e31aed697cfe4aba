// Package maven models a Maven project build descriptor in memory.
//
// A [Build] aggregates the project [Settings] with ordered containers for
// dependencies, bills of materials, plugins, resources, repositories,
// profiles and properties. Callers mutate a Build through its accessor
// methods during a single configuration phase and then hand it to the pom
// writer, which never modifies it.
//
// Leaf values ([Dependency], [License], [Repository], ...) are plain structs.
// Values that support incremental, merge-style customisation ([Plugin],
// [Settings], [DistributionManagement], [Profile]) are staged in builders that
// accept modifier functions and are frozen on demand.
//
// Containers keep insertion order. Adding an item under a key that is already
// present replaces the item in place, so repeated customisation never yields
// duplicate output. Sorting (for example the dependency ordering used by the
// writer) is always a projection and never mutates a container.
package maven
